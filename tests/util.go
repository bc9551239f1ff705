package testutil

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/feedaq/academy-go/core"
)

// RecordedRequest is one call captured by the fake academy backend.
type RecordedRequest struct {
	Method string
	Path   string
	Body   json.RawMessage
}

// Server is a fake FeedAQ Academy backend for client tests. Handlers are
// registered per path; every call is recorded for assertions.
type Server struct {
	*httptest.Server
	echo *echo.Echo

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	e := echo.New()
	srv := &Server{echo: e}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body json.RawMessage
			if c.Request().Body != nil {
				raw, err := ioutil.ReadAll(c.Request().Body)
				if err != nil {
					return err
				}
				body = raw
			}
			srv.mu.Lock()
			srv.requests = append(srv.requests, RecordedRequest{
				Method: c.Request().Method,
				Path:   c.Request().URL.Path,
				Body:   body,
			})
			srv.mu.Unlock()
			return next(c)
		}
	})

	srv.Server = httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

// Handle registers h for POST and GET on path.
func (srv *Server) Handle(path string, h echo.HandlerFunc) {
	srv.echo.POST(path, h)
	srv.echo.GET(path, h)
}

// Requests returns a copy of the captured calls.
func (srv *Server) Requests() []RecordedRequest {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return append([]RecordedRequest(nil), srv.requests...)
}

// CallCount counts captured calls to path.
func (srv *Server) CallCount(path string) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	var n int
	for _, req := range srv.requests {
		if req.Path == path {
			n++
		}
	}
	return n
}

// LastRequest returns the most recent call to path, or nil.
func (srv *Server) LastRequest(path string) *RecordedRequest {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	for i := len(srv.requests) - 1; i >= 0; i-- {
		if srv.requests[i].Path == path {
			req := srv.requests[i]
			return &req
		}
	}
	return nil
}

// Config returns an app config pointed at the fake backend.
func (srv *Server) Config() *core.Config {
	conf := &core.Config{
		Debug:    true,
		TestMode: true,
		Env:      "TEST",
		AppName:  "FeedAQ Academy",
		Build:    "test",
	}
	conf.API.BaseURL = srv.URL
	conf.API.Timeout = 5 * time.Second
	conf.Credit.InterviewCost = 50
	conf.Credit.AssessmentCost = 20
	return conf
}

// RespondData writes a success envelope with data.
func RespondData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"success": true,
		"data":    data,
	})
}

// RespondList writes a success envelope whose data is a list envelope.
func RespondList(c echo.Context, results interface{}, totalCount, offset, limit int) error {
	return RespondData(c, echo.Map{
		"results":    results,
		"totalCount": totalCount,
		"offset":     offset,
		"limit":      limit,
	})
}

// RespondError writes a failure envelope. Empty message/errStr fields are
// omitted so error precedence can be exercised.
func RespondError(c echo.Context, status int, message, errStr string) error {
	body := echo.Map{"status": status, "success": false}
	if message != "" {
		body["message"] = message
	}
	if errStr != "" {
		body["error"] = errStr
	}
	return c.JSON(status, body)
}

// Logger is a test logger that fails the test on Fatal.
type Logger struct {
	T *testing.T
}

var _ core.Logger = (*Logger)(nil)

func (l Logger) Enable(bool) {}

func (l Logger) Debug(msg string, args ...interface{}) { l.T.Logf("DEBUG "+msg+" %v", args) }
func (l Logger) Info(msg string, args ...interface{})  { l.T.Logf("INFO "+msg+" %v", args) }
func (l Logger) Warn(msg string, args ...interface{})  { l.T.Logf("WARN "+msg+" %v", args) }
func (l Logger) Error(msg string, args ...interface{}) { l.T.Logf("ERROR "+msg+" %v", args) }
func (l Logger) Fatal(msg string, args ...interface{}) { l.T.Fatalf("FATAL "+msg+" %v", args) }
