// Package rest implements every core Repository against the FeedAQ Academy
// REST backend. It is the only place that talks HTTP: one resty client, one
// envelope decoder, one error normalization path.
package rest

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

// TokenSource provides the bearer token for authenticated calls; an empty
// token means the request goes out anonymous (login, public catalog).
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type Client struct {
	rc     *resty.Client
	logger core.Logger
}

func NewClient(conf *core.Config, logger core.Logger, tokens TokenSource) *Client {
	rc := resty.New().
		SetHostURL(conf.API.BaseURL).
		SetTimeout(conf.API.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", conf.AppName+"/"+conf.Build)

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.New().String())
		if tok := tokens.Token(); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})

	return &Client{rc: rc, logger: logger}
}

// envelope is the action-endpoint response body.
type envelope struct {
	Status  int             `json:"status"`
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// post sends one JSON POST and decodes the envelope's data into out (when
// non-nil). Every failure comes back as *core.APIError with the message
// resolved by the fixed precedence data.message -> data.error -> transport
// error -> default.
func (c *Client) post(ctx context.Context, op, path string, body, out interface{}) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return core.NewAPIError(op, 0, "", "", err)
	}

	var env envelope
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &env); err != nil && resp.IsSuccess() {
			return core.NewAPIError(op, resp.StatusCode(), "", "", errors.Wrap(err, "decoding response"))
		}
	}

	if !resp.IsSuccess() || (env.Success != nil && !*env.Success) {
		return core.NewAPIError(op, resp.StatusCode(), env.Message, env.Error, nil)
	}

	if out != nil && len(env.Data) > 0 {
		if err = json.Unmarshal(env.Data, out); err != nil {
			return core.NewAPIError(op, resp.StatusCode(), "", "", errors.Wrap(err, "decoding response data"))
		}
	}
	return nil
}

// get sends one GET through the same envelope handling.
func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	resp, err := c.rc.R().SetContext(ctx).Get(path)
	if err != nil {
		return core.NewAPIError(op, 0, "", "", err)
	}

	var env envelope
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &env); err != nil && resp.IsSuccess() {
			return core.NewAPIError(op, resp.StatusCode(), "", "", errors.Wrap(err, "decoding response"))
		}
	}

	if !resp.IsSuccess() || (env.Success != nil && !*env.Success) {
		return core.NewAPIError(op, resp.StatusCode(), env.Message, env.Error, nil)
	}

	if out != nil && len(env.Data) > 0 {
		if err = json.Unmarshal(env.Data, out); err != nil {
			return core.NewAPIError(op, resp.StatusCode(), "", "", errors.Wrap(err, "decoding response data"))
		}
	}
	return nil
}

func decodeResults(raw json.RawMessage, out interface{}) error {
	return errors.Wrap(json.Unmarshal(raw, out), "decoding results")
}

// search posts a query descriptor to a generic search endpoint and decodes the
// list envelope, leaving results typed by the caller.
func (c *Client) search(ctx context.Context, op, path string, q core.Query, results interface{}) (core.ListEnvelope, error) {
	var env core.ListEnvelope
	if err := c.post(ctx, op, path, q, &env); err != nil {
		return core.ListEnvelope{}, err
	}
	if results != nil && len(env.Results) > 0 {
		if err := json.Unmarshal(env.Results, results); err != nil {
			return core.ListEnvelope{}, core.NewAPIError(op, 0, "", "", errors.Wrap(err, "decoding results"))
		}
	}
	return env, nil
}
