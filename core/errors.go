package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// DefaultErrorMessage is surfaced when the backend gives us nothing usable.
const DefaultErrorMessage = "Something went wrong. Please try again."

// APIError is a normalized backend failure: either a server-reported business
// failure (success=false / non-2xx status) or a transport failure (StatusCode 0).
// Message always holds a user-facing string resolved with the fixed precedence
// data.message -> data.error -> transport error -> DefaultErrorMessage.
type APIError struct {
	Op         string // e.g. "searchCourse", "enroll"
	StatusCode int    // 0 on transport failures
	Message    string
}

func (err APIError) Error() string {
	if err.StatusCode > 0 {
		return fmt.Sprintf("%s: [%d] %s", err.Op, err.StatusCode, err.Message)
	}
	return fmt.Sprintf("%s: %s", err.Op, err.Message)
}

// NewAPIError resolves the user-facing message from the response body fields
// and the transport error, in order of precedence.
func NewAPIError(op string, status int, message, errField string, transportErr error) *APIError {
	msg := message
	if msg == "" {
		msg = errField
	}
	if msg == "" && transportErr != nil {
		msg = transportErr.Error()
	}
	if msg == "" {
		msg = DefaultErrorMessage
	}
	return &APIError{Op: op, StatusCode: status, Message: msg}
}

// ErrorMessage extracts a user-facing message from any error returned by a
// service, unwrapping pkg/errors chains.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	switch cause := errors.Cause(err).(type) {
	case *APIError:
		return cause.Message
	case *ValidationError:
		if msg := cause.Error(); msg != "" {
			return msg
		}
		if len(cause.Fields) > 0 {
			return fmt.Sprintf("%s: %s", cause.Fields[0].Field, cause.Fields[0].Error)
		}
		return DefaultErrorMessage
	default:
		return err.Error()
	}
}
