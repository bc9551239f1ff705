package core

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParseEmailAddresses(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "whitespace only", raw: "  \n\t ", want: []string{}},
		{name: "single", raw: "a@test.test", want: []string{"a@test.test"}},
		{
			name: "mixed separators",
			raw:  "a@test.test, b@test.test; c@test.test\nd@test.test",
			want: []string{"a@test.test", "b@test.test", "c@test.test", "d@test.test"},
		},
		{
			name: "lowered and deduplicated",
			raw:  "A@Test.test, a@test.test",
			want: []string{"a@test.test"},
		},
		{
			name: "invalid entries dropped",
			raw:  "not-an-email, a@test.test, @nope",
			want: []string{"a@test.test"},
		},
		{name: "all invalid", raw: "nope, also nope", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEmailAddresses(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEmailAddresses() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewAPIErrorPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		errField     string
		transportErr error
		want         string
	}{
		{
			name:     "message wins over error field",
			message:  "Course not found",
			errField: "ENOENT",
			want:     "Course not found",
		},
		{
			name:         "error field wins over transport",
			errField:     "ENOENT",
			transportErr: errors.New("connection refused"),
			want:         "ENOENT",
		},
		{
			name:         "transport error",
			transportErr: errors.New("connection refused"),
			want:         "connection refused",
		},
		{name: "default fallback", want: DefaultErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError("op", 500, tt.message, tt.errField, tt.transportErr)
			if err.Message != tt.want {
				t.Errorf("NewAPIError() message = %q, want %q", err.Message, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	apiErr := NewAPIError("enroll", 403, "Not allowed", "", nil)
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "api error", err: apiErr, want: "Not allowed"},
		{name: "wrapped api error", err: errors.Wrap(apiErr, "enrolling"), want: "Not allowed"},
		{
			name: "validation error fields",
			err:  NewValidationError(nil, FieldError{Field: "email", Error: "invalid"}),
			want: "email: invalid",
		},
		{name: "plain error", err: errors.New("boom"), want: "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
