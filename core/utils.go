package core

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoValidEmails is returned by invite flows when the recipient input parses
// to nothing sendable; the message doubles as the toast text.
var ErrNoValidEmails = errors.New("No Valid Emails")

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ParseEmailAddresses splits a free-form recipient string (comma, semicolon or
// whitespace separated) into cleaned, valid, deduplicated email addresses.
// Invalid entries are dropped silently; an empty result means no sendable address.
func ParseEmailAddresses(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t'
	})

	seen := make(map[string]struct{}, len(fields))
	addrs := make([]string, 0, len(fields))
	for _, f := range fields {
		email := CleanString(f, true /* lower */)
		if email == "" {
			continue
		}
		if _, err := mail.ParseAddress(email); err != nil {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		addrs = append(addrs, email)
	}
	return addrs
}
