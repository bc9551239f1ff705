package user

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var (
	ErrInvalidToken   = errors.New("invalid access token")
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// Claims mirrors the authorization claims the backend puts in its JWTs.
type Claims struct {
	jwt.StandardClaims
	Email     string   `json:"email,omitempty"`
	IsStudent bool     `json:"is_student,omitempty"`
	IsTeacher bool     `json:"is_teacher,omitempty"`
	IsAdmin   bool     `json:"is_admin,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// Session is the client-side view of an authenticated user, derived from the
// access token. The token is issued and signed by the backend; the client never
// holds the signing key, so claims are decoded without signature verification
// and the server remains the authority on every request.
type Session struct {
	Token     string
	UserID    int
	Email     string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NewSession decodes the claims of a backend-issued access token.
func NewSession(token string) (Session, error) {
	claims := new(Claims)
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Session{}, errors.Wrap(ErrInvalidToken, err.Error())
	}

	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return Session{}, errors.Wrap(ErrInvalidToken, "non-numeric subject")
	}

	s := Session{
		Token:  token,
		UserID: uid,
		Email:  claims.Email,
		Roles:  claims.Roles,
	}
	// absent unix claims stay the zero time, not the epoch, so the
	// Expired guard can tell "no expiry" apart from an expired token
	if claims.IssuedAt != 0 {
		s.IssuedAt = time.Unix(claims.IssuedAt, 0)
	}
	if claims.ExpiresAt != 0 {
		s.ExpiresAt = time.Unix(claims.ExpiresAt, 0)
	}
	return s, nil
}

func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

func (s Session) IsZero() bool {
	return s.Token == ""
}
