package user

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

type (
	Repository interface {
		Login(ctx context.Context, creds Credentials) (token string, err error)
		GetMe(ctx context.Context) (User, error)
	}

	// SessionStore persists the session across runs (storage/state).
	SessionStore interface {
		SaveSession(s Session) error
		LoadSession() (Session, error)
		ClearSession() error
	}

	Service struct {
		repo     Repository
		store    SessionStore
		validate *validator.Validate
		logger   core.Logger

		mu      sync.RWMutex
		session Session
	}
)

func NewService(repo Repository, store SessionStore, validate *validator.Validate, logger core.Logger) *Service {
	return &Service{repo: repo, store: store, validate: validate, logger: logger}
}

// Login authenticates against the backend, decodes the session from the
// returned token and persists it.
func (svc *Service) Login(ctx context.Context, email, password string) (Session, error) {
	creds := Credentials{Email: core.CleanString(email, true /* lower */), Password: password}
	if err := svc.validate.Struct(creds); err != nil {
		return Session{}, err
	}

	token, err := svc.repo.Login(ctx, creds)
	if err != nil {
		return Session{}, errors.Wrap(err, "logging in")
	}

	session, err := NewSession(token)
	if err != nil {
		return Session{}, errors.Wrap(err, "decoding session token")
	}

	if err = svc.store.SaveSession(session); err != nil {
		return Session{}, errors.Wrap(err, "persisting session")
	}

	svc.setSession(session)
	return session, nil
}

// Restore loads the persisted session. An expired session is cleared and
// reported as ErrSessionExpired so callers can prompt for a fresh login.
func (svc *Service) Restore() (Session, error) {
	session, err := svc.store.LoadSession()
	if err != nil {
		return Session{}, errors.Wrap(err, "loading session")
	}
	if session.IsZero() {
		return Session{}, ErrSessionExpired
	}
	if session.Expired() {
		_ = svc.store.ClearSession()
		return Session{}, ErrSessionExpired
	}
	svc.setSession(session)
	return session, nil
}

func (svc *Service) Logout() error {
	svc.setSession(Session{})
	return errors.Wrap(svc.store.ClearSession(), "clearing session")
}

// Me fetches the logged-in user's profile.
func (svc *Service) Me(ctx context.Context) (User, error) {
	return svc.repo.GetMe(ctx)
}

// Session returns the in-memory session, if any.
func (svc *Service) Session() Session {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.session
}

// Token implements the rest gateway's token source.
func (svc *Service) Token() string {
	return svc.Session().Token
}

func (svc *Service) setSession(s Session) {
	svc.mu.Lock()
	svc.session = s
	svc.mu.Unlock()
}
