package notification

import (
	"context"

	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

type (
	Repository interface {
		QueryNotifications(ctx context.Context, userID int, includeArchived bool, page core.Page) ([]Notification, core.ListEnvelope, error)
		ArchiveNotifications(ctx context.Context, ids []int) error
		RespondToInvite(ctx context.Context, inviteID int, accept bool) error
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List fetches the user's notifications one page at a time.
func (svc *Service) List(ctx context.Context, userID int, includeArchived bool, page *core.Page) ([]Notification, error) {
	items, env, err := svc.repo.QueryNotifications(ctx, userID, includeArchived, *page)
	if err != nil {
		return nil, errors.Wrap(err, "querying notifications")
	}
	page.Apply(env)
	return items, nil
}

// UnreadCount is derived over an already-fetched list; no extra round-trip.
func UnreadCount(items []Notification) int {
	var n int
	for _, item := range items {
		if !item.IsRead && !item.IsArchived {
			n++
		}
	}
	return n
}

// Archive archives the given notifications in one batch call, then re-fetches
// the first page so the caller renders the server's view.
func (svc *Service) Archive(ctx context.Context, userID int, ids ...int) ([]Notification, error) {
	if len(ids) == 0 {
		return nil, errors.New("nothing to archive")
	}
	if err := svc.repo.ArchiveNotifications(ctx, ids); err != nil {
		return nil, errors.Wrap(err, "archiving notifications")
	}
	page := core.NewPage()
	return svc.List(ctx, userID, false, &page)
}

// Respond accepts or declines the invite behind an actionable notification.
func (svc *Service) Respond(ctx context.Context, n Notification, accept bool) error {
	if !n.IsActionable() {
		return errors.New("notification is not awaiting a response")
	}
	return errors.Wrap(svc.repo.RespondToInvite(ctx, int(n.InviteID.Int), accept), "responding to invite")
}
