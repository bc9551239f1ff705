package room

import (
	"context"

	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

type (
	Repository interface {
		GetRoom(ctx context.Context, roomID int) (Room, error)
		QueryMembers(ctx context.Context, roomID int) ([]Member, error)
		InviteMembers(ctx context.Context, roomID int, emails []string) error
		AcceptInvite(ctx context.Context, inviteID int) error
		DeclineInvite(ctx context.Context, inviteID int) error
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) Get(ctx context.Context, roomID int) (Room, error) {
	r, err := svc.repo.GetRoom(ctx, roomID)
	return r, errors.Wrap(err, "getting course room")
}

func (svc *Service) Members(ctx context.Context, roomID int) ([]Member, error) {
	members, err := svc.repo.QueryMembers(ctx, roomID)
	return members, errors.Wrap(err, "querying room members")
}

// InviteMembers parses a free-form recipient string and sends one batch invite
// for all valid addresses. When nothing parses, no call is made and
// core.ErrNoValidEmails is returned. On success the member list is re-fetched.
func (svc *Service) InviteMembers(ctx context.Context, roomID int, rawEmails string) ([]Member, error) {
	emails := core.ParseEmailAddresses(rawEmails)
	if len(emails) == 0 {
		return nil, core.ErrNoValidEmails
	}

	if err := svc.repo.InviteMembers(ctx, roomID, emails); err != nil {
		return nil, errors.Wrap(err, "inviting members")
	}
	return svc.Members(ctx, roomID)
}

// RespondToInvite accepts or declines a pending room invite.
func (svc *Service) RespondToInvite(ctx context.Context, inviteID int, accept bool) error {
	if accept {
		return errors.Wrap(svc.repo.AcceptInvite(ctx, inviteID), "accepting invite")
	}
	return errors.Wrap(svc.repo.DeclineInvite(ctx, inviteID), "declining invite")
}
