package studygroup

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

var (
	ErrNotFound  = errors.New("study group not found")
	ErrNotOwner  = errors.New("only the group owner can do this")
	ErrNotMember = errors.New("not a member of this group")
)

type (
	Repository interface {
		SearchGroups(ctx context.Context, q core.Query) ([]StudyGroup, core.ListEnvelope, error)
		GetGroup(ctx context.Context, id int) (StudyGroup, error)
		SaveGroup(ctx context.Context, g NewGroup) (StudyGroup, error)
		DeleteGroup(ctx context.Context, id int) error
		AddContent(ctx context.Context, groupID int, c Content) error
		RemoveContent(ctx context.Context, groupID, contentID int) error
		InviteMembers(ctx context.Context, groupID int, emails []string) error
		RemoveMember(ctx context.Context, groupID, userID int) error
		LeaveGroup(ctx context.Context, groupID int) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		logger   core.Logger
	}
)

func NewService(repo Repository, validate *validator.Validate, logger core.Logger) *Service {
	return &Service{repo: repo, validate: validate, logger: logger}
}

// MyGroups lists the groups the user owns or belongs to.
func (svc *Service) MyGroups(ctx context.Context, userID int, search string, page *core.Page) ([]StudyGroup, error) {
	q := core.NewQuery("StudyGroup", *page)
	q.GetThisData.Where = core.SearchWhere(search, "studyGroupName", "studyGroupDescription")
	q.GetThisData.Include = []core.Include{
		{Datasource: "StudyGroupMember", As: "members", Required: true, Where: core.Where{"userId": userID}},
		{Datasource: "StudyGroupContent", As: "content"},
	}
	q.OrderBy("created_at", "DESC")

	groups, env, err := svc.repo.SearchGroups(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "searching study groups")
	}
	page.Apply(env)
	return groups, nil
}

func (svc *Service) Get(ctx context.Context, id int) (StudyGroup, error) {
	g, err := svc.repo.GetGroup(ctx, id)
	return g, errors.Wrap(err, "getting study group")
}

// Save creates or updates a group and returns the server's view of it.
func (svc *Service) Save(ctx context.Context, g NewGroup) (StudyGroup, error) {
	g.Name = core.CleanString(g.Name)
	g.Description = core.CleanString(g.Description)
	if err := svc.validate.Struct(g); err != nil {
		return StudyGroup{}, err
	}
	saved, err := svc.repo.SaveGroup(ctx, g)
	return saved, errors.Wrap(err, "saving study group")
}

// Delete removes a group; only the owner may do so, checked client-side to
// avoid a doomed round-trip (the backend enforces it regardless).
func (svc *Service) Delete(ctx context.Context, g StudyGroup, userID int) error {
	if !IsOwner(g, userID) {
		return ErrNotOwner
	}
	return errors.Wrap(svc.repo.DeleteGroup(ctx, g.ID), "deleting study group")
}

// AddContent shares a course-content item with the group, then re-fetches it.
func (svc *Service) AddContent(ctx context.Context, groupID int, c Content) (StudyGroup, error) {
	if err := svc.repo.AddContent(ctx, groupID, c); err != nil {
		return StudyGroup{}, errors.Wrap(err, "adding group content")
	}
	return svc.Get(ctx, groupID)
}

func (svc *Service) RemoveContent(ctx context.Context, groupID, contentID int) (StudyGroup, error) {
	if err := svc.repo.RemoveContent(ctx, groupID, contentID); err != nil {
		return StudyGroup{}, errors.Wrap(err, "removing group content")
	}
	return svc.Get(ctx, groupID)
}

// InviteMembers parses and batch-invites, like room invites: no call on empty.
func (svc *Service) InviteMembers(ctx context.Context, groupID int, rawEmails string) (StudyGroup, error) {
	emails := core.ParseEmailAddresses(rawEmails)
	if len(emails) == 0 {
		return StudyGroup{}, core.ErrNoValidEmails
	}
	if err := svc.repo.InviteMembers(ctx, groupID, emails); err != nil {
		return StudyGroup{}, errors.Wrap(err, "inviting group members")
	}
	return svc.Get(ctx, groupID)
}

func (svc *Service) RemoveMember(ctx context.Context, g StudyGroup, ownerID, memberID int) (StudyGroup, error) {
	if !IsOwner(g, ownerID) {
		return StudyGroup{}, ErrNotOwner
	}
	if err := svc.repo.RemoveMember(ctx, g.ID, memberID); err != nil {
		return StudyGroup{}, errors.Wrap(err, "removing group member")
	}
	return svc.Get(ctx, g.ID)
}

// Leave removes the session user from a group they do not own.
func (svc *Service) Leave(ctx context.Context, g StudyGroup, userID int) error {
	if IsOwner(g, userID) {
		return errors.New("the owner cannot leave their own group")
	}
	if RoleOf(g, userID) == "" {
		return ErrNotMember
	}
	return errors.Wrap(svc.repo.LeaveGroup(ctx, g.ID), "leaving study group")
}
