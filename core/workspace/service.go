package workspace

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

var ErrNoCurrentOrg = errors.New("no active organization selected")

type (
	Repository interface {
		SearchRecords(ctx context.Context, q core.Query, results interface{}) (core.ListEnvelope, error)
		SaveTeam(ctx context.Context, t Team) (Team, error)
		SaveTag(ctx context.Context, t Tag) (Tag, error)
		SavePortal(ctx context.Context, p Portal) (Portal, error)
		SaveStatusFlow(ctx context.Context, f StatusFlow) (StatusFlow, error)
	}

	// OrgStore exposes the persisted active organization (storage/state).
	OrgStore interface {
		CurrentOrg() (string, error)
		SetCurrentOrg(orgID string) error
	}

	Service struct {
		repo     Repository
		orgs     OrgStore
		validate *validator.Validate
		logger   core.Logger
	}
)

func NewService(repo Repository, orgs OrgStore, validate *validator.Validate, logger core.Logger) *Service {
	return &Service{repo: repo, orgs: orgs, validate: validate, logger: logger}
}

// SwitchOrg changes the active organization for all workspace queries.
func (svc *Service) SwitchOrg(orgID string) error {
	orgID = core.CleanString(orgID)
	if orgID == "" {
		return ErrNoCurrentOrg
	}
	return errors.Wrap(svc.orgs.SetCurrentOrg(orgID), "persisting current org")
}

func (svc *Service) ActiveOrg() (string, error) {
	org, err := svc.orgs.CurrentOrg()
	if err != nil {
		return "", errors.Wrap(err, "loading current org")
	}
	if org == "" {
		return "", ErrNoCurrentOrg
	}
	return org, nil
}

// Teams lists the active org's teams via the generic record search.
func (svc *Service) Teams(ctx context.Context, page *core.Page) ([]Team, error) {
	var teams []Team
	if err := svc.list(ctx, "Team", page, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (svc *Service) Tags(ctx context.Context, page *core.Page) ([]Tag, error) {
	var tags []Tag
	if err := svc.list(ctx, "Tags", page, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (svc *Service) Portals(ctx context.Context, page *core.Page) ([]Portal, error) {
	var portals []Portal
	if err := svc.list(ctx, "Portal", page, &portals); err != nil {
		return nil, err
	}
	return portals, nil
}

func (svc *Service) StatusFlows(ctx context.Context, page *core.Page) ([]StatusFlow, error) {
	var flows []StatusFlow
	if err := svc.list(ctx, "StatusFlow", page, &flows); err != nil {
		return nil, err
	}
	return flows, nil
}

func (svc *Service) list(ctx context.Context, datasource string, page *core.Page, results interface{}) error {
	org, err := svc.ActiveOrg()
	if err != nil {
		return err
	}

	q := core.NewQuery(datasource, *page)
	q.GetThisData.Where = core.Where{"orgId": org}
	q.OrderBy("created_at", "DESC")

	env, err := svc.repo.SearchRecords(ctx, q, results)
	if err != nil {
		return errors.Wrapf(err, "searching %s records", datasource)
	}
	page.Apply(env)
	return nil
}

// SaveTeam upserts a team in the active org.
func (svc *Service) SaveTeam(ctx context.Context, t Team) (Team, error) {
	if err := svc.scope(&t.OrgID); err != nil {
		return Team{}, err
	}
	t.Name = core.CleanString(t.Name)
	if err := svc.validate.Struct(t); err != nil {
		return Team{}, err
	}
	saved, err := svc.repo.SaveTeam(ctx, t)
	return saved, errors.Wrap(err, "saving team")
}

func (svc *Service) SaveTag(ctx context.Context, t Tag) (Tag, error) {
	if err := svc.scope(&t.OrgID); err != nil {
		return Tag{}, err
	}
	t.Name = core.CleanString(t.Name)
	if err := svc.validate.Struct(t); err != nil {
		return Tag{}, err
	}
	saved, err := svc.repo.SaveTag(ctx, t)
	return saved, errors.Wrap(err, "saving tag")
}

func (svc *Service) SavePortal(ctx context.Context, p Portal) (Portal, error) {
	if err := svc.scope(&p.OrgID); err != nil {
		return Portal{}, err
	}
	p.Name = core.CleanString(p.Name)
	if err := svc.validate.Struct(p); err != nil {
		return Portal{}, err
	}
	saved, err := svc.repo.SavePortal(ctx, p)
	return saved, errors.Wrap(err, "saving portal")
}

func (svc *Service) SaveStatusFlow(ctx context.Context, f StatusFlow) (StatusFlow, error) {
	if err := svc.scope(&f.OrgID); err != nil {
		return StatusFlow{}, err
	}
	f.Name = core.CleanString(f.Name)
	if err := svc.validate.Struct(f); err != nil {
		return StatusFlow{}, err
	}
	saved, err := svc.repo.SaveStatusFlow(ctx, f)
	return saved, errors.Wrap(err, "saving status flow")
}

// scope fills in the active org when the payload does not name one.
func (svc *Service) scope(orgID *string) error {
	if *orgID != "" {
		return nil
	}
	org, err := svc.ActiveOrg()
	if err != nil {
		return err
	}
	*orgID = org
	return nil
}
