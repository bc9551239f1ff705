package interview

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/credit"
)

var ErrSlotInPast = errors.New("interview slot must be in the future")

type (
	Repository interface {
		ScheduleInterview(ctx context.Context, req ScheduleRequest) (Interview, error)
		CancelInterview(ctx context.Context, interviewID int) error
		QueryInterviews(ctx context.Context, userID int, page core.Page) ([]Interview, core.ListEnvelope, error)
		QueryCounsellingHistory(ctx context.Context, userID int, page core.Page) ([]CounsellingSession, core.ListEnvelope, error)
	}

	Service struct {
		repo     Repository
		credits  *credit.Service
		conf     *core.Config
		validate *validator.Validate
		logger   core.Logger
	}
)

func NewService(repo Repository, credits *credit.Service, conf *core.Config, validate *validator.Validate, logger core.Logger) *Service {
	return &Service{repo: repo, credits: credits, conf: conf, validate: validate, logger: logger}
}

// Schedule books a mock interview. The slot is paid for through the credit
// ledger before the booking call; a failed booking refunds via top-up.
func (svc *Service) Schedule(ctx context.Context, req ScheduleRequest) (Interview, error) {
	req.Topic = core.CleanString(req.Topic)
	if err := svc.validate.Struct(req); err != nil {
		return Interview{}, err
	}
	if req.ScheduledAt.Before(time.Now()) {
		return Interview{}, ErrSlotInPast
	}

	cost := svc.conf.Credit.InterviewCost
	ok, err := svc.credits.CheckAndDeduct(ctx, cost, "mock interview: "+req.Topic)
	if err != nil {
		return Interview{}, errors.Wrap(err, "paying for interview")
	}
	if !ok {
		return Interview{}, credit.ErrInsufficientCredits
	}

	iv, err := svc.repo.ScheduleInterview(ctx, req)
	if err != nil {
		if _, refundErr := svc.credits.TopUp(ctx, cost, "refund: interview booking failed"); refundErr != nil {
			svc.logger.Error("refunding failed interview booking", refundErr)
		}
		return Interview{}, errors.Wrap(err, "scheduling interview")
	}
	return iv, nil
}

// Cancel cancels a scheduled interview and refunds its cost.
func (svc *Service) Cancel(ctx context.Context, iv Interview) error {
	if iv.Status != StatusScheduled {
		return errors.New("only scheduled interviews can be cancelled")
	}
	if err := svc.repo.CancelInterview(ctx, iv.ID); err != nil {
		return errors.Wrap(err, "cancelling interview")
	}
	if _, err := svc.credits.TopUp(ctx, svc.conf.Credit.InterviewCost, "refund: interview cancelled"); err != nil {
		return errors.Wrap(err, "refunding cancelled interview")
	}
	return nil
}

// List fetches the user's interviews, newest first.
func (svc *Service) List(ctx context.Context, userID int, page *core.Page) ([]Interview, error) {
	items, env, err := svc.repo.QueryInterviews(ctx, userID, *page)
	if err != nil {
		return nil, errors.Wrap(err, "querying interviews")
	}
	page.Apply(env)
	return items, nil
}

// CounsellingHistory fetches past counselling sessions.
func (svc *Service) CounsellingHistory(ctx context.Context, userID int, page *core.Page) ([]CounsellingSession, error) {
	items, env, err := svc.repo.QueryCounsellingHistory(ctx, userID, *page)
	if err != nil {
		return nil, errors.Wrap(err, "querying counselling history")
	}
	page.Apply(env)
	return items, nil
}
