package interview

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/credit"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type fakeCreditRepo struct {
	balance     int
	deductCalls int
	topUpCalls  int
}

var _ credit.Repository = (*fakeCreditRepo)(nil)

func (r *fakeCreditRepo) GetBalance(_ context.Context, userID int) (credit.Balance, error) {
	return credit.Balance{UserID: userID, Credits: r.balance}, nil
}

func (r *fakeCreditRepo) Deduct(_ context.Context, txn credit.Transaction) (credit.Balance, error) {
	r.deductCalls++
	r.balance -= txn.Amount
	return credit.Balance{UserID: txn.UserID, Credits: r.balance}, nil
}

func (r *fakeCreditRepo) TopUp(_ context.Context, txn credit.Transaction) (credit.Balance, error) {
	r.topUpCalls++
	r.balance += txn.Amount
	return credit.Balance{UserID: txn.UserID, Credits: r.balance}, nil
}

type nopJournal struct{}

var _ credit.Journal = nopJournal{}

func (nopJournal) SaveTransaction(credit.Transaction) error           { return nil }
func (nopJournal) ResolveTransaction(string, string, time.Time) error { return nil }
func (nopJournal) QueryTransactions(int) ([]credit.Transaction, error) {
	return nil, nil
}

type fakeRepo struct {
	failSchedule bool
	scheduled    []ScheduleRequest
	cancelled    []int
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) ScheduleInterview(_ context.Context, req ScheduleRequest) (Interview, error) {
	if r.failSchedule {
		return Interview{}, errors.New("No slots available")
	}
	r.scheduled = append(r.scheduled, req)
	return Interview{ID: 1, UserID: req.UserID, Topic: req.Topic, ScheduledAt: req.ScheduledAt, Status: StatusScheduled}, nil
}

func (r *fakeRepo) CancelInterview(_ context.Context, interviewID int) error {
	r.cancelled = append(r.cancelled, interviewID)
	return nil
}

func (r *fakeRepo) QueryInterviews(_ context.Context, userID int, page core.Page) ([]Interview, core.ListEnvelope, error) {
	return nil, core.ListEnvelope{Offset: page.Offset, Limit: page.Limit}, nil
}

func (r *fakeRepo) QueryCounsellingHistory(_ context.Context, userID int, page core.Page) ([]CounsellingSession, core.ListEnvelope, error) {
	return nil, core.ListEnvelope{Offset: page.Offset, Limit: page.Limit}, nil
}

func setup(t *testing.T, balance int) (*Service, *fakeRepo, *fakeCreditRepo) {
	t.Helper()
	creditRepo := &fakeCreditRepo{balance: balance}
	credits := credit.NewService(creditRepo, nopJournal{}, nopLogger{})
	if _, err := credits.Refresh(context.Background(), 42); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	conf := &core.Config{}
	conf.Credit.InterviewCost = 50

	repo := &fakeRepo{}
	return NewService(repo, credits, conf, validator.New(), nopLogger{}), repo, creditRepo
}

func scheduleReq() ScheduleRequest {
	return ScheduleRequest{UserID: 42, Topic: "Go concurrency", ScheduledAt: time.Now().Add(24 * time.Hour)}
}

func TestService_Schedule(t *testing.T) {
	svc, repo, creditRepo := setup(t, 100)

	iv, err := svc.Schedule(context.Background(), scheduleReq())
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}
	if iv.Status != StatusScheduled {
		t.Errorf("Schedule() status = %q", iv.Status)
	}
	if creditRepo.balance != 50 {
		t.Errorf("balance after scheduling = %d, want 50", creditRepo.balance)
	}
	if len(repo.scheduled) != 1 {
		t.Errorf("schedule calls = %d, want 1", len(repo.scheduled))
	}
}

func TestService_Schedule_insufficientCredits(t *testing.T) {
	svc, repo, creditRepo := setup(t, 30)

	_, err := svc.Schedule(context.Background(), scheduleReq())
	if errors.Cause(err) != credit.ErrInsufficientCredits {
		t.Fatalf("Schedule() error = %v, want ErrInsufficientCredits", err)
	}
	if len(repo.scheduled) != 0 {
		t.Error("Schedule() booked despite insufficient credits")
	}
	if creditRepo.deductCalls != 0 {
		t.Errorf("deduct calls = %d, want 0", creditRepo.deductCalls)
	}
}

func TestService_Schedule_refundsOnBookingFailure(t *testing.T) {
	svc, repo, creditRepo := setup(t, 100)
	repo.failSchedule = true

	_, err := svc.Schedule(context.Background(), scheduleReq())
	if err == nil {
		t.Fatal("Schedule() succeeded against a failing backend")
	}
	if creditRepo.balance != 100 {
		t.Errorf("balance after failed booking = %d, want 100 refunded", creditRepo.balance)
	}
	if creditRepo.topUpCalls != 1 {
		t.Errorf("top-up calls = %d, want 1 refund", creditRepo.topUpCalls)
	}
}

func TestService_Schedule_slotInPast(t *testing.T) {
	svc, repo, _ := setup(t, 100)

	req := scheduleReq()
	req.ScheduledAt = time.Now().Add(-time.Hour)
	if _, err := svc.Schedule(context.Background(), req); err != ErrSlotInPast {
		t.Fatalf("Schedule() error = %v, want ErrSlotInPast", err)
	}
	if len(repo.scheduled) != 0 {
		t.Error("Schedule() booked a past slot")
	}
}

func TestService_Cancel(t *testing.T) {
	svc, repo, creditRepo := setup(t, 100)

	iv, err := svc.Schedule(context.Background(), scheduleReq())
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}
	if err = svc.Cancel(context.Background(), iv); err != nil {
		t.Fatalf("Cancel() failed: %v", err)
	}
	if creditRepo.balance != 100 {
		t.Errorf("balance after cancel = %d, want 100 refunded", creditRepo.balance)
	}
	if len(repo.cancelled) != 1 || repo.cancelled[0] != iv.ID {
		t.Errorf("cancel calls = %v", repo.cancelled)
	}

	iv.Status = StatusCompleted
	if err = svc.Cancel(context.Background(), iv); err == nil {
		t.Fatal("Cancel() accepted a completed interview")
	}
}
