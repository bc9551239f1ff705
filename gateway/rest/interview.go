package rest

import (
	"context"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/interview"
)

type InterviewRepository struct {
	client *Client
}

var _ interview.Repository = (*InterviewRepository)(nil)

func NewInterviewRepository(client *Client) *InterviewRepository {
	return &InterviewRepository{client: client}
}

func (repo *InterviewRepository) ScheduleInterview(ctx context.Context, req interview.ScheduleRequest) (interview.Interview, error) {
	var iv interview.Interview
	err := repo.client.post(ctx, "scheduleInterview", "/mock-interview/schedule", req, &iv)
	return iv, err
}

func (repo *InterviewRepository) CancelInterview(ctx context.Context, interviewID int) error {
	body := map[string]int{"interviewId": interviewID}
	return repo.client.post(ctx, "cancelInterview", "/mock-interview/cancel", body, nil)
}

func (repo *InterviewRepository) QueryInterviews(ctx context.Context, userID int, page core.Page) ([]interview.Interview, core.ListEnvelope, error) {
	q := core.NewQuery("MockInterview", page)
	q.GetThisData.Where = core.Where{"userId": userID}
	q.OrderBy("scheduledAt", "DESC")

	var items []interview.Interview
	env, err := repo.client.search(ctx, "searchRecord", "/searchRecord", q, &items)
	return items, env, err
}

func (repo *InterviewRepository) QueryCounsellingHistory(ctx context.Context, userID int, page core.Page) ([]interview.CounsellingSession, core.ListEnvelope, error) {
	q := core.NewQuery("CounsellingSession", page)
	q.GetThisData.Where = core.Where{"userId": userID}
	q.OrderBy("heldAt", "DESC")

	var items []interview.CounsellingSession
	env, err := repo.client.search(ctx, "searchRecord", "/searchRecord", q, &items)
	return items, env, err
}
