package course

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/feedaq/academy-go/core"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// fakeRepo records calls and serves canned data.
type fakeRepo struct {
	courses map[int]Course
	queries []core.Query
	calls   []string
}

var _ Repository = (*fakeRepo)(nil)

func newFakeRepo(courses ...Course) *fakeRepo {
	repo := &fakeRepo{courses: make(map[int]Course, len(courses))}
	for _, c := range courses {
		repo.courses[c.ID] = c
	}
	return repo
}

func (r *fakeRepo) SearchCourses(_ context.Context, q core.Query) ([]Course, core.ListEnvelope, error) {
	r.calls = append(r.calls, "SearchCourses")
	r.queries = append(r.queries, q)
	results := make([]Course, 0, len(r.courses))
	for _, c := range r.courses {
		results = append(results, c)
	}
	env := core.ListEnvelope{TotalCount: len(results), Offset: q.Offset, Limit: q.Limit}
	return results, env, nil
}

func (r *fakeRepo) GetCourse(_ context.Context, id, userID int) (Course, error) {
	r.calls = append(r.calls, "GetCourse")
	c, ok := r.courses[id]
	if !ok {
		return Course{}, ErrNotFound
	}
	return c, nil
}

func (r *fakeRepo) Enroll(_ context.Context, courseID, userID int) error {
	r.calls = append(r.calls, "Enroll")
	c := r.courses[courseID]
	c.Enrollments = append(c.Enrollments, Enrollment{CourseID: courseID, UserID: userID, Status: StatusEnrolled})
	r.courses[courseID] = c
	return nil
}

func (r *fakeRepo) Disroll(_ context.Context, courseID, userID int) error {
	r.calls = append(r.calls, "Disroll")
	c := r.courses[courseID]
	kept := c.Enrollments[:0]
	for _, e := range c.Enrollments {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	c.Enrollments = kept
	r.courses[courseID] = c
	return nil
}

func (r *fakeRepo) SaveEnrollmentData(context.Context, Enrollment) error {
	r.calls = append(r.calls, "SaveEnrollmentData")
	return nil
}

func (r *fakeRepo) SaveContentProgress(_ context.Context, p ContentProgress) error {
	r.calls = append(r.calls, "SaveContentProgress")
	c := r.courses[p.CourseID]
	c.ActivityLogs = append(c.ActivityLogs, ActivityLog{
		CourseID:  p.CourseID,
		ContentID: p.ContentID,
		UserID:    p.UserID,
		Status:    p.Status,
	})
	r.courses[p.CourseID] = c
	return nil
}

func (r *fakeRepo) SaveNote(_ context.Context, n Note) (Note, error) {
	r.calls = append(r.calls, "SaveNote")
	n.ID = 1
	return n, nil
}

func (r *fakeRepo) DeleteNote(context.Context, int) error {
	r.calls = append(r.calls, "DeleteNote")
	return nil
}

func (r *fakeRepo) QueryNotes(context.Context, int, int) ([]Note, error) {
	r.calls = append(r.calls, "QueryNotes")
	return nil, nil
}

func (r *fakeRepo) SubmitQuiz(context.Context, QuizSubmission) (QuizResult, error) {
	r.calls = append(r.calls, "SubmitQuiz")
	return QuizResult{Score: 7, Total: 10, Percentage: 70}, nil
}

func (r *fakeRepo) ClearQuizResult(context.Context, int, int, int) error {
	r.calls = append(r.calls, "ClearQuizResult")
	return nil
}

func setup(t *testing.T, courses ...Course) (*Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo(courses...)
	return NewService(repo, validator.New(), nopLogger{}), repo
}

func TestService_MyCourses(t *testing.T) {
	const userID = 42
	c := Course{
		ID:      7,
		Title:   "Go from zero",
		Content: contentList(1, 2),
		Enrollments: []Enrollment{
			{CourseID: 7, UserID: userID, Status: StatusInProgress},
		},
		ActivityLogs: []ActivityLog{
			{CourseID: 7, ContentID: 1, UserID: userID, Status: StatusCompleted},
		},
	}
	svc, repo := setup(t, c)

	page := core.NewPage()
	got, err := svc.MyCourses(context.Background(), userID, Filter{}, &page)
	if err != nil {
		t.Fatalf("MyCourses() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("MyCourses() returned %d courses, want 1", len(got))
	}
	if got[0].Progress != 50 {
		t.Errorf("MyCourses() progress = %d, want 50", got[0].Progress)
	}
	if page.TotalCount != 1 {
		t.Errorf("MyCourses() page.TotalCount = %d, want 1", page.TotalCount)
	}

	// the query must require the user's enrollment and join the activity
	// logs and ordered content
	q := repo.queries[0]
	if q.GetThisData.Datasource != "Course" {
		t.Errorf("query datasource = %q, want Course", q.GetThisData.Datasource)
	}
	if len(q.GetThisData.Include) != 3 {
		t.Fatalf("query includes = %d, want 3", len(q.GetThisData.Include))
	}
	enr := q.GetThisData.Include[0]
	if enr.Datasource != "Enrollment" || !enr.Required || enr.Where["userId"] != userID {
		t.Errorf("enrollment include = %+v", enr)
	}
	content := q.GetThisData.Include[2]
	if len(content.Order) != 1 || content.Order[0] != [2]string{"courseContentSequence", "ASC"} {
		t.Errorf("content include order = %v", content.Order)
	}
}

func TestService_Browse_filters(t *testing.T) {
	svc, repo := setup(t)

	page := core.NewPage()
	_, err := svc.Browse(context.Background(), Filter{Search: "go", Level: "BEGINNER", SortKey: "courseTitle"}, &page)
	if err != nil {
		t.Fatalf("Browse() failed: %v", err)
	}

	q := repo.queries[0]
	if q.GetThisData.Where["courseLevel"] != "BEGINNER" {
		t.Errorf("level filter missing: %v", q.GetThisData.Where)
	}
	if _, ok := q.GetThisData.Where["$or"]; !ok {
		t.Errorf("search filter missing: %v", q.GetThisData.Where)
	}
	if len(q.GetThisData.Order) != 1 || q.GetThisData.Order[0] != [2]string{"courseTitle", "ASC"} {
		t.Errorf("order = %v, want courseTitle ASC", q.GetThisData.Order)
	}
	raw, _ := json.Marshal(q)
	if string(raw) == "" {
		t.Fatal("query did not marshal")
	}
}

func TestService_Get_scopesProgressToUser(t *testing.T) {
	const userID = 42
	// the repo hands back logs from several users; only the session user's
	// completions may count towards the derived percentage
	c := Course{
		ID:      7,
		Content: contentList(1, 2),
		ActivityLogs: []ActivityLog{
			{CourseID: 7, ContentID: 1, UserID: 999, Status: StatusCompleted},
			{CourseID: 7, ContentID: 2, UserID: 999, Status: StatusCompleted},
		},
	}
	svc, repo := setup(t, c)

	got, err := svc.Get(context.Background(), 7, userID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Progress != 0 {
		t.Errorf("Get() progress = %d, want 0 (all logs belong to user 999)", got.Progress)
	}

	c.ActivityLogs = append(c.ActivityLogs, ActivityLog{CourseID: 7, ContentID: 1, UserID: userID, Status: StatusCompleted})
	repo.courses[7] = c
	got, err = svc.Get(context.Background(), 7, userID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Progress != 50 {
		t.Errorf("Get() progress = %d, want 50", got.Progress)
	}
}

func TestService_Enroll_refetches(t *testing.T) {
	const userID = 42
	svc, repo := setup(t, Course{ID: 7, Content: contentList(1)})

	got, err := svc.Enroll(context.Background(), 7, userID)
	if err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	if got.EnrollmentStatus(userID) != StatusEnrolled {
		t.Errorf("Enroll() status = %q, want %q", got.EnrollmentStatus(userID), StatusEnrolled)
	}

	want := []string{"Enroll", "GetCourse"}
	if len(repo.calls) != 2 || repo.calls[0] != want[0] || repo.calls[1] != want[1] {
		t.Errorf("Enroll() calls = %v, want %v", repo.calls, want)
	}
}

func TestService_SaveContentProgress(t *testing.T) {
	const userID = 42
	svc, repo := setup(t, Course{ID: 7, Content: contentList(1, 2)})

	got, err := svc.SaveContentProgress(context.Background(), ContentProgress{
		UserID:    userID,
		CourseID:  7,
		ContentID: 1,
		Status:    StatusCompleted,
	})
	if err != nil {
		t.Fatalf("SaveContentProgress() failed: %v", err)
	}
	if got.Progress != 50 {
		t.Errorf("SaveContentProgress() refreshed progress = %d, want 50", got.Progress)
	}

	// invalid status must be rejected before any network call
	repo.calls = nil
	_, err = svc.SaveContentProgress(context.Background(), ContentProgress{
		UserID:    userID,
		CourseID:  7,
		ContentID: 1,
		Status:    "DONE",
	})
	if err == nil {
		t.Fatal("SaveContentProgress() accepted an invalid status")
	}
	if len(repo.calls) != 0 {
		t.Errorf("SaveContentProgress() hit the repo on invalid input: %v", repo.calls)
	}
}

func TestService_SubmitQuiz(t *testing.T) {
	svc, repo := setup(t)

	sub := QuizSubmission{
		UserID:    42,
		CourseID:  7,
		ContentID: 3,
		Answers:   []QuizAnswer{{QuestionID: 1, Answer: "B"}},
	}
	res, err := svc.SubmitQuiz(context.Background(), sub)
	if err != nil {
		t.Fatalf("SubmitQuiz() failed: %v", err)
	}
	if !res.Passed {
		t.Errorf("SubmitQuiz() passed = false, want true (score %d/%d)", res.Score, res.Total)
	}

	// no answers: rejected client-side
	repo.calls = nil
	if _, err = svc.SubmitQuiz(context.Background(), QuizSubmission{UserID: 42, CourseID: 7, ContentID: 3}); err == nil {
		t.Fatal("SubmitQuiz() accepted an empty submission")
	}
	if len(repo.calls) != 0 {
		t.Errorf("SubmitQuiz() hit the repo on invalid input: %v", repo.calls)
	}
}

func TestService_SaveNote(t *testing.T) {
	svc, _ := setup(t)

	saved, err := svc.SaveNote(context.Background(), Note{CourseID: 7, UserID: 42, Text: "  remember this  "})
	if err != nil {
		t.Fatalf("SaveNote() failed: %v", err)
	}
	if saved.Text != "remember this" {
		t.Errorf("SaveNote() text = %q, want cleaned", saved.Text)
	}

	if _, err = svc.SaveNote(context.Background(), Note{CourseID: 7, UserID: 42, Text: "   "}); err == nil {
		t.Fatal("SaveNote() accepted a blank note")
	}
}
