package course

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		SearchCourses(ctx context.Context, q core.Query) ([]Course, core.ListEnvelope, error)
		GetCourse(ctx context.Context, id, userID int) (Course, error)
		Enroll(ctx context.Context, courseID, userID int) error
		Disroll(ctx context.Context, courseID, userID int) error
		SaveEnrollmentData(ctx context.Context, e Enrollment) error
		SaveContentProgress(ctx context.Context, p ContentProgress) error
		SaveNote(ctx context.Context, n Note) (Note, error)
		DeleteNote(ctx context.Context, noteID int) error
		QueryNotes(ctx context.Context, courseID, userID int) ([]Note, error)
		SubmitQuiz(ctx context.Context, sub QuizSubmission) (QuizResult, error)
		ClearQuizResult(ctx context.Context, courseID, contentID, userID int) error
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

// Browse lists the public catalog one page at a time. The page is updated in
// place from the server's response.
func (svc *Service) Browse(ctx context.Context, filter Filter, page *core.Page) ([]Course, error) {
	q := buildCourseQuery(filter, *page)
	q.GetThisData.Include = []core.Include{
		{Datasource: "CourseContent", As: "courseContent"},
	}

	courses, env, err := svc.repo.SearchCourses(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "searching courses")
	}
	page.Apply(env)
	return courses, nil
}

// MyCourses lists the user's enrolled courses with their activity logs and
// attaches the derived progress percentage to each.
func (svc *Service) MyCourses(ctx context.Context, userID int, filter Filter, page *core.Page) ([]Course, error) {
	q := buildCourseQuery(filter, *page)
	q.GetThisData.Include = []core.Include{
		{Datasource: "Enrollment", As: "enrollments", Required: true, Where: core.Where{"userId": userID}},
		{Datasource: "UserCourseActivityLog", As: "activityLogs", Where: core.Where{"userId": userID}},
		{Datasource: "CourseContent", As: "courseContent", Order: [][2]string{{"courseContentSequence", "ASC"}}},
	}

	courses, env, err := svc.repo.SearchCourses(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "searching enrolled courses")
	}
	page.Apply(env)

	for i := range courses {
		courses[i].Progress = Progress(userID, courses[i])
	}
	return courses, nil
}

// Get fetches one course with its content and the user's derived progress.
func (svc *Service) Get(ctx context.Context, id, userID int) (Course, error) {
	c, err := svc.repo.GetCourse(ctx, id, userID)
	if err != nil {
		return Course{}, errors.Wrap(err, "getting course")
	}
	c.Progress = Progress(userID, c)
	return c, nil
}

// Enroll enrolls the user, then re-fetches the course so the caller sees the
// server's view of the new enrollment.
func (svc *Service) Enroll(ctx context.Context, courseID, userID int) (Course, error) {
	if err := svc.repo.Enroll(ctx, courseID, userID); err != nil {
		return Course{}, errors.Wrap(err, "enrolling")
	}
	return svc.Get(ctx, courseID, userID)
}

// Disroll removes the user's enrollment and re-fetches the course.
func (svc *Service) Disroll(ctx context.Context, courseID, userID int) (Course, error) {
	if err := svc.repo.Disroll(ctx, courseID, userID); err != nil {
		return Course{}, errors.Wrap(err, "disrolling")
	}
	return svc.Get(ctx, courseID, userID)
}

// SaveEnrollmentData updates enrollment metadata (status, note).
func (svc *Service) SaveEnrollmentData(ctx context.Context, e Enrollment) error {
	return errors.Wrap(svc.repo.SaveEnrollmentData(ctx, e), "saving enrollment data")
}

// SaveContentProgress upserts one progress record and returns the refreshed
// course.
func (svc *Service) SaveContentProgress(ctx context.Context, p ContentProgress) (Course, error) {
	if err := svc.validate.Struct(p); err != nil {
		return Course{}, err
	}
	if err := svc.repo.SaveContentProgress(ctx, p); err != nil {
		return Course{}, errors.Wrap(err, "saving content progress")
	}
	return svc.Get(ctx, p.CourseID, p.UserID)
}

// SaveNote validates and persists a note.
func (svc *Service) SaveNote(ctx context.Context, n Note) (Note, error) {
	n.Text = core.CleanString(n.Text)
	if err := svc.validate.Struct(n); err != nil {
		return Note{}, err
	}
	saved, err := svc.repo.SaveNote(ctx, n)
	return saved, errors.Wrap(err, "saving note")
}

func (svc *Service) DeleteNote(ctx context.Context, noteID int) error {
	return errors.Wrap(svc.repo.DeleteNote(ctx, noteID), "deleting note")
}

func (svc *Service) Notes(ctx context.Context, courseID, userID int) ([]Note, error) {
	notes, err := svc.repo.QueryNotes(ctx, courseID, userID)
	return notes, errors.Wrap(err, "querying notes")
}

// SubmitQuiz validates and submits quiz answers. The pass verdict is checked
// against the client-side rule as well so the UI never disagrees with itself
// when the backend omits it.
func (svc *Service) SubmitQuiz(ctx context.Context, sub QuizSubmission) (QuizResult, error) {
	if err := svc.validate.Struct(sub); err != nil {
		return QuizResult{}, err
	}
	res, err := svc.repo.SubmitQuiz(ctx, sub)
	if err != nil {
		return QuizResult{}, errors.Wrap(err, "submitting quiz")
	}
	res.Passed = IsQuizPassed(res.Score, res.Total)
	return res, nil
}

// ClearQuizResult resets a quiz attempt, then re-fetches the course.
func (svc *Service) ClearQuizResult(ctx context.Context, courseID, contentID, userID int) (Course, error) {
	if err := svc.repo.ClearQuizResult(ctx, courseID, contentID, userID); err != nil {
		return Course{}, errors.Wrap(err, "clearing quiz result")
	}
	return svc.Get(ctx, courseID, userID)
}

func buildCourseQuery(filter Filter, page core.Page) core.Query {
	q := core.NewQuery("Course", page)
	q.GetThisData.Attributes = []string{
		"courseId", "courseTitle", "courseDescription", "courseDuration", "courseCost", "courseLevel",
	}
	q.GetThisData.Where = core.SearchWhere(filter.Search, "courseTitle", "courseDescription")
	if filter.Level != "" {
		if q.GetThisData.Where == nil {
			q.GetThisData.Where = core.Where{}
		}
		q.GetThisData.Where["courseLevel"] = filter.Level
	}
	if filter.SortKey != "" {
		dir := filter.SortDir
		if dir == "" {
			dir = "ASC"
		}
		q.OrderBy(filter.SortKey, dir)
	}
	return q
}
