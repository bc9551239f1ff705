package rest

import (
	"context"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/course"
)

type CourseRepository struct {
	client *Client
}

var _ course.Repository = (*CourseRepository)(nil)

func NewCourseRepository(client *Client) *CourseRepository {
	return &CourseRepository{client: client}
}

func (repo *CourseRepository) SearchCourses(ctx context.Context, q core.Query) ([]course.Course, core.ListEnvelope, error) {
	var courses []course.Course
	env, err := repo.client.search(ctx, "searchCourse", "/searchCourse", q, &courses)
	return courses, env, err
}

// GetCourse fetches one course with its content, logs and enrollments through
// the same search endpoint (there is no dedicated detail endpoint). The
// activity-log join is scoped to the user; the backend filters only what the
// query asks for.
func (repo *CourseRepository) GetCourse(ctx context.Context, id, userID int) (course.Course, error) {
	q := core.Query{
		Limit: 1,
		GetThisData: core.Spec{
			Datasource: "Course",
			Where:      core.Where{"courseId": id},
			Include: []core.Include{
				{Datasource: "CourseContent", As: "courseContent", Order: [][2]string{{"courseContentSequence", "ASC"}}},
				{Datasource: "UserCourseActivityLog", As: "activityLogs", Where: core.Where{"userId": userID}},
				{Datasource: "Enrollment", As: "enrollments"},
			},
		},
	}

	var courses []course.Course
	if _, err := repo.client.search(ctx, "searchCourse", "/searchCourse", q, &courses); err != nil {
		return course.Course{}, err
	}
	if len(courses) == 0 {
		return course.Course{}, course.ErrNotFound
	}
	return courses[0], nil
}

func (repo *CourseRepository) Enroll(ctx context.Context, courseID, userID int) error {
	body := map[string]int{"courseId": courseID, "userId": userID}
	return repo.client.post(ctx, "enroll", "/enroll", body, nil)
}

func (repo *CourseRepository) Disroll(ctx context.Context, courseID, userID int) error {
	body := map[string]int{"courseId": courseID, "userId": userID}
	return repo.client.post(ctx, "disroll", "/disroll", body, nil)
}

func (repo *CourseRepository) SaveEnrollmentData(ctx context.Context, e course.Enrollment) error {
	return repo.client.post(ctx, "saveUserEnrollmentData", "/saveUserEnrollmentData", e, nil)
}

func (repo *CourseRepository) SaveContentProgress(ctx context.Context, p course.ContentProgress) error {
	return repo.client.post(ctx, "saveUserCourseContentProgress", "/user-progress/saveUserCourseContentProgress", p, nil)
}

func (repo *CourseRepository) SaveNote(ctx context.Context, n course.Note) (course.Note, error) {
	var saved course.Note
	err := repo.client.post(ctx, "saveNote", "/saveNote", n, &saved)
	return saved, err
}

func (repo *CourseRepository) DeleteNote(ctx context.Context, noteID int) error {
	body := map[string]int{"noteId": noteID}
	return repo.client.post(ctx, "deleteNote", "/deleteNote", body, nil)
}

func (repo *CourseRepository) QueryNotes(ctx context.Context, courseID, userID int) ([]course.Note, error) {
	q := core.Query{
		Limit: core.DefaultPageSize,
		GetThisData: core.Spec{
			Datasource: "Notes",
			Where:      core.Where{"courseId": courseID, "userId": userID},
			Order:      [][2]string{{"created_at", "DESC"}},
		},
	}
	var notes []course.Note
	_, err := repo.client.search(ctx, "searchRecord", "/searchRecord", q, &notes)
	return notes, err
}

func (repo *CourseRepository) SubmitQuiz(ctx context.Context, sub course.QuizSubmission) (course.QuizResult, error) {
	var res course.QuizResult
	err := repo.client.post(ctx, "submitQuiz", "/submitQuiz", sub, &res)
	return res, err
}

func (repo *CourseRepository) ClearQuizResult(ctx context.Context, courseID, contentID, userID int) error {
	body := map[string]int{"courseId": courseID, "courseContentId": contentID, "userId": userID}
	return repo.client.post(ctx, "clearQuizResult", "/clearQuizResult", body, nil)
}
