package course

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Content types
const (
	ContentTopic   = "CourseTopic"
	ContentVideo   = "CourseVideoTutorial"
	ContentWritten = "CourseWritten"
	ContentQuiz    = "CourseQuiz"
)

// Enrollment statuses
const (
	StatusPending    = "PENDING"
	StatusEnrolled   = "ENROLLED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

type (
	Course struct {
		ID           int             `json:"courseId"`
		Title        string          `json:"courseTitle"`
		Description  string          `json:"courseDescription"`
		Duration     int             `json:"courseDuration"` // minutes
		Cost         null.Int        `json:"courseCost"`
		Level        string          `json:"courseLevel"`
		Content      []CourseContent `json:"courseContent"`
		ActivityLogs []ActivityLog   `json:"activityLogs"`
		Enrollments  []Enrollment    `json:"enrollments"`

		// Progress is derived client-side; the backend never sends it.
		Progress int `json:"progress"`
	}

	CourseContent struct {
		ID       int    `json:"courseContentId"`
		CourseID int    `json:"courseId"`
		Title    string `json:"courseContentTitle"`
		Type     string `json:"courseContentType"`
		Seq      int    `json:"courseContentSequence"`
		Duration int    `json:"courseContentDuration"`
	}

	Enrollment struct {
		ID       int         `json:"enrollmentId"`
		CourseID int         `json:"courseId"`
		UserID   int         `json:"userId"`
		Status   string      `json:"enrollmentStatus"`
		Date     null.Time   `json:"enrollmentDate"`
		Note     null.String `json:"enrollmentNote"`
	}

	// ActivityLog is one content-progress record.
	ActivityLog struct {
		ID        int    `json:"activityLogId"`
		CourseID  int    `json:"courseId"`
		ContentID int    `json:"courseContentId"`
		UserID    int    `json:"userId"`
		Status    string `json:"progressStatus"`
	}

	// ContentProgress is upserted when the user advances through content.
	ContentProgress struct {
		UserID    int    `json:"userId" validate:"required"`
		CourseID  int    `json:"courseId" validate:"required"`
		ContentID int    `json:"courseContentId" validate:"required"`
		Status    string `json:"progressStatus" validate:"required,oneof=IN_PROGRESS COMPLETED"`
		WatchTime int    `json:"watchTime" validate:"gte=0"` // seconds
	}

	Note struct {
		ID        int       `json:"noteId"`
		CourseID  int       `json:"courseId" validate:"required"`
		ContentID int       `json:"courseContentId"`
		UserID    int       `json:"userId" validate:"required"`
		Text      string    `json:"noteText" validate:"required"`
		CreatedAt time.Time `json:"created_at"`
	}

	QuizSubmission struct {
		UserID    int          `json:"userId" validate:"required"`
		CourseID  int          `json:"courseId" validate:"required"`
		ContentID int          `json:"courseContentId" validate:"required"`
		Answers   []QuizAnswer `json:"answers" validate:"required,min=1,dive"`
	}

	QuizAnswer struct {
		QuestionID int    `json:"questionId" validate:"required"`
		Answer     string `json:"answer"`
	}

	QuizResult struct {
		CourseID   int  `json:"courseId"`
		ContentID  int  `json:"courseContentId"`
		Score      int  `json:"score"`
		Total      int  `json:"total"`
		Percentage int  `json:"percentage"`
		Passed     bool `json:"passed"`
	}
)

// Filter narrows Browse / MyCourses lists.
type Filter struct {
	Search  string
	Level   string
	SortKey string // e.g. "courseTitle", "created_at"
	SortDir string // ASC | DESC
}

// EnrollmentStatus reports the session user's enrollment status for the
// course, or "" when not enrolled.
func (c Course) EnrollmentStatus(userID int) string {
	for _, e := range c.Enrollments {
		if e.UserID == userID {
			return e.Status
		}
	}
	return ""
}
