package studygroup

import (
	"math"
	"time"
)

// Member roles
const (
	RoleOwner  = "OWNER"
	RoleMember = "MEMBER"
)

type (
	StudyGroup struct {
		ID          int       `json:"studyGroupId"`
		Name        string    `json:"studyGroupName"`
		Description string    `json:"studyGroupDescription"`
		OwnedBy     int       `json:"ownedBy"`
		Members     []Member  `json:"members"`
		Content     []Content `json:"content"`
		CreatedAt   time.Time `json:"created_at"`
	}

	Member struct {
		UserID   int    `json:"userId"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Progress int    `json:"progress"` // percent over the group's content
	}

	// Content is a course-content reference shared with the group.
	Content struct {
		ID        int    `json:"studyGroupContentId"`
		CourseID  int    `json:"courseId"`
		ContentID int    `json:"courseContentId"`
		Title     string `json:"title"`
	}

	// NewGroup is the create/update payload.
	NewGroup struct {
		ID          int    `json:"studyGroupId,omitempty"`
		Name        string `json:"studyGroupName" validate:"required,handle"`
		Description string `json:"studyGroupDescription"`
	}
)

// IsOwner derives group ownership for the session user from the ownedBy field
// and the member roles. This mirrors how the group views decide which controls
// to show; the backend stays the authority on every mutation.
func IsOwner(g StudyGroup, userID int) bool {
	if g.OwnedBy == userID {
		return true
	}
	return RoleOf(g, userID) == RoleOwner
}

// RoleOf reports the user's role in the group, or "" for non-members.
func RoleOf(g StudyGroup, userID int) string {
	if g.OwnedBy == userID {
		return RoleOwner
	}
	for _, m := range g.Members {
		if m.UserID == userID {
			return m.Role
		}
	}
	return ""
}

// Analytics aggregates group figures from an already-fetched group.
type Analytics struct {
	MemberCount  int `json:"memberCount"`
	ContentCount int `json:"contentCount"`
	AvgProgress  int `json:"avgProgress"`
}

func ComputeAnalytics(g StudyGroup) Analytics {
	a := Analytics{MemberCount: len(g.Members), ContentCount: len(g.Content)}
	if a.MemberCount == 0 {
		return a
	}
	var sum int
	for _, m := range g.Members {
		sum += m.Progress
	}
	a.AvgProgress = int(math.Round(float64(sum) / float64(a.MemberCount)))
	return a
}
