package room

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Member roles
const (
	RoleOwner  = "OWNER"
	RoleMember = "MEMBER"
)

// Invite statuses
const (
	InvitePending  = "PENDING"
	InviteAccepted = "ACCEPTED"
	InviteDeclined = "DECLINED"
	InviteExpired  = "EXPIRED"
)

type (
	// Room is a collaborative space scoped to one course.
	Room struct {
		ID       int      `json:"courseRoomId"`
		CourseID int      `json:"courseId"`
		Name     string   `json:"roomName"`
		Members  []Member `json:"members"`
	}

	Member struct {
		UserID   int       `json:"userId"`
		Email    string    `json:"email"`
		Role     string    `json:"role"`
		JoinedAt null.Time `json:"joinedAt"`
	}

	Invite struct {
		ID        int       `json:"inviteId"`
		RoomID    int       `json:"courseRoomId"`
		Email     string    `json:"email"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)
