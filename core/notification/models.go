package notification

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Statuses (invite-carrying notifications share the invite lifecycle)
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusDeclined = "DECLINED"
	StatusExpired  = "EXPIRED"
)

// Kinds
const (
	KindRoomInvite  = "COURSE_ROOM_INVITE"
	KindGroupInvite = "STUDY_GROUP_INVITE"
	KindCourse      = "COURSE_UPDATE"
	KindSystem      = "SYSTEM"
)

type Notification struct {
	ID         int       `json:"notificationId"`
	UserID     int       `json:"userId"`
	Kind       string    `json:"notificationType"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	InviteID   null.Int  `json:"inviteId"`
	IsRead     bool      `json:"isRead"`
	IsArchived bool      `json:"isArchived"`
	ArchivedAt null.Time `json:"archivedAt"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsActionable reports whether the notification still expects a response.
func (n Notification) IsActionable() bool {
	return n.InviteID.Valid && n.Status == StatusPending && !n.IsArchived
}
