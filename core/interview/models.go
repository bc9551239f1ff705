package interview

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Interview statuses
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

type (
	// Interview is one scheduled mock-interview slot.
	Interview struct {
		ID          int         `json:"interviewId"`
		UserID      int         `json:"userId"`
		Topic       string      `json:"topic"`
		ScheduledAt time.Time   `json:"scheduledAt"`
		Status      string      `json:"status"`
		Feedback    null.String `json:"feedback"`
		Score       null.Int    `json:"score"`
	}

	// ScheduleRequest books a slot; the credit cost comes from config.
	ScheduleRequest struct {
		UserID      int       `json:"userId" validate:"required"`
		Topic       string    `json:"topic" validate:"required"`
		ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	}

	// CounsellingSession is one entry of the counselling history.
	CounsellingSession struct {
		ID             int         `json:"counsellingId"`
		UserID         int         `json:"userId"`
		CounsellorName string      `json:"counsellorName"`
		HeldAt         time.Time   `json:"heldAt"`
		Summary        null.String `json:"summary"`
	}
)
