package workspace

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Org-scoped CRM-style settings: teams, tags, portals and status flows. Every
// record carries the active organization id; the current org comes from the
// local state store (OrgStore).

type (
	Team struct {
		ID          int       `json:"teamId,omitempty"`
		OrgID       string    `json:"orgId" validate:"required"`
		Name        string    `json:"teamName" validate:"required,handle"`
		Description string    `json:"teamDescription"`
		MemberIDs   []int     `json:"memberIds"`
		CreatedAt   time.Time `json:"created_at"`
	}

	Tag struct {
		ID    int    `json:"tagId,omitempty"`
		OrgID string `json:"orgId" validate:"required"`
		Name  string `json:"tagName" validate:"required,handle"`
		Color string `json:"tagColor" validate:"omitempty,hexcolor"`
	}

	Portal struct {
		ID     int         `json:"portalId,omitempty"`
		OrgID  string      `json:"orgId" validate:"required"`
		Name   string      `json:"portalName" validate:"required,handle"`
		Kind   string      `json:"portalType" validate:"required,oneof=STUDENT TEACHER ADMIN"`
		URL    null.String `json:"portalUrl"`
		Active bool        `json:"isActive"`
	}

	// StatusFlow is an ordered set of statuses records move through.
	StatusFlow struct {
		ID       int      `json:"statusFlowId,omitempty"`
		OrgID    string   `json:"orgId" validate:"required"`
		Name     string   `json:"statusFlowName" validate:"required,handle"`
		Statuses []Status `json:"statuses" validate:"required,min=1,dive"`
	}

	Status struct {
		Label string `json:"label" validate:"required"`
		Seq   int    `json:"seq" validate:"gte=0"`
		Final bool   `json:"isFinal"`
	}
)
