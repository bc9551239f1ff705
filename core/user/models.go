package user

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

// Roles
const (
	RoleAdmin   = "admin:"
	RoleTeacher = "teacher:"
	RoleStudent = "student:"
)

type User struct {
	ID        int         `json:"userId"`
	Name      string      `json:"nameInitial"`
	Email     string      `json:"email"`
	IsActive  bool        `json:"isActive"`
	Roles     []string    `json:"roles"`
	OrgID     null.String `json:"orgId"`
	CreatedAt time.Time   `json:"created_at"` // UTC
	LastLogin time.Time   `json:"last_login"` // UTC
}

func (u *User) RoleStartsWith(prefix string) bool {
	for _, role := range u.Roles {
		if strings.HasPrefix(role, prefix) {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.RoleStartsWith(RoleAdmin)
}

func (u *User) IsTeacher() bool {
	return u.RoleStartsWith(RoleTeacher)
}

func (u *User) IsStudent() bool {
	return u.RoleStartsWith(RoleStudent)
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
