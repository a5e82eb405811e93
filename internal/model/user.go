package model

import (
	"fmt"
	"strings"
	"time"
)

// Role is the account category assigned at registration.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleHR      Role = "HR"
)

var roles = []Role{RoleAdmin, RoleStudent, RoleFaculty, RoleHR}

// ParseRole matches case-insensitively, so both the canonical "STUDENT" and
// the display form "Student" resolve to the same role.
func ParseRole(s string) (Role, error) {
	for _, r := range roles {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("Invalid role: %s", s)
}

// Status is the approval state of an account.
// PENDING accounts are waiting for admin review; REJECTED is terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusRejected Status = "REJECTED"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     *string   `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"password_hash"`
	Mobile       *string   `db:"mobile" json:"mobile"`
	Role         Role      `db:"role" json:"role"`
	Status       Status    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
