package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles known to the system. A user holds exactly one.
const (
	RoleAdmin    = "admin"
	RoleTeacher  = "teacher"
	RoleStudent  = "student"
	RoleOperator = "operator"
	RoleParent   = "parent"
)

// User stores system identities with role-based access.
// Deactivating a user (Active=false) invalidates its tokens on the next
// request — the auth middleware re-checks this flag per call.
type User struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string    `gorm:"not null"`
	Email        *string   `gorm:"size:255"`
	Name         string    `gorm:"size:100;not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Phone        *string   `gorm:"size:30"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ValidRole reports whether r is one of the role enumeration values.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleOperator, RoleParent:
		return true
	}
	return false
}
