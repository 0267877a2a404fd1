package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is the role-specific profile linked 1:1 to a User.
// BarcodeID is the opaque string printed on the student credential and
// scanned for attendance.
type Student struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID    *uuid.UUID `gorm:"type:char(36);uniqueIndex"`
	NIS       string     `gorm:"uniqueIndex;size:30;not null"`
	BarcodeID string     `gorm:"uniqueIndex;size:64;not null"`
	Name      string     `gorm:"index;size:100;not null"`
	Gender    string     `gorm:"type:varchar(1)"` // L | P
	Address   *string
	ClassID   *uuid.UUID `gorm:"type:char(36);index"`
	ParentID  *uuid.UUID `gorm:"type:char(36);index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   *User           `gorm:"foreignKey:UserID"`
	Class  *Class          `gorm:"foreignKey:ClassID"`
	Parent *ParentGuardian `gorm:"foreignKey:ParentID"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
