package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Teacher is the role-specific profile linked 1:1 to a User.
// NIP is the employee number.
type Teacher struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID    *uuid.UUID `gorm:"type:char(36);uniqueIndex"`
	NIP       string     `gorm:"uniqueIndex;size:30;not null"`
	Name      string     `gorm:"index;size:100;not null"`
	SubjectID *uuid.UUID `gorm:"type:char(36);index"`
	Phone     *string    `gorm:"size:30"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User    *User    `gorm:"foreignKey:UserID"`
	Subject *Subject `gorm:"foreignKey:SubjectID"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
