package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParentGuardian is the role-specific profile linked 1:1 to a User.
// Children link back via Student.ParentID.
type ParentGuardian struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID    *uuid.UUID `gorm:"type:char(36);uniqueIndex"`
	Name      string     `gorm:"index;size:100;not null"`
	Phone     *string    `gorm:"size:30"`
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}

func (p *ParentGuardian) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
