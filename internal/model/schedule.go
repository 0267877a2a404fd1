package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule links a class, subject and teacher to a weekly time window.
// DayOfWeek: 1=Monday … 7=Sunday. StartTime/EndTime are "HH:MM".
type Schedule struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	ClassID   uuid.UUID `gorm:"type:char(36);index;not null"`
	SubjectID uuid.UUID `gorm:"type:char(36);index;not null"`
	TeacherID uuid.UUID `gorm:"type:char(36);index;not null"`
	DayOfWeek int       `gorm:"not null"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Class   *Class   `gorm:"foreignKey:ClassID"`
	Subject *Subject `gorm:"foreignKey:SubjectID"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
