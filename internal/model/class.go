package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class is a homeroom group of students (e.g. "X IPA 1").
type Class struct {
	ID                uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Name              string     `gorm:"uniqueIndex;size:50;not null"`
	GradeLevel        int        `gorm:"not null"`
	HomeroomTeacherID *uuid.UUID `gorm:"type:char(36);index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	HomeroomTeacher *Teacher `gorm:"foreignKey:HomeroomTeacherID"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
