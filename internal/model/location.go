package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a registered geofence: geolocation scans must fall within
// RadiusM meters of an active location to be accepted.
type Location struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Latitude  float64   `gorm:"type:double;not null"`
	Longitude float64   `gorm:"type:double;not null"`
	RadiusM   float64   `gorm:"not null;default:100"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
