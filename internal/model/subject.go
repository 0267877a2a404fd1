package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject is a taught lesson; the wire names (nama_pelajaran, kode_pelajaran)
// are fixed by the client contract.
type Subject struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey"`
	NamaPelajaran string    `gorm:"column:nama_pelajaran;index;size:100;not null"`
	KodePelajaran string    `gorm:"column:kode_pelajaran;uniqueIndex;size:20;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
