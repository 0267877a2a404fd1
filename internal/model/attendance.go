package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance status enumeration.
const (
	StatusHadir     = "hadir"     // present, on time
	StatusTerlambat = "terlambat" // present, late
	StatusAlpha     = "alpha"     // absent without excuse
	StatusIzin      = "izin"      // excused
	StatusSakit     = "sakit"     // sick
)

// Attendance context: whole-school entry/exit or a specific class period.
const (
	TypeSekolah = "sekolah"
	TypeKelas   = "kelas"
)

// Attendance is one row per (student, date, context). Created by a scan;
// updated only to add a check-out or correct a status.
//
// ScheduleID stores uuid.Nil (not NULL) for school-level scans so the
// composite unique index holds for them too — MySQL unique indexes do not
// constrain NULL values, and the index is what makes two racing scans for
// the same student safe.
type Attendance struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	StudentID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_scan_once,priority:1"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_scan_once,priority:2"`
	Type       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_scan_once,priority:3"`
	ScheduleID uuid.UUID `gorm:"type:char(36);not null;default:'00000000-0000-0000-0000-000000000000';uniqueIndex:idx_scan_once,priority:4"`
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     string   `gorm:"type:varchar(10);not null"`
	Latitude   *float64 `gorm:"type:double"`
	Longitude  *float64 `gorm:"type:double"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Student *Student `gorm:"foreignKey:StudentID"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ValidStatus reports whether s is one of the status enumeration values.
func ValidStatus(s string) bool {
	switch s {
	case StatusHadir, StatusTerlambat, StatusAlpha, StatusIzin, StatusSakit:
		return true
	}
	return false
}
