package repository

import (
	"context"
	"strings"
	"time"

	"candiqr/internal/dto"
	"candiqr/internal/model"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned by Create when the (student, date, type,
// schedule) unique index rejects the insert — i.e. a concurrent scan won
// the race. Callers map it to the duplicate-scan domain failure.
var ErrDuplicateKey = gorm.ErrDuplicatedKey

type AttendanceRepository interface {
	Create(ctx context.Context, a *model.Attendance) error
	FindForScan(ctx context.Context, studentID uuid.UUID, date time.Time, typ string, scheduleID uuid.UUID) (*model.Attendance, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Attendance, error)
	Update(ctx context.Context, a *model.Attendance) error
	ListWithStudents(ctx context.Context, filter dto.ReportFilter) ([]model.Attendance, error)
	CountByStatus(ctx context.Context, studentID uuid.UUID) (map[string]int, error)
}

type attendanceRepo struct{ db *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository { return &attendanceRepo{db: db} }

func (r *attendanceRepo) Create(ctx context.Context, a *model.Attendance) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return err
}

// isDuplicateKey recognizes the MySQL 1062 duplicate-entry error alongside
// GORM's translated sentinel.
func isDuplicateKey(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}

func (r *attendanceRepo) FindForScan(ctx context.Context, studentID uuid.UUID, date time.Time, typ string, scheduleID uuid.UUID) (*model.Attendance, error) {
	var a model.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND date = ? AND type = ? AND schedule_id = ?",
			studentID, date.Format("2006-01-02"), typ, scheduleID).
		First(&a).Error
	return &a, err
}

func (r *attendanceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Attendance, error) {
	var a model.Attendance
	err := r.db.WithContext(ctx).Preload("Student").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *attendanceRepo) Update(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *attendanceRepo) ListWithStudents(ctx context.Context, filter dto.ReportFilter) ([]model.Attendance, error) {
	var records []model.Attendance
	tx := r.db.WithContext(ctx).Preload("Student").
		Joins("JOIN students ON students.id = attendances.student_id")
	if filter.ClassID != nil {
		tx = tx.Where("students.class_id = ?", *filter.ClassID)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("attendances.date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("attendances.date <= ?", *filter.DateTo)
	}
	if filter.Status != nil {
		tx = tx.Where("attendances.status = ?", *filter.Status)
	}
	err := tx.Order("attendances.date DESC, students.name").Find(&records).Error
	return records, err
}

func (r *attendanceRepo) CountByStatus(ctx context.Context, studentID uuid.UUID) (map[string]int, error) {
	type row struct {
		Status string
		N      int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Select("status, COUNT(*) AS n").
		Where("student_id = ?", studentID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.N
	}
	return counts, nil
}
