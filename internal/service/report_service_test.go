package service

import (
	"context"
	"testing"
	"time"

	"candiqr/internal/dto"
	"candiqr/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedAttendance(repo *memAttendanceRepo, studentID uuid.UUID, day time.Time, status string) {
	checkIn := day.Add(7 * time.Hour)
	repo.records = append(repo.records, &model.Attendance{
		ID:        uuid.New(),
		StudentID: studentID,
		Date:      day,
		Type:      model.TypeSekolah,
		Status:    status,
		CheckIn:   &checkIn,
		Student:   &model.Student{ID: studentID, Name: "Siti Aminah", NIS: "2026002"},
	})
}

func TestAttendanceReport_RowsAndSummary(t *testing.T) {
	repo := &memAttendanceRepo{}
	studentID := uuid.New()
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	seedAttendance(repo, studentID, day, model.StatusHadir)
	seedAttendance(repo, studentID, day.AddDate(0, 0, 1), model.StatusTerlambat)
	seedAttendance(repo, studentID, day.AddDate(0, 0, 2), model.StatusSakit)

	svc := NewReportService(repo)
	resp, err := svc.AttendanceReport(context.Background(), dto.ReportFilter{})

	assert.NoError(t, err)
	assert.Len(t, resp.Rows, 3)
	assert.Equal(t, 1, resp.Summary.Hadir)
	assert.Equal(t, 1, resp.Summary.Terlambat)
	assert.Equal(t, 1, resp.Summary.Sakit)
	assert.Equal(t, 0, resp.Summary.Alpha)

	assert.Equal(t, "Siti Aminah", resp.Rows[0].StudentName)
	assert.Equal(t, "2026-01-05", resp.Rows[0].Date)
	assert.NotEmpty(t, resp.Rows[0].CheckIn)
}

func TestStudentSummary_CountsPerStatus(t *testing.T) {
	repo := &memAttendanceRepo{}
	studentID := uuid.New()
	other := uuid.New()
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	seedAttendance(repo, studentID, day, model.StatusHadir)
	seedAttendance(repo, studentID, day.AddDate(0, 0, 1), model.StatusHadir)
	seedAttendance(repo, studentID, day.AddDate(0, 0, 2), model.StatusIzin)
	seedAttendance(repo, other, day, model.StatusAlpha)

	svc := NewReportService(repo)
	sum, err := svc.StudentSummary(context.Background(), studentID)

	assert.NoError(t, err)
	assert.Equal(t, 2, sum.Hadir)
	assert.Equal(t, 1, sum.Izin)
	assert.Equal(t, 0, sum.Alpha, "other students' records must not leak in")
}
