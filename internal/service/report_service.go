package service

import (
	"context"
	"time"

	"candiqr/internal/dto"
	"candiqr/internal/model"
	"candiqr/internal/repository"

	"github.com/google/uuid"
)

type ReportService interface {
	AttendanceReport(ctx context.Context, filter dto.ReportFilter) (*dto.AttendanceReportResponse, error)
	StudentSummary(ctx context.Context, studentID uuid.UUID) (*dto.ReportSummary, error)
}

type reportService struct {
	attendance repository.AttendanceRepository
}

func NewReportService(attendance repository.AttendanceRepository) ReportService {
	return &reportService{attendance: attendance}
}

func (s *reportService) AttendanceReport(ctx context.Context, filter dto.ReportFilter) (*dto.AttendanceReportResponse, error) {
	records, err := s.attendance.ListWithStudents(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.AttendanceReportResponse{Rows: make([]dto.ReportRow, 0, len(records))}
	for i := range records {
		a := &records[i]
		row := dto.ReportRow{
			StudentID: a.StudentID.String(),
			Date:      a.Date.Format("2006-01-02"),
			Type:      a.Type,
			Status:    a.Status,
		}
		if a.Student != nil {
			row.StudentName = a.Student.Name
			row.NIS = a.Student.NIS
		}
		if a.CheckIn != nil {
			row.CheckIn = a.CheckIn.Format(time.RFC3339)
		}
		if a.CheckOut != nil {
			row.CheckOut = a.CheckOut.Format(time.RFC3339)
		}
		resp.Rows = append(resp.Rows, row)
		bumpSummary(&resp.Summary, a.Status)
	}
	return resp, nil
}

func (s *reportService) StudentSummary(ctx context.Context, studentID uuid.UUID) (*dto.ReportSummary, error) {
	counts, err := s.attendance.CountByStatus(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &dto.ReportSummary{
		Hadir:     counts[model.StatusHadir],
		Terlambat: counts[model.StatusTerlambat],
		Alpha:     counts[model.StatusAlpha],
		Izin:      counts[model.StatusIzin],
		Sakit:     counts[model.StatusSakit],
	}, nil
}

func bumpSummary(sum *dto.ReportSummary, status string) {
	switch status {
	case model.StatusHadir:
		sum.Hadir++
	case model.StatusTerlambat:
		sum.Terlambat++
	case model.StatusAlpha:
		sum.Alpha++
	case model.StatusIzin:
		sum.Izin++
	case model.StatusSakit:
		sum.Sakit++
	}
}
