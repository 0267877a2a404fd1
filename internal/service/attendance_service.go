package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"candiqr/internal/config"
	"candiqr/internal/dto"
	"candiqr/internal/model"
	"candiqr/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Domain failures of the scan flow. Handlers map each to a distinct
// structured response so the scanner UI can render a specific message.
var (
	ErrUnknownBarcode   = errors.New("barcode tidak terdaftar")
	ErrDuplicateScan    = errors.New("sudah absen masuk dan pulang hari ini")
	ErrOutsideGeofence  = errors.New("lokasi di luar area absensi")
	ErrScheduleInactive = errors.New("jadwal tidak aktif saat ini")
	ErrScheduleNotFound = errors.New("jadwal tidak ditemukan")
	ErrScheduleRequired = errors.New("jadwal_id wajib untuk absensi kelas")
	ErrRecordNotFound   = errors.New("data absensi tidak ditemukan")
)

type AttendanceService interface {
	Scan(ctx context.Context, req dto.ScanRequest) (*dto.ScanResponse, error)
	ScanYolo(ctx context.Context, req dto.YoloScanRequest) (*dto.ScanResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo      repository.AttendanceRepository
	students  repository.StudentRepository
	schedules repository.ScheduleRepository
	locations repository.LocationRepository
	cfg       *config.Config
	now       func() time.Time
}

func NewAttendanceService(
	repo repository.AttendanceRepository,
	students repository.StudentRepository,
	schedules repository.ScheduleRepository,
	locations repository.LocationRepository,
	cfg *config.Config,
) AttendanceService {
	return &attendanceService{
		repo:      repo,
		students:  students,
		schedules: schedules,
		locations: locations,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Scan advances the per-(student, day, context) attendance state machine:
// no record → check-in, check-in only → check-out, both → duplicate.
func (s *attendanceService) Scan(ctx context.Context, req dto.ScanRequest) (*dto.ScanResponse, error) {
	return s.scan(ctx, req.BarcodeID, req.AttendanceType, req.JadwalID, "", nil, nil)
}

// ScanYolo is the geolocation-aware variant: coordinates must fall inside a
// registered geofence before any write, and the scanner may request an
// excusable status code.
func (s *attendanceService) ScanYolo(ctx context.Context, req dto.YoloScanRequest) (*dto.ScanResponse, error) {
	inside, err := s.insideGeofence(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return nil, err
	}
	if !inside {
		return nil, ErrOutsideGeofence
	}
	return s.scan(ctx, req.BarcodeID, req.AttendanceType, req.JadwalID, req.StatusCode, req.Latitude, req.Longitude)
}

func (s *attendanceService) scan(ctx context.Context, barcodeID, typ, jadwalID, statusCode string, lat, lng *float64) (*dto.ScanResponse, error) {
	student, err := s.students.FindByBarcode(ctx, barcodeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownBarcode
		}
		return nil, err
	}

	now := s.now()
	scheduleID := uuid.Nil
	windowStart := s.cfg.SchoolStart

	if typ == model.TypeKelas {
		if jadwalID == "" {
			return nil, ErrScheduleRequired
		}
		sid, err := uuid.Parse(jadwalID)
		if err != nil {
			return nil, fmt.Errorf("jadwal_id tidak valid: %w", err)
		}
		schedule, err := s.schedules.FindByID(ctx, sid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScheduleNotFound
			}
			return nil, err
		}
		if !scheduleActive(schedule, now, s.cfg.LateGraceMinutes) {
			return nil, ErrScheduleInactive
		}
		scheduleID = schedule.ID
		windowStart = schedule.StartTime
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.repo.FindForScan(ctx, student.ID, today, typ, scheduleID)
	switch {
	case err == nil:
		// Record exists: second scan closes it, a third is a duplicate.
		if existing.CheckOut != nil {
			return nil, ErrDuplicateScan
		}
		existing.CheckOut = &now
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return s.response(existing, student), nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		record := &model.Attendance{
			StudentID:  student.ID,
			Date:       today,
			Type:       typ,
			ScheduleID: scheduleID,
			CheckIn:    &now,
			Status:     s.resolveStatus(statusCode, windowStart, now),
			Latitude:   lat,
			Longitude:  lng,
		}
		if err := s.repo.Create(ctx, record); err != nil {
			// A concurrent scan already inserted the row; the unique index
			// turned the race into this error instead of a duplicate record.
			if errors.Is(err, repository.ErrDuplicateKey) {
				return nil, ErrDuplicateScan
			}
			return nil, err
		}
		return s.response(record, student), nil

	default:
		return nil, err
	}
}

// resolveStatus picks the stored status. Excusable requested codes (izin,
// sakit) pass through; everything else is computed from the window start and
// the grace period. The client never overrides the lateness computation.
func (s *attendanceService) resolveStatus(statusCode, windowStart string, now time.Time) string {
	if statusCode == model.StatusIzin || statusCode == model.StatusSakit {
		return statusCode
	}
	cutoff, err := atClock(now, windowStart)
	if err != nil {
		return model.StatusHadir
	}
	cutoff = cutoff.Add(time.Duration(s.cfg.LateGraceMinutes) * time.Minute)
	if now.After(cutoff) {
		return model.StatusTerlambat
	}
	return model.StatusHadir
}

// scheduleActive reports whether now falls on the schedule's weekday and
// inside [start, end+grace].
func scheduleActive(sch *model.Schedule, now time.Time, graceMinutes int) bool {
	dow := int(now.Weekday())
	if dow == 0 {
		dow = 7 // time.Sunday is 0, schedules use 7
	}
	if dow != sch.DayOfWeek {
		return false
	}
	start, err := atClock(now, sch.StartTime)
	if err != nil {
		return false
	}
	end, err := atClock(now, sch.EndTime)
	if err != nil {
		return false
	}
	end = end.Add(time.Duration(graceMinutes) * time.Minute)
	return !now.Before(start) && !now.After(end)
}

// atClock returns today's date at the given "HH:MM" wall clock.
func atClock(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func (s *attendanceService) insideGeofence(ctx context.Context, lat, lng float64) (bool, error) {
	locs, err := s.locations.ListActive(ctx)
	if err != nil {
		return false, err
	}
	for _, l := range locs {
		if haversineMeters(l.Latitude, l.Longitude, lat, lng) <= l.RadiusM {
			return true, nil
		}
	}
	return false, nil
}

// haversineMeters is the great-circle distance between two coordinates.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000.0

	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dp := (lat2 - lat1) * math.Pi / 180
	dl := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

func (s *attendanceService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	record.Status = req.Status
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	resp := mapAttendance(record)
	return &resp, nil
}

func (s *attendanceService) response(a *model.Attendance, student *model.Student) *dto.ScanResponse {
	return &dto.ScanResponse{
		Attendance: mapAttendance(a),
		Student:    MapStudent(student),
	}
}

func mapAttendance(a *model.Attendance) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:        a.ID.String(),
		StudentID: a.StudentID.String(),
		Date:      a.Date.Format("2006-01-02"),
		Type:      a.Type,
		Status:    a.Status,
	}
	if a.ScheduleID != uuid.Nil {
		resp.JadwalID = a.ScheduleID.String()
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
