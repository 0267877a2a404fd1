package service

import (
	"context"
	"testing"
	"time"

	"candiqr/internal/config"
	"candiqr/internal/dto"
	"candiqr/internal/model"
	"candiqr/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────

type memAttendanceRepo struct {
	records     []*model.Attendance
	dupOnCreate bool // simulate losing the insert race
}

func (r *memAttendanceRepo) Create(_ context.Context, a *model.Attendance) error {
	if r.dupOnCreate {
		return repository.ErrDuplicateKey
	}
	for _, e := range r.records {
		if e.StudentID == a.StudentID && e.Date.Equal(a.Date) && e.Type == a.Type && e.ScheduleID == a.ScheduleID {
			return repository.ErrDuplicateKey
		}
	}
	a.ID = uuid.New()
	r.records = append(r.records, a)
	return nil
}

func (r *memAttendanceRepo) FindForScan(_ context.Context, studentID uuid.UUID, date time.Time, typ string, scheduleID uuid.UUID) (*model.Attendance, error) {
	for _, e := range r.records {
		if e.StudentID == studentID && e.Date.Equal(date) && e.Type == typ && e.ScheduleID == scheduleID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAttendanceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Attendance, error) {
	for _, e := range r.records {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAttendanceRepo) Update(_ context.Context, _ *model.Attendance) error { return nil }

func (r *memAttendanceRepo) ListWithStudents(_ context.Context, _ dto.ReportFilter) ([]model.Attendance, error) {
	out := make([]model.Attendance, 0, len(r.records))
	for _, e := range r.records {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memAttendanceRepo) CountByStatus(_ context.Context, studentID uuid.UUID) (map[string]int, error) {
	counts := make(map[string]int)
	for _, e := range r.records {
		if e.StudentID == studentID {
			counts[e.Status]++
		}
	}
	return counts, nil
}

type memStudentRepo struct {
	byBarcode map[string]*model.Student
}

func (r *memStudentRepo) Create(_ context.Context, s *model.Student) error {
	r.byBarcode[s.BarcodeID] = s
	return nil
}

func (r *memStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	for _, s := range r.byBarcode {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStudentRepo) FindByBarcode(_ context.Context, barcodeID string) (*model.Student, error) {
	s, ok := r.byBarcode[barcodeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memStudentRepo) List(_ context.Context, _ dto.StudentFilter) ([]model.Student, error) {
	return nil, nil
}

func (r *memStudentRepo) ListByParent(_ context.Context, _ uuid.UUID) ([]model.Student, error) {
	return nil, nil
}

func (r *memStudentRepo) Update(_ context.Context, _ *model.Student) error { return nil }
func (r *memStudentRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

type memScheduleRepo struct {
	byID map[uuid.UUID]*model.Schedule
}

func (r *memScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	r.byID[s.ID] = s
	return nil
}

func (r *memScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Schedule, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memScheduleRepo) List(_ context.Context, _, _ *uuid.UUID) ([]model.Schedule, error) {
	return nil, nil
}

func (r *memScheduleRepo) Update(_ context.Context, _ *model.Schedule) error { return nil }
func (r *memScheduleRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

type memLocationRepo struct {
	locations []model.Location
}

func (r *memLocationRepo) Create(_ context.Context, l *model.Location) error {
	r.locations = append(r.locations, *l)
	return nil
}

func (r *memLocationRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Location, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memLocationRepo) ListActive(_ context.Context) ([]model.Location, error) {
	return r.locations, nil
}

func (r *memLocationRepo) List(_ context.Context) ([]model.Location, error) {
	return r.locations, nil
}

func (r *memLocationRepo) Update(_ context.Context, _ *model.Location) error { return nil }
func (r *memLocationRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

// ── Helpers ───────────────────────────────────────────────────────────────────

// mondayAt returns a fixed Monday (2026-01-05) at the given wall clock, UTC.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 1, 5, hour, minute, 0, 0, time.UTC)
}

type scanFixture struct {
	svc        *attendanceService
	attendance *memAttendanceRepo
	students   *memStudentRepo
	schedules  *memScheduleRepo
	locations  *memLocationRepo
	student    *model.Student
}

func newScanFixture(t *testing.T, now time.Time) *scanFixture {
	t.Helper()
	attendance := &memAttendanceRepo{}
	students := &memStudentRepo{byBarcode: make(map[string]*model.Student)}
	schedules := &memScheduleRepo{byID: make(map[uuid.UUID]*model.Schedule)}
	locations := &memLocationRepo{}
	cfg := &config.Config{SchoolStart: "07:00", LateGraceMinutes: 15}

	student := &model.Student{ID: uuid.New(), NIS: "2026001", BarcodeID: "QR-001", Name: "Budi Santoso"}
	students.byBarcode[student.BarcodeID] = student

	svc := NewAttendanceService(attendance, students, schedules, locations, cfg).(*attendanceService)
	svc.now = func() time.Time { return now }

	return &scanFixture{
		svc: svc, attendance: attendance, students: students,
		schedules: schedules, locations: locations, student: student,
	}
}

func (f *scanFixture) addGeofence(lat, lng, radius float64) {
	f.locations.locations = append(f.locations.locations, model.Location{
		ID: uuid.New(), Name: "Gedung Utama", Latitude: lat, Longitude: lng, RadiusM: radius, Active: true,
	})
}

func (f *scanFixture) addSchedule(day int, start, end string) *model.Schedule {
	sch := &model.Schedule{
		ID: uuid.New(), ClassID: uuid.New(), SubjectID: uuid.New(), TeacherID: uuid.New(),
		DayOfWeek: day, StartTime: start, EndTime: end,
	}
	f.schedules.byID[sch.ID] = sch
	return sch
}

func schoolScan(barcode string) dto.ScanRequest {
	return dto.ScanRequest{BarcodeID: barcode, AttendanceType: model.TypeSekolah}
}

// ── Tests: School Scan State Machine ──────────────────────────────────────────

func TestScan_FirstScan_ChecksInOnTime(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))

	resp, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))

	assert.NoError(t, err)
	assert.Equal(t, model.StatusHadir, resp.Attendance.Status)
	assert.NotNil(t, resp.Attendance.CheckIn)
	assert.Nil(t, resp.Attendance.CheckOut)
	assert.Equal(t, "Budi Santoso", resp.Student.Name)
}

func TestScan_AfterGrace_MarksLate(t *testing.T) {
	// School starts 07:00, grace 15 min — 07:16 is late.
	f := newScanFixture(t, mondayAt(7, 16))

	resp, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))

	assert.NoError(t, err)
	assert.Equal(t, model.StatusTerlambat, resp.Attendance.Status)
}

func TestScan_WithinGrace_NotLate(t *testing.T) {
	f := newScanFixture(t, mondayAt(7, 14))

	resp, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))

	assert.NoError(t, err)
	assert.Equal(t, model.StatusHadir, resp.Attendance.Status)
}

func TestScan_SecondScan_RecordsCheckOut(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))

	_, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))
	assert.NoError(t, err)

	f.svc.now = func() time.Time { return mondayAt(14, 0) }
	resp, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))

	assert.NoError(t, err)
	assert.NotNil(t, resp.Attendance.CheckOut)
	// Check-in status must not be recomputed on the way out.
	assert.Equal(t, model.StatusHadir, resp.Attendance.Status)
}

func TestScan_ThirdScan_Duplicate(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))

	for i := 0; i < 2; i++ {
		_, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))
		assert.NoError(t, err)
	}

	_, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))
	assert.ErrorIs(t, err, ErrDuplicateScan)
}

func TestScan_UnknownBarcode(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))

	_, err := f.svc.Scan(context.Background(), schoolScan("QR-NOPE"))
	assert.ErrorIs(t, err, ErrUnknownBarcode)
}

func TestScan_LostInsertRace_Duplicate(t *testing.T) {
	// A concurrent scan already inserted the row; the unique index rejects
	// ours and the caller must see the same duplicate failure.
	f := newScanFixture(t, mondayAt(6, 50))
	f.attendance.dupOnCreate = true

	_, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))
	assert.ErrorIs(t, err, ErrDuplicateScan)
}

// ── Tests: Class Scan ─────────────────────────────────────────────────────────

func TestScan_Kelas_RequiresSchedule(t *testing.T) {
	f := newScanFixture(t, mondayAt(8, 0))

	_, err := f.svc.Scan(context.Background(), dto.ScanRequest{
		BarcodeID: "QR-001", AttendanceType: model.TypeKelas,
	})
	assert.ErrorIs(t, err, ErrScheduleRequired)
}

func TestScan_Kelas_UnknownSchedule(t *testing.T) {
	f := newScanFixture(t, mondayAt(8, 0))

	_, err := f.svc.Scan(context.Background(), dto.ScanRequest{
		BarcodeID: "QR-001", AttendanceType: model.TypeKelas, JadwalID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestScan_Kelas_OutsideWindow_Inactive(t *testing.T) {
	f := newScanFixture(t, mondayAt(10, 0))
	sch := f.addSchedule(1, "08:00", "09:00") // grace 15 → closed at 09:15

	_, err := f.svc.Scan(context.Background(), dto.ScanRequest{
		BarcodeID: "QR-001", AttendanceType: model.TypeKelas, JadwalID: sch.ID.String(),
	})
	assert.ErrorIs(t, err, ErrScheduleInactive)
}

func TestScan_Kelas_WrongDay_Inactive(t *testing.T) {
	f := newScanFixture(t, mondayAt(8, 10))
	sch := f.addSchedule(3, "08:00", "09:00") // Wednesday schedule, Monday scan

	_, err := f.svc.Scan(context.Background(), dto.ScanRequest{
		BarcodeID: "QR-001", AttendanceType: model.TypeKelas, JadwalID: sch.ID.String(),
	})
	assert.ErrorIs(t, err, ErrScheduleInactive)
}

func TestScan_Kelas_LatenessFromScheduleStart(t *testing.T) {
	f := newScanFixture(t, mondayAt(8, 20))
	sch := f.addSchedule(1, "08:00", "09:30") // 20 min after start, grace 15

	resp, err := f.svc.Scan(context.Background(), dto.ScanRequest{
		BarcodeID: "QR-001", AttendanceType: model.TypeKelas, JadwalID: sch.ID.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusTerlambat, resp.Attendance.Status)
	assert.Equal(t, sch.ID.String(), resp.Attendance.JadwalID)
}

func TestScan_SekolahAndKelas_IndependentRecords(t *testing.T) {
	f := newScanFixture(t, mondayAt(8, 5))
	sch := f.addSchedule(1, "08:00", "09:30")

	_, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))
	assert.NoError(t, err)

	_, err = f.svc.Scan(context.Background(), dto.ScanRequest{
		BarcodeID: "QR-001", AttendanceType: model.TypeKelas, JadwalID: sch.ID.String(),
	})
	assert.NoError(t, err)
	assert.Len(t, f.attendance.records, 2)
}

// ── Tests: Geolocation Scan ───────────────────────────────────────────────────

func yoloScan(lat, lng float64, status string) dto.YoloScanRequest {
	return dto.YoloScanRequest{
		BarcodeID: "QR-001", AttendanceType: model.TypeSekolah,
		Latitude: &lat, Longitude: &lng, StatusCode: status,
	}
}

func TestScanYolo_OutsideGeofence_Rejected(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))
	f.addGeofence(-7.7956, 110.3695, 100)

	// ~1 degree of latitude away, far outside a 100 m radius.
	_, err := f.svc.ScanYolo(context.Background(), yoloScan(-6.7956, 110.3695, ""))
	assert.ErrorIs(t, err, ErrOutsideGeofence)
	assert.Empty(t, f.attendance.records, "no record may be written on a rejected scan")
}

func TestScanYolo_NoActiveGeofence_Rejected(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))

	_, err := f.svc.ScanYolo(context.Background(), yoloScan(-7.7956, 110.3695, ""))
	assert.ErrorIs(t, err, ErrOutsideGeofence)
}

func TestScanYolo_InsideGeofence_ChecksIn(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))
	f.addGeofence(-7.7956, 110.3695, 100)

	resp, err := f.svc.ScanYolo(context.Background(), yoloScan(-7.7956, 110.3695, ""))
	assert.NoError(t, err)
	assert.Equal(t, model.StatusHadir, resp.Attendance.Status)
	assert.NotNil(t, f.attendance.records[0].Latitude)
	assert.NotNil(t, f.attendance.records[0].Longitude)
}

func TestScanYolo_EquatorGeofence_ChecksIn(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))
	f.addGeofence(0, 109.3425, 100)

	resp, err := f.svc.ScanYolo(context.Background(), yoloScan(0, 109.3425, ""))
	assert.NoError(t, err)
	assert.Equal(t, model.StatusHadir, resp.Attendance.Status)
}

func TestScanYolo_ExcusableStatus_PassesThrough(t *testing.T) {
	f := newScanFixture(t, mondayAt(9, 0)) // way past grace
	f.addGeofence(-7.7956, 110.3695, 100)

	resp, err := f.svc.ScanYolo(context.Background(), yoloScan(-7.7956, 110.3695, model.StatusIzin))
	assert.NoError(t, err)
	assert.Equal(t, model.StatusIzin, resp.Attendance.Status)
}

func TestScanYolo_RequestedHadirWhileLate_Overridden(t *testing.T) {
	// The client cannot talk its way out of being late.
	f := newScanFixture(t, mondayAt(9, 0))
	f.addGeofence(-7.7956, 110.3695, 100)

	resp, err := f.svc.ScanYolo(context.Background(), yoloScan(-7.7956, 110.3695, model.StatusHadir))
	assert.NoError(t, err)
	assert.Equal(t, model.StatusTerlambat, resp.Attendance.Status)
}

// ── Tests: Status Correction ──────────────────────────────────────────────────

func TestUpdateStatus_Success(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))
	resp, err := f.svc.Scan(context.Background(), schoolScan("QR-001"))
	assert.NoError(t, err)

	id, err := uuid.Parse(resp.Attendance.ID)
	assert.NoError(t, err)

	updated, err := f.svc.UpdateStatus(context.Background(), id, dto.UpdateAttendanceRequest{Status: model.StatusSakit})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSakit, updated.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newScanFixture(t, mondayAt(6, 50))

	_, err := f.svc.UpdateStatus(context.Background(), uuid.New(), dto.UpdateAttendanceRequest{Status: model.StatusIzin})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// ── Tests: Haversine ──────────────────────────────────────────────────────────

func TestHaversineMeters(t *testing.T) {
	// Same point is zero.
	assert.InDelta(t, 0, haversineMeters(-7.7956, 110.3695, -7.7956, 110.3695), 0.001)

	// One degree of latitude is ~111 km.
	d := haversineMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)
}
