package dto

// DTOs for the timetable reference data: teachers, classes, subjects,
// schedules, parents, operators and geofence locations.

// ─── Teachers ────────────────────────────────────────────────────────────────

type CreateTeacherRequest struct {
	NIP       string  `json:"nip"        validate:"required,min=1,max=30"`
	Name      string  `json:"name"       validate:"required,min=2,max=100"`
	SubjectID *string `json:"subject_id" validate:"omitempty,uuid"`
	Phone     *string `json:"phone"      validate:"omitempty,max=30"`
	UserID    *string `json:"user_id"    validate:"omitempty,uuid"`
}

type UpdateTeacherRequest struct {
	NIP       string  `json:"nip"        validate:"omitempty,min=1,max=30"`
	Name      string  `json:"name"       validate:"omitempty,min=2,max=100"`
	SubjectID *string `json:"subject_id" validate:"omitempty,uuid"`
	Phone     *string `json:"phone"      validate:"omitempty,max=30"`
}

type TeacherResponse struct {
	ID          string  `json:"id"`
	NIP         string  `json:"nip"`
	Name        string  `json:"name"`
	SubjectID   *string `json:"subject_id,omitempty"`
	SubjectName string  `json:"subject_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// ─── Classes ─────────────────────────────────────────────────────────────────

type CreateClassRequest struct {
	Name              string  `json:"name"                validate:"required,min=1,max=50"`
	GradeLevel        int     `json:"grade_level"         validate:"required,min=1,max=13"`
	HomeroomTeacherID *string `json:"homeroom_teacher_id" validate:"omitempty,uuid"`
}

type UpdateClassRequest struct {
	Name              string  `json:"name"                validate:"omitempty,min=1,max=50"`
	GradeLevel        int     `json:"grade_level"         validate:"omitempty,min=1,max=13"`
	HomeroomTeacherID *string `json:"homeroom_teacher_id" validate:"omitempty,uuid"`
}

type ClassResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	GradeLevel        int     `json:"grade_level"`
	HomeroomTeacherID *string `json:"homeroom_teacher_id,omitempty"`
}

// ─── Subjects ────────────────────────────────────────────────────────────────

type CreateSubjectRequest struct {
	NamaPelajaran string `json:"nama_pelajaran" validate:"required,min=2,max=100"`
	KodePelajaran string `json:"kode_pelajaran" validate:"required,min=1,max=20"`
}

type UpdateSubjectRequest struct {
	NamaPelajaran string `json:"nama_pelajaran" validate:"omitempty,min=2,max=100"`
	KodePelajaran string `json:"kode_pelajaran" validate:"omitempty,min=1,max=20"`
}

type SubjectResponse struct {
	ID            string `json:"id"`
	NamaPelajaran string `json:"nama_pelajaran"`
	KodePelajaran string `json:"kode_pelajaran"`
}

// ─── Schedules ───────────────────────────────────────────────────────────────

type CreateScheduleRequest struct {
	ClassID   string `json:"class_id"    validate:"required,uuid"`
	SubjectID string `json:"subject_id"  validate:"required,uuid"`
	TeacherID string `json:"teacher_id"  validate:"required,uuid"`
	DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time"  validate:"required,len=5"`
	EndTime   string `json:"end_time"    validate:"required,len=5"`
}

type UpdateScheduleRequest struct {
	ClassID   string `json:"class_id"    validate:"omitempty,uuid"`
	SubjectID string `json:"subject_id"  validate:"omitempty,uuid"`
	TeacherID string `json:"teacher_id"  validate:"omitempty,uuid"`
	DayOfWeek int    `json:"day_of_week" validate:"omitempty,min=1,max=7"`
	StartTime string `json:"start_time"  validate:"omitempty,len=5"`
	EndTime   string `json:"end_time"    validate:"omitempty,len=5"`
}

type ScheduleResponse struct {
	ID          string `json:"id"`
	ClassID     string `json:"class_id"`
	ClassName   string `json:"class_name,omitempty"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name,omitempty"`
	TeacherID   string `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// ─── Parents ─────────────────────────────────────────────────────────────────

type CreateParentRequest struct {
	Name    string  `json:"name"    validate:"required,min=2,max=100"`
	Phone   *string `json:"phone"   validate:"omitempty,max=30"`
	Address *string `json:"address"`
	UserID  *string `json:"user_id" validate:"omitempty,uuid"`
}

type UpdateParentRequest struct {
	Name    string  `json:"name"  validate:"omitempty,min=2,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Address *string `json:"address"`
}

type ParentResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ─── Locations (geofence) ────────────────────────────────────────────────────

type CreateLocationRequest struct {
	Name      string   `json:"name"      validate:"required,min=2,max=100"`
	Latitude  *float64 `json:"latitude"  validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	RadiusM   float64  `json:"radius_m"  validate:"required,gt=0"`
}

type UpdateLocationRequest struct {
	Name      string   `json:"name"      validate:"omitempty,min=2,max=100"`
	Latitude  *float64 `json:"latitude"  validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	RadiusM   *float64 `json:"radius_m"  validate:"omitempty,gt=0"`
	Active    *bool    `json:"active"`
}

type LocationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusM   float64 `json:"radius_m"`
	Active    bool    `json:"active"`
}
