package dto

// ScanRequest is the plain QR/barcode scan body.
type ScanRequest struct {
	BarcodeID      string `json:"barcode_id"      validate:"required,min=1,max=64"`
	AttendanceType string `json:"attendance_type" validate:"required,oneof=sekolah kelas"`
	JadwalID       string `json:"jadwal_id"       validate:"omitempty,uuid"`
}

// YoloScanRequest is the geolocation-aware scan variant. StatusCode lets the
// scanner request an excusable classification; lateness is still computed
// server-side.
type YoloScanRequest struct {
	BarcodeID      string   `json:"barcode_id"      validate:"required,min=1,max=64"`
	AttendanceType string   `json:"attendance_type" validate:"required,oneof=sekolah kelas"`
	JadwalID       string   `json:"jadwal_id"       validate:"omitempty,uuid"`
	Latitude       *float64 `json:"latitude"        validate:"required,min=-90,max=90"`
	Longitude      *float64 `json:"longitude"       validate:"required,min=-180,max=180"`
	StatusCode     string   `json:"status_code"     validate:"omitempty,oneof=hadir izin sakit"`
}

type AttendanceResponse struct {
	ID        string  `json:"id"`
	StudentID string  `json:"student_id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Type      string  `json:"attendance_type"`
	JadwalID  string  `json:"jadwal_id,omitempty"`
	CheckIn   *string `json:"check_in,omitempty"`
	CheckOut  *string `json:"check_out,omitempty"`
	Status    string  `json:"status"`
}

// ScanResponse pairs the resulting record with the resolved student summary.
type ScanResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Student    StudentResponse    `json:"student"`
}

// UpdateAttendanceRequest corrects a misrecorded status.
type UpdateAttendanceRequest struct {
	Status string `json:"status" validate:"required,oneof=hadir terlambat alpha izin sakit"`
}
