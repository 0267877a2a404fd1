package dto

// ReportFilter narrows attendance report queries.
type ReportFilter struct {
	ClassID  *string
	DateFrom *string // YYYY-MM-DD
	DateTo   *string
	Status   *string
}

// ReportRow is one attendance record joined with its student.
type ReportRow struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	NIS         string `json:"nis"`
	Date        string `json:"date"`
	Type        string `json:"attendance_type"`
	Status      string `json:"status"`
	CheckIn     string `json:"check_in,omitempty"`
	CheckOut    string `json:"check_out,omitempty"`
}

// ReportSummary counts records per status.
type ReportSummary struct {
	Hadir     int `json:"hadir"`
	Terlambat int `json:"terlambat"`
	Alpha     int `json:"alpha"`
	Izin      int `json:"izin"`
	Sakit     int `json:"sakit"`
}

type AttendanceReportResponse struct {
	Rows    []ReportRow   `json:"rows"`
	Summary ReportSummary `json:"summary"`
}
