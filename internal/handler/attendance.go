package handler

import (
	"errors"
	"net/http"

	"candiqr/internal/apierror"
	"candiqr/internal/dto"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct{ svc service.AttendanceService }

func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// Scan POST /api/attendance/scan
func (h *AttendanceHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Scan(c.Request.Context(), req)
	if err != nil {
		writeScanError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Absensi tercatat", resp))
}

// ScanYolo POST /api/yolo/attendance — geolocation-aware variant.
func (h *AttendanceHandler) ScanYolo(c *gin.Context) {
	var req dto.YoloScanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ScanYolo(c.Request.Context(), req)
	if err != nil {
		writeScanError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Absensi tercatat", resp))
}

// UpdateStatus PUT /api/attendance/:id — correct a misrecorded status.
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateAttendanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Status absensi diperbarui", resp))
}

// writeScanError maps each scan domain failure to its status and a distinct
// message, so the scanner UI can tell the user exactly what went wrong.
func writeScanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownBarcode):
		c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
	case errors.Is(err, service.ErrDuplicateScan):
		c.JSON(http.StatusConflict, apierror.Fail(err.Error()))
	case errors.Is(err, service.ErrOutsideGeofence):
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
	case errors.Is(err, service.ErrScheduleInactive),
		errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrScheduleRequired):
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
	default:
		c.Error(err) //nolint:errcheck
	}
}
