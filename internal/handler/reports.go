package handler

import (
	"net/http"

	"candiqr/internal/apierror"
	"candiqr/internal/dto"
	"candiqr/internal/middleware"
	"candiqr/internal/model"
	"candiqr/internal/repository"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	svc      service.ReportService
	parents  repository.ParentRepository
	students repository.StudentRepository
}

func NewReportsHandler(svc service.ReportService, parents repository.ParentRepository, students repository.StudentRepository) *ReportsHandler {
	return &ReportsHandler{svc: svc, parents: parents, students: students}
}

// Attendance returns the filtered attendance report with its per-status
// summary. Filters arrive as query params and are all optional.
func (h *ReportsHandler) Attendance(c *gin.Context) {
	var filter dto.ReportFilter
	if v := c.Query("class_id"); v != "" {
		filter.ClassID = &v
	}
	if v := c.Query("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := c.Query("date_to"); v != "" {
		filter.DateTo = &v
	}
	if v := c.Query("status"); v != "" {
		if !model.ValidStatus(v) {
			c.JSON(http.StatusBadRequest, apierror.Fail("status tidak valid"))
			return
		}
		filter.Status = &v
	}

	resp, err := h.svc.AttendanceReport(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Laporan kehadiran", resp))
}

// StudentSummary returns the per-status totals for one student. Parents
// may only query their own children; other allowed roles are unrestricted.
func (h *ReportsHandler) StudentSummary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if user := middleware.GetUser(c); user != nil && user.Role == model.RoleParent {
		parent, err := h.parents.FindByUserID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusForbidden, apierror.Fail("Profil wali tidak ditemukan"))
			return
		}
		children, err := h.students.ListByParent(c.Request.Context(), parent.ID)
		if err != nil {
			c.Error(err) //nolint:errcheck
			return
		}
		owned := false
		for i := range children {
			if children[i].ID == id {
				owned = true
				break
			}
		}
		if !owned {
			c.JSON(http.StatusForbidden, apierror.Fail("Anda hanya dapat melihat rekap anak sendiri"))
			return
		}
	}

	summary, err := h.svc.StudentSummary(c.Request.Context(), id)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Rekap kehadiran siswa", summary))
}
