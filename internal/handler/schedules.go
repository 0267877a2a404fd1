package handler

import (
	"errors"
	"net/http"

	"candiqr/internal/apierror"
	"candiqr/internal/dto"
	"candiqr/internal/middleware"
	"candiqr/internal/model"
	"candiqr/internal/repository"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchedulesHandler needs the teacher repository on top of the service:
// a teacher listing schedules only sees the ones assigned to them, which
// requires resolving their teacher profile from the authenticated user.
type SchedulesHandler struct {
	svc      service.ScheduleService
	teachers repository.TeacherRepository
}

func NewSchedulesHandler(svc service.ScheduleService, teachers repository.TeacherRepository) *SchedulesHandler {
	return &SchedulesHandler{svc: svc, teachers: teachers}
}

func (h *SchedulesHandler) List(c *gin.Context) {
	var classID, teacherID *uuid.UUID

	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.Fail("class_id tidak valid"))
			return
		}
		classID = &id
	}
	if raw := c.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.Fail("teacher_id tidak valid"))
			return
		}
		teacherID = &id
	}

	// Teachers are pinned to their own schedules regardless of query params.
	if user := middleware.GetUser(c); user != nil && user.Role == model.RoleTeacher {
		t, err := h.teachers.FindByUserID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusForbidden, apierror.Fail("Profil guru tidak ditemukan"))
			return
		}
		teacherID = &t.ID
	}

	resp, err := h.svc.List(c.Request.Context(), classID, teacherID)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar jadwal", resp))
}

func (h *SchedulesHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Jadwal dibuat", resp))
}

func (h *SchedulesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail jadwal", resp))
}

func (h *SchedulesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateScheduleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Jadwal diperbarui", resp))
}

func (h *SchedulesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Jadwal dihapus", nil))
}
