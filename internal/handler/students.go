package handler

import (
	"errors"
	"net/http"

	"candiqr/internal/apierror"
	"candiqr/internal/dto"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
)

type StudentsHandler struct{ svc service.StudentService }

func NewStudentsHandler(svc service.StudentService) *StudentsHandler {
	return &StudentsHandler{svc: svc}
}

// List GET /api/students?q=&class_id=
func (h *StudentsHandler) List(c *gin.Context) {
	filter := dto.StudentFilter{Q: c.Query("q")}
	if v := c.Query("class_id"); v != "" {
		filter.ClassID = &v
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar siswa", resp))
}

// Create POST /api/students
func (h *StudentsHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Siswa dibuat", resp))
}

// Get GET /api/students/:id
func (h *StudentsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail siswa", resp))
}

// Update PUT /api/students/:id
func (h *StudentsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Siswa diperbarui", resp))
}

// Delete DELETE /api/students/:id — hard delete.
func (h *StudentsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Siswa dihapus", nil))
}
