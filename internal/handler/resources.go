package handler

import (
	"errors"
	"net/http"

	"candiqr/internal/apierror"
	"candiqr/internal/dto"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
)

// Handlers for the uniform reference-data resources. All follow the same
// list/create/get/update/delete shape over their service.

// ─── Teachers ────────────────────────────────────────────────────────────────

type TeachersHandler struct{ svc service.TeacherService }

func NewTeachersHandler(svc service.TeacherService) *TeachersHandler {
	return &TeachersHandler{svc: svc}
}

func (h *TeachersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar guru", resp))
}

func (h *TeachersHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Guru dibuat", resp))
}

func (h *TeachersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail guru", resp))
}

func (h *TeachersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTeacherRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Guru diperbarui", resp))
}

func (h *TeachersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Guru dihapus", nil))
}

// ─── Classes ─────────────────────────────────────────────────────────────────

type ClassesHandler struct{ svc service.ClassService }

func NewClassesHandler(svc service.ClassService) *ClassesHandler {
	return &ClassesHandler{svc: svc}
}

func (h *ClassesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar kelas", resp))
}

func (h *ClassesHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Kelas dibuat", resp))
}

func (h *ClassesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail kelas", resp))
}

func (h *ClassesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateClassRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Kelas diperbarui", resp))
}

func (h *ClassesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Kelas dihapus", nil))
}

// ─── Subjects ────────────────────────────────────────────────────────────────

type SubjectsHandler struct{ svc service.SubjectService }

func NewSubjectsHandler(svc service.SubjectService) *SubjectsHandler {
	return &SubjectsHandler{svc: svc}
}

func (h *SubjectsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar mata pelajaran", resp))
}

func (h *SubjectsHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSubject) {
			c.JSON(http.StatusConflict, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Mata pelajaran dibuat", resp))
}

func (h *SubjectsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail mata pelajaran", resp))
}

func (h *SubjectsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateSubjectRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Mata pelajaran diperbarui", resp))
}

func (h *SubjectsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Mata pelajaran dihapus", nil))
}

// ─── Parents ─────────────────────────────────────────────────────────────────

type ParentsHandler struct{ svc service.ParentService }

func NewParentsHandler(svc service.ParentService) *ParentsHandler {
	return &ParentsHandler{svc: svc}
}

func (h *ParentsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar wali", resp))
}

func (h *ParentsHandler) Create(c *gin.Context) {
	var req dto.CreateParentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Wali dibuat", resp))
}

func (h *ParentsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail wali", resp))
}

func (h *ParentsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateParentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Wali diperbarui", resp))
}

func (h *ParentsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Wali dihapus", nil))
}

// ─── Operators ───────────────────────────────────────────────────────────────
// Operators are plain user accounts with the operator role; the handler
// wraps the role-scoped user service.

type OperatorsHandler struct{ svc service.UserService }

func NewOperatorsHandler(svc service.UserService) *OperatorsHandler {
	return &OperatorsHandler{svc: svc}
}

func (h *OperatorsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar operator", resp))
}

func (h *OperatorsHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Operator dibuat", resp))
}

func (h *OperatorsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail operator", resp))
}

func (h *OperatorsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Operator diperbarui", resp))
}

func (h *OperatorsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Operator dihapus", nil))
}

// ─── Locations ───────────────────────────────────────────────────────────────

type LocationsHandler struct{ svc service.LocationService }

func NewLocationsHandler(svc service.LocationService) *LocationsHandler {
	return &LocationsHandler{svc: svc}
}

func (h *LocationsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Daftar lokasi", resp))
}

func (h *LocationsHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, apierror.OK("Lokasi dibuat", resp))
}

func (h *LocationsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Detail lokasi", resp))
}

func (h *LocationsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Lokasi diperbarui", resp))
}

func (h *LocationsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, apierror.Fail(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Lokasi dihapus", nil))
}
