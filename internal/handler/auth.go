package handler

import (
	"net/http"

	"candiqr/internal/apierror"
	"candiqr/internal/dto"
	"candiqr/internal/middleware"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login dengan username dan password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Kredensial"
// @Success 200 {object} apierror.Response
// @Failure 401 {object} apierror.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Login berhasil", resp))
}

// Profile returns the authenticated user, as re-fetched by the auth
// middleware on this request.
func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.GetUser(c)
	c.JSON(http.StatusOK, apierror.OK("Profil user", service.MapUser(user)))
}
