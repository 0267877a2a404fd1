package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"candiqr/internal/dto"
	"candiqr/internal/handler"
	"candiqr/internal/model"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthSvc struct {
	resp *dto.LoginResponse
	err  error
}

func (s *stubAuthSvc) Login(_ context.Context, _ dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.resp, s.err
}

func loginRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", handler.NewAuthHandler(svc).Login)
	return r
}

func TestLoginHandler_Success_Envelope(t *testing.T) {
	r := loginRouter(&stubAuthSvc{resp: &dto.LoginResponse{
		Token: "signed.jwt.here",
		User:  dto.UserResponse{ID: uuid.NewString(), Username: "admin", Role: model.RoleAdmin},
	}})

	w := doJSON(r, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "password123"})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Login berhasil", env.Message)

	var resp dto.LoginResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "signed.jwt.here", resp.Token)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestLoginHandler_BadCredentials_Unauthorized(t *testing.T) {
	r := loginRouter(&stubAuthSvc{err: service.ErrInvalidCredentials})

	w := doJSON(r, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "salah"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), env.Message)
}

func TestLoginHandler_MissingPassword_Unprocessable(t *testing.T) {
	r := loginRouter(&stubAuthSvc{})

	w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
