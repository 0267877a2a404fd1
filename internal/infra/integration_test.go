//go:build integration

package infra_test

// End-to-end integration tests against real MySQL + Redis via testcontainers.
// Run with: go test -tags integration ./internal/infra/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"candiqr/internal/config"
	"candiqr/internal/infra"
	"candiqr/internal/model"
	"candiqr/internal/repository"
	"candiqr/internal/router"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcMySQL "github.com/testcontainers/testcontainers-go/modules/mysql"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	myC, err := tcMySQL.RunContainer(ctx,
		testcontainers.WithImage("mysql:8.0"),
		tcMySQL.WithDatabase("candiqr_test"),
		tcMySQL.WithUsername("candiqr"),
		tcMySQL.WithPassword("candiqr"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = myC.Terminate(ctx) })

	dsn, err := myC.ConnectionString(ctx, "parseTime=true")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		DatabaseURL:        dsn,
		RedisURL:           rdURL,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		CORSOrigin:         "http://localhost:3000",
		SchoolStart:        "00:01", // everything after midnight counts, keeps tests date-proof
		LateGraceMinutes:   24 * 60,
		RateLimit:          1000,
		RateWindowMinutes:  15,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Username: "admin-e2e", PasswordHash: string(hash),
		Name: "Admin E2E", Role: model.RoleAdmin, Active: true,
	}).Error)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "admin-e2e", "password": "admin123"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	env := decodeEnvelope(t, loginResp)
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)

	return &testEnv{server: srv, token: login.Token, db: db}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_AuthRequired(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/api/students", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_ScanLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	// Register a student
	createResp := do(t, env.server, "POST", "/api/students", jsonBody(t, map[string]any{
		"nis": "2026001", "barcode_id": "QR-E2E-001", "name": "Budi Santoso", "gender": "L",
	}), env.token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	decodeEnvelope(t, createResp)

	scan := func() *http.Response {
		return do(t, env.server, "POST", "/api/attendance/scan", jsonBody(t, map[string]string{
			"barcode_id": "QR-E2E-001", "attendance_type": "sekolah",
		}), env.token)
	}

	// First scan: check-in
	resp := scan()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	e := decodeEnvelope(t, resp)
	var first struct {
		Attendance struct {
			CheckIn  *string `json:"check_in"`
			CheckOut *string `json:"check_out"`
		} `json:"attendance"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &first))
	assert.NotNil(t, first.Attendance.CheckIn)
	assert.Nil(t, first.Attendance.CheckOut)

	// Second scan: check-out
	resp = scan()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	e = decodeEnvelope(t, resp)
	var second struct {
		Attendance struct {
			CheckOut *string `json:"check_out"`
		} `json:"attendance"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &second))
	assert.NotNil(t, second.Attendance.CheckOut)

	// Third scan: duplicate
	resp = scan()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_UniqueIndexStopsRacingInserts(t *testing.T) {
	// Two inserts for the same (student, date, type, schedule) — the second
	// must come back as the duplicate-key sentinel, which is exactly what a
	// lost concurrent-scan race produces.
	env := setupTestEnv(t)
	repo := repository.NewAttendanceRepository(env.db)

	studentID := uuid.New()
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	record := func() *model.Attendance {
		now := time.Now()
		return &model.Attendance{
			StudentID: studentID, Date: day, Type: model.TypeSekolah,
			ScheduleID: uuid.Nil, CheckIn: &now, Status: model.StatusHadir,
		}
	}

	require.NoError(t, repo.Create(context.Background(), record()))
	err := repo.Create(context.Background(), record())
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestE2E_DeactivatedUserLockedOut(t *testing.T) {
	env := setupTestEnv(t)

	// Works while active
	resp := do(t, env.server, "GET", "/api/auth/profile", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, env.db.Model(&model.User{}).
		Where("username = ?", "admin-e2e").
		Update("active", false).Error)

	// Same still-valid token, next request rejected
	resp = do(t, env.server, "GET", "/api/auth/profile", nil, env.token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_HealthEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Success     bool   `json:"success"`
		Environment string `json:"environment"`
		DB          string `json:"db"`
		Redis       string `json:"redis"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "test", body.Environment)
	assert.Equal(t, "connected", body.DB)
	assert.Equal(t, "connected", body.Redis)
}
