package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"candiqr/internal/dto"
	"candiqr/internal/handler"
	"candiqr/internal/model"
	"candiqr/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type memSubjectRepo struct {
	byID map[uuid.UUID]*model.Subject
}

func newMemSubjectRepo() *memSubjectRepo {
	return &memSubjectRepo{byID: make(map[uuid.UUID]*model.Subject)}
}

func (r *memSubjectRepo) Create(_ context.Context, s *model.Subject) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.byID[s.ID] = s
	return nil
}

func (r *memSubjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Subject, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memSubjectRepo) FindByCode(_ context.Context, code string) (*model.Subject, error) {
	for _, s := range r.byID {
		if s.KodePelajaran == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSubjectRepo) List(_ context.Context, _ string) ([]model.Subject, error) {
	out := make([]model.Subject, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSubjectRepo) Update(_ context.Context, s *model.Subject) error {
	r.byID[s.ID] = s
	return nil
}

func (r *memSubjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func subjectsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewSubjectsHandler(service.NewSubjectService(newMemSubjectRepo()))
	r := gin.New()
	r.GET("/subjects", h.List)
	r.POST("/subjects", h.Create)
	r.GET("/subjects/:id", h.Get)
	r.PUT("/subjects/:id", h.Update)
	r.DELETE("/subjects/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestSubjects_CreateThenGet_RoundTrip(t *testing.T) {
	r := subjectsRouter()

	w := doJSON(r, http.MethodPost, "/subjects", dto.CreateSubjectRequest{
		NamaPelajaran: "Matematika", KodePelajaran: "MTK-01",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	var created dto.SubjectResponse
	assert.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)

	w = doJSON(r, http.MethodGet, "/subjects/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got dto.SubjectResponse
	env = decodeEnvelope(t, w)
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Matematika", got.NamaPelajaran)
	assert.Equal(t, "MTK-01", got.KodePelajaran)
}

func TestSubjects_DuplicateCode_Conflict(t *testing.T) {
	r := subjectsRouter()

	req := dto.CreateSubjectRequest{NamaPelajaran: "Fisika", KodePelajaran: "FIS-01"}
	assert.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/subjects", req).Code)

	w := doJSON(r, http.MethodPost, "/subjects", req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
}

func TestSubjects_MissingFields_Unprocessable(t *testing.T) {
	r := subjectsRouter()

	w := doJSON(r, http.MethodPost, "/subjects", map[string]string{"nama_pelajaran": "Kimia"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubjects_GetUnknown_NotFound(t *testing.T) {
	r := subjectsRouter()

	w := doJSON(r, http.MethodGet, "/subjects/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubjects_BadID_BadRequest(t *testing.T) {
	r := subjectsRouter()

	w := doJSON(r, http.MethodGet, "/subjects/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubjects_UpdateThenDelete(t *testing.T) {
	r := subjectsRouter()

	env := decodeEnvelope(t, doJSON(r, http.MethodPost, "/subjects", dto.CreateSubjectRequest{
		NamaPelajaran: "Biologi", KodePelajaran: "BIO-01",
	}))
	var created dto.SubjectResponse
	assert.NoError(t, json.Unmarshal(env.Data, &created))

	w := doJSON(r, http.MethodPut, "/subjects/"+created.ID, dto.UpdateSubjectRequest{NamaPelajaran: "Biologi Dasar"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/subjects/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/subjects/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
