package service

import (
	"context"
	"testing"

	"candiqr/internal/config"
	"candiqr/internal/dto"
	"candiqr/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type memUserRepo struct {
	byUsername map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.byUsername[username]
	if !ok || !u.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) ListByRole(_ context.Context, role, _ string) ([]model.User, error) {
	var users []model.User
	for _, u := range r.byUsername {
		if u.Role == role {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *memUserRepo) Update(_ context.Context, u *model.User) error {
	r.byUsername[u.Username] = u
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for name, u := range r.byUsername {
		if u.ID == id {
			delete(r.byUsername, name)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func seedUser(t *testing.T, repo *memUserRepo, username, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	assert.NoError(t, err)
	u := &model.User{
		ID: uuid.New(), Username: username, Name: "Test User",
		PasswordHash: string(hash), Role: role, Active: true,
	}
	repo.byUsername[username] = u
	return u
}

func authTestCfg() *config.Config {
	return &config.Config{JWTSecret: testSecret, JWTExpirationHours: 8}
}

// ── Tests: Login ──────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo, "admin", "password123", model.RoleAdmin)
	svc := NewAuthService(repo, authTestCfg())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)

	// The token must carry the signed identity claims.
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "guru1", "correctpass", model.RoleTeacher)
	svc := NewAuthService(repo, authTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "guru1", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), authTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "tidakada", Password: "anypass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DeactivatedUser(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo, "nonaktif", "password123", model.RoleOperator)
	u.Active = false
	svc := NewAuthService(repo, authTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nonaktif", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tests: Role-scoped User Service ───────────────────────────────────────────

func TestUserService_Create_Operator(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, model.RoleOperator)

	resp, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "op1", Password: "rahasia123", Name: "Operator Satu", Role: model.RoleOperator,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleOperator, resp.Role)
	assert.True(t, resp.Active)

	// Password must be stored hashed, never verbatim.
	stored := repo.byUsername["op1"]
	assert.NotEqual(t, "rahasia123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia123")))
}

func TestUserService_Create_RoleMismatch(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), model.RoleOperator)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "sneaky", Password: "rahasia123", Name: "Bukan Operator", Role: model.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestUserService_Get_OtherRoleHidden(t *testing.T) {
	// The operators endpoint must not resolve an admin account by ID.
	repo := newMemUserRepo()
	admin := seedUser(t, repo, "boss", "password123", model.RoleAdmin)
	svc := NewUserService(repo, model.RoleOperator)

	_, err := svc.Get(context.Background(), admin.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Update_Deactivate(t *testing.T) {
	repo := newMemUserRepo()
	op := seedUser(t, repo, "op2", "password123", model.RoleOperator)
	svc := NewUserService(repo, model.RoleOperator)

	inactive := false
	resp, err := svc.Update(context.Background(), op.ID, dto.UpdateUserRequest{Active: &inactive})
	assert.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestUserService_Delete_OtherRoleHidden(t *testing.T) {
	repo := newMemUserRepo()
	admin := seedUser(t, repo, "boss2", "password123", model.RoleAdmin)
	svc := NewUserService(repo, model.RoleOperator)

	err := svc.Delete(context.Background(), admin.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, repo.byUsername, "boss2")
}
