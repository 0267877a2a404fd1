package service

import (
	"context"
	"errors"

	"candiqr/internal/dto"
	"candiqr/internal/model"
	"candiqr/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user tidak ditemukan")
	ErrRoleMismatch = errors.New("role tidak sesuai dengan resource ini")
)

// UserService manages User accounts for a fixed role. The operator resource
// is this service bound to RoleOperator — operators have no separate profile
// table, they are plain users.
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	List(ctx context.Context, q string) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
	role string
}

func NewUserService(repo repository.UserRepository, role string) UserService {
	return &userService{repo: repo, role: role}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.Role != s.role {
		return nil, ErrRoleMismatch
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Phone:        req.Phone,
		Active:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := MapUser(u)
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	u, err := s.findScoped(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := MapUser(u)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, q string) ([]dto.UserResponse, error) {
	users, err := s.repo.ListByRole(ctx, s.role, q)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, MapUser(&users[i]))
	}
	return result, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := s.findScoped(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != nil {
		u.Email = req.Email
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := MapUser(u)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findScoped(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// findScoped resolves id and rejects users of other roles so that, e.g.,
// the operators endpoint cannot read or delete an admin account.
func (s *userService) findScoped(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.Role != s.role {
		return nil, ErrUserNotFound
	}
	return u, nil
}
