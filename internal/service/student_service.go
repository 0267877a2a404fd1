package service

import (
	"context"
	"errors"

	"candiqr/internal/dto"
	"candiqr/internal/model"
	"candiqr/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStudentNotFound = errors.New("siswa tidak ditemukan")

type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, error)
	List(ctx context.Context, filter dto.StudentFilter) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

// MapStudent converts a model to its response DTO.
func MapStudent(s *model.Student) dto.StudentResponse {
	resp := dto.StudentResponse{
		ID:        s.ID.String(),
		NIS:       s.NIS,
		BarcodeID: s.BarcodeID,
		Name:      s.Name,
		Gender:    s.Gender,
		Address:   s.Address,
	}
	if s.ClassID != nil {
		v := s.ClassID.String()
		resp.ClassID = &v
	}
	if s.Class != nil {
		resp.ClassName = s.Class.Name
	}
	if s.ParentID != nil {
		v := s.ParentID.String()
		resp.ParentID = &v
	}
	return resp
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &model.Student{
		NIS:       req.NIS,
		BarcodeID: req.BarcodeID,
		Name:      req.Name,
		Gender:    req.Gender,
		Address:   req.Address,
	}
	var err error
	if student.ClassID, err = parseOptionalUUID(req.ClassID); err != nil {
		return nil, err
	}
	if student.ParentID, err = parseOptionalUUID(req.ParentID); err != nil {
		return nil, err
	}
	if student.UserID, err = parseOptionalUUID(req.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	resp := MapStudent(student)
	return &resp, nil
}

func (s *studentService) Get(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := MapStudent(student)
	return &resp, nil
}

func (s *studentService) List(ctx context.Context, filter dto.StudentFilter) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, MapStudent(&students[i]))
	}
	return result, nil
}

func (s *studentService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if req.NIS != "" {
		student.NIS = req.NIS
	}
	if req.BarcodeID != "" {
		student.BarcodeID = req.BarcodeID
	}
	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Gender != "" {
		student.Gender = req.Gender
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.ClassID != nil {
		if student.ClassID, err = parseOptionalUUID(req.ClassID); err != nil {
			return nil, err
		}
	}
	if req.ParentID != nil {
		if student.ParentID, err = parseOptionalUUID(req.ParentID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	resp := MapStudent(student)
	return &resp, nil
}

func (s *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// parseOptionalUUID converts a nullable string field into a *uuid.UUID.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
