package repository

import (
	"context"

	"candiqr/internal/dto"
	"candiqr/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, s *model.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	FindByBarcode(ctx context.Context, barcodeID string) (*model.Student, error)
	List(ctx context.Context, filter dto.StudentFilter) ([]model.Student, error)
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]model.Student, error)
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentRepo struct{ db *gorm.DB }

func NewStudentRepository(db *gorm.DB) StudentRepository { return &studentRepo{db: db} }

func (r *studentRepo) Create(ctx context.Context, s *model.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *studentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var s model.Student
	err := r.db.WithContext(ctx).Preload("Class").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *studentRepo) FindByBarcode(ctx context.Context, barcodeID string) (*model.Student, error) {
	var s model.Student
	err := r.db.WithContext(ctx).Preload("Class").First(&s, "barcode_id = ?", barcodeID).Error
	return &s, err
}

func (r *studentRepo) List(ctx context.Context, filter dto.StudentFilter) ([]model.Student, error) {
	var students []model.Student
	tx := r.db.WithContext(ctx).Preload("Class")
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		tx = tx.Where("name LIKE ? OR nis LIKE ?", like, like)
	}
	if filter.ClassID != nil {
		tx = tx.Where("class_id = ?", *filter.ClassID)
	}
	err := tx.Order("name").Find(&students).Error
	return students, err
}

func (r *studentRepo) ListByParent(ctx context.Context, parentID uuid.UUID) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, s *model.Student) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *studentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, "id = ?", id).Error
}
