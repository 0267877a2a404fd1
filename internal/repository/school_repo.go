package repository

import (
	"context"

	"candiqr/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repositories for the timetable reference data. All follow the same
// parameterized-query shape; list operations take a free-text filter.

// ─── Teachers ────────────────────────────────────────────────────────────────

type TeacherRepository interface {
	Create(ctx context.Context, t *model.Teacher) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Teacher, error)
	List(ctx context.Context, q string) ([]model.Teacher, error)
	Update(ctx context.Context, t *model.Teacher) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type teacherRepo struct{ db *gorm.DB }

func NewTeacherRepository(db *gorm.DB) TeacherRepository { return &teacherRepo{db: db} }

func (r *teacherRepo) Create(ctx context.Context, t *model.Teacher) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *teacherRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	var t model.Teacher
	err := r.db.WithContext(ctx).Preload("Subject").First(&t, "id = ?", id).Error
	return &t, err
}

func (r *teacherRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Teacher, error) {
	var t model.Teacher
	err := r.db.WithContext(ctx).First(&t, "user_id = ?", userID).Error
	return &t, err
}

func (r *teacherRepo) List(ctx context.Context, q string) ([]model.Teacher, error) {
	var teachers []model.Teacher
	tx := r.db.WithContext(ctx).Preload("Subject")
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name LIKE ? OR nip LIKE ?", like, like)
	}
	err := tx.Order("name").Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) Update(ctx context.Context, t *model.Teacher) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, "id = ?", id).Error
}

// ─── Classes ─────────────────────────────────────────────────────────────────

type ClassRepository interface {
	Create(ctx context.Context, c *model.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	List(ctx context.Context, q string) ([]model.Class, error)
	Update(ctx context.Context, c *model.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type classRepo struct{ db *gorm.DB }

func NewClassRepository(db *gorm.DB) ClassRepository { return &classRepo{db: db} }

func (r *classRepo) Create(ctx context.Context, c *model.Class) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *classRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var c model.Class
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *classRepo) List(ctx context.Context, q string) ([]model.Class, error) {
	var classes []model.Class
	tx := r.db.WithContext(ctx)
	if q != "" {
		tx = tx.Where("name LIKE ?", "%"+q+"%")
	}
	err := tx.Order("grade_level, name").Find(&classes).Error
	return classes, err
}

func (r *classRepo) Update(ctx context.Context, c *model.Class) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *classRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Class{}, "id = ?", id).Error
}

// ─── Subjects ────────────────────────────────────────────────────────────────

type SubjectRepository interface {
	Create(ctx context.Context, s *model.Subject) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	FindByCode(ctx context.Context, code string) (*model.Subject, error)
	List(ctx context.Context, q string) ([]model.Subject, error)
	Update(ctx context.Context, s *model.Subject) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subjectRepo struct{ db *gorm.DB }

func NewSubjectRepository(db *gorm.DB) SubjectRepository { return &subjectRepo{db: db} }

func (r *subjectRepo) Create(ctx context.Context, s *model.Subject) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	var s model.Subject
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *subjectRepo) FindByCode(ctx context.Context, code string) (*model.Subject, error) {
	var s model.Subject
	err := r.db.WithContext(ctx).First(&s, "kode_pelajaran = ?", code).Error
	return &s, err
}

func (r *subjectRepo) List(ctx context.Context, q string) ([]model.Subject, error) {
	var subjects []model.Subject
	tx := r.db.WithContext(ctx)
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("nama_pelajaran LIKE ? OR kode_pelajaran LIKE ?", like, like)
	}
	err := tx.Order("nama_pelajaran").Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) Update(ctx context.Context, s *model.Subject) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *subjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Subject{}, "id = ?", id).Error
}

// ─── Schedules ───────────────────────────────────────────────────────────────

type ScheduleRepository interface {
	Create(ctx context.Context, s *model.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	List(ctx context.Context, classID, teacherID *uuid.UUID) ([]model.Schedule, error)
	Update(ctx context.Context, s *model.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepo struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) ScheduleRepository { return &scheduleRepo{db: db} }

func (r *scheduleRepo) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *scheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	var s model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Class").Preload("Subject").Preload("Teacher").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *scheduleRepo) List(ctx context.Context, classID, teacherID *uuid.UUID) ([]model.Schedule, error) {
	var schedules []model.Schedule
	tx := r.db.WithContext(ctx).
		Preload("Class").Preload("Subject").Preload("Teacher")
	if classID != nil {
		tx = tx.Where("class_id = ?", *classID)
	}
	if teacherID != nil {
		tx = tx.Where("teacher_id = ?", *teacherID)
	}
	err := tx.Order("day_of_week, start_time").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) Update(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Schedule{}, "id = ?", id).Error
}

// ─── Parents ─────────────────────────────────────────────────────────────────

type ParentRepository interface {
	Create(ctx context.Context, p *model.ParentGuardian) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ParentGuardian, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.ParentGuardian, error)
	List(ctx context.Context, q string) ([]model.ParentGuardian, error)
	Update(ctx context.Context, p *model.ParentGuardian) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type parentRepo struct{ db *gorm.DB }

func NewParentRepository(db *gorm.DB) ParentRepository { return &parentRepo{db: db} }

func (r *parentRepo) Create(ctx context.Context, p *model.ParentGuardian) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *parentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ParentGuardian, error) {
	var p model.ParentGuardian
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *parentRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.ParentGuardian, error) {
	var p model.ParentGuardian
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	return &p, err
}

func (r *parentRepo) List(ctx context.Context, q string) ([]model.ParentGuardian, error) {
	var parents []model.ParentGuardian
	tx := r.db.WithContext(ctx)
	if q != "" {
		tx = tx.Where("name LIKE ?", "%"+q+"%")
	}
	err := tx.Order("name").Find(&parents).Error
	return parents, err
}

func (r *parentRepo) Update(ctx context.Context, p *model.ParentGuardian) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *parentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ParentGuardian{}, "id = ?", id).Error
}

// ─── Locations ───────────────────────────────────────────────────────────────

type LocationRepository interface {
	Create(ctx context.Context, l *model.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Location, error)
	ListActive(ctx context.Context) ([]model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
	Update(ctx context.Context, l *model.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationRepo struct{ db *gorm.DB }

func NewLocationRepository(db *gorm.DB) LocationRepository { return &locationRepo{db: db} }

func (r *locationRepo) Create(ctx context.Context, l *model.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *locationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	var l model.Location
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *locationRepo) ListActive(ctx context.Context) ([]model.Location, error) {
	var locs []model.Location
	err := r.db.WithContext(ctx).Where("active = true").Find(&locs).Error
	return locs, err
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locs []model.Location
	err := r.db.WithContext(ctx).Order("name").Find(&locs).Error
	return locs, err
}

func (r *locationRepo) Update(ctx context.Context, l *model.Location) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *locationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Location{}, "id = ?", id).Error
}
