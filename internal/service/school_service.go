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

// CRUD services for the timetable reference data.

var (
	ErrTeacherNotFound  = errors.New("guru tidak ditemukan")
	ErrClassNotFound    = errors.New("kelas tidak ditemukan")
	ErrSubjectNotFound  = errors.New("mata pelajaran tidak ditemukan")
	ErrDuplicateSubject = errors.New("kode pelajaran sudah digunakan")
	ErrParentNotFound   = errors.New("wali tidak ditemukan")
	ErrLocationNotFound = errors.New("lokasi tidak ditemukan")
)

// ─── Teachers ────────────────────────────────────────────────────────────────

type TeacherService interface {
	Create(ctx context.Context, req dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TeacherResponse, error)
	List(ctx context.Context, q string) ([]dto.TeacherResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type teacherService struct{ repo repository.TeacherRepository }

func NewTeacherService(repo repository.TeacherRepository) TeacherService {
	return &teacherService{repo: repo}
}

func mapTeacher(t *model.Teacher) dto.TeacherResponse {
	resp := dto.TeacherResponse{
		ID:    t.ID.String(),
		NIP:   t.NIP,
		Name:  t.Name,
		Phone: t.Phone,
	}
	if t.SubjectID != nil {
		v := t.SubjectID.String()
		resp.SubjectID = &v
	}
	if t.Subject != nil {
		resp.SubjectName = t.Subject.NamaPelajaran
	}
	return resp
}

func (s *teacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	t := &model.Teacher{NIP: req.NIP, Name: req.Name, Phone: req.Phone}
	var err error
	if t.SubjectID, err = parseOptionalUUID(req.SubjectID); err != nil {
		return nil, err
	}
	if t.UserID, err = parseOptionalUUID(req.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := mapTeacher(t)
	return &resp, nil
}

func (s *teacherService) Get(ctx context.Context, id uuid.UUID) (*dto.TeacherResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	resp := mapTeacher(t)
	return &resp, nil
}

func (s *teacherService) List(ctx context.Context, q string) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, mapTeacher(&teachers[i]))
	}
	return result, nil
}

func (s *teacherService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	if req.NIP != "" {
		t.NIP = req.NIP
	}
	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Phone != nil {
		t.Phone = req.Phone
	}
	if req.SubjectID != nil {
		if t.SubjectID, err = parseOptionalUUID(req.SubjectID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := mapTeacher(t)
	return &resp, nil
}

func (s *teacherService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ─── Classes ─────────────────────────────────────────────────────────────────

type ClassService interface {
	Create(ctx context.Context, req dto.CreateClassRequest) (*dto.ClassResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ClassResponse, error)
	List(ctx context.Context, q string) ([]dto.ClassResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type classService struct{ repo repository.ClassRepository }

func NewClassService(repo repository.ClassRepository) ClassService {
	return &classService{repo: repo}
}

func mapClass(c *model.Class) dto.ClassResponse {
	resp := dto.ClassResponse{
		ID:         c.ID.String(),
		Name:       c.Name,
		GradeLevel: c.GradeLevel,
	}
	if c.HomeroomTeacherID != nil {
		v := c.HomeroomTeacherID.String()
		resp.HomeroomTeacherID = &v
	}
	return resp
}

func (s *classService) Create(ctx context.Context, req dto.CreateClassRequest) (*dto.ClassResponse, error) {
	c := &model.Class{Name: req.Name, GradeLevel: req.GradeLevel}
	var err error
	if c.HomeroomTeacherID, err = parseOptionalUUID(req.HomeroomTeacherID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := mapClass(c)
	return &resp, nil
}

func (s *classService) Get(ctx context.Context, id uuid.UUID) (*dto.ClassResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	resp := mapClass(c)
	return &resp, nil
}

func (s *classService) List(ctx context.Context, q string) ([]dto.ClassResponse, error) {
	classes, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		result = append(result, mapClass(&classes[i]))
	}
	return result, nil
}

func (s *classService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if req.Name != "" {
		c.Name = req.Name
	}
	if req.GradeLevel != 0 {
		c.GradeLevel = req.GradeLevel
	}
	if req.HomeroomTeacherID != nil {
		if c.HomeroomTeacherID, err = parseOptionalUUID(req.HomeroomTeacherID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := mapClass(c)
	return &resp, nil
}

func (s *classService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ─── Subjects ────────────────────────────────────────────────────────────────

type SubjectService interface {
	Create(ctx context.Context, req dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SubjectResponse, error)
	List(ctx context.Context, q string) ([]dto.SubjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type subjectService struct{ repo repository.SubjectRepository }

func NewSubjectService(repo repository.SubjectRepository) SubjectService {
	return &subjectService{repo: repo}
}

func mapSubject(m *model.Subject) dto.SubjectResponse {
	return dto.SubjectResponse{
		ID:            m.ID.String(),
		NamaPelajaran: m.NamaPelajaran,
		KodePelajaran: m.KodePelajaran,
	}
}

func (s *subjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	existing, err := s.repo.FindByCode(ctx, req.KodePelajaran)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, ErrDuplicateSubject
	}
	m := &model.Subject{NamaPelajaran: req.NamaPelajaran, KodePelajaran: req.KodePelajaran}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := mapSubject(m)
	return &resp, nil
}

func (s *subjectService) Get(ctx context.Context, id uuid.UUID) (*dto.SubjectResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	resp := mapSubject(m)
	return &resp, nil
}

func (s *subjectService) List(ctx context.Context, q string) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, mapSubject(&subjects[i]))
	}
	return result, nil
}

func (s *subjectService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	if req.NamaPelajaran != "" {
		m.NamaPelajaran = req.NamaPelajaran
	}
	if req.KodePelajaran != "" {
		m.KodePelajaran = req.KodePelajaran
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := mapSubject(m)
	return &resp, nil
}

func (s *subjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ─── Parents ─────────────────────────────────────────────────────────────────

type ParentService interface {
	Create(ctx context.Context, req dto.CreateParentRequest) (*dto.ParentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ParentResponse, error)
	List(ctx context.Context, q string) ([]dto.ParentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateParentRequest) (*dto.ParentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type parentService struct{ repo repository.ParentRepository }

func NewParentService(repo repository.ParentRepository) ParentService {
	return &parentService{repo: repo}
}

func mapParent(p *model.ParentGuardian) dto.ParentResponse {
	return dto.ParentResponse{
		ID:      p.ID.String(),
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
	}
}

func (s *parentService) Create(ctx context.Context, req dto.CreateParentRequest) (*dto.ParentResponse, error) {
	p := &model.ParentGuardian{Name: req.Name, Phone: req.Phone, Address: req.Address}
	var err error
	if p.UserID, err = parseOptionalUUID(req.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapParent(p)
	return &resp, nil
}

func (s *parentService) Get(ctx context.Context, id uuid.UUID) (*dto.ParentResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}
	resp := mapParent(p)
	return &resp, nil
}

func (s *parentService) List(ctx context.Context, q string) ([]dto.ParentResponse, error) {
	parents, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ParentResponse, 0, len(parents))
	for i := range parents {
		result = append(result, mapParent(&parents[i]))
	}
	return result, nil
}

func (s *parentService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateParentRequest) (*dto.ParentResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Address != nil {
		p.Address = req.Address
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := mapParent(p)
	return &resp, nil
}

func (s *parentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParentNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ─── Locations ───────────────────────────────────────────────────────────────

type LocationService interface {
	Create(ctx context.Context, req dto.CreateLocationRequest) (*dto.LocationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, error)
	List(ctx context.Context) ([]dto.LocationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationService struct{ repo repository.LocationRepository }

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{repo: repo}
}

func mapLocation(l *model.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		RadiusM:   l.RadiusM,
		Active:    l.Active,
	}
}

func (s *locationService) Create(ctx context.Context, req dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	l := &model.Location{
		Name:      req.Name,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		RadiusM:   req.RadiusM,
		Active:    true,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	resp := mapLocation(l)
	return &resp, nil
}

func (s *locationService) Get(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	resp := mapLocation(l)
	return &resp, nil
}

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.LocationResponse, 0, len(locs))
	for i := range locs {
		result = append(result, mapLocation(&locs[i]))
	}
	return result, nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	if req.Name != "" {
		l.Name = req.Name
	}
	if req.Latitude != nil {
		l.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		l.Longitude = *req.Longitude
	}
	if req.RadiusM != nil {
		l.RadiusM = *req.RadiusM
	}
	if req.Active != nil {
		l.Active = *req.Active
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	resp := mapLocation(l)
	return &resp, nil
}

func (s *locationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
