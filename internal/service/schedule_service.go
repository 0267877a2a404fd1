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

type ScheduleService interface {
	Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, error)
	List(ctx context.Context, classID, teacherID *uuid.UUID) ([]dto.ScheduleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct{ repo repository.ScheduleRepository }

func NewScheduleService(repo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

func mapSchedule(m *model.Schedule) dto.ScheduleResponse {
	resp := dto.ScheduleResponse{
		ID:        m.ID.String(),
		ClassID:   m.ClassID.String(),
		SubjectID: m.SubjectID.String(),
		TeacherID: m.TeacherID.String(),
		DayOfWeek: m.DayOfWeek,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
	}
	if m.Class != nil {
		resp.ClassName = m.Class.Name
	}
	if m.Subject != nil {
		resp.SubjectName = m.Subject.NamaPelajaran
	}
	if m.Teacher != nil {
		resp.TeacherName = m.Teacher.Name
	}
	return resp
}

func (s *scheduleService) Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, err
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return nil, err
	}
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return nil, err
	}
	m := &model.Schedule{
		ClassID:   classID,
		SubjectID: subjectID,
		TeacherID: teacherID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := mapSchedule(m)
	return &resp, nil
}

func (s *scheduleService) Get(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	resp := mapSchedule(m)
	return &resp, nil
}

func (s *scheduleService) List(ctx context.Context, classID, teacherID *uuid.UUID) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.List(ctx, classID, teacherID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, mapSchedule(&schedules[i]))
	}
	return result, nil
}

func (s *scheduleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	if req.ClassID != "" {
		if m.ClassID, err = uuid.Parse(req.ClassID); err != nil {
			return nil, err
		}
	}
	if req.SubjectID != "" {
		if m.SubjectID, err = uuid.Parse(req.SubjectID); err != nil {
			return nil, err
		}
	}
	if req.TeacherID != "" {
		if m.TeacherID, err = uuid.Parse(req.TeacherID); err != nil {
			return nil, err
		}
	}
	if req.DayOfWeek != 0 {
		m.DayOfWeek = req.DayOfWeek
	}
	if req.StartTime != "" {
		m.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		m.EndTime = req.EndTime
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := mapSchedule(m)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
