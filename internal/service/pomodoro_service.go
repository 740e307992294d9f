package service

import (
	"context"
	"errors"
	"time"

	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/repository"
)

// PomodoroService coordinates pomodoro session workflows.
type PomodoroService struct {
	pomodoros repository.PomodoroRepository
	users     repository.UserRepository
}

// NewPomodoroService builds the service.
func NewPomodoroService(pomodoros repository.PomodoroRepository, users repository.UserRepository) *PomodoroService {
	return &PomodoroService{pomodoros: pomodoros, users: users}
}

// Create registers a session for an existing user.
func (s *PomodoroService) Create(ctx context.Context, userID int64, startAt, endAt time.Time) (*domain.Pomodoro, error) {
	if !endAt.After(startAt) {
		return nil, errors.New("la fecha de fin debe ser posterior a la de inicio")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	pomodoro := &domain.Pomodoro{StartAt: startAt, EndAt: endAt, UserID: userID}
	if err := s.pomodoros.Create(ctx, pomodoro); err != nil {
		return nil, err
	}
	return pomodoro, nil
}

// Update replaces the timestamps of an existing session.
func (s *PomodoroService) Update(ctx context.Context, id int64, startAt, endAt time.Time) error {
	pomodoro, err := s.pomodoros.GetByID(ctx, id)
	if err != nil {
		return err
	}

	pomodoro.StartAt = startAt
	pomodoro.EndAt = endAt
	return s.pomodoros.Update(ctx, pomodoro)
}

// Delete removes a session.
func (s *PomodoroService) Delete(ctx context.Context, id int64) error {
	return s.pomodoros.Delete(ctx, id)
}

// GetByID returns a single session.
func (s *PomodoroService) GetByID(ctx context.Context, id int64) (*domain.Pomodoro, error) {
	return s.pomodoros.GetByID(ctx, id)
}

// List returns all sessions.
func (s *PomodoroService) List(ctx context.Context) ([]domain.Pomodoro, error) {
	return s.pomodoros.List(ctx)
}

// ListByUser returns the sessions of one user.
func (s *PomodoroService) ListByUser(ctx context.Context, userID int64) ([]domain.Pomodoro, error) {
	return s.pomodoros.ListByUser(ctx, userID)
}

// ListBetween returns sessions started inside the given window.
func (s *PomodoroService) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Pomodoro, error) {
	return s.pomodoros.ListBetween(ctx, from, to)
}

// CountByUser returns the number of sessions of one user.
func (s *PomodoroService) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return s.pomodoros.CountByUser(ctx, userID)
}
