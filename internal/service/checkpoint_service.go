package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/events"
	"github.com/tu-curso/course-service/internal/repository"
)

// CheckpointInput carries checkpoint fields for creation and updates.
type CheckpointInput struct {
	Description string
	DueDate     time.Time
	Completed   bool
}

// CheckpointService coordinates checkpoint workflows.
type CheckpointService struct {
	checkpoints repository.CheckpointRepository
	courses     repository.CourseRepository
	dispatcher  events.Dispatcher
}

// NewCheckpointService builds the service.
func NewCheckpointService(checkpoints repository.CheckpointRepository, courses repository.CourseRepository, dispatcher events.Dispatcher) *CheckpointService {
	return &CheckpointService{checkpoints: checkpoints, courses: courses, dispatcher: dispatcher}
}

// Create registers a checkpoint under an existing course.
func (s *CheckpointService) Create(ctx context.Context, courseID int64, input CheckpointInput) (*domain.Checkpoint, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	checkpoint := &domain.Checkpoint{
		Description: input.Description,
		DueDate:     input.DueDate,
		Completed:   input.Completed,
		CourseID:    courseID,
	}
	if err := s.checkpoints.Create(ctx, checkpoint); err != nil {
		return nil, err
	}
	return checkpoint, nil
}

// Update replaces the fields of an existing checkpoint.
func (s *CheckpointService) Update(ctx context.Context, id int64, input CheckpointInput) error {
	checkpoint, err := s.checkpoints.GetByID(ctx, id)
	if err != nil {
		return err
	}

	checkpoint.Description = input.Description
	checkpoint.DueDate = input.DueDate
	checkpoint.Completed = input.Completed
	return s.checkpoints.Update(ctx, checkpoint)
}

// SetCompleted toggles completion and publishes an event when a checkpoint
// is marked done.
func (s *CheckpointService) SetCompleted(ctx context.Context, id int64, completed bool) error {
	checkpoint, err := s.checkpoints.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkpoints.SetCompleted(ctx, id, completed); err != nil {
		return err
	}

	if completed && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCheckpointCompleted,
			Timestamp: time.Now(),
			Payload: events.CheckpointCompletedPayload{
				CheckpointID: checkpoint.ID,
				CourseID:     checkpoint.CourseID,
				Completed:    completed,
			},
		})
	}
	return nil
}

// Delete removes a checkpoint.
func (s *CheckpointService) Delete(ctx context.Context, id int64) error {
	return s.checkpoints.Delete(ctx, id)
}

// GetByID returns a single checkpoint.
func (s *CheckpointService) GetByID(ctx context.Context, id int64) (*domain.Checkpoint, error) {
	return s.checkpoints.GetByID(ctx, id)
}

// List returns all checkpoints.
func (s *CheckpointService) List(ctx context.Context) ([]domain.Checkpoint, error) {
	return s.checkpoints.List(ctx)
}

// ListByCourse returns the checkpoints of one course.
func (s *CheckpointService) ListByCourse(ctx context.Context, courseID int64) ([]domain.Checkpoint, error) {
	return s.checkpoints.ListByCourse(ctx, courseID)
}

// ListPending returns all checkpoints not yet completed.
func (s *CheckpointService) ListPending(ctx context.Context) ([]domain.Checkpoint, error) {
	return s.checkpoints.ListPending(ctx)
}

// CountByCourse returns the number of checkpoints of one course.
func (s *CheckpointService) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	return s.checkpoints.CountByCourse(ctx, courseID)
}

// CountCompletedByCourse returns the number of completed checkpoints of one
// course.
func (s *CheckpointService) CountCompletedByCourse(ctx context.Context, courseID int64) (int64, error) {
	return s.checkpoints.CountCompletedByCourse(ctx, courseID)
}
