package service

import (
	"context"

	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/repository"
)

// CourseInput carries course fields for creation and updates.
type CourseInput struct {
	Name     string
	Link     string
	Price    float64
	Finished bool
	Notes    string
}

// CourseService coordinates course workflows.
type CourseService struct {
	courses repository.CourseRepository
	users   repository.UserRepository
}

// NewCourseService builds the service.
func NewCourseService(courses repository.CourseRepository, users repository.UserRepository) *CourseService {
	return &CourseService{courses: courses, users: users}
}

// Create registers a course for an existing user.
func (s *CourseService) Create(ctx context.Context, userID int64, input CourseInput) (*domain.Course, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	course := &domain.Course{
		Name:     input.Name,
		Link:     input.Link,
		Price:    input.Price,
		Finished: input.Finished,
		Notes:    input.Notes,
		UserID:   userID,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update replaces the fields of an existing course.
func (s *CourseService) Update(ctx context.Context, id int64, input CourseInput) error {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return err
	}

	course.Name = input.Name
	course.Link = input.Link
	course.Price = input.Price
	course.Finished = input.Finished
	course.Notes = input.Notes
	return s.courses.Update(ctx, course)
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}

// GetByID returns a single course.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// List returns all courses.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

// ListByUser returns the courses of one user.
func (s *CourseService) ListByUser(ctx context.Context, userID int64) ([]domain.Course, error) {
	return s.courses.ListByUser(ctx, userID)
}

// CountByUser returns the number of courses of one user.
func (s *CourseService) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return s.courses.CountByUser(ctx, userID)
}

// Count returns the total number of courses.
func (s *CourseService) Count(ctx context.Context) (int64, error) {
	return s.courses.Count(ctx)
}
