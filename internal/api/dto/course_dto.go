package dto

import "github.com/tu-curso/course-service/internal/domain"

// CourseRequest payload for creating or updating a course.
type CourseRequest struct {
	Name     string  `json:"nombre"`
	Link     string  `json:"enlace"`
	Price    float64 `json:"precio"`
	Finished bool    `json:"finalizado"`
	Notes    string  `json:"anotaciones"`
	UserID   int64   `json:"usuarioId"`
}

// CourseResponse is the course projection returned to clients.
type CourseResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nombre"`
	Link     string  `json:"enlace"`
	Price    float64 `json:"precio"`
	Finished bool    `json:"finalizado"`
	Notes    string  `json:"anotaciones"`
	UserID   int64   `json:"usuarioId"`
}

// FromCourse maps a domain course.
func FromCourse(course domain.Course) CourseResponse {
	return CourseResponse{
		ID:       course.ID,
		Name:     course.Name,
		Link:     course.Link,
		Price:    course.Price,
		Finished: course.Finished,
		Notes:    course.Notes,
		UserID:   course.UserID,
	}
}

// FromCourses maps a slice of domain courses.
func FromCourses(courses []domain.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, FromCourse(course))
	}
	return out
}
