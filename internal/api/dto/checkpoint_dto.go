package dto

import (
	"time"

	"github.com/tu-curso/course-service/internal/domain"
)

// CheckpointRequest payload for creating or updating a checkpoint.
type CheckpointRequest struct {
	Description string    `json:"descripcion"`
	DueDate     time.Time `json:"fechaFinalizacionDeseada"`
	Completed   bool      `json:"estaCompletado"`
	CourseID    int64     `json:"cursoId"`
}

// CheckpointCompletedRequest toggles completion state.
type CheckpointCompletedRequest struct {
	Completed bool `json:"completado"`
}

// CheckpointResponse is the checkpoint projection returned to clients.
type CheckpointResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"descripcion"`
	DueDate     time.Time `json:"fechaFinalizacionDeseada"`
	Completed   bool      `json:"estaCompletado"`
	CourseID    int64     `json:"cursoId"`
}

// FromCheckpoint maps a domain checkpoint.
func FromCheckpoint(checkpoint domain.Checkpoint) CheckpointResponse {
	return CheckpointResponse{
		ID:          checkpoint.ID,
		Description: checkpoint.Description,
		DueDate:     checkpoint.DueDate,
		Completed:   checkpoint.Completed,
		CourseID:    checkpoint.CourseID,
	}
}

// FromCheckpoints maps a slice of domain checkpoints.
func FromCheckpoints(checkpoints []domain.Checkpoint) []CheckpointResponse {
	out := make([]CheckpointResponse, 0, len(checkpoints))
	for _, checkpoint := range checkpoints {
		out = append(out, FromCheckpoint(checkpoint))
	}
	return out
}
