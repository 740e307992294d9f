package dto

import (
	"time"

	"github.com/tu-curso/course-service/internal/domain"
)

// PomodoroRequest payload for creating or updating a pomodoro session.
type PomodoroRequest struct {
	StartAt time.Time `json:"fechaHoraInicial"`
	EndAt   time.Time `json:"fechaHoraDestino"`
	UserID  int64     `json:"usuarioId"`
}

// PomodoroResponse is the pomodoro projection returned to clients.
type PomodoroResponse struct {
	ID      int64     `json:"id"`
	StartAt time.Time `json:"fechaHoraInicial"`
	EndAt   time.Time `json:"fechaHoraDestino"`
	UserID  int64     `json:"usuarioId"`
}

// FromPomodoro maps a domain pomodoro.
func FromPomodoro(pomodoro domain.Pomodoro) PomodoroResponse {
	return PomodoroResponse{
		ID:      pomodoro.ID,
		StartAt: pomodoro.StartAt,
		EndAt:   pomodoro.EndAt,
		UserID:  pomodoro.UserID,
	}
}

// FromPomodoros maps a slice of domain pomodoros.
func FromPomodoros(pomodoros []domain.Pomodoro) []PomodoroResponse {
	out := make([]PomodoroResponse, 0, len(pomodoros))
	for _, pomodoro := range pomodoros {
		out = append(out, FromPomodoro(pomodoro))
	}
	return out
}
