package events

import (
	"time"

	"github.com/tu-curso/course-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered        EventType = "user_registered"
	EventFriendRequestSent     EventType = "friend_request_sent"
	EventFriendRequestAccepted EventType = "friend_request_accepted"
	EventCheckpointCompleted   EventType = "checkpoint_completed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// FriendRequestPayload payload for sent/accepted requests.
type FriendRequestPayload struct {
	RequestID  int64 `json:"request_id"`
	SenderID   int64 `json:"sender_id"`
	ReceiverID int64 `json:"receiver_id"`
}

// CheckpointCompletedPayload payload.
type CheckpointCompletedPayload struct {
	CheckpointID int64 `json:"checkpoint_id"`
	CourseID     int64 `json:"course_id"`
	Completed    bool  `json:"completed"`
}
