package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/events"
	"github.com/tu-curso/course-service/internal/repository"
)

// FriendRequestDetail pairs a request with the resolved sender and receiver
// records.
type FriendRequestDetail struct {
	Request  domain.FriendRequest
	Sender   domain.User
	Receiver domain.User
}

// FriendRequestService coordinates the friendship invitation workflow.
type FriendRequestService struct {
	requests    repository.FriendRequestRepository
	friendships repository.FriendshipRepository
	users       repository.UserRepository
	dispatcher  events.Dispatcher
}

// NewFriendRequestService builds the service.
func NewFriendRequestService(requests repository.FriendRequestRepository, friendships repository.FriendshipRepository, users repository.UserRepository, dispatcher events.Dispatcher) *FriendRequestService {
	return &FriendRequestService{
		requests:    requests,
		friendships: friendships,
		users:       users,
		dispatcher:  dispatcher,
	}
}

// Send creates a pending invitation. Self-requests, unknown users, existing
// friendships and duplicate pending requests are rejected.
func (s *FriendRequestService) Send(ctx context.Context, senderID, receiverID int64) error {
	if senderID == receiverID {
		return errors.New("no puedes enviarte una solicitud a ti mismo")
	}
	if _, err := s.users.GetByID(ctx, senderID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		return err
	}

	friends, err := s.friendships.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		return err
	}
	if friends {
		return errors.New("los usuarios ya son amigos")
	}

	pending, err := s.requests.ExistsPending(ctx, senderID, receiverID)
	if err != nil {
		return err
	}
	if pending {
		return errors.New("ya existe una solicitud pendiente")
	}

	request := &domain.FriendRequest{SenderID: senderID, ReceiverID: receiverID}
	if err := s.requests.Create(ctx, request); err != nil {
		return err
	}

	s.publish(ctx, events.EventFriendRequestSent, request)
	return nil
}

// Accept establishes the friendship and removes the request.
func (s *FriendRequestService) Accept(ctx context.Context, requestID int64) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if err := s.friendships.AddFriend(ctx, request.SenderID, request.ReceiverID); err != nil {
		return err
	}
	if err := s.requests.Delete(ctx, requestID); err != nil {
		return err
	}

	s.publish(ctx, events.EventFriendRequestAccepted, request)
	return nil
}

// Reject discards a pending request.
func (s *FriendRequestService) Reject(ctx context.Context, requestID int64) error {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return err
	}
	return s.requests.Delete(ctx, requestID)
}

// ListReceived returns the pending requests addressed to a user, with sender
// and receiver resolved.
func (s *FriendRequestService) ListReceived(ctx context.Context, receiverID int64) ([]FriendRequestDetail, error) {
	requests, err := s.requests.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, requests)
}

// ListSent returns the pending requests a user has sent, with sender and
// receiver resolved.
func (s *FriendRequestService) ListSent(ctx context.Context, senderID int64) ([]FriendRequestDetail, error) {
	requests, err := s.requests.ListBySender(ctx, senderID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, requests)
}

// ExistsPending reports whether an invitation is pending between two users
// in either direction.
func (s *FriendRequestService) ExistsPending(ctx context.Context, userID, otherID int64) (bool, error) {
	return s.requests.ExistsPending(ctx, userID, otherID)
}

// CountReceived returns the number of pending requests addressed to a user.
func (s *FriendRequestService) CountReceived(ctx context.Context, receiverID int64) (int64, error) {
	return s.requests.CountByReceiver(ctx, receiverID)
}

func (s *FriendRequestService) resolve(ctx context.Context, requests []domain.FriendRequest) ([]FriendRequestDetail, error) {
	details := make([]FriendRequestDetail, 0, len(requests))
	for _, request := range requests {
		sender, err := s.users.GetByID(ctx, request.SenderID)
		if err != nil {
			return nil, err
		}
		receiver, err := s.users.GetByID(ctx, request.ReceiverID)
		if err != nil {
			return nil, err
		}
		details = append(details, FriendRequestDetail{
			Request:  request,
			Sender:   *sender,
			Receiver: *receiver,
		})
	}
	return details, nil
}

func (s *FriendRequestService) publish(ctx context.Context, eventType events.EventType, request *domain.FriendRequest) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    request.SenderID,
		Timestamp: time.Now(),
		Payload: events.FriendRequestPayload{
			RequestID:  request.ID,
			SenderID:   request.SenderID,
			ReceiverID: request.ReceiverID,
		},
	})
}
