package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-curso/course-service/internal/auth"
	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/events"
	"github.com/tu-curso/course-service/internal/repository"
)

// UserInput carries profile fields for account creation and updates.
type UserInput struct {
	Name        string
	Email       string
	Password    string
	Description string
	Icon        string
}

// UserService coordinates account and friendship workflows.
type UserService struct {
	users       repository.UserRepository
	friendships repository.FriendshipRepository
	dispatcher  events.Dispatcher
	bcryptCost  int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, friendships repository.FriendshipRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{
		users:       users,
		friendships: friendships,
		dispatcher:  dispatcher,
		bcryptCost:  bcryptCost,
	}
}

// Create registers a new account with the USER role.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	return s.create(ctx, input, domain.RoleUser)
}

// CreateAdmin registers a new account with the ADMIN role.
func (s *UserService) CreateAdmin(ctx context.Context, input UserInput) (*domain.User, error) {
	return s.create(ctx, input, domain.RoleAdmin)
}

func (s *UserService) create(ctx context.Context, input UserInput, role domain.Role) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.New("nombre, email y pass son obligatorios")
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.New("el email ya está registrado")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Description:  input.Description,
		Email:        input.Email,
		PasswordHash: hash,
		Icon:         input.Icon,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			UserID:    user.ID,
			Timestamp: time.Now(),
			Payload:   events.UserRegisteredPayload{Email: user.Email, Role: user.Role},
		})
	}
	return user, nil
}

// Update replaces the profile fields of an existing user, re-hashing the
// password.
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.PasswordHash = hash
	user.Description = input.Description
	user.Icon = input.Icon
	return s.users.Update(ctx, user)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// GetByEmail resolves a user by login subject.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// Count returns the total number of users.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

// ChangePassword sets a new password for the user.
func (s *UserService) ChangePassword(ctx context.Context, id int64, newPassword string) error {
	if newPassword == "" {
		return errors.New("la contraseña no puede estar vacía")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, hash)
}

// AddFriend links two existing users as friends.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return errors.New("un usuario no puede ser amigo de sí mismo")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, friendID); err != nil {
		return err
	}
	return s.friendships.AddFriend(ctx, userID, friendID)
}

// RemoveFriend severs a friendship.
func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return s.friendships.RemoveFriend(ctx, userID, friendID)
}

// Friends lists the friends of a user.
func (s *UserService) Friends(ctx context.Context, userID int64) ([]domain.User, error) {
	return s.friendships.ListFriends(ctx, userID)
}

// AreFriends reports whether two users are friends.
func (s *UserService) AreFriends(ctx context.Context, userID, friendID int64) (bool, error) {
	return s.friendships.AreFriends(ctx, userID, friendID)
}

// CountFriends returns a user's friend count.
func (s *UserService) CountFriends(ctx context.Context, userID int64) (int64, error) {
	return s.friendships.CountFriends(ctx, userID)
}

// SearchCandidates finds users matching a name who are not yet friends of
// the given user.
func (s *UserService) SearchCandidates(ctx context.Context, userID int64, name string) ([]domain.User, error) {
	return s.friendships.SearchNonFriends(ctx, userID, name)
}
