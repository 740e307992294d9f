package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tu-curso/course-service/internal/domain"
)

type mockUserRepo struct {
	CreateFn         func(ctx context.Context, user *domain.User) error
	UpdateFn         func(ctx context.Context, user *domain.User) error
	DeleteFn         func(ctx context.Context, id int64) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	ListFn           func(ctx context.Context) ([]domain.User, error)
	CountFn          func(ctx context.Context) (int64, error)
	UpdatePasswordFn func(ctx context.Context, id int64, passwordHash string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

type mockFriendshipRepo struct {
	AddFriendFn        func(ctx context.Context, userID, friendID int64) error
	RemoveFriendFn     func(ctx context.Context, userID, friendID int64) error
	ListFriendsFn      func(ctx context.Context, userID int64) ([]domain.User, error)
	AreFriendsFn       func(ctx context.Context, userID, friendID int64) (bool, error)
	CountFriendsFn     func(ctx context.Context, userID int64) (int64, error)
	SearchNonFriendsFn func(ctx context.Context, userID int64, name string) ([]domain.User, error)
}

func (m *mockFriendshipRepo) AddFriend(ctx context.Context, userID, friendID int64) error {
	if m.AddFriendFn != nil {
		return m.AddFriendFn(ctx, userID, friendID)
	}
	return nil
}

func (m *mockFriendshipRepo) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if m.RemoveFriendFn != nil {
		return m.RemoveFriendFn(ctx, userID, friendID)
	}
	return nil
}

func (m *mockFriendshipRepo) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	if m.ListFriendsFn != nil {
		return m.ListFriendsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFriendshipRepo) AreFriends(ctx context.Context, userID, friendID int64) (bool, error) {
	if m.AreFriendsFn != nil {
		return m.AreFriendsFn(ctx, userID, friendID)
	}
	return false, nil
}

func (m *mockFriendshipRepo) CountFriends(ctx context.Context, userID int64) (int64, error) {
	if m.CountFriendsFn != nil {
		return m.CountFriendsFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockFriendshipRepo) SearchNonFriends(ctx context.Context, userID int64, name string) ([]domain.User, error) {
	if m.SearchNonFriendsFn != nil {
		return m.SearchNonFriendsFn(ctx, userID, name)
	}
	return nil, nil
}

type mockFriendRequestRepo struct {
	CreateFn          func(ctx context.Context, request *domain.FriendRequest) error
	GetByIDFn         func(ctx context.Context, id int64) (*domain.FriendRequest, error)
	DeleteFn          func(ctx context.Context, id int64) error
	ListByReceiverFn  func(ctx context.Context, receiverID int64) ([]domain.FriendRequest, error)
	ListBySenderFn    func(ctx context.Context, senderID int64) ([]domain.FriendRequest, error)
	ExistsPendingFn   func(ctx context.Context, userID, otherID int64) (bool, error)
	CountByReceiverFn func(ctx context.Context, receiverID int64) (int64, error)
}

func (m *mockFriendRequestRepo) Create(ctx context.Context, request *domain.FriendRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, request)
	}
	return nil
}

func (m *mockFriendRequestRepo) GetByID(ctx context.Context, id int64) (*domain.FriendRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockFriendRequestRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockFriendRequestRepo) ListByReceiver(ctx context.Context, receiverID int64) ([]domain.FriendRequest, error) {
	if m.ListByReceiverFn != nil {
		return m.ListByReceiverFn(ctx, receiverID)
	}
	return nil, nil
}

func (m *mockFriendRequestRepo) ListBySender(ctx context.Context, senderID int64) ([]domain.FriendRequest, error) {
	if m.ListBySenderFn != nil {
		return m.ListBySenderFn(ctx, senderID)
	}
	return nil, nil
}

func (m *mockFriendRequestRepo) ExistsPending(ctx context.Context, userID, otherID int64) (bool, error) {
	if m.ExistsPendingFn != nil {
		return m.ExistsPendingFn(ctx, userID, otherID)
	}
	return false, nil
}

func (m *mockFriendRequestRepo) CountByReceiver(ctx context.Context, receiverID int64) (int64, error) {
	if m.CountByReceiverFn != nil {
		return m.CountByReceiverFn(ctx, receiverID)
	}
	return 0, nil
}

func userFixture(id int64, email string, role domain.Role, passwordHash string) *domain.User {
	return &domain.User{
		ID:           id,
		Name:         "Usuario " + email,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
}
