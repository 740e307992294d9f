package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-curso/course-service/internal/auth"
	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/events"
)

func newUserService(users *mockUserRepo, friendships *mockFriendshipRepo, dispatcher events.Dispatcher) *UserService {
	return NewUserService(users, friendships, dispatcher, bcrypt.MinCost)
}

func TestCreateUserHashesPasswordAndPublishes(t *testing.T) {
	var stored *domain.User
	users := &mockUserRepo{
		CreateFn: func(_ context.Context, user *domain.User) error {
			user.ID = 42
			stored = user
			return nil
		},
	}
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := newUserService(users, &mockFriendshipRepo{}, dispatcher)
	user, err := svc.Create(context.Background(), UserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "secreto123"))

	require.Len(t, published, 1)
	assert.Equal(t, int64(42), published[0].UserID)
}

func TestCreateAdminAssignsAdminRole(t *testing.T) {
	users := &mockUserRepo{
		CreateFn: func(_ context.Context, user *domain.User) error {
			user.ID = 1
			return nil
		},
	}

	svc := newUserService(users, &mockFriendshipRepo{}, nil)
	user, err := svc.CreateAdmin(context.Background(), UserInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestCreateUserRequiresMandatoryFields(t *testing.T) {
	svc := newUserService(&mockUserRepo{}, &mockFriendshipRepo{}, nil)

	_, err := svc.Create(context.Background(), UserInput{Email: "ana@example.com", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), UserInput{Name: "Ana", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), UserInput{Name: "Ana", Email: "ana@example.com"})
	assert.Error(t, err)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return userFixture(1, email, domain.RoleUser, "hash"), nil
		},
		CreateFn: func(context.Context, *domain.User) error {
			t.Error("create must not run for a duplicate email")
			return nil
		},
	}

	svc := newUserService(users, &mockFriendshipRepo{}, nil)
	_, err := svc.Create(context.Background(), UserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	assert.Error(t, err)
}

func TestChangePasswordRejectsEmpty(t *testing.T) {
	svc := newUserService(&mockUserRepo{}, &mockFriendshipRepo{}, nil)
	assert.Error(t, svc.ChangePassword(context.Background(), 1, ""))
}

func TestChangePasswordStoresHash(t *testing.T) {
	var storedHash string
	users := &mockUserRepo{
		UpdatePasswordFn: func(_ context.Context, id int64, passwordHash string) error {
			assert.Equal(t, int64(3), id)
			storedHash = passwordHash
			return nil
		},
	}

	svc := newUserService(users, &mockFriendshipRepo{}, nil)
	require.NoError(t, svc.ChangePassword(context.Background(), 3, "nueva-clave"))
	assert.NoError(t, auth.ComparePassword(storedHash, "nueva-clave"))
}

func TestAddFriendRejectsSelf(t *testing.T) {
	friendships := &mockFriendshipRepo{
		AddFriendFn: func(context.Context, int64, int64) error {
			t.Error("friendship must not be created with oneself")
			return nil
		},
	}

	svc := newUserService(&mockUserRepo{}, friendships, nil)
	assert.Error(t, svc.AddFriend(context.Background(), 5, 5))
}

func TestAddFriendRequiresBothUsers(t *testing.T) {
	users := &mockUserRepo{
		GetByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			if id == 1 {
				return userFixture(1, "ana@example.com", domain.RoleUser, "hash"), nil
			}
			return nil, assert.AnError
		},
	}

	svc := newUserService(users, &mockFriendshipRepo{}, nil)
	assert.Error(t, svc.AddFriend(context.Background(), 1, 99))
}

func TestAddFriendSuccess(t *testing.T) {
	users := &mockUserRepo{
		GetByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			return userFixture(id, "u@example.com", domain.RoleUser, "hash"), nil
		},
	}

	var linked [2]int64
	friendships := &mockFriendshipRepo{
		AddFriendFn: func(_ context.Context, userID, friendID int64) error {
			linked = [2]int64{userID, friendID}
			return nil
		},
	}

	svc := newUserService(users, friendships, nil)
	require.NoError(t, svc.AddFriend(context.Background(), 1, 2))
	assert.Equal(t, [2]int64{1, 2}, linked)
}
