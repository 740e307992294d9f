package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-curso/course-service/internal/domain"
)

// FriendshipRepository manages the symmetric friendship relation. Both
// directions are stored so lookups stay single-sided.
type FriendshipRepository interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	ListFriends(ctx context.Context, userID int64) ([]domain.User, error)
	AreFriends(ctx context.Context, userID, friendID int64) (bool, error)
	CountFriends(ctx context.Context, userID int64) (int64, error)
	SearchNonFriends(ctx context.Context, userID int64, name string) ([]domain.User, error)
}

type friendshipRepository struct {
	pool *pgxpool.Pool
}

// NewFriendshipRepository returns a Postgres-backed implementation.
func NewFriendshipRepository(pool *pgxpool.Pool) FriendshipRepository {
	return &friendshipRepository{pool: pool}
}

func (r *friendshipRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	const query = `
        INSERT INTO friendships (user_id, friend_id)
        VALUES ($1, $2), ($2, $1)
        ON CONFLICT DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, friendID)
	return err
}

func (r *friendshipRepository) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	const query = `
        DELETE FROM friendships
        WHERE (user_id=$1 AND friend_id=$2) OR (user_id=$2 AND friend_id=$1)`

	cmd, err := r.pool.Exec(ctx, query, userID, friendID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *friendshipRepository) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	const query = `
        SELECT u.id, u.name, u.description, u.email, u.password_hash, u.icon, u.role
        FROM users u
        JOIN friendships f ON f.friend_id = u.id
        WHERE f.user_id = $1
        ORDER BY u.name`

	return r.queryUsers(ctx, query, userID)
}

func (r *friendshipRepository) AreFriends(ctx context.Context, userID, friendID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM friendships WHERE user_id=$1 AND friend_id=$2
        )`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, friendID).Scan(&exists)
	return exists, err
}

func (r *friendshipRepository) CountFriends(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM friendships WHERE user_id=$1`, userID).Scan(&count)
	return count, err
}

func (r *friendshipRepository) SearchNonFriends(ctx context.Context, userID int64, name string) ([]domain.User, error) {
	const query = `
        SELECT id, name, description, email, password_hash, icon, role
        FROM users
        WHERE id <> $1
          AND name ILIKE '%' || $2 || '%'
          AND id NOT IN (SELECT friend_id FROM friendships WHERE user_id=$1)
        ORDER BY name`

	return r.queryUsers(ctx, query, userID, name)
}

func (r *friendshipRepository) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
