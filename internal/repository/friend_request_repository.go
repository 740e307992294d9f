package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-curso/course-service/internal/domain"
)

// FriendRequestRepository defines persistence access for pending friend
// requests.
type FriendRequestRepository interface {
	Create(ctx context.Context, request *domain.FriendRequest) error
	GetByID(ctx context.Context, id int64) (*domain.FriendRequest, error)
	Delete(ctx context.Context, id int64) error
	ListByReceiver(ctx context.Context, receiverID int64) ([]domain.FriendRequest, error)
	ListBySender(ctx context.Context, senderID int64) ([]domain.FriendRequest, error)
	ExistsPending(ctx context.Context, userID, otherID int64) (bool, error)
	CountByReceiver(ctx context.Context, receiverID int64) (int64, error)
}

type friendRequestRepository struct {
	pool *pgxpool.Pool
}

// NewFriendRequestRepository returns a Postgres-backed implementation.
func NewFriendRequestRepository(pool *pgxpool.Pool) FriendRequestRepository {
	return &friendRequestRepository{pool: pool}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *domain.FriendRequest) error {
	const query = `
        INSERT INTO friend_requests (sender_id, receiver_id)
        VALUES ($1, $2)
        RETURNING id`

	return r.pool.QueryRow(ctx, query, request.SenderID, request.ReceiverID).Scan(&request.ID)
}

func (r *friendRequestRepository) GetByID(ctx context.Context, id int64) (*domain.FriendRequest, error) {
	const query = `
        SELECT id, sender_id, receiver_id
        FROM friend_requests WHERE id=$1`

	var request domain.FriendRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.SenderID,
		&request.ReceiverID,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRequestRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM friend_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *friendRequestRepository) ListByReceiver(ctx context.Context, receiverID int64) ([]domain.FriendRequest, error) {
	const query = `
        SELECT id, sender_id, receiver_id
        FROM friend_requests WHERE receiver_id=$1 ORDER BY id`

	return r.queryRequests(ctx, query, receiverID)
}

func (r *friendRequestRepository) ListBySender(ctx context.Context, senderID int64) ([]domain.FriendRequest, error) {
	const query = `
        SELECT id, sender_id, receiver_id
        FROM friend_requests WHERE sender_id=$1 ORDER BY id`

	return r.queryRequests(ctx, query, senderID)
}

func (r *friendRequestRepository) ExistsPending(ctx context.Context, userID, otherID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM friend_requests
            WHERE (sender_id=$1 AND receiver_id=$2) OR (sender_id=$2 AND receiver_id=$1)
        )`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, otherID).Scan(&exists)
	return exists, err
}

func (r *friendRequestRepository) CountByReceiver(ctx context.Context, receiverID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM friend_requests WHERE receiver_id=$1`, receiverID).Scan(&count)
	return count, err
}

func (r *friendRequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.FriendRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.FriendRequest
	for rows.Next() {
		var request domain.FriendRequest
		if err := rows.Scan(&request.ID, &request.SenderID, &request.ReceiverID); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
