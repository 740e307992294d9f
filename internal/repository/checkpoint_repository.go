package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-curso/course-service/internal/domain"
)

// CheckpointRepository defines persistence access for course checkpoints.
type CheckpointRepository interface {
	Create(ctx context.Context, checkpoint *domain.Checkpoint) error
	Update(ctx context.Context, checkpoint *domain.Checkpoint) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Checkpoint, error)
	List(ctx context.Context) ([]domain.Checkpoint, error)
	ListByCourse(ctx context.Context, courseID int64) ([]domain.Checkpoint, error)
	ListPending(ctx context.Context) ([]domain.Checkpoint, error)
	SetCompleted(ctx context.Context, id int64, completed bool) error
	CountByCourse(ctx context.Context, courseID int64) (int64, error)
	CountCompletedByCourse(ctx context.Context, courseID int64) (int64, error)
}

type checkpointRepository struct {
	pool *pgxpool.Pool
}

// NewCheckpointRepository returns a Postgres-backed implementation.
func NewCheckpointRepository(pool *pgxpool.Pool) CheckpointRepository {
	return &checkpointRepository{pool: pool}
}

func (r *checkpointRepository) Create(ctx context.Context, checkpoint *domain.Checkpoint) error {
	const query = `
        INSERT INTO checkpoints (description, due_date, completed, course_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		checkpoint.Description,
		checkpoint.DueDate,
		checkpoint.Completed,
		checkpoint.CourseID,
	).Scan(&checkpoint.ID)
}

func (r *checkpointRepository) Update(ctx context.Context, checkpoint *domain.Checkpoint) error {
	const query = `
        UPDATE checkpoints SET description=$1, due_date=$2, completed=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		checkpoint.Description,
		checkpoint.DueDate,
		checkpoint.Completed,
		checkpoint.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *checkpointRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM checkpoints WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *checkpointRepository) GetByID(ctx context.Context, id int64) (*domain.Checkpoint, error) {
	const query = `
        SELECT id, description, due_date, completed, course_id
        FROM checkpoints WHERE id=$1`

	return scanCheckpoint(r.pool.QueryRow(ctx, query, id))
}

func (r *checkpointRepository) List(ctx context.Context) ([]domain.Checkpoint, error) {
	const query = `
        SELECT id, description, due_date, completed, course_id
        FROM checkpoints ORDER BY id`

	return r.queryCheckpoints(ctx, query)
}

func (r *checkpointRepository) ListByCourse(ctx context.Context, courseID int64) ([]domain.Checkpoint, error) {
	const query = `
        SELECT id, description, due_date, completed, course_id
        FROM checkpoints WHERE course_id=$1 ORDER BY due_date`

	return r.queryCheckpoints(ctx, query, courseID)
}

func (r *checkpointRepository) ListPending(ctx context.Context) ([]domain.Checkpoint, error) {
	const query = `
        SELECT id, description, due_date, completed, course_id
        FROM checkpoints WHERE completed=false ORDER BY due_date`

	return r.queryCheckpoints(ctx, query)
}

func (r *checkpointRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE checkpoints SET completed=$1 WHERE id=$2`, completed, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *checkpointRepository) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM checkpoints WHERE course_id=$1`, courseID).Scan(&count)
	return count, err
}

func (r *checkpointRepository) CountCompletedByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM checkpoints WHERE course_id=$1 AND completed=true`, courseID).Scan(&count)
	return count, err
}

func (r *checkpointRepository) queryCheckpoints(ctx context.Context, query string, args ...any) ([]domain.Checkpoint, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkpoints []domain.Checkpoint
	for rows.Next() {
		checkpoint, err := scanCheckpoint(rows)
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, *checkpoint)
	}
	return checkpoints, rows.Err()
}

func scanCheckpoint(row pgx.Row) (*domain.Checkpoint, error) {
	var checkpoint domain.Checkpoint
	if err := row.Scan(
		&checkpoint.ID,
		&checkpoint.Description,
		&checkpoint.DueDate,
		&checkpoint.Completed,
		&checkpoint.CourseID,
	); err != nil {
		return nil, err
	}
	return &checkpoint, nil
}
