package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-curso/course-service/internal/domain"
)

// PomodoroRepository defines persistence access for pomodoro sessions.
type PomodoroRepository interface {
	Create(ctx context.Context, pomodoro *domain.Pomodoro) error
	Update(ctx context.Context, pomodoro *domain.Pomodoro) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Pomodoro, error)
	List(ctx context.Context) ([]domain.Pomodoro, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Pomodoro, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Pomodoro, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

type pomodoroRepository struct {
	pool *pgxpool.Pool
}

// NewPomodoroRepository returns a Postgres-backed implementation.
func NewPomodoroRepository(pool *pgxpool.Pool) PomodoroRepository {
	return &pomodoroRepository{pool: pool}
}

func (r *pomodoroRepository) Create(ctx context.Context, pomodoro *domain.Pomodoro) error {
	const query = `
        INSERT INTO pomodoros (start_at, end_at, user_id)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		pomodoro.StartAt,
		pomodoro.EndAt,
		pomodoro.UserID,
	).Scan(&pomodoro.ID)
}

func (r *pomodoroRepository) Update(ctx context.Context, pomodoro *domain.Pomodoro) error {
	const query = `
        UPDATE pomodoros SET start_at=$1, end_at=$2
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		pomodoro.StartAt,
		pomodoro.EndAt,
		pomodoro.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pomodoroRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM pomodoros WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pomodoroRepository) GetByID(ctx context.Context, id int64) (*domain.Pomodoro, error) {
	const query = `
        SELECT id, start_at, end_at, user_id
        FROM pomodoros WHERE id=$1`

	return scanPomodoro(r.pool.QueryRow(ctx, query, id))
}

func (r *pomodoroRepository) List(ctx context.Context) ([]domain.Pomodoro, error) {
	const query = `
        SELECT id, start_at, end_at, user_id
        FROM pomodoros ORDER BY id`

	return r.queryPomodoros(ctx, query)
}

func (r *pomodoroRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Pomodoro, error) {
	const query = `
        SELECT id, start_at, end_at, user_id
        FROM pomodoros WHERE user_id=$1 ORDER BY start_at`

	return r.queryPomodoros(ctx, query, userID)
}

func (r *pomodoroRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Pomodoro, error) {
	const query = `
        SELECT id, start_at, end_at, user_id
        FROM pomodoros WHERE start_at >= $1 AND start_at <= $2 ORDER BY start_at`

	return r.queryPomodoros(ctx, query, from, to)
}

func (r *pomodoroRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pomodoros WHERE user_id=$1`, userID).Scan(&count)
	return count, err
}

func (r *pomodoroRepository) queryPomodoros(ctx context.Context, query string, args ...any) ([]domain.Pomodoro, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pomodoros []domain.Pomodoro
	for rows.Next() {
		pomodoro, err := scanPomodoro(rows)
		if err != nil {
			return nil, err
		}
		pomodoros = append(pomodoros, *pomodoro)
	}
	return pomodoros, rows.Err()
}

func scanPomodoro(row pgx.Row) (*domain.Pomodoro, error) {
	var pomodoro domain.Pomodoro
	if err := row.Scan(
		&pomodoro.ID,
		&pomodoro.StartAt,
		&pomodoro.EndAt,
		&pomodoro.UserID,
	); err != nil {
		return nil, err
	}
	return &pomodoro, nil
}
