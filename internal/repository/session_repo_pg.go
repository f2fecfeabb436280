package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error)
	ListUpcoming(ctx context.Context) ([]domain.SessionWithType, error)
	ListWindow(ctx context.Context, daysBefore int) ([]domain.SessionWithType, error)
	Delete(ctx context.Context, id int64) error
	ListTypes(ctx context.Context) ([]domain.SessionType, error)
}

type PGSessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) SessionRepository {
	return &PGSessionRepository{db: db}
}

func (r *PGSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	err := r.db.QueryRow(ctx, `INSERT INTO sessions (type_id, start_time, created_by)
		VALUES ($1, $2, $3)
		RETURNING session_id, created_at`, session.TypeID, session.StartTime, session.CreatedBy).
		Scan(&session.ID, &session.CreatedAt)
	return translateErr(err)
}

func (r *PGSessionRepository) GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error) {
	return retryRead(ctx, func() (*domain.SessionWithType, error) {
		row := r.db.QueryRow(ctx, `SELECT s.session_id, s.type_id, s.start_time, s.created_by, s.created_at, t.type_name
			FROM sessions s JOIN session_types t ON t.type_id = s.type_id
			WHERE s.session_id=$1`, id)
		var s domain.SessionWithType
		if err := row.Scan(&s.ID, &s.TypeID, &s.StartTime, &s.CreatedBy, &s.CreatedAt, &s.TypeName); err != nil {
			return nil, translateErr(err)
		}
		return &s, nil
	})
}

func (r *PGSessionRepository) ListUpcoming(ctx context.Context) ([]domain.SessionWithType, error) {
	return retryRead(ctx, func() ([]domain.SessionWithType, error) {
		rows, err := r.db.Query(ctx, `SELECT s.session_id, s.type_id, s.start_time, s.created_by, s.created_at, t.type_name
			FROM sessions s JOIN session_types t ON t.type_id = s.type_id
			WHERE s.start_time >= now()
			ORDER BY s.start_time`)
		if err != nil {
			return nil, err
		}
		return scanSessions(rows)
	})
}

// ListWindow returns sessions that started within the last daysBefore days,
// used to pick a session for a retrospective attendance check.
func (r *PGSessionRepository) ListWindow(ctx context.Context, daysBefore int) ([]domain.SessionWithType, error) {
	since := time.Now().AddDate(0, 0, -daysBefore)
	return retryRead(ctx, func() ([]domain.SessionWithType, error) {
		rows, err := r.db.Query(ctx, `SELECT s.session_id, s.type_id, s.start_time, s.created_by, s.created_at, t.type_name
			FROM sessions s JOIN session_types t ON t.type_id = s.type_id
			WHERE s.start_time >= $1 AND s.start_time <= now()
			ORDER BY s.start_time`, since)
		if err != nil {
			return nil, err
		}
		return scanSessions(rows)
	})
}

// Delete removes the session together with its registrations and reminder.
// The foreign keys cascade inside the single DELETE, so either everything is
// gone or nothing is.
func (r *PGSessionRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE session_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGSessionRepository) ListTypes(ctx context.Context) ([]domain.SessionType, error) {
	return retryRead(ctx, func() ([]domain.SessionType, error) {
		rows, err := r.db.Query(ctx, `SELECT type_id, type_name FROM session_types ORDER BY type_id`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		types := make([]domain.SessionType, 0)
		for rows.Next() {
			var t domain.SessionType
			if err := rows.Scan(&t.ID, &t.Name); err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		return types, rows.Err()
	})
}

func scanSessions(rows pgx.Rows) ([]domain.SessionWithType, error) {
	defer rows.Close()

	sessions := make([]domain.SessionWithType, 0)
	for rows.Next() {
		var s domain.SessionWithType
		if err := rows.Scan(&s.ID, &s.TypeID, &s.StartTime, &s.CreatedBy, &s.CreatedAt, &s.TypeName); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

var _ SessionRepository = (*PGSessionRepository)(nil)
