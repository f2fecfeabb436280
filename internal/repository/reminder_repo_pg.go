package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReminderRepository interface {
	Upsert(ctx context.Context, sessionID int64, fireAt time.Time) error
	ListPending(ctx context.Context) ([]domain.Reminder, error)
	Claim(ctx context.Context, sessionID int64) (bool, error)
	ClaimOverdue(ctx context.Context, deadline time.Time) ([]int64, error)
}

type PGReminderRepository struct {
	db *pgxpool.Pool
}

func NewReminderRepository(db *pgxpool.Pool) ReminderRepository {
	return &PGReminderRepository{db: db}
}

func (r *PGReminderRepository) Upsert(ctx context.Context, sessionID int64, fireAt time.Time) error {
	_, err := r.db.Exec(ctx, `INSERT INTO reminders (session_id, fire_at) VALUES ($1, $2)
		ON CONFLICT (session_id) DO UPDATE SET fire_at = EXCLUDED.fire_at, sent_at = NULL`,
		sessionID, fireAt)
	return translateErr(err)
}

// ListPending returns unsent reminders so a restarted process can re-arm its
// timers. Rows for deleted sessions are already gone via the cascade.
func (r *PGReminderRepository) ListPending(ctx context.Context) ([]domain.Reminder, error) {
	return retryRead(ctx, func() ([]domain.Reminder, error) {
		rows, err := r.db.Query(ctx, `SELECT session_id, fire_at FROM reminders WHERE sent_at IS NULL ORDER BY fire_at`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		reminders := make([]domain.Reminder, 0)
		for rows.Next() {
			var rem domain.Reminder
			if err := rows.Scan(&rem.SessionID, &rem.FireAt); err != nil {
				return nil, err
			}
			reminders = append(reminders, rem)
		}
		return reminders, rows.Err()
	})
}

// Claim marks the reminder sent and reports whether this caller won the row.
// A false result means another process already fired it (or the session is
// gone); the caller must not send anything.
func (r *PGReminderRepository) Claim(ctx context.Context, sessionID int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE reminders SET sent_at = now()
		WHERE session_id=$1 AND sent_at IS NULL`, sessionID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// ClaimOverdue claims every unsent reminder whose fire time has passed,
// returning the session ids to dispatch for.
func (r *PGReminderRepository) ClaimOverdue(ctx context.Context, deadline time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx, `UPDATE reminders SET sent_at = now()
		WHERE sent_at IS NULL AND fire_at <= $1
		RETURNING session_id`, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ ReminderRepository = (*PGReminderRepository)(nil)
