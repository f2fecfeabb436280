package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationRepository interface {
	InsertBooked(ctx context.Context, reg *domain.Registration) error
	Cancel(ctx context.Context, registrationID int64) (*domain.Registration, bool, error)
	TransitionBooked(ctx context.Context, sessionID, userID int64, status domain.RegistrationStatus, isPaid *bool) (*domain.Registration, error)
	ListMy(ctx context.Context, userID int64) ([]domain.MyRegistration, error)
	CountBookedBySession(ctx context.Context) (map[int64]int, error)
	AttendeeNames(ctx context.Context, sessionID int64) ([]string, error)
	AttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error)
}

type PGRegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) RegistrationRepository {
	return &PGRegistrationRepository{db: db}
}

// InsertBooked creates a BOOKED registration in a single statement. The
// partial unique index on (user_id, session_id) WHERE status='BOOKED' makes
// the conflict check and the insert atomic, so two concurrent calls for the
// same pair cannot both succeed. A swallowed conflict returns ErrAlreadyBooked.
func (r *PGRegistrationRepository) InsertBooked(ctx context.Context, reg *domain.Registration) error {
	reg.Status = domain.StatusBooked
	err := r.db.QueryRow(ctx, `INSERT INTO registrations (token, user_id, session_id, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, session_id) WHERE status = 'BOOKED' DO NOTHING
		RETURNING registration_id, registered_at`,
		reg.Token, reg.UserID, reg.SessionID, reg.Status).
		Scan(&reg.ID, &reg.RegisteredAt)
	if err != nil {
		return bookedInsertErr(err)
	}
	return nil
}

// bookedInsertErr classifies an InsertBooked failure. An empty RETURNING set
// means DO NOTHING fired, so the pair already holds an active booking. A
// broken foreign key stays not-found: it must not masquerade as a conflict.
func bookedInsertErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrAlreadyBooked
	}
	return translateErr(err)
}

// Cancel moves the registration to CANCELLED. Cancelling an already cancelled
// registration is a no-op success; the bool reports whether this call changed
// the row, so callers can skip side effects on a repeat cancel.
func (r *PGRegistrationRepository) Cancel(ctx context.Context, registrationID int64) (*domain.Registration, bool, error) {
	row := r.db.QueryRow(ctx, `UPDATE registrations SET status=$1
		WHERE registration_id=$2 AND status <> $1
		RETURNING registration_id, token, user_id, session_id, status, is_paid, registered_at`,
		domain.StatusCancelled, registrationID)
	var reg domain.Registration
	err := row.Scan(&reg.ID, &reg.Token, &reg.UserID, &reg.SessionID, &reg.Status, &reg.IsPaid, &reg.RegisteredAt)
	if err == nil {
		return &reg, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, translateErr(err)
	}

	// nothing to update: either the row is already cancelled or it is missing
	row = r.db.QueryRow(ctx, `SELECT registration_id, token, user_id, session_id, status, is_paid, registered_at
		FROM registrations WHERE registration_id=$1`, registrationID)
	if err := row.Scan(&reg.ID, &reg.Token, &reg.UserID, &reg.SessionID, &reg.Status, &reg.IsPaid, &reg.RegisteredAt); err != nil {
		return nil, false, translateErr(err)
	}
	return &reg, false, nil
}

// TransitionBooked moves the pair's BOOKED registration to status. The guard
// on the current status means a second identical call finds nothing to update
// and reports ErrNoBookedRegistration instead of double-processing.
func (r *PGRegistrationRepository) TransitionBooked(ctx context.Context, sessionID, userID int64, status domain.RegistrationStatus, isPaid *bool) (*domain.Registration, error) {
	row := r.db.QueryRow(ctx, `UPDATE registrations SET status=$1, is_paid=COALESCE($2, is_paid)
		WHERE session_id=$3 AND user_id=$4 AND status=$5
		RETURNING registration_id, token, user_id, session_id, status, is_paid, registered_at`,
		status, isPaid, sessionID, userID, domain.StatusBooked)
	var reg domain.Registration
	if err := row.Scan(&reg.ID, &reg.Token, &reg.UserID, &reg.SessionID, &reg.Status, &reg.IsPaid, &reg.RegisteredAt); err != nil {
		err = translateErr(err)
		if err == domain.ErrNotFound {
			return nil, domain.ErrNoBookedRegistration
		}
		return nil, err
	}
	return &reg, nil
}

func (r *PGRegistrationRepository) ListMy(ctx context.Context, userID int64) ([]domain.MyRegistration, error) {
	return retryRead(ctx, func() ([]domain.MyRegistration, error) {
		rows, err := r.db.Query(ctx, `SELECT r.registration_id, s.session_id, s.start_time, t.type_name
			FROM registrations r
			JOIN sessions s ON s.session_id = r.session_id
			JOIN session_types t ON t.type_id = s.type_id
			WHERE r.user_id=$1 AND r.status=$2 AND s.start_time >= now()
			ORDER BY s.start_time`, userID, domain.StatusBooked)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		regs := make([]domain.MyRegistration, 0)
		for rows.Next() {
			var m domain.MyRegistration
			if err := rows.Scan(&m.RegistrationID, &m.SessionID, &m.StartTime, &m.TypeName); err != nil {
				return nil, err
			}
			regs = append(regs, m)
		}
		return regs, rows.Err()
	})
}

// CountBookedBySession counts BOOKED registrations per future session. The
// (session_id, status) index keeps this proportional to registrants, not to
// the whole table.
func (r *PGRegistrationRepository) CountBookedBySession(ctx context.Context) (map[int64]int, error) {
	return retryRead(ctx, func() (map[int64]int, error) {
		rows, err := r.db.Query(ctx, `SELECT s.session_id, count(r.registration_id)
			FROM sessions s
			JOIN registrations r ON r.session_id = s.session_id AND r.status=$1
			WHERE s.start_time >= now()
			GROUP BY s.session_id`, domain.StatusBooked)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		counts := make(map[int64]int)
		for rows.Next() {
			var sessionID int64
			var count int
			if err := rows.Scan(&sessionID, &count); err != nil {
				return nil, err
			}
			counts[sessionID] = count
		}
		return counts, rows.Err()
	})
}

func (r *PGRegistrationRepository) AttendeeNames(ctx context.Context, sessionID int64) ([]string, error) {
	return retryRead(ctx, func() ([]string, error) {
		rows, err := r.db.Query(ctx, `SELECT u.name
			FROM registrations r
			JOIN users u ON u.user_id = r.user_id
			WHERE r.session_id=$1 AND r.status=$2
			ORDER BY r.registered_at`, sessionID, domain.StatusBooked)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		names := make([]string, 0)
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return nil, err
			}
			names = append(names, name)
		}
		return names, rows.Err()
	})
}

func (r *PGRegistrationRepository) AttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error) {
	return retryRead(ctx, func() ([]domain.AttendeeDetail, error) {
		rows, err := r.db.Query(ctx, `SELECT u.name, u.user_id, s.start_time, t.type_name
			FROM registrations r
			JOIN users u ON u.user_id = r.user_id
			JOIN sessions s ON s.session_id = r.session_id
			JOIN session_types t ON t.type_id = s.type_id
			WHERE r.session_id=$1 AND r.status=$2
			ORDER BY r.registered_at`, sessionID, domain.StatusBooked)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		details := make([]domain.AttendeeDetail, 0)
		for rows.Next() {
			var d domain.AttendeeDetail
			if err := rows.Scan(&d.Name, &d.UserID, &d.StartTime, &d.TypeName); err != nil {
				return nil, err
			}
			details = append(details, d)
		}
		return details, rows.Err()
	})
}

var _ RegistrationRepository = (*PGRegistrationRepository)(nil)
