package repository

import (
	"context"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Ensure(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SeedOperators(ctx context.Context, operators []domain.Operator) error
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

// Ensure inserts the user on first contact. A repeat contact is a no-op so an
// existing display name is never overwritten.
func (r *PGUserRepository) Ensure(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users (user_id, name, balance) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`, user.ID, user.Name, user.Balance)
	return err
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return retryRead(ctx, func() (*domain.User, error) {
		row := r.db.QueryRow(ctx, `SELECT user_id, name, balance, created_at FROM users WHERE user_id=$1`, id)
		var u domain.User
		if err := row.Scan(&u.ID, &u.Name, &u.Balance, &u.CreatedAt); err != nil {
			return nil, translateErr(err)
		}
		return &u, nil
	})
}

func (r *PGUserRepository) SeedOperators(ctx context.Context, operators []domain.Operator) error {
	for _, op := range operators {
		if _, err := r.db.Exec(ctx, `INSERT INTO operators (operator_id, name) VALUES ($1, $2)
			ON CONFLICT (operator_id) DO NOTHING`, op.ID, op.Name); err != nil {
			return err
		}
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
