package user

import (
	"context"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/Domenick1991/fitbooking/internal/repository"
)

type UserUseCase interface {
	Ensure(ctx context.Context, id int64, name string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Ensure registers the identity on first contact and returns the stored
// record. The stored display name wins over the one supplied on repeat
// contact.
func (s *UserService) Ensure(ctx context.Context, id int64, name string) (*domain.User, error) {
	if err := s.users.Ensure(ctx, &domain.User{ID: id, Name: name}); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

var _ UserUseCase = (*UserService)(nil)
