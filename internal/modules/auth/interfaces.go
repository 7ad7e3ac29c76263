package auth

import (
	"context"

	"mesareserva/internal/domain"
)

// UserRepository covers only the methods the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
