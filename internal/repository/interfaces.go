package repository

import (
	"context"

	"lichess-gateway/internal/domain/user"
)

// UserRepository is the persistence surface of the gateway: one user record
// store with create and lookup-by-email.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Create(ctx context.Context, email, hashedPassword string) (user.User, error)
}
