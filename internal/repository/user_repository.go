package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lichess-gateway/internal/domain/user"
	apperrors "lichess-gateway/pkg/errors"
)

type PostgresUserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	const query = `SELECT id, email, hashed_password, created_at FROM users WHERE email = $1`

	var u user.User
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.HashedPassword, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, apperrors.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, email, hashedPassword string) (user.User, error) {
	const query = `
		INSERT INTO users (email, hashed_password)
		VALUES ($1, $2)
		RETURNING id, email, hashed_password, created_at`

	var u user.User
	err := r.db.QueryRowContext(ctx, query, email, hashedPassword).
		Scan(&u.ID, &u.Email, &u.HashedPassword, &u.CreatedAt)
	if err != nil {
		// The unique constraint is the real uniqueness guarantee; the
		// service-level pre-check only loses a race.
		if isUniqueViolation(err) {
			return user.User{}, apperrors.ErrAlreadyExists
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
