// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

var account = schema.BlogAccount

var selectAccount = fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s
	FROM %s`,
	account.ID, account.Username, account.Email, account.PasswordHash, account.CreatedAt,
	account.Table)

// # User Repository

// PostgresUserRepository implements [UserRepository] on the blog.account table.
type PostgresUserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
Create inserts a new account and hydrates its generated ID and timestamp.

Uniqueness is enforced by the table constraints, so two racing registrations
cannot both succeed; the loser gets a [*ConflictError].
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		account.Table, account.Username, account.Email, account.PasswordHash,
		account.ID, account.CreatedAt)

	err := repository.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)

	if constraint, ok := dberr.UniqueViolation(err); ok {
		switch constraint {
		case account.EmailKey:
			return &ConflictError{Field: FieldEmail}
		default:
			return &ConflictError{Field: FieldUsername}
		}
	}

	if err != nil {
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

// FindByID retrieves an account by its numeric ID.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	return repository.findOne(ctx, "find_by_id", selectAccount+" WHERE "+account.ID+" = $1", id)
}

// FindByEmail retrieves an account by its unique email address.
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return repository.findOne(ctx, "find_by_email", selectAccount+" WHERE "+account.Email+" = $1", email)
}

// FindByUsername retrieves an account by its unique username.
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return repository.findOne(ctx, "find_by_username", selectAccount+" WHERE "+account.Username+" = $1", username)
}

func (repository *PostgresUserRepository) findOne(ctx context.Context, action, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres_user_repo_%s_failed: %w", action, err)
	}

	return user, nil
}
