// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/users/auth"
)

var accountColumns = []string{"id", "username", "email", "passwordhash", "createdat"}

func TestPostgresUserRepository_Create(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantID    int64
		wantField string
		wantErr   bool
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO blog.account`).
					WithArgs("alice", "a@x.com", "digest").
					WillReturnRows(pgxmock.NewRows([]string{"id", "createdat"}).AddRow(int64(7), createdAt))
			},
			wantID: 7,
		},
		{
			name: "username constraint",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO blog.account`).
					WithArgs("alice", "a@x.com", "digest").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_username_key"})
			},
			wantField: auth.FieldUsername,
		},
		{
			name: "email constraint",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO blog.account`).
					WithArgs("alice", "a@x.com", "digest").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_email_key"})
			},
			wantField: auth.FieldEmail,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO blog.account`).
					WithArgs("alice", "a@x.com", "digest").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			user := &auth.User{Username: "alice", Email: "a@x.com", PasswordHash: "digest"}
			err = auth.NewUserRepository(mock).Create(context.Background(), user)

			switch {
			case tt.wantField != "":
				var conflict *auth.ConflictError
				require.ErrorAs(t, err, &conflict)
				assert.Equal(t, tt.wantField, conflict.Field)
			case tt.wantErr:
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, user.ID)
				assert.Equal(t, createdAt, user.CreatedAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPostgresUserRepository_Find(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(accountColumns).AddRow(int64(1), "alice", "a@x.com", "digest", createdAt)
	}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		call      func(repository *auth.PostgresUserRepository) (*auth.User, error)
		wantErr   error
		wantOther bool
	}{
		{
			name: "by username",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM blog.account WHERE username =`).WithArgs("alice").WillReturnRows(row())
			},
			call: func(repository *auth.PostgresUserRepository) (*auth.User, error) {
				return repository.FindByUsername(context.Background(), "alice")
			},
		},
		{
			name: "by email",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM blog.account WHERE email =`).WithArgs("a@x.com").WillReturnRows(row())
			},
			call: func(repository *auth.PostgresUserRepository) (*auth.User, error) {
				return repository.FindByEmail(context.Background(), "a@x.com")
			},
		},
		{
			name: "by id",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM blog.account WHERE id =`).WithArgs(int64(1)).WillReturnRows(row())
			},
			call: func(repository *auth.PostgresUserRepository) (*auth.User, error) {
				return repository.FindByID(context.Background(), 1)
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM blog.account WHERE username =`).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
			},
			call: func(repository *auth.PostgresUserRepository) (*auth.User, error) {
				return repository.FindByUsername(context.Background(), "ghost")
			},
			wantErr: auth.ErrUserNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM blog.account WHERE username =`).WithArgs("alice").WillReturnError(errors.New("connection refused"))
			},
			call: func(repository *auth.PostgresUserRepository) (*auth.User, error) {
				return repository.FindByUsername(context.Background(), "alice")
			},
			wantOther: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			user, err := tt.call(auth.NewUserRepository(mock))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantOther:
				require.Error(t, err)
				assert.NotErrorIs(t, err, auth.ErrUserNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, &auth.User{ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: "digest", CreatedAt: createdAt}, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}
