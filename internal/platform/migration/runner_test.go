// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"postgres://u:p@db:5432/blog?sslmode=disable", "pgx5://u:p@db:5432/blog?sslmode=disable"},
		{"postgresql://u:p@db/blog", "pgx5://u:p@db/blog"},
		{"pgx5://u:p@db/blog", "pgx5://u:p@db/blog"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, convertToPgx5DSN(tt.input))
	}
}

type fakeMigrator struct {
	version  uint
	dirty    bool
	upErr    error
	upCalled bool
	closed   bool
}

func (f *fakeMigrator) Up() error {
	f.upCalled = true
	if f.upErr == nil {
		f.version++
	}
	return f.upErr
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	if f.version == 0 {
		return 0, false, migrate.ErrNilVersion
	}
	return f.version, f.dirty, nil
}

func (f *fakeMigrator) Close() (error, error) {
	f.closed = true
	return nil, nil
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		migrator  *fakeMigrator
		wantErr   string
		wantUp    bool
		wantFinal uint
	}{
		{name: "fresh database", migrator: &fakeMigrator{}, wantUp: true, wantFinal: 1},
		{name: "already current", migrator: &fakeMigrator{version: 1, upErr: migrate.ErrNoChange}, wantUp: true, wantFinal: 1},
		{name: "dirty database", migrator: &fakeMigrator{version: 1, dirty: true}, wantErr: "dirty at version 1", wantFinal: 1},
		{name: "up fails", migrator: &fakeMigrator{upErr: errors.New("syntax error")}, wantErr: "up failed", wantUp: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apply(tt.migrator, discard)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantUp, tt.migrator.upCalled)
			assert.Equal(t, tt.wantFinal, tt.migrator.version)
			assert.True(t, tt.migrator.closed)
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "sql")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Equal(t, []string{"000001_blog_schema.down.sql", "000001_blog_schema.up.sql"}, names)

	up, err := fs.ReadFile(migrationsFS, "sql/000001_blog_schema.up.sql")
	require.NoError(t, err)
	for _, constraint := range []string{"account_username_key", "account_email_key"} {
		assert.Contains(t, string(up), constraint)
	}
}
