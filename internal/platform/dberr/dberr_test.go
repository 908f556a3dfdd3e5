// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, dberr.IsNotFound(pgx.ErrNoRows))
	assert.True(t, dberr.IsNotFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, dberr.IsNotFound(errors.New("boom")))
}

func TestUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "account_username_key",
	})

	constraint, ok := dberr.UniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "account_username_key", constraint)

	_, ok = dberr.UniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	assert.False(t, ok)
}

func TestForeignKeyViolation(t *testing.T) {
	assert.True(t, dberr.ForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, dberr.ForeignKeyViolation(errors.New("boom")))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	wrapped := dberr.Wrap(errors.New("connection reset"), "comment_list")
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeStoreUnavailable))

	notFound := apperr.NotFound("Comment")
	assert.Same(t, notFound, dberr.Wrap(notFound, "comment_find"))
}
