// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
)

/*
TestAppError_Chain verifies that wrapped AppErrors stay discoverable.
*/
func TestAppError_Chain(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("auth_service_login_failed: %w", apperr.StoreUnavailable(cause))

	appError := apperr.As(wrapped)
	require.NotNil(t, appError)

	assert.Equal(t, http.StatusServiceUnavailable, appError.HTTPStatus)
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeStoreUnavailable))
	assert.ErrorIs(t, wrapped, cause)
	assert.NotContains(t, appError.Error(), "connection refused")
}

/*
TestAppError_Duplicate verifies the conflicting field is reported.
*/
func TestAppError_Duplicate(t *testing.T) {
	appError := apperr.Duplicate(apperr.CodeDuplicateEmail, "email", "Email is already registered")

	assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, "email", appError.Details[0].Field)
}

/*
TestAppError_Foreign returns nil for plain errors.
*/
func TestAppError_Foreign(t *testing.T) {
	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.HasCode(errors.New("plain"), apperr.CodeNotFound))
}
