// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/respond"
)

/*
TestError_AppError renders the client-safe message and code.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, apperr.Duplicate(apperr.CodeDuplicateUsername, "username", "Username is already taken"))

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, apperr.CodeDuplicateUsername, envelope.Code)
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "username", envelope.Details[0].Field)
}

/*
TestError_PlainError hides internal details behind a generic 500.
*/
func TestError_PlainError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "relation")
}

/*
TestCreated wraps data in the success envelope.
*/
func TestCreated(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Created(recorder, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":1}}`, recorder.Body.String())
}
