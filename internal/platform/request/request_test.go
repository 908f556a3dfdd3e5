// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

func withParam(request *http.Request, name, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(name, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func TestDecodeJSON(t *testing.T) {
	var payload struct {
		Content string `json:"content"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"hi"}`))
	require.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &payload))
	assert.Equal(t, "hi", payload.Content)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":`))
	assert.ErrorIs(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &payload), validate.ErrInvalidJSON)

	request = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &payload))
}

func TestInt64Param(t *testing.T) {
	request := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "commentID", "42")
	value, err := requestutil.Int64Param(request, "commentID")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		request = withParam(httptest.NewRequest(http.MethodGet, "/", nil), "commentID", raw)
		_, err = requestutil.Int64Param(request, "commentID")
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation), "raw %q", raw)
	}
}

func TestRequiredIdentity(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := requestutil.RequiredIdentity(request)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	assert.Nil(t, requestutil.Identity(request))

	request = request.WithContext(ctxutil.WithIdentity(request.Context(), &sec.Identity{UserID: 1, Username: "alice"}))
	identity, err := requestutil.RequiredIdentity(request)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
}
