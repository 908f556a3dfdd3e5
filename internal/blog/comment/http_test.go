// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/blog/comment"
	"github.com/taibuivan/inkwell/internal/platform/middleware"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

type identities map[string]*sec.Identity

func (known identities) ResolveIdentity(_ context.Context, username string) (*sec.Identity, error) {
	if identity, ok := known[username]; ok {
		return identity, nil
	}
	return nil, sec.ErrIdentityRevoked
}

type harness struct {
	router http.Handler
	tokens map[string]string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	tokenService, err := sec.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), "inkwell.test", time.Hour)
	require.NoError(t, err)

	tokens := map[string]string{}
	for _, identity := range []*sec.Identity{alice, bob} {
		token, err := tokenService.Issue(identity.Username, identity.UserID)
		require.NoError(t, err)
		tokens[identity.Username] = token
	}

	router := chi.NewRouter()
	router.Use(middleware.NewGate(tokenService, identities{"alice": alice, "bob": bob}).Handler())
	router.Mount("/comments", comment.NewHandler(comment.NewService(newMemoryRepository())).Routes())

	return &harness{router: router, tokens: tokens}
}

func (h *harness) do(t *testing.T, method, path, body, user string) (int, map[string]any) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != "" {
		request.Header.Set("Authorization", "Bearer "+h.tokens[user])
	}

	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, request)

	decoded := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded), recorder.Body.String())
	}
	return recorder.Code, decoded
}

/*
TestHandler_CommentLifecycle walks create, list, like and delete over HTTP.
*/
func TestHandler_CommentLifecycle(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/comments/hello-world", `{"content":"hi"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	status, body = h.do(t, http.MethodPost, "/comments/hello-world", `{"content":"   "}`, "alice")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = h.do(t, http.MethodPost, "/comments/hello-world", `{"content":"`+strings.Repeat("x", comment.MaxContentLength+1)+`"}`, "alice")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = h.do(t, http.MethodPost, "/comments/hello-world", `{"content":"hi","user_id":2}`, "alice")
	require.Equal(t, http.StatusCreated, status)
	created := body["data"].(map[string]any)
	assert.Equal(t, "alice", created["username"])
	assert.EqualValues(t, 1, created["user_id"])
	commentID := int64(created["id"].(float64))

	status, body = h.do(t, http.MethodGet, "/comments/hello-world?page=1&limit=10", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)
	assert.EqualValues(t, 1, body["meta"].(map[string]any)["total"])
	assert.Equal(t, false, body["meta"].(map[string]any)["has_more"])

	status, body = h.do(t, http.MethodGet, "/comments/hello-world?limit=1000", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, comment.PageWindow.MaxLimit, body["meta"].(map[string]any)["limit"])

	likePath := "/comments/" + jsonNumber(commentID) + "/like"

	status, _ = h.do(t, http.MethodPost, likePath, "", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = h.do(t, http.MethodPost, likePath, `{"anonymous_id":"`+uuid.NewString()+`"}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["data"].(map[string]any)["likes"])

	status, body = h.do(t, http.MethodPost, likePath, "", "bob")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["data"].(map[string]any)["likes"])

	status, _ = h.do(t, http.MethodPost, "/comments/999/like", "", "bob")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = h.do(t, http.MethodDelete, "/comments/"+jsonNumber(commentID), "", "bob")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = h.do(t, http.MethodDelete, "/comments/"+jsonNumber(commentID), "", "alice")
	assert.Equal(t, http.StatusNoContent, status)
}

func jsonNumber(value int64) string {
	encoded, _ := json.Marshal(value)
	return string(encoded)
}

/*
TestHandler_InvalidPostID checks that undecodable post ids are a 400, not a store error.
*/
func TestHandler_InvalidPostID(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/comments/%FF", "/comments/abc%FFdef", "/comments/%25FF"} {
		status, body := h.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.Equal(t, "VALIDATION_ERROR", body["code"], path)
	}
}
