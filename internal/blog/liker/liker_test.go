// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package liker_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/blog/liker"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

func TestResolve(t *testing.T) {
	anonymous := uuid.New()
	alice := &sec.Identity{UserID: 1, Username: "alice"}

	tests := []struct {
		name        string
		identity    *sec.Identity
		anonymousID string
		expected    liker.Liker
		wantErr     bool
	}{
		{"identity wins", alice, anonymous.String(), liker.Liker{UserID: 1}, false},
		{"anonymous", nil, anonymous.String(), liker.Liker{AnonymousID: anonymous}, false},
		{"neither", nil, "", liker.Liker{}, true},
		{"not a uuid", nil, "abc", liker.Liker{}, true},
		{"nil uuid", nil, uuid.Nil.String(), liker.Liker{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := liker.Resolve(tt.identity, tt.anonymousID)
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
				assert.True(t, result.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLiker_SQLArgs(t *testing.T) {
	user := liker.Liker{UserID: 7}
	require.NotNil(t, user.UserIDArg())
	assert.Equal(t, int64(7), *user.UserIDArg())
	assert.Nil(t, user.AnonymousIDArg())

	anonymous := liker.Liker{AnonymousID: uuid.New()}
	assert.Nil(t, anonymous.UserIDArg())
	require.NotNil(t, anonymous.AnonymousIDArg())
	assert.Equal(t, anonymous.AnonymousID, *anonymous.AnonymousIDArg())

	assert.True(t, liker.Optional(nil, "").IsZero())
}
