// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/blog/liker"
	"github.com/taibuivan/inkwell/internal/blog/post"
)

func TestPostgresLikeRepository_AddLike(t *testing.T) {
	anonymousID := uuid.New()

	tests := []struct {
		name      string
		who       liker.Liker
		setupMock func(mock pgxmock.PgxPoolIface)
		want      bool
		wantErr   bool
	}{
		{
			name: "new user like",
			who:  liker.Liker{UserID: 7},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO blog.postlike`).
					WithArgs("hello-world", pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			want: true,
		},
		{
			name: "repeated anonymous like",
			who:  liker.Liker{AnonymousID: anonymousID},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO blog.postlike`).
					WithArgs("hello-world", pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			want: false,
		},
		{
			name: "database error",
			who:  liker.Liker{UserID: 7},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO blog.postlike`).
					WithArgs("hello-world", pgxmock.AnyArg(), pgxmock.AnyArg()).
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

			got, err := post.NewLikeRepository(mock).AddLike(context.Background(), "hello-world", tt.who)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPostgresLikeRepository_HasLiked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("hello-world", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	liked, err := post.NewLikeRepository(mock).HasLiked(context.Background(), "hello-world", liker.Liker{UserID: 7})
	require.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLikeRepository_CountLikes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	postIDs := []string{"hello-world", "other", "quiet"}
	mock.ExpectQuery(`FROM blog.postlike`).
		WithArgs(postIDs).
		WillReturnRows(pgxmock.NewRows([]string{"postid", "count"}).
			AddRow("hello-world", int64(3)).
			AddRow("other", int64(1)))

	counts, err := post.NewLikeRepository(mock).CountLikes(context.Background(), postIDs)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"hello-world": 3, "other": 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
