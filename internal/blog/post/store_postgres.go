// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/inkwell/internal/blog/liker"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

var likeTable = schema.BlogPostLike

// PostgresLikeRepository implements [LikeRepository] on blog.postlike.
type PostgresLikeRepository struct {
	db postgres.DBTX
}

// NewLikeRepository creates a new PostgreSQL implementation of the LikeRepository.
func NewLikeRepository(db postgres.DBTX) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// AddLike records a like and reports whether it was new.
//
// The partial unique indexes on (postid, userid) and (postid, anonymousid)
// turn a repeated like into a no-op, even under concurrent requests.
func (repository *PostgresLikeRepository) AddLike(ctx context.Context, postID string, who liker.Liker) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`,
		likeTable.Table, likeTable.PostID, likeTable.UserID, likeTable.AnonymousID)

	tag, err := repository.db.Exec(ctx, query, postID, who.UserIDArg(), who.AnonymousIDArg())
	if err != nil {
		return false, fmt.Errorf("postgres_post_like_repo_add_failed: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// HasLiked reports whether the liker already liked the post.
func (repository *PostgresLikeRepository) HasLiked(ctx context.Context, postID string, who liker.Liker) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1
			  AND (%s = $2 OR %s = $3)
		)`,
		likeTable.Table, likeTable.PostID, likeTable.UserID, likeTable.AnonymousID)

	var liked bool
	if err := repository.db.QueryRow(ctx, query, postID, who.UserIDArg(), who.AnonymousIDArg()).Scan(&liked); err != nil {
		return false, fmt.Errorf("postgres_post_like_repo_has_liked_failed: %w", err)
	}

	return liked, nil
}

// CountLikes returns like totals for the given posts.
func (repository *PostgresLikeRepository) CountLikes(ctx context.Context, postIDs []string) (map[string]int64, error) {
	query := fmt.Sprintf(`
		SELECT %[2]s, COUNT(*)
		FROM %[1]s
		WHERE %[2]s = ANY($1)
		GROUP BY %[2]s`,
		likeTable.Table, likeTable.PostID)

	rows, err := repository.db.Query(ctx, query, postIDs)
	if err != nil {
		return nil, fmt.Errorf("postgres_post_like_repo_count_failed: %w", err)
	}

	counts := make(map[string]int64, len(postIDs))
	var (
		postID string
		likes  int64
	)
	_, err = pgx.ForEachRow(rows, []any{&postID, &likes}, func() error {
		counts[postID] = likes
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres_post_like_repo_count_scan_failed: %w", err)
	}

	return counts, nil
}
