// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/inkwell/internal/blog/liker"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

var (
	commentTable = schema.BlogComment
	likeTable    = schema.BlogCommentLike
	accountTable = schema.BlogAccount
)

var selectComment = fmt.Sprintf(`
	SELECT c.%s, c.%s, c.%s, a.%s, c.%s, c.%s,
	       (SELECT COUNT(*) FROM %s l WHERE l.%s = c.%s) AS likes
	FROM %s c
	JOIN %s a ON a.%s = c.%s`,
	commentTable.ID, commentTable.PostID, commentTable.UserID, accountTable.Username, commentTable.Content, commentTable.CreatedAt,
	likeTable.Table, likeTable.CommentID, commentTable.ID,
	commentTable.Table,
	accountTable.Table, accountTable.ID, commentTable.UserID)

var countCommentLikes = fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, likeTable.Table, likeTable.CommentID)

// PostgresRepository implements [Repository] on blog.comment and blog.commentlike.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByPost returns one page of a post's comments, newest first.
func (repository *PostgresRepository) ListByPost(ctx context.Context, postID string, limit, offset int) ([]*Comment, error) {
	query := selectComment + fmt.Sprintf(`
		WHERE c.%s = $1
		ORDER BY c.%s DESC, c.%s DESC
		LIMIT $2 OFFSET $3`,
		commentTable.PostID, commentTable.CreatedAt, commentTable.ID)

	rows, err := repository.db.Query(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("postgres_comment_repo_list_failed: %w", err)
	}

	comments, err := pgx.CollectRows(rows, scanComment)
	if err != nil {
		return nil, fmt.Errorf("postgres_comment_repo_list_scan_failed: %w", err)
	}

	return comments, nil
}

// CountByPost returns how many comments a post has.
func (repository *PostgresRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, commentTable.Table, commentTable.PostID)

	var total int
	if err := repository.db.QueryRow(ctx, query, postID).Scan(&total); err != nil {
		return 0, fmt.Errorf("postgres_comment_repo_count_failed: %w", err)
	}

	return total, nil
}

// FindByID returns a single comment.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Comment, error) {
	rows, err := repository.db.Query(ctx, selectComment+" WHERE c."+commentTable.ID+" = $1", id)
	if err != nil {
		return nil, fmt.Errorf("postgres_comment_repo_find_failed: %w", err)
	}

	comment, err := pgx.CollectExactlyOneRow(rows, scanComment)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("postgres_comment_repo_find_scan_failed: %w", err)
	}

	return comment, nil
}

// Create persists a comment and fills in ID and CreatedAt.
func (repository *PostgresRepository) Create(ctx context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		commentTable.Table, commentTable.PostID, commentTable.UserID, commentTable.Content,
		commentTable.ID, commentTable.CreatedAt)

	err := repository.db.QueryRow(ctx, query, comment.PostID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres_comment_repo_create_failed: %w", err)
	}

	return nil
}

// Delete removes a comment. Likes go with it through ON DELETE CASCADE.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := repository.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, commentTable.Table, commentTable.ID), id)
	if err != nil {
		return fmt.Errorf("postgres_comment_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// AddLike records a like once per liker and returns the resulting count.
func (repository *PostgresRepository) AddLike(ctx context.Context, commentID int64, who liker.Liker) (int64, error) {
	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`,
		likeTable.Table, likeTable.CommentID, likeTable.UserID, likeTable.AnonymousID)

	_, err := repository.db.Exec(ctx, insert, commentID, who.UserIDArg(), who.AnonymousIDArg())
	if err != nil {
		if dberr.ForeignKeyViolation(err) {
			return 0, ErrCommentNotFound
		}
		return 0, fmt.Errorf("postgres_comment_repo_like_failed: %w", err)
	}

	var likes int64
	err = repository.db.QueryRow(ctx, countCommentLikes, commentID).Scan(&likes)
	if err != nil {
		return 0, fmt.Errorf("postgres_comment_repo_like_count_failed: %w", err)
	}

	return likes, nil
}

func scanComment(row pgx.CollectableRow) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.UserID,
		&comment.Username,
		&comment.Content,
		&comment.CreatedAt,
		&comment.Likes,
	)
	return comment, err
}
