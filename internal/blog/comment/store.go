// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"

	"github.com/taibuivan/inkwell/internal/blog/liker"
)

// Repository defines the data access contract for comments and comment likes.
type Repository interface {

	// ListByPost returns one page of a post's comments, newest first.
	ListByPost(ctx context.Context, postID string, limit, offset int) ([]*Comment, error)

	// CountByPost returns how many comments a post has.
	CountByPost(ctx context.Context, postID string) (int, error)

	// FindByID returns a single comment or [ErrCommentNotFound].
	FindByID(ctx context.Context, id int64) (*Comment, error)

	// Create persists a comment and fills in ID and CreatedAt.
	Create(ctx context.Context, comment *Comment) error

	// Delete removes a comment and its likes. Missing rows yield [ErrCommentNotFound].
	Delete(ctx context.Context, id int64) error

	/*
		AddLike records a like once per liker and returns the resulting count.

		Liking twice is not an error; the count is simply unchanged.

		Returns:
		  - int64: Total likes on the comment
		  - error: ErrCommentNotFound or storage failures
	*/
	AddLike(ctx context.Context, commentID int64, who liker.Liker) (int64, error)
}
