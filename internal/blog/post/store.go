// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"

	"github.com/taibuivan/inkwell/internal/blog/liker"
)

// LikeRepository stores one-time post likes.
type LikeRepository interface {

	// AddLike records a like and reports whether it was new.
	AddLike(ctx context.Context, postID string, who liker.Liker) (bool, error)

	// HasLiked reports whether the liker already liked the post.
	HasLiked(ctx context.Context, postID string, who liker.Liker) (bool, error)

	// CountLikes returns like totals for the given posts. Posts without likes
	// are absent from the map.
	CountLikes(ctx context.Context, postIDs []string) (map[string]int64, error)
}

// ViewCounter stores post view totals.
type ViewCounter interface {

	// Increment adds one view and returns the new total.
	Increment(ctx context.Context, postID string) (int64, error)

	// Get returns view totals for the given posts. Unseen posts are absent.
	Get(ctx context.Context, postIDs []string) (map[string]int64, error)
}

// CommentCounter reports how many comments a post has.
type CommentCounter interface {
	CountByPost(ctx context.Context, postID string) (int, error)
}
