// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"fmt"

	"github.com/taibuivan/inkwell/internal/blog/comment"
	"github.com/taibuivan/inkwell/internal/blog/liker"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/pkg/query"
)

// Service implements post engagement use cases.
type Service struct {
	likes    LikeRepository
	views    ViewCounter
	comments CommentCounter
}

// NewService constructs a new [Service].
func NewService(likes LikeRepository, views ViewCounter, comments CommentCounter) *Service {
	return &Service{likes: likes, views: views, comments: comments}
}

/*
Like records a one-time like. There is no unlike.

Returns:
  - *LikeResult: New total, with AlreadyLiked set when this liker had liked before
  - error: Validation or StoreUnavailable errors
*/
func (service *Service) Like(ctx context.Context, rawPostID string, who liker.Liker) (*LikeResult, error) {
	if who.IsZero() {
		return nil, apperr.ValidationError("Liker is required")
	}

	postID, err := comment.CanonicalPostID(rawPostID)
	if err != nil {
		return nil, err
	}

	inserted, err := service.likes.AddLike(ctx, postID, who)
	if err != nil {
		return nil, dberr.Wrap(err, "post_service_like_failed")
	}

	counts, err := service.likes.CountLikes(ctx, []string{postID})
	if err != nil {
		return nil, dberr.Wrap(err, "post_service_like_count_failed")
	}

	return &LikeResult{
		PostID:       postID,
		Likes:        counts[postID],
		IsLiked:      true,
		AlreadyLiked: !inserted,
	}, nil
}

// RecordView increments the post's view counter and returns the new total.
func (service *Service) RecordView(ctx context.Context, rawPostID string) (int64, error) {
	postID, err := comment.CanonicalPostID(rawPostID)
	if err != nil {
		return 0, err
	}

	views, err := service.views.Increment(ctx, postID)
	if err != nil {
		return 0, dberr.Wrap(err, "post_service_view_failed")
	}

	return views, nil
}

/*
Stats summarizes one post.

IsLiked is computed for the given liker; pass the zero Liker for a reader
who is neither signed in nor carrying an anonymous id.
*/
func (service *Service) Stats(ctx context.Context, rawPostID string, who liker.Liker) (*Stats, error) {
	postID, err := comment.CanonicalPostID(rawPostID)
	if err != nil {
		return nil, err
	}

	all, err := service.collect(ctx, []string{postID})
	if err != nil {
		return nil, err
	}
	stats := all[postID]

	if !who.IsZero() {
		stats.IsLiked, err = service.likes.HasLiked(ctx, postID, who)
		if err != nil {
			return nil, dberr.Wrap(err, "post_service_has_liked_failed")
		}
	}

	return stats, nil
}

/*
BatchStats summarizes several posts for a listing page.

The raw value is a comma-separated list. Duplicates after canonicalization
are collapsed and the result is keyed by the raw id the caller sent, so a
front-end can look its own ids up directly.
*/
func (service *Service) BatchStats(ctx context.Context, rawPostIDs string) (map[string]*Stats, error) {
	requested := map[string]string{}
	distinct := map[string]struct{}{}
	var postIDs []string

	for _, raw := range query.StringSlice(rawPostIDs) {
		postID, err := comment.CanonicalPostID(raw)
		if err != nil {
			return nil, err
		}

		if _, seen := requested[raw]; !seen {
			requested[raw] = postID
		}
		if _, seen := distinct[postID]; seen {
			continue
		}

		// Stop at the first id over the limit instead of parsing the rest.
		if len(postIDs) == MaxBatchSize {
			return nil, apperr.ValidationError("Too many post ids", apperr.FieldError{
				Field:   FieldPostIDs,
				Message: fmt.Sprintf("At most %d ids per request", MaxBatchSize),
			})
		}

		distinct[postID] = struct{}{}
		postIDs = append(postIDs, postID)
	}

	if len(postIDs) == 0 {
		return nil, apperr.ValidationError("No post ids given", apperr.FieldError{
			Field:   FieldPostIDs,
			Message: "This field is required",
		})
	}

	all, err := service.collect(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*Stats, len(requested))
	for raw, postID := range requested {
		result[raw] = all[postID]
	}

	return result, nil
}

// collect gathers likes, views and comment counts for canonical post ids.
func (service *Service) collect(ctx context.Context, postIDs []string) (map[string]*Stats, error) {
	likes, err := service.likes.CountLikes(ctx, postIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "post_service_count_likes_failed")
	}

	views, err := service.views.Get(ctx, postIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "post_service_get_views_failed")
	}

	stats := make(map[string]*Stats, len(postIDs))
	for _, postID := range postIDs {
		comments, err := service.comments.CountByPost(ctx, postID)
		if err != nil {
			return nil, dberr.Wrap(err, "post_service_count_comments_failed")
		}

		stats[postID] = &Stats{
			PostID:   postID,
			Likes:    likes[postID],
			Comments: int64(comments),
			Views:    views[postID],
		}
	}

	return stats, nil
}
