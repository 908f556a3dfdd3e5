// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/taibuivan/inkwell/internal/blog/liker"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/pkg/pagination"
	"github.com/taibuivan/inkwell/pkg/slug"
)

// Service implements comment use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CanonicalPostID validates and canonicalizes a post identifier from a URL.
//
// Permalink-style ids arrive percent-encoded ("2026%2F01%2Fhello") because
// a route parameter cannot span path segments.
func CanonicalPostID(raw string) (string, error) {
	unescaped, err := url.PathUnescape(raw)
	if err != nil {
		unescaped = ""
	}

	postID, ok := slug.Canonical(unescaped)
	if !ok {
		return "", apperr.ValidationError("Invalid post id", apperr.FieldError{
			Field:   FieldPostID,
			Message: fmt.Sprintf("Must be 1 to %d characters", slug.MaxLength),
		})
	}
	return postID, nil
}

/*
List returns one page of a post's comments, newest first, plus the total.

Returns:
  - []*Comment: Page of comments with author username and like count
  - int: Total comments on the post
  - error: Validation or StoreUnavailable errors
*/
func (service *Service) List(ctx context.Context, rawPostID string, params pagination.Params) ([]*Comment, int, error) {
	postID, err := CanonicalPostID(rawPostID)
	if err != nil {
		return nil, 0, err
	}

	comments, err := service.repository.ListByPost(ctx, postID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "comment_service_list_failed")
	}

	total, err := service.repository.CountByPost(ctx, postID)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "comment_service_count_failed")
	}

	if comments == nil {
		comments = []*Comment{}
	}

	return comments, total, nil
}

// CountByPost reports how many comments a canonical post id has.
func (service *Service) CountByPost(ctx context.Context, postID string) (int, error) {
	return service.repository.CountByPost(ctx, postID)
}

/*
Create posts a comment as the authenticated caller.

The author always comes from the identity; a client cannot comment on
someone else's behalf.
*/
func (service *Service) Create(ctx context.Context, identity *sec.Identity, rawPostID, content string) (*Comment, error) {
	postID, err := CanonicalPostID(rawPostID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:   postID,
		UserID:   identity.UserID,
		Username: identity.Username,
		Content:  strings.TrimSpace(content),
	}

	if err := service.repository.Create(ctx, comment); err != nil {
		return nil, dberr.Wrap(err, "comment_service_create_failed")
	}

	return comment, nil
}

// Like records a like on a comment and returns its new like count.
func (service *Service) Like(ctx context.Context, commentID int64, who liker.Liker) (int64, error) {
	if who.IsZero() {
		return 0, apperr.ValidationError("Liker is required")
	}

	likes, err := service.repository.AddLike(ctx, commentID, who)
	if err != nil {
		return 0, service.translate(err, "comment_service_like_failed")
	}

	return likes, nil
}

// Delete removes a comment. Only its author may do so.
func (service *Service) Delete(ctx context.Context, identity *sec.Identity, commentID int64) error {
	comment, err := service.repository.FindByID(ctx, commentID)
	if err != nil {
		return service.translate(err, "comment_service_delete_lookup_failed")
	}

	if comment.UserID != identity.UserID {
		return apperr.Forbidden("Only the author can delete this comment")
	}

	if err := service.repository.Delete(ctx, commentID); err != nil {
		return service.translate(err, "comment_service_delete_failed")
	}

	return nil
}

func (service *Service) translate(err error, action string) error {
	if errors.Is(err, ErrCommentNotFound) {
		return apperr.NotFound("Comment")
	}
	return dberr.Wrap(err, action)
}
