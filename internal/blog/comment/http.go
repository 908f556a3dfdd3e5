// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/blog/liker"
	"github.com/taibuivan/inkwell/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// Handler implements comment HTTP endpoints.
type Handler struct {
	commentService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{commentService: service}
}

// Routes returns a [chi.Router] for comments.
//
// # Endpoints
//   - GET    /{postID}           : Comments on a post, newest first (public).
//   - POST   /{postID}           : Add a comment (protected).
//   - POST   /{commentID}/like   : Like a comment as a user or anonymous reader.
//   - DELETE /{commentID}        : Delete your own comment (protected).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{postID}", handler.list)
	router.Post("/{commentID}/like", handler.like)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/{postID}", handler.create)
		r.Delete("/{commentID}", handler.delete)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Content string `json:"content"`
}

type likeRequest struct {
	AnonymousID string `json:"anonymous_id"`
}

/*
List returns a page of comments.

GET /api/v1/comments/{postID}?page=1&limit=30

Page sizes follow [PageWindow].
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := PageWindow.FromRequest(request)

	comments, total, err := handler.commentService.List(request.Context(), requestutil.Param(request, "postID"), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, pagination.NewMeta(params, total))
}

/*
Create adds a comment as the authenticated caller.

POST /api/v1/comments/{postID}

Response:
  - 201: Comment
  - 400: Empty or over-long content
  - 401: Not signed in
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, MaxContentLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.commentService.Create(request.Context(), identity, requestutil.Param(request, "postID"), input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

/*
Like records a like on a comment.

POST /api/v1/comments/{commentID}/like

Signed-in callers like as themselves; anonymous readers must send anonymous_id.
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.Int64Param(request, "commentID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input likeRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	who, err := liker.Resolve(requestutil.Identity(request), input.AnonymousID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	likes, err := handler.commentService.Like(request.Context(), commentID, who)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldCommentID: commentID,
		FieldLikes:     likes,
	})
}

/*
Delete removes the caller's own comment.

DELETE /api/v1/comments/{commentID}

Response:
  - 204: Deleted
  - 403: Not the author
  - 404: Unknown comment
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	commentID, err := requestutil.Int64Param(request, "commentID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.commentService.Delete(request.Context(), identity, commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
