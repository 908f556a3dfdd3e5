// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/blog/comment"
	"github.com/taibuivan/inkwell/internal/blog/liker"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
)

// Handler implements post engagement HTTP endpoints.
type Handler struct {
	postService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{postService: service}
}

// Routes returns a [chi.Router] for posts.
//
// # Endpoints
//   - GET  /stats?post_ids=a,b   : Stats for several posts (public).
//   - POST /{postID}/like        : One-time like as a user or anonymous reader.
//   - PUT  /{postID}/views       : Count a view.
//   - GET  /{postID}/stats       : Stats for one post; is_liked for the caller.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/stats", handler.batchStats)
	router.Post("/{postID}/like", handler.like)
	router.Put("/{postID}/views", handler.recordView)
	router.Get("/{postID}/stats", handler.stats)

	return router
}

type likeRequest struct {
	AnonymousID string `json:"anonymous_id"`
}

/*
Like records a one-time like on a post.

POST /api/v1/posts/{postID}/like

Response:
  - 200: LikeResult, already_liked is true for a repeated like
  - 400: Missing or invalid anonymous_id for a guest
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
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

	result, err := handler.postService.Like(request.Context(), requestutil.Param(request, "postID"), who)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// PUT /api/v1/posts/{postID}/views
func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.Param(request, "postID")

	views, err := handler.postService.RecordView(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	canonical, _ := comment.CanonicalPostID(postID)
	respond.OK(writer, map[string]any{
		FieldPostID: canonical,
		FieldViews:  views,
	})
}

/*
Stats returns the engagement summary of one post.

GET /api/v1/posts/{postID}/stats?anonymous_id=...

is_liked reflects the signed-in user, or the anonymous id when given.
*/
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	who := liker.Optional(requestutil.Identity(request), request.URL.Query().Get(liker.FieldAnonymousID))

	stats, err := handler.postService.Stats(request.Context(), requestutil.Param(request, "postID"), who)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}

// GET /api/v1/posts/stats?post_ids=a,b,c
func (handler *Handler) batchStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.postService.BatchStats(request.Context(), request.URL.Query().Get(FieldPostIDs))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}
