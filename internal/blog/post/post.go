// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package post implements reader engagement on blog posts: likes, views and
the aggregated stats shown next to each article.

Likes are durable and live in Postgres. Views are a best-effort counter in
Redis; losing a few increments on a Redis restart is acceptable.
*/
package post

// Stats is the engagement summary of one post.
type Stats struct {
	PostID   string `json:"post_id"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Views    int64  `json:"views"`
	IsLiked  bool   `json:"is_liked"`
}

// LikeResult is returned after a like request.
type LikeResult struct {
	PostID       string `json:"post_id"`
	Likes        int64  `json:"likes"`
	IsLiked      bool   `json:"is_liked"`
	AlreadyLiked bool   `json:"already_liked"`
}

// # Field Identifiers

const (
	FieldPostID  = "post_id"
	FieldPostIDs = "post_ids"
	FieldViews   = "views"
)

// MaxBatchSize bounds how many posts one stats request may ask about.
const MaxBatchSize = 50
