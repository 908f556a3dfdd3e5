// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment implements reader comments on blog posts.

Posts themselves live in the static site; a comment only references its
post by the canonical identifier from pkg/slug. Listing and liking are
public, while writing and deleting require an authenticated identity.
*/
package comment

import (
	"errors"
	"time"

	"github.com/taibuivan/inkwell/pkg/pagination"
)

// # Domain Entities

// Comment is a single reader comment, joined with its author's username
// and like count when read back.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldPostID    = "post_id"
	FieldCommentID = "comment_id"
	FieldContent   = "content"
	FieldLikes     = "likes"
	FieldMessage   = "message"
)

// MaxContentLength bounds a comment body, in characters.
const MaxContentLength = 2000

// PageWindow sizes a page of a comment thread. Thirty covers most posts in
// one request; the cap keeps a single response for a busy thread small.
var PageWindow = pagination.Window{DefaultLimit: 30, MaxLimit: 100}

// ErrCommentNotFound is returned by repositories when no comment matches.
var ErrCommentNotFound = errors.New("comment: not found")
