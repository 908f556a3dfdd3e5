// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BlogPostLikeTable represents the 'blog.postlike' table
type BlogPostLikeTable struct {
	Table       string
	PostID      string
	UserID      string
	AnonymousID string
	CreatedAt   string
}

// BlogPostLike is the schema definition for blog.postlike
var BlogPostLike = BlogPostLikeTable{
	Table:       "blog.postlike",
	PostID:      "postid",
	UserID:      "userid",
	AnonymousID: "anonymousid",
	CreatedAt:   "createdat",
}
