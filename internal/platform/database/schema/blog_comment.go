// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BlogCommentTable represents the 'blog.comment' table
type BlogCommentTable struct {
	Table     string
	ID        string
	PostID    string
	UserID    string
	Content   string
	CreatedAt string
}

// BlogComment is the schema definition for blog.comment
var BlogComment = BlogCommentTable{
	Table:     "blog.comment",
	ID:        "id",
	PostID:    "postid",
	UserID:    "userid",
	Content:   "content",
	CreatedAt: "createdat",
}

// BlogCommentLikeTable represents the 'blog.commentlike' table
type BlogCommentLikeTable struct {
	Table       string
	CommentID   string
	UserID      string
	AnonymousID string
	CreatedAt   string
}

// BlogCommentLike is the schema definition for blog.commentlike
var BlogCommentLike = BlogCommentLikeTable{
	Table:       "blog.commentlike",
	CommentID:   "commentid",
	UserID:      "userid",
	AnonymousID: "anonymousid",
	CreatedAt:   "createdat",
}
