// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BlogAccountTable represents the 'blog.account' table
type BlogAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    string

	// Unique constraint names, matched against pgconn.PgError.ConstraintName.
	UsernameKey string
	EmailKey    string
}

// BlogAccount is the schema definition for blog.account
var BlogAccount = BlogAccountTable{
	Table:        "blog.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
	UsernameKey:  "account_username_key",
	EmailKey:     "account_email_key",
}
