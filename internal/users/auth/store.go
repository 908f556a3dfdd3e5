// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Lookups return [ErrUserNotFound] when nothing matches. Create must enforce
// username and email uniqueness atomically and report a violation as
// [*ConflictError].
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or storage failures
	*/
	FindByID(ctx context.Context, id int64) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or storage failures
	*/
	FindByEmail(ctx context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or storage failures
	*/
	FindByUsername(ctx context.Context, username string) (*User, error)

	/*
		Create persists a brand-new account and fills in ID and CreatedAt.

		Returns:
		  - error: *ConflictError on a uniqueness violation, otherwise storage failures
	*/
	Create(ctx context.Context, user *User) error
}
