// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements account registration, login and identity lookup.

# Architecture

Accounts live in Postgres behind [UserRepository]. Passwords are bcrypt
digests produced by the platform hasher and sessions are stateless signed
tokens, so nothing about a login is stored server-side. The authentication
gate calls back into [Service.ResolveIdentity] on every bearer request to
make sure the account behind a token still exists.
*/
package auth

import (
	"errors"
	"time"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
)

// # Domain Entities

// User represents a registered account.
//
// The password digest never leaves the process. There is no raw password
// field, so a decoded request can never be echoed back to a client.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldToken     = "token"
	FieldTokenType = "token_type"
	FieldExpiresIn = "expires_in"
	FieldUser      = "user"
	FieldMessage   = "message"
)

// # Input Constraints

const (
	UsernameMinLength = 3
	UsernameMaxLength = 32
	EmailMaxLength    = 254

	// PasswordMaxBytes is bcrypt's input limit; longer passwords are rejected
	// rather than silently truncated.
	PasswordMaxBytes = 72
)

// # Errors

// ErrUserNotFound is returned by repositories when no account matches.
var ErrUserNotFound = errors.New("auth: user not found")

// ConflictError reports that an insert violated a uniqueness constraint.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return "auth: duplicate " + e.Field
}

// Client-facing failures. Login failures are deliberately indistinguishable.
var (
	ErrDuplicateUsername  = apperr.Duplicate(apperr.CodeDuplicateUsername, FieldUsername, "Username is already taken")
	ErrDuplicateEmail     = apperr.Duplicate(apperr.CodeDuplicateEmail, FieldEmail, "Email is already registered")
	ErrInvalidCredentials = apperr.InvalidCredentials()
)
