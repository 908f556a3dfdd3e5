// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package liker identifies who is reacting to a post or comment.
//
// Readers may like content without an account. The browser then keeps a
// random UUID in local storage and sends it as anonymous_id, which is good
// enough to stop accidental double likes.
package liker

import (
	"github.com/google/uuid"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/pkg/pointer"
)

// FieldAnonymousID is the JSON body field and query parameter name.
const FieldAnonymousID = "anonymous_id"

// Liker is exactly one of an account or an anonymous browser.
type Liker struct {
	UserID      int64
	AnonymousID uuid.UUID
}

// IsZero reports whether the liker carries no identity at all.
func (liker Liker) IsZero() bool {
	return liker.UserID == 0 && liker.AnonymousID == uuid.Nil
}

// UserIDArg returns the user id as a nullable SQL argument.
func (liker Liker) UserIDArg() *int64 {
	if liker.UserID == 0 {
		return nil
	}
	return pointer.To(liker.UserID)
}

// AnonymousIDArg returns the anonymous id as a nullable SQL argument.
func (liker Liker) AnonymousIDArg() *uuid.UUID {
	if liker.UserID != 0 || liker.AnonymousID == uuid.Nil {
		return nil
	}
	return pointer.To(liker.AnonymousID)
}

/*
Resolve picks the liker for a request.

An authenticated identity always wins over a client-supplied anonymous id.

Returns:
  - error: apperr.ValidationError when neither is present or the anonymous id is not a UUID
*/
func Resolve(identity *sec.Identity, anonymousID string) (Liker, error) {
	if identity != nil {
		return Liker{UserID: identity.UserID}, nil
	}

	if anonymousID == "" {
		return Liker{}, apperr.ValidationError("Sign in or provide an anonymous id", apperr.FieldError{
			Field:   FieldAnonymousID,
			Message: "This field is required when not signed in",
		})
	}

	parsed, err := uuid.Parse(anonymousID)
	if err != nil || parsed == uuid.Nil {
		return Liker{}, apperr.ValidationError("Invalid anonymous id", apperr.FieldError{
			Field:   FieldAnonymousID,
			Message: "Must be a valid UUID",
		})
	}

	return Liker{AnonymousID: parsed}, nil
}

// Optional is like [Resolve] but returns the zero Liker instead of an error.
// Used where the liker only personalizes a read, such as is_liked.
func Optional(identity *sec.Identity, anonymousID string) Liker {
	liker, err := Resolve(identity, anonymousID)
	if err != nil {
		return Liker{}
	}
	return liker
}
