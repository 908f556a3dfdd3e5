// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "errors"

// Identity is the request-scoped view of an authenticated caller.
//
// It is created by the authentication gate after a token has been verified
// and the account re-resolved, and it lives only as long as the request.
// The platform has exactly one authenticated role, so no role is carried.
type Identity struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// # Token Failure Kinds

// These are internal diagnostics. Clients only ever see a generic
// unauthorized response.
var (
	// ErrTokenMalformed means the token could not be decoded into the expected structure.
	ErrTokenMalformed = errors.New("sec: malformed token")

	// ErrTokenBadSignature means the signature does not match the header and claims.
	ErrTokenBadSignature = errors.New("sec: bad token signature")

	// ErrTokenExpired means the signature is valid but the expiry has passed.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrIdentityRevoked means the token is valid but its account no longer resolves.
	ErrIdentityRevoked = errors.New("sec: identity no longer exists")
)

// KindStoreUnavailable labels failures that came from the identity lookup
// rather than from the token itself.
const KindStoreUnavailable = "store_unavailable"

// Kind returns a stable, log-friendly label for a token failure.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, ErrTokenBadSignature):
		return "bad_signature"
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrIdentityRevoked):
		return "identity_revoked"
	default:
		return KindStoreUnavailable
	}
}
