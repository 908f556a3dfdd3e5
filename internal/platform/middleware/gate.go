// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

// TokenVerifier defines the token operations the gate depends on.
//
// Declared here rather than in sec so tests can substitute a stub.
type TokenVerifier interface {
	VerifyToken(token string) (*sec.AuthClaims, error)
	ExtractUsername(token string) (string, bool)
}

// IdentityResolver looks up whether a username still belongs to a live account.
//
// Implementations return [sec.ErrIdentityRevoked] when the account is gone
// and any other error when the store itself failed.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, username string) (*sec.Identity, error)
}

// Status is the terminal state of the per-request authentication machine.
type Status int

const (
	// Anonymous means no bearer credential was presented.
	Anonymous Status = iota

	// Authenticated means the token verified and its account still resolves.
	Authenticated

	// Rejected means a bearer credential was presented but could not be trusted.
	Rejected
)

// String returns a log-friendly label.
func (status Status) String() string {
	switch status {
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "anonymous"
	}
}

// Outcome is the result of authenticating one Authorization header value.
type Outcome struct {
	Status   Status
	Identity *sec.Identity

	// Reason is set only for [Rejected]. It is for logs, never for clients.
	Reason error
}

// Gate authenticates requests from their bearer token.
//
// It never writes a response itself. Routes decide whether an anonymous
// caller is acceptable by mounting [RequireAuth].
type Gate struct {
	tokens     TokenVerifier
	identities IdentityResolver
}

// NewGate wires the gate to its token codec and identity lookup.
func NewGate(tokens TokenVerifier, identities IdentityResolver) *Gate {
	return &Gate{tokens: tokens, identities: identities}
}

/*
Authenticate runs the full state machine over a raw Authorization header value.

Flow:
 1. Missing header or a scheme other than Bearer: [Anonymous].
 2. Undecodable token: [Rejected] with [sec.ErrTokenMalformed].
 3. Signature, structure or expiry failure: [Rejected] with the codec's kind.
 4. Account lookup: the username must still resolve to the same user id.
*/
func (gate *Gate) Authenticate(ctx context.Context, header string) Outcome {
	token, present := bearerToken(header)
	if !present {
		return Outcome{Status: Anonymous}
	}

	if _, ok := gate.tokens.ExtractUsername(token); !ok {
		return rejected(sec.ErrTokenMalformed)
	}

	claims, err := gate.tokens.VerifyToken(token)
	if err != nil {
		return rejected(err)
	}

	identity, err := gate.identities.ResolveIdentity(ctx, claims.Username())
	if err != nil {
		return rejected(err)
	}

	// A recreated account reuses the username but not the id.
	if identity == nil || identity.UserID != claims.UserID {
		return rejected(sec.ErrIdentityRevoked)
	}

	return Outcome{Status: Authenticated, Identity: identity}
}

// Handler binds the authenticated identity into the request context.
//
// Rejected credentials are logged and the request continues anonymously,
// so public routes keep working with a stale token while protected routes
// still answer 401.
func (gate *Gate) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			outcome := gate.Authenticate(ctx, request.Header.Get(constants.HeaderAuthorization))

			switch outcome.Status {
			case Authenticated:
				ctx = ctxutil.WithIdentity(ctx, outcome.Identity)
				recordIdentity(ctx, outcome.Identity)
			case Rejected:
				kind := sec.Kind(outcome.Reason)
				level := slog.LevelWarn
				if kind == sec.KindStoreUnavailable {
					level = slog.LevelError
				}
				ctxutil.GetLogger(ctx).Log(ctx, level, "authentication_rejected",
					slog.String("kind", kind),
					slog.Any("error", outcome.Reason),
				)
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that carry no authenticated identity.
//
// Must be mounted after [Gate.Handler]. Every failure reason collapses into
// the same 401 body.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetIdentity(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func rejected(reason error) Outcome {
	return Outcome{Status: Rejected, Reason: reason}
}

// bearerToken splits "Bearer <token>". The second result is false when the
// header carries no bearer credential at all.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, constants.AuthScheme) {
		return "", false
	}
	return strings.TrimSpace(token), true
}
