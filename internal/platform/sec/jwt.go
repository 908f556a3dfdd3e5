// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, token signing) from
// the domain logic. Services receive it through narrow interfaces such as
// [auth.TokenProvider] and [middleware.TokenVerifier].
package sec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/inkwell/internal/platform/constants"
)

// AuthClaims represents the payload embedded inside an access token.
//
// The subject is the username; the numeric account id travels as "uid" so
// the gate can detect a username that was re-registered by someone else.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID int64 `json:"uid"`
}

// Username returns the subject claim.
func (claims *AuthClaims) Username() string {
	return claims.Subject
}

// TokenService issues and verifies HS256-signed access tokens.
//
// The secret and TTL are fixed at construction and read-only afterwards, so
// a TokenService is safe for concurrent use. Rotating the secret means
// restarting the process, which invalidates every outstanding token.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// TokenOption customizes a [TokenService].
type TokenOption func(*TokenService)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) TokenOption {
	return func(service *TokenService) {
		service.now = now
	}
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret []byte, issuer string, timeToLive time.Duration, opts ...TokenOption) (*TokenService, error) {
	if len(secret) < constants.MinSecretLength {
		return nil, fmt.Errorf("sec: signing secret must be at least %d bytes", constants.MinSecretLength)
	}

	// NumericDate has second precision; anything shorter could yield exp == iat.
	if timeToLive < time.Second {
		return nil, fmt.Errorf("sec: token ttl must be at least 1s, got %s", timeToLive)
	}

	service := &TokenService{
		secret: append([]byte(nil), secret...),
		issuer: issuer,
		ttl:    timeToLive,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	service.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(service.now),
		// golang-jwt rejects at now >= exp. The leeway moves its cut-off one
		// second later and VerifyToken applies the exact now > exp rule itself.
		jwt.WithLeeway(time.Second),
	)

	return service, nil
}

// TTL reports how long issued tokens stay valid.
func (service *TokenService) TTL() time.Duration {
	return service.ttl
}

// Issue creates a signed token for the given account.
func (service *TokenService) Issue(username string, userID int64) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", errors.New("sec: cannot issue token for empty username")
	}

	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a token string.
//
// # Order of checks
//  1. Structure: exactly three non-empty segments.
//  2. Signature: HMAC over the raw "header.claims" bytes, before any claim is decoded.
//  3. Claims: algorithm, issuer, iat and exp via golang-jwt.
//  4. Expiry: a token is expired only once now > exp. At exactly exp it is
//     still accepted.
//
// Failures wrap [ErrTokenMalformed], [ErrTokenBadSignature] or [ErrTokenExpired].
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	segments := strings.Split(tokenString, ".")
	if len(segments) != 3 || segments[0] == "" || segments[1] == "" || segments[2] == "" {
		return nil, ErrTokenMalformed
	}

	signature, err := service.parser.DecodeSegment(segments[2])
	if err != nil {
		return nil, fmt.Errorf("%w: signature segment: %v", ErrTokenMalformed, err)
	}

	signingString := segments[0] + "." + segments[1]
	if err := jwt.SigningMethodHS256.Verify(signingString, signature, service.secret); err != nil {
		return nil, ErrTokenBadSignature
	}

	claims := &AuthClaims{}
	_, err = service.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if service.now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	if claims.Subject == "" || claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: missing subject or uid", ErrTokenMalformed)
	}

	return claims, nil
}

// ExtractUsername decodes the subject WITHOUT verifying the token.
//
// It only lets the gate short-circuit garbage early. Its result must never
// authorize anything; use [TokenService.VerifyToken] for that.
func (service *TokenService) ExtractUsername(tokenString string) (string, bool) {
	claims := &AuthClaims{}
	if _, _, err := service.parser.ParseUnverified(tokenString, claims); err != nil {
		return "", false
	}

	if claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}
