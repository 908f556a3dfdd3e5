// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

// # Contracts & Types

// PasswordHasher is satisfied by [*sec.Hasher].
type PasswordHasher interface {
	Hash(plainTextPassword string) (string, error)
	Verify(plainTextPassword, digest string) bool
	VerifyDummy(plainTextPassword string) bool
}

// TokenProvider is satisfied by [*sec.TokenService].
type TokenProvider interface {
	Issue(username string, userID int64) (string, error)
	TTL() time.Duration
}

// Service implements account use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	hasher         PasswordHasher
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, hasher PasswordHasher, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		hasher:         hasher,
		tokenProvider:  tokenProv,
	}
}

// NormalizeUsername trims and NFC-normalizes a username so visually
// identical names collide on the unique constraint.
func NormalizeUsername(username string) string {
	return norm.NFC.String(strings.TrimSpace(username))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register checks uniqueness, hashes the password and persists a new account.

Username is checked before email, so when both are taken the caller is told
about the username. The pre-checks are only a fast path: a racing insert is
caught by the store's constraints and reported with the same errors.

Returns:
  - *User: Created entity, carrying the digest but never the raw password
  - error: ErrDuplicateUsername, ErrDuplicateEmail or a StoreUnavailable error
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	username := NormalizeUsername(input.Username)
	email := NormalizeEmail(input.Email)

	taken, err := service.exists(service.userRepository.FindByUsername(ctx, username))
	if err != nil {
		return nil, dberr.Wrap(err, "auth_service_register_username_lookup_failed")
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	taken, err = service.exists(service.userRepository.FindByEmail(ctx, email))
	if err != nil {
		return nil, dberr.Wrap(err, "auth_service_register_email_lookup_failed")
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			if conflict.Field == FieldEmail {
				return nil, ErrDuplicateEmail
			}
			return nil, ErrDuplicateUsername
		}
		return nil, dberr.Wrap(err, "auth_service_register_failed")
	}

	return user, nil
}

// exists folds a lookup result into "taken or not", keeping real failures.
func (service *Service) exists(_ *User, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUserNotFound):
		return false, nil
	default:
		return false, err
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession is the result of a successful sign-in.
type LoginSession struct {
	User      *User
	Token     string
	TokenType string
	ExpiresIn int64
}

/*
Login verifies credentials and issues an access token.

An unknown username and a wrong password produce the same error, and the
unknown-user path still spends a bcrypt comparison so response time does
not reveal which one happened.

Returns:
  - *LoginSession: User plus signed token
  - error: ErrInvalidCredentials or a StoreUnavailable error
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByUsername(ctx, NormalizeUsername(input.Username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			service.hasher.VerifyDummy(input.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, dberr.Wrap(err, "auth_service_login_lookup_failed")
	}

	if !service.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return service.IssueSession(user)
}

// IssueSession signs a token for an already authenticated user.
func (service *Service) IssueSession(user *User) (*LoginSession, error) {
	token, err := service.tokenProvider.Issue(user.Username, user.ID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	return &LoginSession{
		User:      user,
		Token:     token,
		TokenType: constants.AuthScheme,
		ExpiresIn: int64(service.tokenProvider.TTL().Seconds()),
	}, nil
}

// # Identity

// Profile loads the account behind an authenticated identity.
func (service *Service) Profile(ctx context.Context, identity *sec.Identity) (*User, error) {
	user, err := service.userRepository.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, "auth_service_profile_failed")
	}
	return user, nil
}

// ResolveIdentity reports who a username belongs to right now.
//
// It returns [sec.ErrIdentityRevoked] for a username that no longer exists;
// any other error means the store could not answer.
func (service *Service) ResolveIdentity(ctx context.Context, username string) (*sec.Identity, error) {
	user, err := service.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, sec.ErrIdentityRevoked
		}
		return nil, fmt.Errorf("auth_service_resolve_identity_failed: %w", err)
	}

	return &sec.Identity{UserID: user.ID, Username: user.Username}, nil
}
