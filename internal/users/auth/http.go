// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// usernamePattern allows letters and digits from any script plus '.', '_' and '-'.
var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}._-]+$`)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account and signs it in.
//   - POST /login    : Authenticates and returns a bearer token.
//   - GET  /me       : Current account (protected).
//   - POST /logout   : Stateless acknowledgement; the client drops its token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /api/v1/auth/register

Response:
  - 201: {user, token}
  - 400: Validation failure
  - 409: DUPLICATE_USERNAME or DUPLICATE_EMAIL with the offending field
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	username := NormalizeUsername(input.Username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		MinLen(FieldUsername, username, UsernameMinLength).
		MaxLen(FieldUsername, username, UsernameMaxLength).
		Custom(FieldUsername, username != "" && !usernamePattern.MatchString(username), "Letters, digits, '.', '_' and '-' only").
		Required(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, EmailMaxLength).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MaxBytes(FieldPassword, input.Password, PasswordMaxBytes)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Username: username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.IssueSession(user)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		FieldUser:  user,
		FieldToken: session.Token,
	})
}

/*
Login authenticates a user and returns a bearer token.

POST /api/v1/auth/login

Response:
  - 200: {user, token, token_type, expires_in}
  - 401: INVALID_CREDENTIALS, identical for unknown user and wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldUser:      session.User,
		FieldToken:     session.Token,
		FieldTokenType: session.TokenType,
		FieldExpiresIn: session.ExpiresIn,
	})
}

/*
Me returns the account of the authenticated caller.

GET /api/v1/auth/me
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Profile(request.Context(), identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
Logout acknowledges a sign-out.

POST /api/v1/auth/logout

Tokens are stateless, so there is nothing to revoke server-side.
*/
func (handler *Handler) logout(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		FieldMessage: "Logged out. Discard the token on the client.",
	})
}
