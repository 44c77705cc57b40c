// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/internal/platform/constants"
	"github.com/campusworks/pmo-api/internal/platform/middleware"
	requestutil "github.com/campusworks/pmo-api/internal/platform/request"
	"github.com/campusworks/pmo-api/internal/platform/respond"
	"github.com/campusworks/pmo-api/internal/platform/validate"
)

// Handler implements the HTTP layer for sign-in and sign-out.
type Handler struct {
	sessionService *Service
}

// NewHandler constructs a new session [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{sessionService: service}
}

// Routes returns a [chi.Router] configured with the auth endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/sign-in", handler.signIn)
	router.Post("/sign-out", handler.signOut)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
	})

	return router
}

// # Auth Endpoints

// signInRequest defines the expected JSON payload for sign-in.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /api/v1/auth/sign-in.

Description: Validates credentials, establishes a 24-hour session, and sets
the opaque session cookie. The body additionally carries a short-lived
access token for API clients that prefer the Bearer path.

Response:
  - 200: Auth: access token, expiry, and profile snapshot
  - 401: ErrInvalidCredentials: Any credential failure, undifferentiated
*/
func (handler *Handler) signIn(writer http.ResponseWriter, request *http.Request) {
	var input signInRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("email", input.Email)
	v.Required("password", input.Password)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	auth, err := handler.sessionService.SignIn(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    auth.Token,
		Path:     constants.SessionCookiePath,
		Expires:  auth.ExpiresAt,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, map[string]any{
		"access_token": auth.AccessToken,
		"expires_at":   auth.ExpiresAt,
		"profile":      auth.Profile,
	})
}

/*
POST /api/v1/auth/sign-out.

Description: Ends the session named by the cookie (if any) and clears the
cookie. Idempotent: signing out twice, or with no session at all, succeeds.

Response:
  - 204: No Content: Signed out (or nothing to sign out of)
*/
func (handler *Handler) signOut(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.SessionCookieName)

	if err == nil && cookie != nil && cookie.Value != "" {
		if err := handler.sessionService.SignOut(request.Context(), cookie.Value); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.NoContent(writer)
}

/*
GET /api/v1/auth/me.

Description: Returns the frozen profile snapshot of the current session.
This is the snapshot captured at sign-in, NOT the live directory record.

Response:
  - 200: Profile: The session snapshot
  - 401: ErrUnauthorized: No live session
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	profile := requestutil.Profile(request)
	if profile == nil {
		respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
		return
	}

	respond.OK(writer, profile)
}
