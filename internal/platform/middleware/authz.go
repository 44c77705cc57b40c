// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

// Package middleware provides the HTTP middleware chain for the PMO API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthZ/AuthN, Rate Limiting, and CORS.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/internal/platform/constants"
	"github.com/campusworks/pmo-api/internal/platform/ctxutil"
	"github.com/campusworks/pmo-api/internal/platform/respond"
	"github.com/campusworks/pmo-api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify signed access tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the `sec` token
// service implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// SessionResolver resolves an opaque session token into the signed-in profile.
//
// A resolver returning (nil, nil) means the token does not map to a live
// session — the request proceeds as anonymous, which per the access rules is
// a fully readable state, not an error.
type SessionResolver interface {
	ProfileFromToken(ctx context.Context, token string) (*access.Profile, error)
}

// Authenticate establishes the request identity from either credential source.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' — a signed access token
//     carrying the profile snapshot (stateless path).
//  2. Otherwise check the session cookie — an opaque token resolved against
//     the session store (stateful path, honours sign-out and lazy expiry).
//  3. If neither is present or the session has lapsed, the request proceeds
//     as anonymous.
//  4. On success, inject [*access.Profile] into the request context.
func Authenticate(verifier TokenVerifier, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Bearer Access Token ────────────────────────────────────────
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
					return
				}

				claims, err := verifier.VerifyToken(parts[1])
				if err != nil {
					// An explicitly presented credential that fails verification
					// is an error, unlike a silently lapsed session.
					respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
					return
				}

				ctx := ctxutil.WithProfile(request.Context(), ProfileFromClaims(claims))
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			// ── 2. Session Cookie ─────────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				// Anonymous access.
				next.ServeHTTP(writer, request)
				return
			}

			profile, err := resolver.ProfileFromToken(request.Context(), cookie.Value)
			if err != nil || profile == nil {
				// Expired or revoked session: logged out, never a distinct error.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithProfile(request.Context(), profile)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// ProfileFromClaims rebuilds the profile snapshot embedded in access token claims.
func ProfileFromClaims(claims *sec.AuthClaims) *access.Profile {
	return &access.Profile{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   sec.Role(claims.Role),
		Grant:  access.GrantPages(claims.Pages...),
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*access.Profile] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		profile := ctxutil.GetProfile(request.Context())
		if profile == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin blocks requests unless the authenticated account is an admin.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically
// implies [RequireAuth] so you don't need to mount both.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		profile := ctxutil.GetProfile(request.Context())

		// ── 1. Authentication Check ───────────────────────────────────────
		if profile == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		// ── 2. Authorization Check ────────────────────────────────────────
		if !profile.Role.IsAdmin() {
			respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
