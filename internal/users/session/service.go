// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package session

import (
	"context"
	"time"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/internal/platform/sec"
	"github.com/campusworks/pmo-api/internal/users/directory"
)

// # Session Service

// SignInListener observes successful sign-ins. Listeners run synchronously
// on the sign-in path and must be fast.
type SignInListener func(profile *access.Profile)

// SignOutListener observes sign-outs that actually ended a live session.
type SignOutListener func(userID string)

// Service implements the session authenticator: sign-in, sign-out, and
// token-to-profile resolution with lazy expiry.
//
// The clock is injected so lifetime boundaries can be tested without
// sleeping; production uses time.Now.
type Service struct {
	directoryService *directory.Service
	store            Store
	tokens           *sec.TokenService
	now              func() time.Time

	signInListeners  []SignInListener
	signOutListeners []SignOutListener
}

// NewService creates a session service over the given collaborators.
func NewService(directoryService *directory.Service, store Store, tokens *sec.TokenService) *Service {
	return &Service{
		directoryService: directoryService,
		store:            store,
		tokens:           tokens,
		now:              time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// OnSignIn registers a listener invoked after every successful sign-in.
// Not safe to call concurrently with serving traffic; register at wiring time.
func (service *Service) OnSignIn(listener SignInListener) {
	service.signInListeners = append(service.signInListeners, listener)
}

// OnSignOut registers a listener invoked when a live session is ended.
func (service *Service) OnSignOut(listener SignOutListener) {
	service.signOutListeners = append(service.signOutListeners, listener)
}

// Auth is the result of a successful sign-in.
type Auth struct {
	// Token is the raw opaque session token. It is returned exactly once,
	// here; only its digest is stored.
	Token string `json:"session_token"`

	// AccessToken is the short-lived signed token carrying the same snapshot
	// for stateless consumers.
	AccessToken string `json:"access_token"`

	// ExpiresAt is the session expiry instant.
	ExpiresAt time.Time `json:"expires_at"`

	// Profile is the snapshot captured for this session.
	Profile access.Profile `json:"profile"`
}

// snapshot freezes the account state relevant to access decisions.
func snapshot(account *directory.Account) access.Profile {
	return access.Profile{
		UserID: account.ID,
		Email:  account.Email,
		Name:   account.Name,
		Role:   account.Role,
		Grant:  account.Grant,
	}
}

/*
SignIn validates credentials and establishes a new session.

Each sign-in issues a fresh token and a fresh 24-hour window; signing in
again does not extend or replace existing sessions for the same account.
The returned profile is a snapshot: directory edits made after this call do
not flow into it.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *Auth: Session token, access token, expiry, and profile snapshot
  - error: apperr.InvalidCredentials on any credential failure
*/
func (service *Service) SignIn(context context.Context, email, password string) (*Auth, error) {
	account, err := service.directoryService.Validate(context, email, password)
	if err != nil {
		return nil, err
	}

	token, err := sec.GenerateSecureToken(TokenBytes)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := service.now().UTC()
	session := &Session{
		Profile:    snapshot(account),
		CapturedAt: now,
		ExpiresAt:  now.Add(TTL),
	}

	if err := service.store.Save(context, sec.HashToken(token), session, TTL); err != nil {
		return nil, apperr.Internal(err)
	}

	accessToken, err := service.tokens.GenerateAccessToken(
		session.Profile.UserID,
		session.Profile.Email,
		session.Profile.Name,
		string(session.Profile.Role),
		session.Profile.Grant.Pages(),
		AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	for _, listener := range service.signInListeners {
		listener(&session.Profile)
	}

	return &Auth{
		Token:       token,
		AccessToken: accessToken,
		ExpiresAt:   session.ExpiresAt,
		Profile:     session.Profile,
	}, nil
}

/*
GetSession resolves a raw session token to its live session.

Expiry is lazy: an expired record found here is deleted and reported as
absent. Absence (unknown token, signed out, or expired) returns (nil, nil)
so callers can treat "nobody is signed in" as a normal state.

Parameters:
  - context: context.Context
  - token: string (raw opaque token)

Returns:
  - *Session: Live session, or nil when none
  - error: Storage failures only
*/
func (service *Service) GetSession(context context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	tokenHash := sec.HashToken(token)
	session, err := service.store.Find(context, tokenHash)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if session.ExpiredAt(service.now().UTC()) {
		// Reap on touch. Failure to delete is ignored: the record is already
		// unusable and Redis will reclaim it by TTL.
		_ = service.store.Delete(context, tokenHash)
		return nil, nil
	}

	return session, nil
}

/*
ProfileFromToken resolves a raw session token to the signed-in profile.

Implements the middleware SessionResolver contract: (nil, nil) means the
request proceeds anonymously.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *access.Profile: Frozen snapshot, or nil when no live session
  - error: Storage failures only
*/
func (service *Service) ProfileFromToken(context context.Context, token string) (*access.Profile, error) {
	session, err := service.GetSession(context, token)
	if err != nil || session == nil {
		return nil, err
	}
	return &session.Profile, nil
}

/*
SignOut ends the session for the given token.

Idempotent: unknown, expired, and already-signed-out tokens all succeed
silently. Only the targeted session ends; other sessions for the same
account are untouched.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Storage failures only
*/
func (service *Service) SignOut(context context.Context, token string) error {
	if token == "" {
		return nil
	}

	tokenHash := sec.HashToken(token)

	// Look up first so listeners only fire for sessions that were live.
	session, err := service.store.Find(context, tokenHash)
	if err != nil {
		return err
	}

	if err := service.store.Delete(context, tokenHash); err != nil {
		return err
	}

	if session != nil && !session.ExpiredAt(service.now().UTC()) {
		for _, listener := range service.signOutListeners {
			listener(session.Profile.UserID)
		}
	}
	return nil
}
