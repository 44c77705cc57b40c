// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package session_test

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/internal/platform/sec"
	"github.com/campusworks/pmo-api/internal/users/directory"
	"github.com/campusworks/pmo-api/internal/users/session"
)

// testSecret satisfies the 32-byte minimum for the token service.
const testSecret = "0123456789abcdef0123456789abcdef"

// fixture bundles a session service with its collaborators and a movable clock.
type fixture struct {
	directory *directory.Service
	store     *session.MemoryStore
	service   *session.Service
	clock     time.Time
}

// newFixture wires a session service over in-memory stores with a frozen clock.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, "test")
	require.NoError(t, err)

	f := &fixture{
		directory: directory.NewService(directory.NewMemoryAccountRepository()),
		store:     session.NewMemoryStore(),
		clock:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.service = session.NewService(f.directory, f.store, tokens).
		WithClock(func() time.Time { return f.clock })
	return f
}

// advance moves the fixture clock forward.
func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

// addAccount registers a directory account for the fixture.
func (f *fixture) addAccount(t *testing.T, email, password, role string, pages []string) *directory.Account {
	t.Helper()
	account, err := f.directory.Create(context.Background(), directory.CreateInput{
		Email:        email,
		Password:     password,
		Role:         role,
		AllowedPages: pages,
		Name:         "Test Account",
	})
	require.NoError(t, err)
	return account
}

/*
TestSession_SignInAdmin walks the full admin path: sign-in with a wildcard
allow-list must make every page, registered or not, accessible.
*/
func TestSession_SignInAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "admin@x.edu", "p1-admin-pw", string(sec.RoleAdmin), []string{access.Wildcard})

	auth, err := f.service.SignIn(ctx, "admin@x.edu", "p1-admin-pw")
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
	require.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, f.clock.Add(session.TTL), auth.ExpiresAt)

	assert.True(t, access.CanAccess(&auth.Profile, "anything-at-all"))
	assert.True(t, access.CanAccess(&auth.Profile, access.PageUsers))
}

/*
TestSession_SignInStaff walks the allow-listed staff path: listed pages and
identity overrides are reachable, everything else is not.
*/
func TestSession_SignInStaff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "staff@x.edu", "p2-staff-pw", string(sec.RoleStaff), []string{"overview", "forms"})

	auth, err := f.service.SignIn(ctx, "staff@x.edu", "p2-staff-pw")
	require.NoError(t, err)

	profile := &auth.Profile
	assert.True(t, access.CanAccess(profile, "forms"))
	assert.False(t, access.CanAccess(profile, "users"))
	assert.True(t, access.CanAccess(profile, "settings"))
	assert.False(t, access.CanAccess(profile, "construction-overview"))
}

/*
TestSession_SignInFailures verifies that wrong passwords, unknown emails,
and non-active accounts all fail with the identical credential error.
*/
func TestSession_SignInFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "staff@x.edu", "p2-staff-pw", string(sec.RoleStaff), []string{"overview"})

	pending, err := f.directory.Create(ctx, directory.CreateInput{
		Email:        "pending@x.edu",
		Password:     "p3-pending-pw",
		Role:         string(sec.RoleStaff),
		Status:       string(directory.StatusPending),
		AllowedPages: []string{"overview"},
		Name:         "Pending Account",
	})
	require.NoError(t, err)
	require.Equal(t, directory.StatusPending, pending.Status)

	_, wrongPassword := f.service.SignIn(ctx, "staff@x.edu", "not-the-password")
	_, unknownEmail := f.service.SignIn(ctx, "nobody@x.edu", "p2-staff-pw")
	_, pendingStatus := f.service.SignIn(ctx, "pending@x.edu", "p3-pending-pw")

	for _, err := range []error{wrongPassword, unknownEmail, pendingStatus} {
		require.Error(t, err)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Code)
	}
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

/*
TestSession_Lifetime pins the 24-hour boundary: a session is live just
before T+24h and gone at the boundary and beyond. No sleeping; the clock
is injected.
*/
func TestSession_Lifetime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "staff@x.edu", "p2-staff-pw", string(sec.RoleStaff), []string{"overview"})

	auth, err := f.service.SignIn(ctx, "staff@x.edu", "p2-staff-pw")
	require.NoError(t, err)

	// 1. Just inside the window
	f.advance(session.TTL - time.Second)
	live, err := f.service.GetSession(ctx, auth.Token)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, "staff@x.edu", live.Profile.Email)

	// 2. Exactly at the boundary: expired
	f.advance(time.Second)
	gone, err := f.service.GetSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// 3. Lazy expiry reaped the record on touch
	assert.Equal(t, 0, f.store.Len())
}

/*
TestSession_SnapshotStaleness verifies the snapshot contract: directory
edits after sign-in do not flow into an existing session, and a fresh
sign-in observes them.
*/
func TestSession_SnapshotStaleness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	account := f.addAccount(t, "staff@x.edu", "p2-staff-pw", string(sec.RoleStaff), []string{"overview", "forms"})

	auth, err := f.service.SignIn(ctx, "staff@x.edu", "p2-staff-pw")
	require.NoError(t, err)

	// Revoke everything in the directory.
	pages := []string{}
	_, err = f.directory.Update(ctx, account.ID, directory.UpdateInput{AllowedPages: &pages})
	require.NoError(t, err)

	// The live session still carries the sign-in snapshot.
	live, err := f.service.GetSession(ctx, auth.Token)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.True(t, access.CanAccess(&live.Profile, "forms"))
	assert.Equal(t, f.clock, live.CapturedAt)

	// A fresh sign-in observes the revocation: empty grant, fail closed.
	fresh, err := f.service.SignIn(ctx, "staff@x.edu", "p2-staff-pw")
	require.NoError(t, err)
	assert.False(t, access.CanAccess(&fresh.Profile, "forms"))
}

/*
TestSession_SignOut verifies targeted, idempotent sign-out and listener
notifications.
*/
func TestSession_SignOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "staff@x.edu", "p2-staff-pw", string(sec.RoleStaff), []string{"overview"})

	var signedIn, signedOut int
	f.service.OnSignIn(func(*access.Profile) { signedIn++ })
	f.service.OnSignOut(func(string) { signedOut++ })

	first, err := f.service.SignIn(ctx, "staff@x.edu", "p2-staff-pw")
	require.NoError(t, err)
	second, err := f.service.SignIn(ctx, "staff@x.edu", "p2-staff-pw")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, 2, signedIn)

	// 1. Ending one session leaves the other live
	require.NoError(t, f.service.SignOut(ctx, first.Token))
	gone, err := f.service.GetSession(ctx, first.Token)
	require.NoError(t, err)
	assert.Nil(t, gone)

	still, err := f.service.GetSession(ctx, second.Token)
	require.NoError(t, err)
	assert.NotNil(t, still)

	// 2. Signing out again, or with garbage, is a silent success
	require.NoError(t, f.service.SignOut(ctx, first.Token))
	require.NoError(t, f.service.SignOut(ctx, "never-issued-token"))
	require.NoError(t, f.service.SignOut(ctx, ""))

	// 3. Only the live sign-out fired the listener
	assert.Equal(t, 1, signedOut)
}

/*
TestSession_ProfileFromToken verifies the middleware resolver contract:
nil profile (not an error) for absent, expired, or empty tokens.
*/
func TestSession_ProfileFromToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "staff@x.edu", "p2-staff-pw", string(sec.RoleStaff), []string{"overview"})

	auth, err := f.service.SignIn(ctx, "staff@x.edu", "p2-staff-pw")
	require.NoError(t, err)

	profile, err := f.service.ProfileFromToken(ctx, auth.Token)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "staff@x.edu", profile.Email)

	profile, err = f.service.ProfileFromToken(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, profile)

	profile, err = f.service.ProfileFromToken(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, profile)

	f.advance(session.TTL + time.Minute)
	profile, err = f.service.ProfileFromToken(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

/*
TestSession_RecordRoundTrip verifies the persisted record shape used by the
Redis store: epoch-millisecond timestamps and the wildcard grant both
survive serialization.
*/
func TestSession_RecordRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "admin@x.edu", "p1-admin-pw", string(sec.RoleAdmin), []string{access.Wildcard})

	auth, err := f.service.SignIn(ctx, "admin@x.edu", "p1-admin-pw")
	require.NoError(t, err)

	live, err := f.service.GetSession(ctx, auth.Token)
	require.NoError(t, err)
	require.NotNil(t, live)

	payload, err := json.Marshal(live)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"captured_at":`+strconv.FormatInt(live.CapturedAt.UnixMilli(), 10))

	restored := &session.Session{}
	require.NoError(t, json.Unmarshal(payload, restored))
	assert.True(t, restored.Profile.Grant.IsUnrestricted())
	assert.Equal(t, sec.RoleAdmin, restored.Profile.Role)
	assert.Equal(t, live.CapturedAt.Truncate(time.Millisecond), restored.CapturedAt)
	assert.Equal(t, restored.CapturedAt.Add(session.TTL), restored.ExpiresAt)
}
