// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

/*
Package session implements the session authenticator for the PMO dashboard.

A session is an opaque random token mapped to a frozen profile snapshot with
a fixed 24-hour lifetime. Expiry is lazy: nothing reaps sessions in the
background; an expired record is treated as absent the next time it is
looked up. Redis TTLs additionally reclaim the storage.

# Snapshot Semantics

The profile inside a session is captured at sign-in and never refreshed.
Directory edits made afterwards (role changes, allow-list changes, even
deletion) do not affect sessions that already exist. This is a deliberate
trade-off: access decisions are cheap and local, and the staleness window
is bounded by the 24-hour lifetime.
*/
package session

import (
	"encoding/json"
	"time"

	"github.com/campusworks/pmo-api/internal/access"
)

// # Lifetimes

const (
	// TTL is the fixed session lifetime, measured from the moment of sign-in.
	// There is no sliding renewal: activity does not extend a session.
	TTL = 24 * time.Hour

	// TokenBytes is the entropy of the opaque session token.
	TokenBytes = 32

	// AccessTokenTTL is the lifetime of the short-lived signed access token
	// minted alongside a session. It is intentionally much shorter than the
	// session itself: the JWT cannot be revoked, so its validity window is
	// kept small.
	AccessTokenTTL = 15 * time.Minute
)

// Session is one live sign-in: a frozen profile snapshot plus its lifetime.
//
// The raw token is never stored; the session store keys records by the
// token's SHA-256 digest so a leaked store dump cannot be replayed.
type Session struct {
	// Profile is the identity snapshot captured at sign-in.
	Profile access.Profile

	// CapturedAt is the sign-in instant the snapshot was taken.
	CapturedAt time.Time

	// ExpiresAt is CapturedAt plus [TTL]. A session is live strictly before
	// this instant and expired at or after it.
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session has lapsed as of the given instant.
// The boundary itself counts as expired.
func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// sessionRecord is the persisted wire shape. Timestamps are epoch
// milliseconds for compatibility with the dashboard clients.
type sessionRecord struct {
	Profile    access.Profile `json:"profile"`
	CapturedAt int64          `json:"captured_at"`
	ExpiresAt  int64          `json:"expires_at"`
}

// MarshalJSON encodes the session in its persisted record shape.
func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionRecord{
		Profile:    s.Profile,
		CapturedAt: s.CapturedAt.UnixMilli(),
		ExpiresAt:  s.ExpiresAt.UnixMilli(),
	})
}

// UnmarshalJSON decodes the persisted record shape.
func (s *Session) UnmarshalJSON(data []byte) error {
	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	s.Profile = record.Profile
	s.CapturedAt = time.UnixMilli(record.CapturedAt).UTC()
	s.ExpiresAt = time.UnixMilli(record.ExpiresAt).UTC()
	return nil
}
