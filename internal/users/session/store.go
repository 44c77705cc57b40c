// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package session

import (
	"context"
	"time"
)

// # Session Data Access

// Store persists sessions keyed by the SHA-256 digest of the opaque token.
//
// Implementations may reclaim expired records on their own schedule (Redis
// TTLs do), but the service never relies on it: expiry is re-checked lazily
// on every lookup, so a store that keeps records forever is still correct.
type Store interface {

	/*
		Save persists a session under the given token digest.

		Parameters:
		  - context: context.Context
		  - tokenHash: string (hex SHA-256 of the raw token)
		  - session: *Session
		  - ttl: time.Duration (storage reclaim hint; may be ignored)

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, tokenHash string, session *Session, ttl time.Duration) error

	/*
		Find returns the session stored under the given token digest.

		A missing record returns (nil, nil): absence is an expected outcome,
		not an error.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - *Session: The stored session, or nil when absent
		  - error: Storage failures only
	*/
	Find(context context.Context, tokenHash string) (*Session, error)

	/*
		Delete removes the session stored under the given token digest.
		Deleting an absent record is a no-op, not an error.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - error: Storage failures only
	*/
	Delete(context context.Context, tokenHash string) error
}
