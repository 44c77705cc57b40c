// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package session

import (
	"context"
	"sync"
	"time"
)

// # In-Memory Store

// MemoryStore implements [Store] with a mutex-guarded map. It never reclaims
// records on its own, which makes it ideal for exercising lazy expiry in
// tests: expired sessions stay visible to the store and the service must
// treat them as absent anyway.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Save stores a copy of the session. The ttl hint is ignored.
func (store *MemoryStore) Save(_ context.Context, tokenHash string, session *Session, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	copied := *session
	store.sessions[tokenHash] = &copied
	return nil
}

// Find returns a copy of the stored session, or (nil, nil) when absent.
func (store *MemoryStore) Find(_ context.Context, tokenHash string) (*Session, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	session, ok := store.sessions[tokenHash]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

// Delete removes the stored session. Absent keys are a silent no-op.
func (store *MemoryStore) Delete(_ context.Context, tokenHash string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.sessions, tokenHash)
	return nil
}

// Len reports the number of stored records, expired ones included.
func (store *MemoryStore) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.sessions)
}
