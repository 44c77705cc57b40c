// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusworks/pmo-api/internal/platform/constants"
)

// # Redis Store

// RedisStore implements [Store] on Redis. Records carry a TTL so storage is
// reclaimed automatically; correctness does not depend on it.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates the production session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// key builds the namespaced Redis key for a token digest.
func (store *RedisStore) key(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

// Save writes the session JSON under the token digest with the given TTL.
func (store *RedisStore) Save(context context.Context, tokenHash string, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_store_marshal_failed: %w", err)
	}

	if err := store.client.Set(context, store.key(tokenHash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_store_save_failed: %w", err)
	}
	return nil
}

// Find loads and decodes the session stored under the token digest.
func (store *RedisStore) Find(context context.Context, tokenHash string) (*Session, error) {
	payload, err := store.client.Get(context, store.key(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_session_store_find_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_store_unmarshal_failed: %w", err)
	}
	return session, nil
}

// Delete removes the session record. Absent keys are a silent no-op.
func (store *RedisStore) Delete(context context.Context, tokenHash string) error {
	if err := store.client.Del(context, store.key(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_store_delete_failed: %w", err)
	}
	return nil
}
