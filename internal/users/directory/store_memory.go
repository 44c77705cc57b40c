// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package directory

import (
	"context"
	"sort"
	"sync"

	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/pkg/pagination"
)

// # In-Memory Repository

// MemoryAccountRepository implements [AccountRepository] with a mutex-guarded
// map. It backs the test suite and local demo mode; production uses Postgres.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*Account // keyed by ID
}

// NewMemoryAccountRepository creates an empty in-memory account repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{accounts: make(map[string]*Account)}
}

// clone copies an account so callers cannot mutate stored state through the
// returned pointer.
func clone(account *Account) *Account {
	copied := *account
	return &copied
}

// FindByID returns the account with the given ID.
func (repository *MemoryAccountRepository) FindByID(_ context.Context, id string) (*Account, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	account, ok := repository.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return clone(account), nil
}

// FindByEmail returns the account with the given email (exact match).
func (repository *MemoryAccountRepository) FindByEmail(_ context.Context, email string) (*Account, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, account := range repository.accounts {
		if account.Email == email {
			return clone(account), nil
		}
	}
	return nil, apperr.NotFound("Account")
}

// List returns the filtered directory ordered by ID (UUIDv7 creation order).
func (repository *MemoryAccountRepository) List(_ context.Context, filter ListFilter, params pagination.Params) ([]*Account, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matched := []*Account{}
	for _, account := range repository.accounts {
		if filter.Role != "" && account.Role != filter.Role {
			continue
		}
		if filter.Department != "" && account.Department != filter.Department {
			continue
		}
		if filter.OnlyActive && account.Status != StatusActive {
			continue
		}
		matched = append(matched, clone(account))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	offset := params.Offset()
	if offset >= total {
		return []*Account{}, total, nil
	}
	end := offset + params.Limit
	if params.Limit <= 0 || end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

// Create stores a new account, enforcing email uniqueness.
func (repository *MemoryAccountRepository) Create(_ context.Context, account *Account) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.accounts {
		if existing.Email == account.Email {
			return apperr.Conflict("an account with this email already exists")
		}
	}
	repository.accounts[account.ID] = clone(account)
	return nil
}

// Update replaces a stored account, enforcing email uniqueness against others.
func (repository *MemoryAccountRepository) Update(_ context.Context, account *Account) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.accounts[account.ID]; !ok {
		return apperr.NotFound("Account")
	}
	for id, existing := range repository.accounts {
		if id != account.ID && existing.Email == account.Email {
			return apperr.Conflict("an account with this email already exists")
		}
	}
	repository.accounts[account.ID] = clone(account)
	return nil
}

// Delete removes a stored account.
func (repository *MemoryAccountRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.accounts[id]; !ok {
		return apperr.NotFound("Account")
	}
	delete(repository.accounts, id)
	return nil
}
