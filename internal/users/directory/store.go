// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package directory

import (
	"context"

	"github.com/campusworks/pmo-api/internal/platform/sec"
	"github.com/campusworks/pmo-api/pkg/pagination"
)

// # Account Data Access

// ListFilter narrows a directory listing. Zero values mean "no restriction".
type ListFilter struct {
	// Role keeps only accounts holding this role.
	Role sec.Role

	// Department keeps only accounts in this department (exact match).
	Department string

	// OnlyActive keeps only accounts with [StatusActive].
	OnlyActive bool
}

// AccountRepository defines the data access contract for the account directory.
//
// Implementations return apperr.NotFound when a lookup misses and
// apperr.Conflict on email uniqueness violations; they never panic.
type AccountRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the account with the given email.

		The match is exact and case-sensitive: email is the login key.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		List returns accounts matching the filter, ordered by creation time.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter
		  - params: pagination.Params

		Returns:
		  - []*Account: Matching page of accounts
		  - int: Total matching count (for pagination metadata)
		  - error: Storage failures
	*/
	List(context context.Context, filter ListFilter, params pagination.Params) ([]*Account, int, error)

	/*
		Create persists a brand-new account to the storage.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: apperr.Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		Update persists changes to an existing account.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: apperr.NotFound, apperr.Conflict, or persistence failures
	*/
	Update(context context.Context, account *Account) error

	/*
		Delete removes the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error
}
