// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package directory

import (
	"context"
	"net/http"
	"time"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/internal/platform/sec"
	"github.com/campusworks/pmo-api/internal/platform/validate"
	"github.com/campusworks/pmo-api/pkg/pagination"
	"github.com/campusworks/pmo-api/pkg/uuid"
)

// # Directory Service

// Service orchestrates account lookup, credential validation, and the admin
// CRUD operations over an injected [AccountRepository].
type Service struct {
	repo AccountRepository
	now  func() time.Time
}

// NewService creates a directory service backed by the given repository.
func NewService(repo AccountRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// dummyHash is a bcrypt hash of an unguessable throwaway value. When a login
// email is unknown we still run one bcrypt comparison against it so the
// unknown-email and wrong-password paths cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

/*
Validate checks a credential pair and returns the matching account.

Anti-enumeration contract: every failure (unknown email, wrong password,
non-active account) returns the SAME error value shape via
apperr.InvalidCredentials. Callers must not be able to tell which check
failed. Validation is read-only and deterministic: repeating the same call
against unchanged state yields the same outcome.

Parameters:
  - context: context.Context
  - email: string
  - password: string (plaintext, compared against the stored bcrypt hash)

Returns:
  - *Account: The authenticated account
  - error: apperr.InvalidCredentials on any mismatch, or storage failures
*/
func (s *Service) Validate(context context.Context, email, password string) (*Account, error) {
	account, err := s.repo.FindByEmail(context, email)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus == http.StatusNotFound {
			// Burn a comparison so the miss is not observably faster.
			_ = sec.CheckPasswordHash(password, dummyHash)
			return nil, apperr.InvalidCredentials()
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	if account.Status != StatusActive {
		// Correct credentials on a pending or inactive account still fail,
		// indistinguishably from a bad password.
		return nil, apperr.InvalidCredentials()
	}

	return account, nil
}

/*
FindByEmail returns the account registered under the given email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Matching account
  - error: apperr.NotFound or storage failures
*/
func (s *Service) FindByEmail(context context.Context, email string) (*Account, error) {
	return s.repo.FindByEmail(context, email)
}

/*
FindByID returns the account with the given ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Account: Matching account
  - error: apperr.NotFound or storage failures
*/
func (s *Service) FindByID(context context.Context, id string) (*Account, error) {
	return s.repo.FindByID(context, id)
}

/*
List returns a page of accounts matching the filter.

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []*Account: Page of accounts
  - int: Total matching count
  - error: Storage failures
*/
func (s *Service) List(context context.Context, filter ListFilter, params pagination.Params) ([]*Account, int, error) {
	return s.repo.List(context, filter, params)
}

// ListByRole returns every account holding the given role.
func (s *Service) ListByRole(context context.Context, role sec.Role) ([]*Account, error) {
	accounts, _, err := s.repo.List(context, ListFilter{Role: role}, pagination.Params{Page: 1, Limit: pagination.MaxLimit})
	return accounts, err
}

// ListByDepartment returns every account in the given department.
func (s *Service) ListByDepartment(context context.Context, department string) ([]*Account, error) {
	accounts, _, err := s.repo.List(context, ListFilter{Department: department}, pagination.Params{Page: 1, Limit: pagination.MaxLimit})
	return accounts, err
}

// ListActive returns every account that is currently allowed to sign in.
func (s *Service) ListActive(context context.Context) ([]*Account, error) {
	accounts, _, err := s.repo.List(context, ListFilter{OnlyActive: true}, pagination.Params{Page: 1, Limit: pagination.MaxLimit})
	return accounts, err
}

// # Admin Mutations

// CreateInput carries the fields for registering a new account. Password
// arrives in plaintext exactly once, here, and is hashed before persistence.
type CreateInput struct {
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Role         string   `json:"role"`
	Status       string   `json:"status"`
	AllowedPages []string `json:"allowed_pages"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	Phone        string   `json:"phone"`
}

// Validate checks structural rules on the input.
func (in *CreateInput) Validate() error {
	v := &validate.Validator{}
	v.Required(FieldEmail, in.Email).Email(FieldEmail, in.Email)
	v.Required(FieldPassword, in.Password).MinLen(FieldPassword, in.Password, 8)
	v.Required(FieldName, in.Name).MaxLen(FieldName, in.Name, 200)
	v.Required(FieldRole, in.Role).OneOf(FieldRole, in.Role, sec.RoleNames()...)
	if in.Status != "" {
		v.OneOf(FieldStatus, in.Status, StatusNames()...)
	}
	for _, pageID := range in.AllowedPages {
		if pageID == access.Wildcard {
			continue
		}
		v.PageID(FieldAllowedPages, pageID)
	}
	return v.Err()
}

/*
Create registers a new account.

Email uniqueness is enforced twice: a pre-flight lookup for a friendly
conflict error, and the storage unique constraint as the real guarantee.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Account: The created account
  - error: apperr.Validation, apperr.Conflict, or persistence failures
*/
func (s *Service) Create(context context.Context, input CreateInput) (*Account, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("an account with this email already exists")
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	status := Status(input.Status)
	if input.Status == "" {
		status = StatusActive
	}

	now := s.now().UTC()
	account := &Account{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         sec.Role(input.Role),
		Status:       status,
		Grant:        access.GrantPages(input.AllowedPages...),
		Name:         input.Name,
		Position:     input.Position,
		Department:   input.Department,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(context, account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateInput carries partial changes for an existing account. Nil pointers
// mean "leave unchanged"; AllowedPages replaces the whole allow-list when set.
type UpdateInput struct {
	Email        *string   `json:"email"`
	Password     *string   `json:"password"`
	Role         *string   `json:"role"`
	Status       *string   `json:"status"`
	AllowedPages *[]string `json:"allowed_pages"`
	Name         *string   `json:"name"`
	Position     *string   `json:"position"`
	Department   *string   `json:"department"`
	Phone        *string   `json:"phone"`
}

// Validate checks structural rules on the fields that are present.
func (in *UpdateInput) Validate() error {
	v := &validate.Validator{}
	if in.Email != nil {
		v.Required(FieldEmail, *in.Email).Email(FieldEmail, *in.Email)
	}
	if in.Password != nil {
		v.MinLen(FieldPassword, *in.Password, 8)
	}
	if in.Role != nil {
		v.OneOf(FieldRole, *in.Role, sec.RoleNames()...)
	}
	if in.Status != nil {
		v.OneOf(FieldStatus, *in.Status, StatusNames()...)
	}
	if in.Name != nil {
		v.Required(FieldName, *in.Name).MaxLen(FieldName, *in.Name, 200)
	}
	if in.AllowedPages != nil {
		for _, pageID := range *in.AllowedPages {
			if pageID == access.Wildcard {
				continue
			}
			v.PageID(FieldAllowedPages, pageID)
		}
	}
	return v.Err()
}

/*
Update applies a partial update to an existing account.

Changes do not propagate into sessions issued before the update: session
snapshots stay frozen until their holder signs in again.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Account: The updated account
  - error: apperr.NotFound, apperr.Validation, apperr.Conflict, or persistence failures
*/
func (s *Service) Update(context context.Context, id string, input UpdateInput) (*Account, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != account.Email {
		if _, err := s.repo.FindByEmail(context, *input.Email); err == nil {
			return nil, apperr.Conflict("an account with this email already exists")
		}
		account.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		account.PasswordHash = hash
	}
	if input.Role != nil {
		account.Role = sec.Role(*input.Role)
	}
	if input.Status != nil {
		account.Status = Status(*input.Status)
	}
	if input.AllowedPages != nil {
		account.Grant = access.GrantPages((*input.AllowedPages)...)
	}
	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Position != nil {
		account.Position = *input.Position
	}
	if input.Department != nil {
		account.Department = *input.Department
	}
	if input.Phone != nil {
		account.Phone = *input.Phone
	}
	account.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(context, account); err != nil {
		return nil, err
	}
	return account, nil
}

/*
Delete removes an account from the directory.

Existing sessions for the deleted account are NOT revoked here; they keep
their frozen snapshot until expiry or sign-out.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (s *Service) Delete(context context.Context, id string) error {
	return s.repo.Delete(context, id)
}
