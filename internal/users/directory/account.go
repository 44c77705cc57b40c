// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

/*
Package directory implements the account directory: the registry of PMO
user accounts with credentials, roles, and per-account page allow-lists.

It defines the core domain entity (Account) and the validation logic that
turns credentials into a verified identity.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
transport dependencies and encapsulates all business rules related to
account identity. Storage is injected through [AccountRepository], so the
directory can be backed by Postgres in production and an in-memory map in
tests without changing any caller.
*/
package directory

import (
	"time"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/sec"
)

// # Domain Entities

// Status is the lifecycle state of an account. Only active accounts may
// authenticate.
type Status string

const (
	// StatusActive accounts can sign in.
	StatusActive Status = "active"

	// StatusInactive accounts are retained for audit but cannot sign in.
	StatusInactive Status = "inactive"

	// StatusPending accounts await activation and cannot sign in yet,
	// even with correct credentials.
	StatusPending Status = "pending"
)

// IsValid reports whether s is one of the closed set of statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	default:
		return false
	}
}

// StatusNames returns the string form of every valid status for input validation.
func StatusNames() []string {
	return []string{string(StatusActive), string(StatusInactive), string(StatusPending)}
}

// Account represents a registered member of the PMO dashboard.
//
// Email is the unique, case-sensitive login key. The page allow-list is a
// tagged [access.Grant]; the descriptive attributes (Name, Position,
// Department, Phone) carry no access-control semantics.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role     `json:"role"`
	Status       Status       `json:"status"`
	Grant        access.Grant `json:"allowed_pages"`
	Name         string       `json:"name"`
	Position     string       `json:"position,omitempty"`
	Department   string       `json:"department,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the directory domain.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRole         = "role"
	FieldStatus       = "status"
	FieldAllowedPages = "allowed_pages"
	FieldName         = "name"
	FieldAccountID    = "account_id"
)
