// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package directory

import (
	"context"
	"log/slog"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/sec"
)

// # Demo Seed Data

// seedAccounts are the demo fixtures for local development and staging.
// Passwords exist in plaintext ONLY here, at the fixture layer; Seed hashes
// them on the way in like any other create.
var seedAccounts = []CreateInput{
	{
		Email:        "admin@campusworks.edu",
		Password:     "admin-pmo-2026",
		Role:         string(sec.RoleAdmin),
		AllowedPages: []string{access.Wildcard},
		Name:         "PMO Administrator",
		Position:     "System Administrator",
		Department:   "PMO",
	},
	{
		Email:        "director@campusworks.edu",
		Password:     "director-pmo-2026",
		Role:         string(sec.RoleDirector),
		AllowedPages: []string{access.Wildcard},
		Name:         "Nguyen Thi Lan",
		Position:     "PMO Director",
		Department:   "PMO",
	},
	{
		Email:        "construction@campusworks.edu",
		Password:     "staff-pmo-2026",
		Role:         string(sec.RoleStaff),
		AllowedPages: []string{"construction-overview", "construction-projects", "forms"},
		Name:         "Tran Van Minh",
		Position:     "Construction Coordinator",
		Department:   "Facilities",
	},
	{
		Email:        "editor@campusworks.edu",
		Password:     "editor-pmo-2026",
		Role:         string(sec.RoleEditor),
		AllowedPages: []string{"policy-documents", "research-projects"},
		Name:         "Le Thi Huong",
		Position:     "Content Editor",
		Department:   "Research",
	},
	{
		Email:        "client@campusworks.edu",
		Password:     "client-pmo-2026",
		Role:         string(sec.RoleClient),
		AllowedPages: []string{},
		Name:         "External Reviewer",
		Position:     "Auditor",
		Department:   "External",
	},
	{
		Email:        "pending@campusworks.edu",
		Password:     "pending-pmo-2026",
		Role:         string(sec.RoleStaff),
		Status:       string(StatusPending),
		AllowedPages: []string{"repairs-overview"},
		Name:         "Pham Quoc Bao",
		Position:     "Repairs Assistant",
		Department:   "Facilities",
	},
}

/*
Seed inserts the demo accounts if they are not present yet.

Idempotent: accounts whose email already exists are skipped, so the seed can
run on every boot of a development environment.

Parameters:
  - context: context.Context
  - service: *Service
  - logger: *slog.Logger

Returns:
  - error: First persistence failure encountered
*/
func Seed(context context.Context, service *Service, logger *slog.Logger) error {
	for _, input := range seedAccounts {
		if _, err := service.FindByEmail(context, input.Email); err == nil {
			continue
		}

		account, err := service.Create(context, input)
		if err != nil {
			return err
		}
		logger.Info("seeded demo account",
			slog.String("email", account.Email),
			slog.String("role", string(account.Role)),
		)
	}
	return nil
}
