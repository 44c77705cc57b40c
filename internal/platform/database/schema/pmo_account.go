// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

// Package schema centralizes table and column names for the PMO database.
//
// Repositories build their SQL from these definitions so a column rename is
// a one-line change.
package schema

// AccountTable represents the 'pmo.account' table
type AccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	AllowedPages string
	Name         string
	Position     string
	Department   string
	Phone        string
	CreatedAt    string
	UpdatedAt    string
}

// Account is the schema definition for pmo.account
var Account = AccountTable{
	Table:        "pmo.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "passwordhash",
	Role:         "role",
	Status:       "status",
	AllowedPages: "allowedpages",
	Name:         "name",
	Position:     "position",
	Department:   "department",
	Phone:        "phone",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t AccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.PasswordHash, t.Role, t.Status, t.AllowedPages,
		t.Name, t.Position, t.Department, t.Phone, t.CreatedAt, t.UpdatedAt,
	}
}
