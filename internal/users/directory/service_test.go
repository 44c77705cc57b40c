// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/internal/platform/sec"
	"github.com/campusworks/pmo-api/internal/users/directory"
)

// newService builds a directory service over an empty in-memory repository.
func newService() *directory.Service {
	return directory.NewService(directory.NewMemoryAccountRepository())
}

// mustCreate registers an account or fails the test.
func mustCreate(t *testing.T, service *directory.Service, input directory.CreateInput) *directory.Account {
	t.Helper()
	account, err := service.Create(context.Background(), input)
	require.NoError(t, err)
	return account
}

// staffInput returns a valid baseline create payload.
func staffInput() directory.CreateInput {
	return directory.CreateInput{
		Email:        "staff@campusworks.edu",
		Password:     "correct-horse-battery",
		Role:         string(sec.RoleStaff),
		AllowedPages: []string{"forms", "repairs-overview"},
		Name:         "Tran Van Minh",
		Department:   "Facilities",
	}
}

/*
TestDirectory_Create verifies registration, password hashing, and the email
uniqueness constraint.
*/
func TestDirectory_Create(t *testing.T) {
	service := newService()
	ctx := context.Background()

	account := mustCreate(t, service, staffInput())

	// 1. Password must never be stored in plaintext
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotEqual(t, "correct-horse-battery", account.PasswordHash)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, directory.StatusActive, account.Status)

	// 2. Same email again must conflict
	_, err := service.Create(ctx, staffInput())
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)

	// 3. Different casing is a different login key (exact match semantics)
	other := staffInput()
	other.Email = "Staff@campusworks.edu"
	_, err = service.Create(ctx, other)
	assert.NoError(t, err)
}

/*
TestDirectory_CreateValidation verifies structural input rules.
*/
func TestDirectory_CreateValidation(t *testing.T) {
	service := newService()
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*directory.CreateInput)
	}{
		{"missing_email", func(in *directory.CreateInput) { in.Email = "" }},
		{"malformed_email", func(in *directory.CreateInput) { in.Email = "not-an-email" }},
		{"short_password", func(in *directory.CreateInput) { in.Password = "short" }},
		{"unknown_role", func(in *directory.CreateInput) { in.Role = "superuser" }},
		{"unknown_status", func(in *directory.CreateInput) { in.Status = "frozen" }},
		{"bad_page_id", func(in *directory.CreateInput) { in.AllowedPages = []string{"Not A Page"} }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := staffInput()
			testCase.mutate(&input)

			_, err := service.Create(ctx, input)
			require.Error(t, err)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}

/*
TestDirectory_Validate verifies credential validation and the
anti-enumeration contract: unknown email, wrong password, and non-active
status are indistinguishable to the caller.
*/
func TestDirectory_Validate(t *testing.T) {
	service := newService()
	ctx := context.Background()
	mustCreate(t, service, staffInput())

	pending := staffInput()
	pending.Email = "pending@campusworks.edu"
	pending.Status = string(directory.StatusPending)
	mustCreate(t, service, pending)

	// 1. Happy path
	account, err := service.Validate(ctx, "staff@campusworks.edu", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "staff@campusworks.edu", account.Email)

	// 2. Failure paths must produce the identical error value shape
	_, wrongPassword := service.Validate(ctx, "staff@campusworks.edu", "wrong-password")
	_, unknownEmail := service.Validate(ctx, "ghost@campusworks.edu", "correct-horse-battery")
	_, pendingAccount := service.Validate(ctx, "pending@campusworks.edu", "correct-horse-battery")

	for _, err := range []error{wrongPassword, unknownEmail, pendingAccount} {
		require.Error(t, err)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Code)
		assert.Equal(t, 401, appErr.HTTPStatus)
	}
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, wrongPassword.Error(), pendingAccount.Error())
}

/*
TestDirectory_ValidateDeterministic verifies that validation is read-only:
repeating the same calls against unchanged state yields the same outcomes.
*/
func TestDirectory_ValidateDeterministic(t *testing.T) {
	service := newService()
	ctx := context.Background()
	mustCreate(t, service, staffInput())

	for i := 0; i < 3; i++ {
		_, err := service.Validate(ctx, "staff@campusworks.edu", "correct-horse-battery")
		assert.NoError(t, err)

		_, err = service.Validate(ctx, "staff@campusworks.edu", "wrong-password")
		assert.Error(t, err)
	}
}

/*
TestDirectory_Update verifies partial updates, email conflict detection, and
password re-hashing.
*/
func TestDirectory_Update(t *testing.T) {
	service := newService()
	ctx := context.Background()
	account := mustCreate(t, service, staffInput())

	other := staffInput()
	other.Email = "other@campusworks.edu"
	mustCreate(t, service, other)

	// 1. Replace the allow-list and the role
	role := string(sec.RoleEditor)
	pages := []string{"policy-documents"}
	updated, err := service.Update(ctx, account.ID, directory.UpdateInput{
		Role:         &role,
		AllowedPages: &pages,
	})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, updated.Role)
	assert.Equal(t, []string{"policy-documents"}, updated.Grant.Pages())
	assert.Equal(t, "staff@campusworks.edu", updated.Email) // untouched

	// 2. Password change must re-hash
	password := "brand-new-password"
	updated, err = service.Update(ctx, account.ID, directory.UpdateInput{Password: &password})
	require.NoError(t, err)
	_, err = service.Validate(ctx, "staff@campusworks.edu", "brand-new-password")
	assert.NoError(t, err)
	_, err = service.Validate(ctx, "staff@campusworks.edu", "correct-horse-battery")
	assert.Error(t, err)

	// 3. Moving onto another account's email must conflict
	taken := "other@campusworks.edu"
	_, err = service.Update(ctx, account.ID, directory.UpdateInput{Email: &taken})
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)

	// 4. Unknown ID
	name := "Nobody"
	_, err = service.Update(ctx, "missing-id", directory.UpdateInput{Name: &name})
	require.Error(t, err)
}

/*
TestDirectory_Listings verifies the role, department, and active filters.
*/
func TestDirectory_Listings(t *testing.T) {
	service := newService()
	ctx := context.Background()

	mustCreate(t, service, staffInput())

	editor := staffInput()
	editor.Email = "editor@campusworks.edu"
	editor.Role = string(sec.RoleEditor)
	editor.Department = "Research"
	mustCreate(t, service, editor)

	inactive := staffInput()
	inactive.Email = "retired@campusworks.edu"
	inactive.Status = string(directory.StatusInactive)
	mustCreate(t, service, inactive)

	byRole, err := service.ListByRole(ctx, sec.RoleEditor)
	require.NoError(t, err)
	require.Len(t, byRole, 1)
	assert.Equal(t, "editor@campusworks.edu", byRole[0].Email)

	byDepartment, err := service.ListByDepartment(ctx, "Facilities")
	require.NoError(t, err)
	assert.Len(t, byDepartment, 2)

	active, err := service.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)
	for _, account := range active {
		assert.Equal(t, directory.StatusActive, account.Status)
	}
}

/*
TestDirectory_Delete verifies removal and the not-found path.
*/
func TestDirectory_Delete(t *testing.T) {
	service := newService()
	ctx := context.Background()
	account := mustCreate(t, service, staffInput())

	require.NoError(t, service.Delete(ctx, account.ID))

	_, err := service.FindByID(ctx, account.ID)
	require.Error(t, err)

	// Deleting again is a not-found, not a silent success.
	assert.Error(t, service.Delete(ctx, account.ID))
}
