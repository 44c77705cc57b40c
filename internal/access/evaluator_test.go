// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/sec"
)

// profileWith builds a signed-in profile holding the given grant.
func profileWith(role sec.Role, grant access.Grant) *access.Profile {
	return &access.Profile{
		UserID: "acct-1",
		Email:  "someone@campusworks.edu",
		Name:   "Someone",
		Role:   role,
		Grant:  grant,
	}
}

/*
TestEvaluate_Anonymous verifies the open-world rule: with nobody signed in,
every page is readable, including unregistered and sensitive ones.
*/
func TestEvaluate_Anonymous(t *testing.T) {
	for _, pageID := range []string{
		access.PageOverview, access.PageUsers, access.PageSettings,
		"construction-projects", "no-such-page", "",
	} {
		decision := access.Evaluate(nil, pageID)
		assert.True(t, decision.Allowed, "page %q", pageID)
		assert.Equal(t, "anonymous-open-world", decision.Rule)
	}
}

/*
TestEvaluate_EmptyGrant verifies fail-closed behavior for a signed-in
profile with an empty allow-list: everything is denied, even the universal
pages and the role overrides that would otherwise apply.
*/
func TestEvaluate_EmptyGrant(t *testing.T) {
	profile := profileWith(sec.RoleAdmin, access.GrantPages())

	for _, pageID := range []string{
		access.PageOverview, access.PageHome, access.PageAboutUs,
		access.PageUsers, access.PageSettings, "forms",
	} {
		decision := access.Evaluate(profile, pageID)
		assert.False(t, decision.Allowed, "page %q", pageID)
		assert.Equal(t, "empty-grant-fail-closed", decision.Rule)
	}
}

/*
TestEvaluate_Wildcard verifies that an unrestricted grant opens every page
regardless of role or registration.
*/
func TestEvaluate_Wildcard(t *testing.T) {
	profile := profileWith(sec.RoleClient, access.GrantAll())

	for _, pageID := range []string{"anything-at-all", access.PageUsers, access.PageSettings, ""} {
		decision := access.Evaluate(profile, pageID)
		assert.True(t, decision.Allowed, "page %q", pageID)
		assert.Equal(t, "wildcard-grant", decision.Rule)
	}
}

/*
TestEvaluate_RuleTable walks the full ordered rule set with a non-admin
staff profile holding a small allow-list.
*/
func TestEvaluate_RuleTable(t *testing.T) {
	staff := profileWith(sec.RoleStaff, access.GrantPages("forms", "repairs-overview"))
	admin := profileWith(sec.RoleAdmin, access.GrantPages("forms"))

	testCases := []struct {
		name     string
		profile  *access.Profile
		pageID   string
		allowed  bool
		rule     string
	}{
		{"listed_page", staff, "forms", true, "allow-list"},
		{"second_listed_page", staff, "repairs-overview", true, "allow-list"},
		{"universal_overview", staff, access.PageOverview, true, "universal-page"},
		{"universal_home", staff, access.PageHome, true, "universal-page"},
		{"universal_about", staff, access.PageAboutUs, true, "universal-page"},
		{"settings_for_staff", staff, access.PageSettings, true, "settings-any-role"},
		{"users_denied_for_staff", staff, access.PageUsers, false, "default-deny"},
		{"unlisted_page_denied", staff, "construction-overview", false, "default-deny"},
		{"unregistered_page_denied", staff, "no-such-page", false, "default-deny"},
		{"users_for_admin", admin, access.PageUsers, true, "admin-user-management"},
		{"settings_for_admin", admin, access.PageSettings, true, "settings-any-role"},
		{"admin_still_bound_by_list", admin, "gender-parity", false, "default-deny"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			decision := access.Evaluate(testCase.profile, testCase.pageID)
			assert.Equal(t, testCase.allowed, decision.Allowed)
			assert.Equal(t, testCase.rule, decision.Rule)
			assert.Equal(t, testCase.allowed, access.CanAccess(testCase.profile, testCase.pageID))
		})
	}
}

/*
TestEvaluate_ListOverridesPrecedence pins the rule ordering: a listed page
reports the allow-list rule even when a later identity override would also
match it.
*/
func TestEvaluate_ListOverridesPrecedence(t *testing.T) {
	profile := profileWith(sec.RoleAdmin, access.GrantPages(access.PageUsers, access.PageOverview))

	decision := access.Evaluate(profile, access.PageUsers)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "allow-list", decision.Rule)

	decision = access.Evaluate(profile, access.PageOverview)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "allow-list", decision.Rule)
}

/*
TestEvaluate_Pure verifies the evaluator has no memory: repeated and
interleaved calls always produce the same verdicts.
*/
func TestEvaluate_Pure(t *testing.T) {
	profile := profileWith(sec.RoleStaff, access.GrantPages("forms"))

	for i := 0; i < 3; i++ {
		assert.True(t, access.CanAccess(profile, "forms"))
		assert.False(t, access.CanAccess(profile, "users"))
		assert.True(t, access.CanAccess(nil, "users"))
	}
}
