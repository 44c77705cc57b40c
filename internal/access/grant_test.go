// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package access_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/pmo-api/internal/access"
)

/*
TestGrant_Construction verifies the tagged variants and the wildcard
collapse: a "*" entry anywhere in the input produces an unrestricted grant,
tolerating legacy rows that mix the wildcard with explicit entries.
*/
func TestGrant_Construction(t *testing.T) {
	testCases := []struct {
		name         string
		pages        []string
		unrestricted bool
		empty        bool
	}{
		{"empty", []string{}, false, true},
		{"nil", nil, false, true},
		{"explicit_pages", []string{"overview", "forms"}, false, false},
		{"wildcard_only", []string{access.Wildcard}, true, false},
		{"wildcard_mixed_with_entries", []string{"overview", access.Wildcard, "forms"}, true, false},
		{"blank_entries_skipped", []string{"", "overview", ""}, false, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			grant := access.GrantPages(testCase.pages...)
			assert.Equal(t, testCase.unrestricted, grant.IsUnrestricted())
			assert.Equal(t, testCase.empty, grant.IsEmpty())
		})
	}

	assert.True(t, access.GrantAll().IsUnrestricted())
	assert.False(t, access.GrantAll().IsEmpty())
}

/*
TestGrant_Contains verifies membership semantics for each variant: the
unrestricted grant contains every page, the empty grant none, and the
wildcard token itself is never a member.
*/
func TestGrant_Contains(t *testing.T) {
	listed := access.GrantPages("overview", "forms")
	assert.True(t, listed.Contains("overview"))
	assert.False(t, listed.Contains("users"))
	assert.False(t, listed.Contains(access.Wildcard))

	assert.False(t, access.GrantPages().Contains("overview"))
	assert.True(t, access.GrantAll().Contains("overview"))
	assert.True(t, access.GrantAll().Contains("no-such-page"))
}

/*
TestGrant_JSON verifies the string-array wire shape, including the "*"
round-trip for unrestricted grants.
*/
func TestGrant_JSON(t *testing.T) {
	payload, err := json.Marshal(access.GrantPages("forms", "overview"))
	require.NoError(t, err)
	assert.JSONEq(t, `["forms","overview"]`, string(payload))

	payload, err = json.Marshal(access.GrantAll())
	require.NoError(t, err)
	assert.JSONEq(t, `["*"]`, string(payload))

	var restored access.Grant
	require.NoError(t, json.Unmarshal([]byte(`["*","overview"]`), &restored))
	assert.True(t, restored.IsUnrestricted())

	require.NoError(t, json.Unmarshal([]byte(`["overview","forms"]`), &restored))
	assert.False(t, restored.IsUnrestricted())
	assert.Equal(t, []string{"forms", "overview"}, restored.Pages())
}
