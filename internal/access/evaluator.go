// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

/*
Package access implements the role-based page access evaluator.

It is the single decision point for "can this profile view this page".
The evaluator is a pure function over a [Profile] and a page identifier:
no I/O, no mutation, no clock. Sessions produce profiles; the evaluator
never looks at the directory or the session store.

# Rule Ordering

Decisions are made by an ordered rule list where the FIRST matching rule
wins. The ordering is a deliberate design decision, not incidental:

  - "logged out" and "logged in with zero grants" are different states —
    the anonymous rule must run before the fail-closed empty-grant rule.
  - The identity overrides (universal pages, admin access to user
    management, settings for every signed-in user) are layered AFTER the
    allow-list so an incomplete allow-list cannot revoke them.

New per-page carve-outs must be added as new, explicitly named rules in
this list — never folded silently into account allow-lists.
*/
package access

// Decision names the rule that produced an access outcome. Useful for
// audit logging; callers that only care about the verdict use [CanAccess].
type Decision struct {
	// Allowed is the access verdict.
	Allowed bool
	// Rule is the name of the first rule that matched.
	Rule string
}

// rule is one ordered entry of the evaluation chain. applies reports whether
// the rule matches; allowed is the verdict the rule produces when it does.
type rule struct {
	name    string
	allowed bool
	applies func(profile *Profile, pageID string) bool
}

// rules is the complete, authoritative rule set, in evaluation order.
var rules = []rule{
	{
		// Unauthenticated visitors get full read access: all dashboard data
		// is public by default, and authentication only grants management
		// capability. This is a core invariant, not an oversight.
		name:    "anonymous-open-world",
		allowed: true,
		applies: func(profile *Profile, _ string) bool { return profile == nil },
	},
	{
		// A signed-in user with a configured-but-empty allow-list is fully
		// locked out (fail-closed). Distinct from no profile at all.
		name:    "empty-grant-fail-closed",
		allowed: false,
		applies: func(profile *Profile, _ string) bool { return profile.Grant.IsEmpty() },
	},
	{
		name:    "wildcard-grant",
		allowed: true,
		applies: func(profile *Profile, _ string) bool { return profile.Grant.IsUnrestricted() },
	},
	{
		name:    "allow-list",
		allowed: true,
		applies: func(profile *Profile, pageID string) bool { return profile.Grant.Contains(pageID) },
	},
	{
		name:    "universal-page",
		allowed: true,
		applies: func(_ *Profile, pageID string) bool { return IsUniversalPage(pageID) },
	},
	{
		// Role-based override, independent of the allow-list: an admin can
		// always reach user management.
		name:    "admin-user-management",
		allowed: true,
		applies: func(profile *Profile, pageID string) bool {
			return pageID == PageUsers && profile.Role.IsAdmin()
		},
	},
	{
		// Every signed-in user can reach their settings page.
		name:    "settings-any-role",
		allowed: true,
		applies: func(_ *Profile, pageID string) bool { return pageID == PageSettings },
	},
}

// Evaluate runs the ordered rule list and returns the full decision.
//
// A nil profile means nobody is signed in. pageID is treated as an opaque
// token; unregistered identifiers are evaluated like any other.
func Evaluate(profile *Profile, pageID string) Decision {
	for _, r := range rules {
		if r.applies(profile, pageID) {
			return Decision{Allowed: r.allowed, Rule: r.name}
		}
	}
	// No rule matched: deny.
	return Decision{Allowed: false, Rule: "default-deny"}
}

// CanAccess reports whether the profile may view the page.
//
// Side-effect free; recomputed on every navigation. Callers are responsible
// for presenting denial and for leaving navigation state unchanged when the
// verdict is false.
func CanAccess(profile *Profile, pageID string) bool {
	return Evaluate(profile, pageID).Allowed
}
