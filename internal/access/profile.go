// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package access

import "github.com/campusworks/pmo-api/internal/platform/sec"

// Profile is the read-facing identity consumed by the evaluator.
//
// # Staleness Contract
//
// A Profile is derived from the session snapshot captured at sign-in. Edits
// made to the underlying account afterwards do NOT flow into profiles of
// already-issued sessions; the holder must re-authenticate to observe them.
// A nil *Profile means "nobody is signed in" — a distinct state from a
// signed-in profile with an empty grant.
type Profile struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Role   sec.Role `json:"role"`
	Grant  Grant    `json:"allowed_pages"`
}
