// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package access

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Wildcard is the sentinel page identifier meaning "all pages permitted".
//
// It exists only at the serialization boundary. Inside the process the
// wildcard is represented by the tagged [Grant] variant, so evaluator logic
// never compares against this string.
const Wildcard = "*"

// Grant is the set of pages an account is permitted to view.
//
// It is a tagged variant: either Unrestricted (the wildcard grant) or a
// finite set of concrete page identifiers. Modelling the wildcard as a
// variant instead of a magic string removes an entire class of typo bugs
// from the evaluator's branching.
//
// The zero value is an empty grant, which is fail-closed: a signed-in
// profile holding it can reach no page beyond the identity overrides.
type Grant struct {
	unrestricted bool
	pages        map[string]struct{}
}

// # Constructors

// GrantAll returns the unrestricted grant.
func GrantAll() Grant {
	return Grant{unrestricted: true}
}

// GrantPages returns a grant over the given concrete page identifiers.
//
// # Wildcard Tolerance
//
// Directory data may contain the wildcard mixed with concrete entries, in
// any order. If any entry is the wildcard the whole grant collapses to
// Unrestricted, which is what the wildcard means regardless of position.
func GrantPages(pageIDs ...string) Grant {
	pages := make(map[string]struct{}, len(pageIDs))
	for _, id := range pageIDs {
		if id == Wildcard {
			return GrantAll()
		}
		if id == "" {
			continue
		}
		pages[id] = struct{}{}
	}
	return Grant{pages: pages}
}

// # Queries

// IsUnrestricted reports whether this is the wildcard grant.
func (g Grant) IsUnrestricted() bool {
	return g.unrestricted
}

// IsEmpty reports whether the grant permits no pages at all.
//
// The unrestricted grant is never empty.
func (g Grant) IsEmpty() bool {
	return !g.unrestricted && len(g.pages) == 0
}

// Contains reports whether the concrete page identifier is granted.
//
// The unrestricted grant contains every page.
func (g Grant) Contains(pageID string) bool {
	if g.unrestricted {
		return true
	}
	_, ok := g.pages[pageID]
	return ok
}

// Pages returns the granted page identifiers in sorted order.
//
// For the unrestricted grant it returns the single wildcard token, matching
// the persisted wire shape.
func (g Grant) Pages() []string {
	if g.unrestricted {
		return []string{Wildcard}
	}
	ids := make([]string, 0, len(g.pages))
	for id := range g.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// # Serialization

// MarshalJSON encodes the grant as a JSON string array: ["*"] for the
// unrestricted grant, otherwise the sorted concrete identifiers.
func (g Grant) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Pages())
}

// UnmarshalJSON decodes a JSON string array into a grant, collapsing any
// wildcard entry to the unrestricted variant.
func (g *Grant) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("access: invalid grant payload: %w", err)
	}
	*g = GrantPages(ids...)
	return nil
}
