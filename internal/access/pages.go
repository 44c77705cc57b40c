// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package access

// # Well-Known Page Identifiers

// Page identifiers referenced by evaluator rules. All other dashboard pages
// are opaque tokens to this package.
const (
	PageOverview = "overview"
	PageHome     = "home"
	PageAboutUs  = "about-us"
	PageUsers    = "users"
	PageSettings = "settings"
)

// universalPages are always reachable by ANY authenticated profile, even one
// whose allow-list does not mention them. An incomplete allow-list can never
// lock a signed-in user out of the dashboard shell.
var universalPages = map[string]struct{}{
	PageOverview: {},
	PageHome:     {},
	PageAboutUs:  {},
}

// IsUniversalPage reports whether pageID belongs to the fixed universal-access set.
func IsUniversalPage(pageID string) bool {
	_, ok := universalPages[pageID]
	return ok
}

// # Navigation Registry

// Page describes one navigable dashboard view.
type Page struct {
	// ID is the opaque identifier evaluated against grants.
	ID string `json:"id"`
	// Title is the human-readable sidebar label.
	Title string `json:"title"`
	// Section is the sidebar group the page belongs to.
	Section string `json:"section"`
}

// Sidebar section labels, in display order.
const (
	SectionGeneral        = "General"
	SectionConstruction   = "Construction"
	SectionRepairs        = "Repairs"
	SectionResearch       = "Research & Policy"
	SectionReporting      = "Reporting"
	SectionAdministration = "Administration"
)

// registry is the authoritative list of dashboard pages, in sidebar order.
//
// The evaluator itself treats page identifiers as unstructured tokens; this
// list only drives the navigation endpoint and seed grants.
var registry = []Page{
	{ID: PageHome, Title: "Home", Section: SectionGeneral},
	{ID: PageOverview, Title: "Overview", Section: SectionGeneral},
	{ID: PageAboutUs, Title: "About Us", Section: SectionGeneral},
	{ID: "forms", Title: "Forms", Section: SectionGeneral},

	{ID: "construction-overview", Title: "Construction Overview", Section: SectionConstruction},
	{ID: "construction-projects", Title: "Construction Projects", Section: SectionConstruction},

	{ID: "repairs-overview", Title: "Repairs Overview", Section: SectionRepairs},
	{ID: "repairs-requests", Title: "Repair Requests", Section: SectionRepairs},

	{ID: "research-projects", Title: "Research Projects", Section: SectionResearch},
	{ID: "policy-documents", Title: "Policy Documents", Section: SectionResearch},

	{ID: "gender-parity", Title: "Gender Parity", Section: SectionReporting},

	{ID: PageUsers, Title: "User Management", Section: SectionAdministration},
	{ID: PageSettings, Title: "Settings", Section: SectionAdministration},
}

// RegisteredPages returns a copy of the full page registry in sidebar order.
func RegisteredPages() []Page {
	pages := make([]Page, len(registry))
	copy(pages, registry)
	return pages
}

// IsRegisteredPage reports whether pageID names a page in the registry.
func IsRegisteredPage(pageID string) bool {
	for _, page := range registry {
		if page.ID == pageID {
			return true
		}
	}
	return false
}
