// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusworks/pmo-api/internal/access"
	requestutil "github.com/campusworks/pmo-api/internal/platform/request"
	"github.com/campusworks/pmo-api/internal/platform/respond"
	"github.com/campusworks/pmo-api/internal/platform/validate"
	"github.com/campusworks/pmo-api/pkg/slug"
)

// NavHandler implements the HTTP layer for navigation and access checks.
//
// It is a thin façade over the pure access evaluator. Both endpoints work
// for anonymous requests: with nobody signed in the evaluator grants full
// read access, so the sidebar shows everything.
type NavHandler struct{}

// NewNavHandler constructs a new navigation [NavHandler].
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Routes returns a [chi.Router] configured with the navigation endpoints.
func (handler *NavHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listNavigation)
	router.Get("/{pageID}", handler.checkAccess)

	return router
}

// # Navigation Endpoints

/*
GET /api/v1/nav.

Description: Returns the registered pages the current identity may view, in
sidebar order. The dashboard renders its navigation directly from this.

Response:
  - 200: []access.Page: Accessible pages for the current profile
*/
func (handler *NavHandler) listNavigation(writer http.ResponseWriter, request *http.Request) {
	profile := requestutil.Profile(request)

	pages := []access.Page{}
	for _, page := range access.RegisteredPages() {
		if access.CanAccess(profile, page.ID) {
			pages = append(pages, page)
		}
	}

	respond.OK(writer, pages)
}

// accessResponse is the verdict payload for a single page check.
type accessResponse struct {
	PageID  string `json:"page_id"`
	Allowed bool   `json:"allowed"`
	Rule    string `json:"rule"`
}

/*
GET /api/v1/nav/{pageID}.

Description: Evaluates the current identity against one page and names the
rule that decided. Unregistered page identifiers are evaluated like any
other; only structurally invalid identifiers are rejected.

The path segment is canonicalized through the slug pipeline first, so a
display title pasted into the URL ("Construction Overview") resolves to its
identifier. Canonical identifiers are fixed points of the transformation.

Response:
  - 200: accessResponse: The verdict and the deciding rule
  - 400: ErrValidation: Malformed page identifier
*/
func (handler *NavHandler) checkAccess(writer http.ResponseWriter, request *http.Request) {
	pageID := slug.From(requestutil.Param(request, "pageID"))

	v := &validate.Validator{}
	if v.PageID("page_id", pageID); v.HasErrors() {
		respond.Error(writer, request, v.Err())
		return
	}

	decision := access.Evaluate(requestutil.Profile(request), pageID)

	respond.OK(writer, accessResponse{
		PageID:  pageID,
		Allowed: decision.Allowed,
		Rule:    decision.Rule,
	})
}
