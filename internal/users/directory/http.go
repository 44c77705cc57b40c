// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusworks/pmo-api/internal/platform/middleware"
	requestutil "github.com/campusworks/pmo-api/internal/platform/request"
	"github.com/campusworks/pmo-api/internal/platform/respond"
	"github.com/campusworks/pmo-api/internal/platform/sec"
	"github.com/campusworks/pmo-api/pkg/pagination"
)

// Handler implements the HTTP layer for directory administration.
//
// Every route is admin-only: the whole subtree is wrapped in RequireAdmin.
type Handler struct {
	directoryService *Service
}

// NewHandler constructs a new directory [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{directoryService: service}
}

// Routes returns a [chi.Router] configured with the account admin endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Get("/", handler.listAccounts)
	router.Post("/", handler.createAccount)
	router.Get("/{accountID}", handler.getAccount)
	router.Patch("/{accountID}", handler.updateAccount)
	router.Delete("/{accountID}", handler.deleteAccount)

	return router
}

// # Account Admin Endpoints

/*
GET /api/v1/accounts.

Description: Lists directory accounts with optional role/department/active
filters and pagination.

Response:
  - 200: []Account with pagination metadata
  - 401/403: Authentication or admin role missing
*/
func (handler *Handler) listAccounts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := ListFilter{
		Role:       sec.Role(request.URL.Query().Get("role")),
		Department: request.URL.Query().Get("department"),
		OnlyActive: request.URL.Query().Get("active") == "true",
	}

	accounts, total, err := handler.directoryService.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, accounts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
POST /api/v1/accounts.

Description: Registers a new account. The password is hashed before it is
persisted; the response never echoes it back.

Response:
  - 201: Account: The created account
  - 409: ErrConflict: Email already registered
  - 400: ErrValidation: Structural input failures
*/
func (handler *Handler) createAccount(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.directoryService.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account)
}

/*
GET /api/v1/accounts/{accountID}.

Response:
  - 200: Account
  - 404: ErrNotFound: Unknown account ID
*/
func (handler *Handler) getAccount(writer http.ResponseWriter, request *http.Request) {
	accountID := requestutil.Param(request, "accountID")

	account, err := handler.directoryService.FindByID(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
PATCH /api/v1/accounts/{accountID}.

Description: Applies a partial update. Sessions issued before the update keep
their frozen snapshot; the change is visible after the next sign-in.

Response:
  - 200: Account: The updated account
  - 404: ErrNotFound: Unknown account ID
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) updateAccount(writer http.ResponseWriter, request *http.Request) {
	accountID := requestutil.Param(request, "accountID")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.directoryService.Update(request.Context(), accountID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
DELETE /api/v1/accounts/{accountID}.

Response:
  - 204: Account removed
  - 404: ErrNotFound: Unknown account ID
*/
func (handler *Handler) deleteAccount(writer http.ResponseWriter, request *http.Request) {
	accountID := requestutil.Param(request, "accountID")

	if err := handler.directoryService.Delete(request.Context(), accountID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
