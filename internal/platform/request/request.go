// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/apperr"
	"github.com/campusworks/pmo-api/internal/platform/ctxutil"
	"github.com/campusworks/pmo-api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Profile extracts the signed-in profile from the request context.

Returns nil if the request is anonymous.
*/
func Profile(request *http.Request) *access.Profile {
	return ctxutil.GetProfile(request.Context())
}

/*
RequiredProfile ensures the request is authenticated and returns the profile.

Returns:
  - *access.Profile: The signed-in profile
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredProfile(request *http.Request) (*access.Profile, error) {

	// Get the signed-in profile
	profile := ctxutil.GetProfile(request.Context())

	// If the user is not authenticated, return an error
	if profile == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return profile, nil
}

/*
RequiredUserID returns the account ID of the currently signed-in user.

Returns:
  - string: Account UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {

	// Get the signed-in profile
	profile, err := RequiredProfile(request)

	// If the user is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return profile.UserID, nil
}
