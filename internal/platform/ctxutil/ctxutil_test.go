// Copyright (c) 2026 CampusWorks. All rights reserved.
// Author: pmo.platform@campusworks.dev

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusworks/pmo-api/internal/access"
	"github.com/campusworks/pmo-api/internal/platform/ctxutil"
	"github.com/campusworks/pmo-api/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Profile verifies that the signed-in profile can be stored in context.
*/
func TestContext_Profile(t *testing.T) {
	ctx := context.Background()
	profile := &access.Profile{
		UserID: "user-123",
		Email:  "director@campus.edu",
		Role:   sec.RoleDirector,
		Grant:  access.GrantPages("overview", "forms"),
	}

	// 1. Initially should be nil (anonymous)
	assert.Nil(t, ctxutil.GetProfile(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithProfile(ctx, profile)
	retrieved := ctxutil.GetProfile(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.UserID)
	assert.Equal(t, sec.RoleDirector, retrieved.Role)
	assert.True(t, retrieved.Grant.Contains("forms"))
}
