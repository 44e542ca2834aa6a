// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains the client's outbound integrations: the
// Drive-style remote object store and the OAuth credential provider.
//
// Both adapters are deliberately generic: they know nothing about recipes,
// snapshots, or sync direction. The service layer composes them into the
// synchronization engine.
package adapter

import (
	"context"

	"github.com/MKhiriev/kitchenhub/models"
)

// RemoteStore is the boundary contract of the remote object store.
//
// Every call requires a valid bearer token. Implementations map non-success
// responses onto the sentinel errors in errors.go; the orchestrator treats
// any such failure as fatal for the current sync pass.
type RemoteStore interface {
	// FindOrCreateFolder looks up a folder by name at the remote root and
	// creates it when absent. Lookup-before-create keeps the operation
	// idempotent for a single writer; it is not safe against a true
	// concurrent creator.
	FindOrCreateFolder(ctx context.Context, token, name string) (string, error)

	// FindFile searches folderID for a file with the given name.
	// Returns nil (and no error) when no such file exists.
	FindFile(ctx context.Context, token, folderID, name string) (*models.RemoteFile, error)

	// UploadFile creates a new file with the given name and JSON payload
	// inside folderID.
	UploadFile(ctx context.Context, token, folderID, name string, payload []byte) (*models.RemoteFile, error)

	// UpdateFile replaces the content of an existing file.
	UpdateFile(ctx context.Context, token, fileID string, payload []byte) error

	// DownloadFile returns the raw content of a file.
	DownloadFile(ctx context.Context, token, fileID string) ([]byte, error)
}

// AuthProvider is the boundary contract of the OAuth credential provider.
type AuthProvider interface {
	// Authorize runs the interactive consent flow and returns the raw
	// provider token material. Blocks until the user completes or rejects
	// the consent screen, or ctx is cancelled.
	Authorize(ctx context.Context) (models.ProviderToken, error)

	// Refresh exchanges a refresh token for fresh token material without
	// user interaction.
	Refresh(ctx context.Context, refreshToken string) (models.ProviderToken, error)

	// Revoke invalidates the given access token with the provider.
	Revoke(ctx context.Context, accessToken string) error
}
