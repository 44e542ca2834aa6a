// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// kitchenhub client services and UI.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into log entries to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the application.
package app

const (
	// MsgSessionExpired is shown when the cached token is gone and silent
	// refresh failed; the user must sign in interactively again.
	MsgSessionExpired = "Session expired. Please sign in again."

	// MsgPermissionDenied is shown when the remote store rejects an
	// operation on an object the app should own.
	MsgPermissionDenied = "Permission denied. Try signing out and back in."

	// MsgRemoteFolderNotFound is shown when an expected remote folder or
	// file is missing; re-syncing recreates it.
	MsgRemoteFolderNotFound = "Remote folder not found. Try syncing again."

	// MsgNetworkError is shown on transport-level failures.
	MsgNetworkError = "Network error. Check your connection and try again."

	// MsgSyncNotConfigured is shown when sync features are disabled because
	// no OAuth client identity was configured.
	MsgSyncNotConfigured = "Sync is not configured. Set an OAuth client ID to enable it."

	// MsgNotConnected is shown when a sync is requested before an account
	// has been connected.
	MsgNotConnected = "No account connected. Connect an account in settings first."
)
