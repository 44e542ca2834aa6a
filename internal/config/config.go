// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// kitchenhub application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds OAuth provider identity settings for the sync account.
	Auth Auth `envPrefix:"AUTH_"`

	// Remote holds the remote object-store endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds timing settings for the synchronization engine.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the application identity registered with the OAuth provider.
// An empty ClientID is legal: the app then runs purely locally and sync
// features are disabled rather than failing at startup.
type Auth struct {
	// ClientID is the OAuth client identifier of this application.
	// Env: AUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the OAuth client secret paired with ClientID.
	// Env: AUTH_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// RedirectPort is the loopback TCP port that receives the authorization
	// code during interactive sign-in.
	// Env: AUTH_REDIRECT_PORT
	RedirectPort int `env:"REDIRECT_PORT"`
}

// Remote holds endpoint settings for the Drive-style remote store.
type Remote struct {
	// APIBaseURL is the base URL of the files/search API.
	// Env: REMOTE_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// UploadBaseURL is the base URL of the content-upload API.
	// Env: REMOTE_UPLOAD_BASE_URL
	UploadBaseURL string `env:"UPLOAD_BASE_URL"`

	// FolderName is the name of the account root folder holding all
	// snapshot files.
	// Env: REMOTE_FOLDER_NAME
	FolderName string `env:"FOLDER_NAME"`

	// RequestTimeout is the per-request timeout for all remote calls.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (or connection string) of the local store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds timing settings for the synchronization engine.
type Sync struct {
	// DebounceDelay is how long after the last local mutation the deferred
	// sync fires.
	// Env: SYNC_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// ConnectivityInterval is the probe interval of the connectivity
	// watcher.
	// Env: SYNC_CONNECTIVITY_INTERVAL
	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
