// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"AUTH_CLIENT_ID":     "client-id-123",
		"AUTH_CLIENT_SECRET": "client-secret-456",
		"AUTH_REDIRECT_PORT": "53682",

		"REMOTE_API_BASE_URL":    "https://api.example.com/drive/v3",
		"REMOTE_UPLOAD_BASE_URL": "https://upload.example.com/drive/v3",
		"REMOTE_FOLDER_NAME":     "KitchenHub",
		"REMOTE_REQUEST_TIMEOUT": "15s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/data/kitchenhub.db",

		"SYNC_DEBOUNCE_DELAY":        "5s",
		"SYNC_CONNECTIVITY_INTERVAL": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "client-id-123", cfg.Auth.ClientID)
	assert.Equal(t, "client-secret-456", cfg.Auth.ClientSecret)
	assert.Equal(t, 53682, cfg.Auth.RedirectPort)

	assert.Equal(t, "https://api.example.com/drive/v3", cfg.Remote.APIBaseURL)
	assert.Equal(t, "https://upload.example.com/drive/v3", cfg.Remote.UploadBaseURL)
	assert.Equal(t, "KitchenHub", cfg.Remote.FolderName)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, "/var/data/kitchenhub.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 5*time.Second, cfg.Sync.DebounceDelay)
	assert.Equal(t, 30*time.Second, cfg.Sync.ConnectivityInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_CLIENT_ID": "only-client-id",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "only-client-id", cfg.Auth.ClientID)
	assert.Empty(t, cfg.Auth.ClientSecret)
	assert.Empty(t, cfg.Remote.APIBaseURL)
	assert.Zero(t, cfg.Sync.DebounceDelay)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SYNC_DEBOUNCE_DELAY": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
