// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; cross-source rules live on the client view.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.APIBaseURL == "" || cfg.Remote.UploadBaseURL == "" ||
		cfg.Remote.FolderName == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.DebounceDelay <= 0 || cfg.Sync.ConnectivityInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	// A client secret without a client ID is a misconfiguration; the
	// reverse is fine (public clients use PKCE without a secret).
	if cfg.Auth.ClientID == "" && cfg.Auth.ClientSecret != "" {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.ClientID != "" && cfg.Auth.RedirectPort <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
