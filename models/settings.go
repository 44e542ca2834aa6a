// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Settings is the persisted association between this installation and the
// remote account, plus user preferences. It is owned by the settings
// repository and mutated only through explicit connect/disconnect/update
// operations; the access token itself is never part of it.
type Settings struct {
	// AccountConnected reports whether the user has linked a remote account.
	AccountConnected bool `json:"accountConnected"`

	// AccountEmail is the display identity of the linked account.
	AccountEmail string `json:"accountEmail,omitempty"`

	// RemoteFolderID caches the identifier of the account's root folder in
	// the remote store. Cleared on disconnect; re-resolved on next sync.
	RemoteFolderID string `json:"remoteFolderId,omitempty"`

	// LastSyncTime is the timestamp of the last successful sync, nil before
	// the first one. It is the local half of the direction decision.
	LastSyncTime *time.Time `json:"lastSyncTime,omitempty"`

	// AutoSync enables debounced background sync after local mutations and
	// sync-on-reconnect.
	AutoSync bool `json:"autoSync"`

	// DefaultServings pre-fills the serving count of new recipes.
	DefaultServings int `json:"defaultServings"`

	// ShoppingDays is the meal-plan window, in days, used when generating
	// the shopping list.
	ShoppingDays int `json:"shoppingDays"`

	// Theme is the UI colour theme name.
	Theme string `json:"theme,omitempty"`
}

// DefaultSettings returns the settings applied to a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		AutoSync:        true,
		DefaultServings: 4,
		ShoppingDays:    7,
		Theme:           "light",
	}
}
