package config

import "time"

// Built-in fallbacks applied after all explicit sources.
const (
	defaultAPIBaseURL    = "https://www.googleapis.com/drive/v3"
	defaultUploadBaseURL = "https://www.googleapis.com/upload/drive/v3"
	defaultFolderName    = "KitchenHub"
	defaultRedirectPort  = 53682

	defaultRequestTimeout       = 15 * time.Second
	defaultDebounceDelay        = 5 * time.Second
	defaultConnectivityInterval = 30 * time.Second

	defaultDSN = "kitchenhub.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			RedirectPort: defaultRedirectPort,
		},
		Remote: Remote{
			APIBaseURL:     defaultAPIBaseURL,
			UploadBaseURL:  defaultUploadBaseURL,
			FolderName:     defaultFolderName,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Sync: Sync{
			DebounceDelay:        defaultDebounceDelay,
			ConnectivityInterval: defaultConnectivityInterval,
		},
	}
}
