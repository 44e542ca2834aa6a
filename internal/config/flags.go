package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-client-id OAuth client identifier
//	-client-secret OAuth client secret
//	-redirect-port loopback port for the sign-in redirect
//	-api-base-url remote files API base URL
//	-upload-base-url remote upload API base URL
//	-folder-name remote account folder name
//	-request-timeout remote request timeout (e.g., "15s")
//	-d local database path
//	-debounce sync debounce delay (e.g., "5s")
//	-connectivity-interval reachability probe interval (e.g., "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var clientID string
	var clientSecret string
	var redirectPort int
	var apiBaseURL string
	var uploadBaseURL string
	var folderName string
	var requestTimeout time.Duration
	var databaseDSN string
	var debounceDelay time.Duration
	var connectivityInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&clientID, "client-id", "", "OAuth client identifier")
	flag.StringVar(&clientSecret, "client-secret", "", "OAuth client secret")
	flag.IntVar(&redirectPort, "redirect-port", 0, "Loopback port for the sign-in redirect")
	flag.StringVar(&apiBaseURL, "api-base-url", "", "Remote files API base URL")
	flag.StringVar(&uploadBaseURL, "upload-base-url", "", "Remote upload API base URL")
	flag.StringVar(&folderName, "folder-name", "", "Remote account folder name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.DurationVar(&debounceDelay, "debounce", 0, "Sync debounce delay (e.g., 5s)")
	flag.DurationVar(&connectivityInterval, "connectivity-interval", 0, "Reachability probe interval (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectPort: redirectPort,
		},
		Remote: Remote{
			APIBaseURL:     apiBaseURL,
			UploadBaseURL:  uploadBaseURL,
			FolderName:     folderName,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			DebounceDelay:        debounceDelay,
			ConnectivityInterval: connectivityInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
