package config

import (
	"fmt"
	"time"
)

// ClientAuth holds OAuth identity settings used by the credential manager.
type ClientAuth struct {
	// ClientID is the OAuth client identifier; empty disables sync.
	ClientID string
	// ClientSecret is the OAuth client secret.
	ClientSecret string
	// RedirectPort is the loopback port for the sign-in redirect.
	RedirectPort int
}

// ClientRemote holds network settings used by the remote store adapter.
type ClientRemote struct {
	// APIBaseURL is the remote files API base URL.
	APIBaseURL string
	// UploadBaseURL is the remote content-upload API base URL.
	UploadBaseURL string
	// FolderName is the account root folder name.
	FolderName string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains synchronization timing settings.
type ClientSync struct {
	// DebounceDelay is the mutation-to-sync coalescing window.
	DebounceDelay time.Duration
	// ConnectivityInterval is the reachability probe interval.
	ConnectivityInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Auth contains OAuth identity settings.
	Auth ClientAuth
	// Remote contains remote store endpoints and timeouts.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains synchronization timing settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Auth: ClientAuth{
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
			RedirectPort: cfg.Auth.RedirectPort,
		},
		Remote: ClientRemote{
			APIBaseURL:     cfg.Remote.APIBaseURL,
			UploadBaseURL:  cfg.Remote.UploadBaseURL,
			FolderName:     cfg.Remote.FolderName,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			DebounceDelay:        cfg.Sync.DebounceDelay,
			ConnectivityInterval: cfg.Sync.ConnectivityInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
