package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{ClientID: "client-id"}},
		&StructuredConfig{Remote: Remote{FolderName: "KitchenHub"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "client-id", cfg.Auth.ClientID)
	assert.Equal(t, "KitchenHub", cfg.Remote.FolderName)
}

// TestBuild_EarlierConfigWins verifies merge priority: a non-zero field from
// an earlier source is not overridden by a later one.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "from-env.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "from-json.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyZeroFields verifies that defaults never override
// explicitly configured values but do fill the gaps.
func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Remote: Remote{FolderName: "CustomFolder"},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "CustomFolder", cfg.Remote.FolderName)
	assert.Equal(t, defaultAPIBaseURL, cfg.Remote.APIBaseURL)
	assert.Equal(t, defaultDebounceDelay, cfg.Sync.DebounceDelay)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_LoadsFileWhenPathPresent verifies that a JSON config file is
// parsed and merged when one of the earlier sources specified its path.
func TestWithJSON_LoadsFileWhenPathPresent(t *testing.T) {
	jsonCfg := StructuredJSONConfig{}
	jsonCfg.Remote.FolderName = "FromJSON"
	jsonCfg.Sync.DebounceDelay = Duration(2 * time.Second)
	path := writeTempJSONConfig(t, jsonCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "FromJSON", cfg.Remote.FolderName)
	assert.Equal(t, 2*time.Second, cfg.Sync.DebounceDelay)
}

// TestWithJSON_MissingFileSetsError verifies that a dangling config path is
// reported at build time.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestWithJSON_NoPathIsNoOp verifies that the JSON stage does nothing when no
// source specified a path.
func TestWithJSON_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	require.Len(t, b.withJSON().configs, 1)
}

// ── ClientConfig.validate ─────────────────────────────────────────────────────

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Auth: ClientAuth{ClientID: "id", ClientSecret: "secret", RedirectPort: 53682},
			Remote: ClientRemote{
				APIBaseURL:     defaultAPIBaseURL,
				UploadBaseURL:  defaultUploadBaseURL,
				FolderName:     defaultFolderName,
				RequestTimeout: defaultRequestTimeout,
			},
			Storage: ClientStorage{DB: ClientDB{DSN: "kitchenhub.db"}},
			Sync: ClientSync{
				DebounceDelay:        defaultDebounceDelay,
				ConnectivityInterval: defaultConnectivityInterval,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "valid config passes",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:   "missing client identity is allowed (local-only mode)",
			mutate: func(cfg *ClientConfig) { cfg.Auth = ClientAuth{} },
		},
		{
			name:    "empty DSN rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory DSN rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing API base URL rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Remote.APIBaseURL = "" },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "zero request timeout rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Remote.RequestTimeout = 0 },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "zero debounce rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Sync.DebounceDelay = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "secret without client ID rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Auth.ClientID = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "client ID without redirect port rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Auth.RedirectPort = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
