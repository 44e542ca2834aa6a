package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectPort int    `json:"redirect_port"`
	} `json:"auth,omitempty"`

	Remote struct {
		APIBaseURL     string   `json:"api_base_url"`
		UploadBaseURL  string   `json:"upload_base_url"`
		FolderName     string   `json:"folder_name"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		DebounceDelay        Duration `json:"debounce_delay"`
		ConnectivityInterval Duration `json:"connectivity_interval"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			ClientID:     jsonCfg.Auth.ClientID,
			ClientSecret: jsonCfg.Auth.ClientSecret,
			RedirectPort: jsonCfg.Auth.RedirectPort,
		},
		Remote: Remote{
			APIBaseURL:     jsonCfg.Remote.APIBaseURL,
			UploadBaseURL:  jsonCfg.Remote.UploadBaseURL,
			FolderName:     jsonCfg.Remote.FolderName,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			DebounceDelay:        time.Duration(jsonCfg.Sync.DebounceDelay),
			ConnectivityInterval: time.Duration(jsonCfg.Sync.ConnectivityInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
