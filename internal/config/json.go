package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
// Durations are written as Go duration strings ("30s", "168h").
type StructuredJSONConfig struct {
	App struct {
		JWTSecret     string   `json:"jwt_secret"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BaseURL       string   `json:"base_url"`
		StaticDir     string   `json:"static_dir"`
		UploadsDir    string   `json:"uploads_dir"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			MaxConnections int      `json:"max_connections"`
			AcquireTimeout Duration `json:"acquire_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host               string   `json:"host"`
		Port               int      `json:"port"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		AuthRateLimit      int      `json:"auth_rate_limit"`
	} `json:"server,omitempty"`

	Adapter struct {
		TMDBBaseURL     string   `json:"tmdb_base_url"`
		BarcodeBaseURL  string   `json:"barcode_base_url"`
		BarcodeQueryID  string   `json:"barcode_query_id"`
		RequestTimeout  Duration `json:"request_timeout"`
		DefaultLanguage string   `json:"default_language"`
	} `json:"adapter,omitempty"`

	Workers struct {
		EnrichInterval            Duration `json:"enrich_interval"`
		ResetTokenCleanupSchedule string   `json:"reset_token_cleanup_schedule"`
	} `json:"workers,omitempty"`
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
		App: App{
			JWTSecret:     jsonCfg.App.JWTSecret,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			BaseURL:       jsonCfg.App.BaseURL,
			StaticDir:     jsonCfg.App.StaticDir,
			UploadsDir:    jsonCfg.App.UploadsDir,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				MaxConnections: jsonCfg.Storage.DB.MaxConnections,
				AcquireTimeout: time.Duration(jsonCfg.Storage.DB.AcquireTimeout),
			},
		},
		Server: Server{
			Host:               jsonCfg.Server.Host,
			Port:               jsonCfg.Server.Port,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			AuthRateLimit:      jsonCfg.Server.AuthRateLimit,
		},
		Adapter: Adapter{
			TMDBBaseURL:     jsonCfg.Adapter.TMDBBaseURL,
			BarcodeBaseURL:  jsonCfg.Adapter.BarcodeBaseURL,
			BarcodeQueryID:  jsonCfg.Adapter.BarcodeQueryID,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			DefaultLanguage: jsonCfg.Adapter.DefaultLanguage,
		},
		Workers: Workers{
			EnrichInterval:            time.Duration(jsonCfg.Workers.EnrichInterval),
			ResetTokenCleanupSchedule: jsonCfg.Workers.ResetTokenCleanupSchedule,
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
