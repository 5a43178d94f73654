package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can spell "24h" instead of
// nanosecond counts.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Environment   string   `json:"environment"`
		DevMode       bool     `json:"dev_mode"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Images struct {
			Dir            string `json:"dir"`
			MaxUploadBytes int64  `json:"max_upload_bytes"`
			S3Endpoint     string `json:"s3_endpoint"`
			S3Region       string `json:"s3_region"`
			S3AccessKey    string `json:"s3_access_key"`
			S3SecretKey    string `json:"s3_secret_key"`
			S3Bucket       string `json:"s3_bucket"`
			S3PublicURL    string `json:"s3_public_url"`
		} `json:"images,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Cache struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		TTL           Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
		LogShipInterval Duration `json:"log_ship_interval"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Environment:   jsonCfg.App.Environment,
			DevMode:       jsonCfg.App.DevMode,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Images: Images{
				Dir:            jsonCfg.Storage.Images.Dir,
				MaxUploadBytes: jsonCfg.Storage.Images.MaxUploadBytes,
				S3Endpoint:     jsonCfg.Storage.Images.S3Endpoint,
				S3Region:       jsonCfg.Storage.Images.S3Region,
				S3AccessKey:    jsonCfg.Storage.Images.S3AccessKey,
				S3SecretKey:    jsonCfg.Storage.Images.S3SecretKey,
				S3Bucket:       jsonCfg.Storage.Images.S3Bucket,
				S3PublicURL:    jsonCfg.Storage.Images.S3PublicURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Cache: Cache{
			RedisAddress:  jsonCfg.Cache.RedisAddress,
			RedisPassword: jsonCfg.Cache.RedisPassword,
			TTL:           time.Duration(jsonCfg.Cache.TTL),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
			LogShipInterval: time.Duration(jsonCfg.Workers.LogShipInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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
