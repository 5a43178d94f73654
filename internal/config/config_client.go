package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the server endpoint the client talks to.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the client post cache.
type ClientDB struct {
	// Path is the SQLite database file path. ":memory:" keeps the cache
	// in memory only.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh worker pulls the post
	// list from the server.
	RefreshInterval time.Duration
	// LogShipInterval defines how often buffered client logs are shipped
	// to the server.
	LogShipInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting
// [ClientConfig]. The local database path reuses the storage DSN slot:
// the client interprets STORAGE_DB_DATABASE_URI as a SQLite file path.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "blogkeeper.db"
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Path: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			LogShipInterval: cfg.Workers.LogShipInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
