package config

import "time"

// Defaults applied after all sources are merged. Only zero-valued fields
// are touched, so any explicit setting from env/flags/JSON survives.
const (
	defaultTokenIssuer    = "blogkeeper"
	defaultTokenDuration  = 24 * time.Hour
	defaultEnvironment    = "development"
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultImagesDir      = "uploads"
	defaultMaxUploadBytes = 5 << 20 // 5 MB, matches the original upload limit
	defaultCacheTTL       = 5 * time.Minute
	defaultAdapterBaseURL = "http://localhost:8080"
	defaultAdapterTimeout = 30 * time.Second
	defaultRefreshEvery   = 2 * time.Minute
	defaultLogShipEvery   = time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = defaultEnvironment
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Images.Dir == "" {
		cfg.Storage.Images.Dir = defaultImagesDir
	}
	if cfg.Storage.Images.MaxUploadBytes == 0 {
		cfg.Storage.Images.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = defaultAdapterBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshEvery
	}
	if cfg.Workers.LogShipInterval == 0 {
		cfg.Workers.LogShipInterval = defaultLogShipEvery
	}
}
