package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/blog")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("CACHE_REDIS_ADDRESS", "localhost:6379")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/blog", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestParseJSON_FullFile(t *testing.T) {
	raw := map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-key",
			"token_duration": "1h",
		},
		"storage": map[string]any{
			"db":     map[string]any{"dsn": "postgres://json/blog"},
			"images": map[string]any{"dir": "json-uploads"},
		},
		"server": map[string]any{
			"http_address":    "localhost:7070",
			"request_timeout": "45s",
		},
	}

	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json/blog", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-uploads", cfg.Storage.Images.Dir)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"90s"`, want: 90 * time.Second},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-valid"`), &d))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "blogkeeper", cfg.App.TokenIssuer)
	assert.Equal(t, "uploads", cfg.Storage.Images.Dir)
	assert.Equal(t, int64(5<<20), cfg.Storage.Images.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = "example.org:81"
	cfg.Storage.Images.MaxUploadBytes = 1024

	cfg.applyDefaults()

	assert.Equal(t, "example.org:81", cfg.Server.HTTPAddress)
	assert.Equal(t, int64(1024), cfg.Storage.Images.MaxUploadBytes)
}

func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{Path: "cache.db"}},
		Workers: ClientWorkers{RefreshInterval: time.Minute, LogShipInterval: time.Minute},
	}
	require.NoError(t, valid.validate())

	noDB := *valid
	noDB.Storage.DB.Path = ""
	assert.ErrorIs(t, noDB.validate(), ErrInvalidStorageConfigs)

	noAdapter := *valid
	noAdapter.Adapter.BaseURL = ""
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)

	noWorkers := *valid
	noWorkers.Workers.RefreshInterval = 0
	assert.ErrorIs(t, noWorkers.validate(), ErrInvalidWorkerConfigs)
}

func TestNetAddress_SetAndString(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", addr.String())

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("localhost:0"))
	assert.Error(t, addr.Set("not-an-ip:80"))

	var empty NetAddress
	assert.Empty(t, empty.String())
}
