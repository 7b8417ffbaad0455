package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"encryption_secret": "secret",
			"token_sign_key":    "sign",
			"token_issuer":      "issuer",
			"token_duration":    "45m",
			"version":           "0.9.0",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "pgx", "dsn": "postgres://localhost/credstore"},
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:8081",
			"request_timeout": "20s",
		},
		"adapter": map[string]any{
			"http_address":    "http://localhost:8081",
			"request_timeout": "10s",
		},
		"workers": map[string]any{
			"activity_workers":    3,
			"activity_queue_size": 128,
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.EncryptionSecret)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "0.9.0", cfg.App.Version)

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/credstore", cfg.Storage.DB.DSN)

	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 3, cfg.Workers.ActivityWorkers)
	assert.Equal(t, 128, cfg.Workers.ActivityQueueSize)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSONConfig(t, "not an object")
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalVariants(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &d))
}

func TestDuration_MarshalUsesStringForm(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))
}
