package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(&StructuredConfig{
		App:     App{HashKey: "secret"},
		Storage: Storage{DB: DB{DSN: "books.db"}},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Workers: Workers{ReverifyInterval: time.Hour, ProbeInterval: time.Second, SyncInterval: time.Minute},
	}, []string{"sync"})
}

func TestNewClientConfig_CopiesFields(t *testing.T) {
	cfg := validClientConfig()

	assert.Equal(t, "secret", cfg.App.HashKey)
	assert.Equal(t, "books.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Workers.ReverifyInterval)
	assert.Equal(t, []string{"sync"}, cfg.Args)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"empty address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"negative retries", func(c *ClientConfig) { c.Adapter.MaxRetries = -1 }, ErrInvalidAdapterConfigs},
		{"negative rate", func(c *ClientConfig) { c.Adapter.RateLimit = -1 }, ErrInvalidAdapterConfigs},
		{"zero probe", func(c *ClientConfig) { c.Workers.ProbeInterval = 0 }, ErrInvalidWorkerConfigs},
		{"empty hash key", func(c *ClientConfig) { c.App.HashKey = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-hash-key", "k", "status"})

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultMaxRetries, cfg.Adapter.MaxRetries)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"status"}, cfg.Args)
}

func TestGetClientConfig_MissingHashKey(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
