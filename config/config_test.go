package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, SessionStoreDatabase, cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Database = DatabaseConfig{Driver: DriverSQLite, SQLitePath: "catalog.db"}
		cfg.Session = SessionConfig{Store: SessionStoreDatabase, TTL: time.Hour}
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid sqlite", mutate: func(*Config) {}},
		{name: "postgres without section", mutate: func(cfg *Config) { cfg.Database.Driver = DriverPostgres }, wantErr: "postgres section is required"},
		{name: "sqlite without path", mutate: func(cfg *Config) { cfg.Database.SQLitePath = "" }, wantErr: "sqlitePath is required"},
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Database.Driver = "oracle" }, wantErr: "unknown database driver"},
		{name: "redis without section", mutate: func(cfg *Config) { cfg.Session.Store = SessionStoreRedis }, wantErr: "redis section is required"},
		{name: "redis configured", mutate: func(cfg *Config) {
			cfg.Session.Store = SessionStoreRedis
			cfg.Redis = &RedisConfig{Host: "localhost", Port: "6379"}
		}},
		{name: "unknown store", mutate: func(cfg *Config) { cfg.Session.Store = "memcached" }, wantErr: "unknown session store"},
		{name: "missing secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = "" }, wantErr: "secretKey.access"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
