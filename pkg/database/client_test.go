package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "baton", cfg.User)
				assert.Equal(t, "baton", cfg.Database)
				assert.Equal(t, "disable", cfg.SSLMode)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
			},
		},
		{
			name: "DB_URL takes precedence over discrete vars",
			envVars: map[string]string{
				"DB_URL":  "postgres://u:p@remote:5432/orchestrator?sslmode=require",
				"DB_HOST": "ignored.example.com",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "postgres://u:p@remote:5432/orchestrator?sslmode=require", cfg.URL)
				assert.Empty(t, cfg.Host)
				assert.Equal(t, cfg.URL, cfg.DSN())
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				t.Setenv(key, "")
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "baton",
		Password: "pw",
		Database: "baton",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=baton password=pw dbname=baton sslmode=disable",
		cfg.DSN())

	cfg.URL = "postgres://baton:pw@localhost:5432/baton"
	assert.Equal(t, cfg.URL, cfg.DSN(), "URL must win over discrete fields")
}

func TestConfigDatabaseName(t *testing.T) {
	assert.Equal(t, "orchestrator", Config{Database: "orchestrator"}.databaseName())
	assert.Equal(t, "baton", Config{URL: "postgres://u:p@h/db"}.databaseName())
}
