package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("AUTH_SECRET", "segredo-de-teste")
	t.Setenv("DATABASE_USER", "toy")
	t.Setenv("DATABASE_PASSWORD", "pwd")
	t.Setenv("DATABASE_URL", "db:5432/toystore")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "segredo-de-teste", cfg.Auth.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "postgres://toy:pwd@db:5432/toystore", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ReportCacheTTL)
	assert.False(t, cfg.ReportSnapshot.Enabled)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Cors.AllowedOrigins)
}

func TestConfig_validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:    "Segredo ausente deve falhar",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name: "Limites inválidos recebem valores padrão",
			cfg: Config{
				Auth:       Auth{Secret: "x"},
				Pagination: Pagination{DefaultLimit: 0, MaxLimit: 0},
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
				assert.Equal(t, 10, cfg.Pagination.MaxLimit)
				assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, tt.cfg)
		})
	}
}
