package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigPadroes(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "jm_tecnica", cfg.Database.Name)
	assert.Equal(t, 50, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 100, cfg.Pagination.MaxPerPage)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	require.NotNil(t, cfg.Location)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoadConfigComAmbiente(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/teste.db")
	t.Setenv("CORS_ORIGINS", "https://app.exemplo.com.br, https://admin.exemplo.com.br")
	t.Setenv("ITEMS_PER_PAGE_MAX", "200")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/teste.db", cfg.Database.SQLitePath)
	assert.Equal(t, []string{"https://app.exemplo.com.br", "https://admin.exemplo.com.br"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 200, cfg.Pagination.MaxPerPage)
}

func TestLoadConfigDriverInvalido(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigFusoInvalido(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Marte/Cratera")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("Produção exige senha do banco", func(t *testing.T) {
		cfg := &Config{
			App:      AppConfig{Env: "production"},
			Database: DatabaseConfig{Driver: "postgres"},
			Pagination: PaginationConfig{
				DefaultPerPage: 50,
				MaxPerPage:     100,
			},
		}
		assert.Error(t, cfg.Validate())

		cfg.Database.Password = "segredo"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Teto de paginação abaixo do padrão", func(t *testing.T) {
		cfg := &Config{
			Database: DatabaseConfig{Driver: "sqlite"},
			Pagination: PaginationConfig{
				DefaultPerPage: 50,
				MaxPerPage:     10,
			},
		}
		assert.Error(t, cfg.Validate())
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "600")

	assert.Equal(t, 600*time.Second, getEnvDuration("DB_CONN_MAX_LIFETIME", time.Second))

	t.Setenv("DB_CONN_MAX_LIFETIME", "2m")
	assert.Equal(t, 2*time.Minute, getEnvDuration("DB_CONN_MAX_LIFETIME", time.Second))

	assert.Equal(t, time.Second, getEnvDuration("VARIAVEL_INEXISTENTE", time.Second))
}
