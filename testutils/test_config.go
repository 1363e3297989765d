package testutils

import (
	"time"

	"backend_jmtecnica/config"
)

// NewTestConfig monta a configuração usada nos testes: sqlite em
// memória, paginação padrão e o fuso de Brasília
func NewTestConfig() *config.Config {
	location, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		location = time.UTC
	}

	return &config.Config{
		App: config.AppConfig{
			Env:     "testing",
			Port:    "8080",
			Host:    "127.0.0.1",
			Version: "1.0.0",
			Title:   "JM Técnica API",
		},
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: ":memory:",
		},
		Pagination: config.PaginationConfig{
			DefaultPerPage: 50,
			MaxPerPage:     100,
		},
		Timezone: "America/Sao_Paulo",
		Location: location,
	}
}
