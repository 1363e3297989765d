package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contém toda a configuração da aplicação
type Config struct {
	// Configurações gerais
	App AppConfig `json:"app"`

	// Banco de dados
	Database DatabaseConfig `json:"database"`

	// CORS
	CORS CORSConfig `json:"cors"`

	// Paginação
	Pagination PaginationConfig `json:"pagination"`

	// Fuso horário civil usado nos timestamps dos relatórios
	Timezone string `json:"timezone"`

	// Location carregada a partir de Timezone
	Location *time.Location `json:"-"`
}

type AppConfig struct {
	Env     string `json:"env"`
	Port    string `json:"port"`
	Host    string `json:"host"`
	Version string `json:"version"`
	Title   string `json:"title"`
}

type DatabaseConfig struct {
	Driver          string        `json:"driver"` // postgres ou sqlite
	Host            string        `json:"host"`
	Port            string        `json:"port"`
	User            string        `json:"user"`
	Password        string        `json:"password"`
	Name            string        `json:"name"`
	SSLMode         string        `json:"ssl_mode"`
	SQLitePath      string        `json:"sqlite_path"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
}

type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
	MaxAge           int      `json:"max_age"`
}

type PaginationConfig struct {
	DefaultPerPage int `json:"default_per_page"`
	MaxPerPage     int `json:"max_per_page"`
}

// LoadConfig carrega a configuração a partir das variáveis de ambiente
func LoadConfig() (*Config, error) {
	// Carrega o arquivo .env se existir
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: arquivo .env não encontrado, usando variáveis do sistema")
	}

	config := &Config{
		App: AppConfig{
			Env:     getEnv("APP_ENV", "development"),
			Port:    getEnv("SERVER_PORT", "8080"),
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Version: getEnv("API_VERSION", "1.0.0"),
			Title:   getEnv("API_TITLE", "JM Técnica API"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "jm_tecnica"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			SQLitePath:      getEnv("SQLITE_PATH", "jm_tecnica.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 300*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvSlice("CORS_ORIGINS", []string{
				"http://localhost:5000",
				"http://127.0.0.1:5000",
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			}),
			AllowedMethods:   getEnvSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Accept", "Origin", "X-Requested-With"}),
			AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           getEnvInt("CORS_MAX_AGE", 86400),
		},
		Pagination: PaginationConfig{
			DefaultPerPage: getEnvInt("ITEMS_PER_PAGE_DEFAULT", 50),
			MaxPerPage:     getEnvInt("ITEMS_PER_PAGE_MAX", 100),
		},
		Timezone: getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", config.Timezone, err)
	}
	config.Location = location

	return config, nil
}

// Validate verifica a consistência da configuração
func (c *Config) Validate() error {
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("DB_DRIVER deve ser postgres ou sqlite, recebido %q", c.Database.Driver)
	}

	if c.App.Env == "production" && c.Database.Driver == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD é obrigatório em produção")
	}

	if c.Pagination.DefaultPerPage <= 0 {
		return fmt.Errorf("ITEMS_PER_PAGE_DEFAULT deve ser positivo")
	}
	if c.Pagination.MaxPerPage < c.Pagination.DefaultPerPage {
		return fmt.Errorf("ITEMS_PER_PAGE_MAX não pode ser menor que o padrão")
	}

	return nil
}

// IsProduction indica se estamos em ambiente de produção
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// getEnv lê uma variável de ambiente com valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt lê uma variável de ambiente como inteiro
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Aviso: valor inválido para %s, usando padrão %d", key, defaultValue)
	}
	return defaultValue
}

// getEnvBool lê uma variável de ambiente como booleano
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration lê uma variável de ambiente como duração em segundos
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvSlice lê uma variável de ambiente como lista separada por vírgulas
func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
