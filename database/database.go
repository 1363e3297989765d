package database

import (
	"database/sql"
	"fmt"
	"log"

	"backend_jmtecnica/config"
	"backend_jmtecnica/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CreateDatabaseIfNotExists cria o banco de dados no PostgreSQL caso não exista.
// Para sqlite não há nada a fazer: o arquivo é criado na primeira conexão.
func CreateDatabaseIfNotExists(cfg *config.Config) error {
	if cfg.Database.Driver != "postgres" {
		return nil
	}

	// Conecta ao PostgreSQL sem indicar o banco da aplicação (usa o banco postgres)
	adminDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.SSLMode)

	db, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return fmt.Errorf("não foi possível conectar ao PostgreSQL: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("não foi possível verificar a conexão com o PostgreSQL: %w", err)
	}

	var exists bool
	query := "SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1);"
	if err := db.QueryRow(query, cfg.Database.Name).Scan(&exists); err != nil {
		return fmt.Errorf("erro ao verificar a existência do banco de dados: %w", err)
	}

	if exists {
		log.Printf("✅ Banco de dados '%s' já existe", cfg.Database.Name)
		return nil
	}

	createQuery := fmt.Sprintf("CREATE DATABASE %s;", cfg.Database.Name)
	if _, err := db.Exec(createQuery); err != nil {
		return fmt.Errorf("não foi possível criar o banco de dados '%s': %w", cfg.Database.Name, err)
	}

	log.Printf("✅ Banco de dados '%s' criado com sucesso", cfg.Database.Name)
	return nil
}

// ConnectDatabase abre a conexão com o banco configurado e executa as migrações
func ConnectDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	if !cfg.IsProduction() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), gormConfig)
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("não foi possível conectar ao banco de dados: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("não foi possível acessar o pool de conexões: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	log.Printf("✅ Conectado ao banco de dados (%s)", cfg.Database.Driver)

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("erro na automigração: %w", err)
	}

	if err := CreateIndexes(db); err != nil {
		return nil, fmt.Errorf("erro ao criar índices: %w", err)
	}

	return db, nil
}

// autoMigrate executa as migrações dos modelos na ordem de dependência
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Relatorio{},
		&models.Equipamento{},
		&models.Peca{},
	)
}
