package testutils

import (
	"log"

	"backend_jmtecnica/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB cria a base de testes em memória com o esquema migrado.
// Todos os testes devem usar esta função para manter a consistência.
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Relatorio{},
		&models.Equipamento{},
		&models.Peca{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// MustSetupTestDB é a variante que aborta quando a base não sobe
func MustSetupTestDB() *gorm.DB {
	db, err := SetupTestDB()
	if err != nil {
		log.Fatalf("Não foi possível criar a base de testes: %v", err)
	}
	return db
}
