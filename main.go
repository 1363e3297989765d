package main

import (
	"log"
	"time"

	"backend_jmtecnica/api"
	"backend_jmtecnica/config"
	"backend_jmtecnica/database"
	"backend_jmtecnica/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// initDB prepara o banco de dados da aplicação
func initDB(cfg *config.Config) *gorm.DB {
	log.Println("🔧 Inicializando o banco de dados...")

	// Cria o banco de dados caso não exista
	if err := database.CreateDatabaseIfNotExists(cfg); err != nil {
		log.Fatal("❌ Erro ao criar o banco de dados:", err)
	}

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("❌ Erro ao conectar ao banco de dados:", err)
	}

	log.Println("✅ Banco de dados inicializado com sucesso")
	return db
}

func main() {
	// Carrega a configuração (inclui o .env quando presente)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("❌ Erro ao carregar a configuração:", err)
	}

	db := initDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}))

	// Sonda de vivacidade
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().In(cfg.Location).Format(time.RFC3339),
			"timezone":  cfg.Timezone,
		})
	})

	// Raiz da API com os endpoints disponíveis
	r.GET("/api", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":   cfg.App.Title,
			"version":   cfg.App.Version,
			"timestamp": time.Now().In(cfg.Location).Format(time.RFC3339),
			"endpoints": gin.H{
				"relatorios": "/api/relatorios",
				"health":     "/health",
			},
		})
	})

	// Rotas da API
	relatoriosAPI := api.NewRelatoriosAPI(db, cfg)
	relatoriosAPI.RegisterRoutes(r.Group("/api"))

	log.Printf("🚀 Servidor iniciado em %s:%s", cfg.App.Host, cfg.App.Port)
	if err := r.Run(cfg.App.Host + ":" + cfg.App.Port); err != nil {
		log.Fatal("❌ Erro ao iniciar o servidor:", err)
	}
}
