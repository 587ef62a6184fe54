package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/erp-mercearia/docs"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/route"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/repository"
	"github.com/hugohenrick/erp-mercearia/internal/infrastructure/database"
	"github.com/hugohenrick/erp-mercearia/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	distributorRepo := repository.NewDistributorRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Criar controllers
	authController := controller.NewAuthController(userRepo, log)
	productController := controller.NewProductController(productRepo, log)
	distributorController := controller.NewDistributorController(distributorRepo, log)
	invoiceController := controller.NewInvoiceController(invoiceRepo, log)
	purchaseController := controller.NewPurchaseController(purchaseRepo, log)
	expenseController := controller.NewExpenseController(expenseRepo, log)
	reportController := controller.NewReportController(reportRepo, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Registrar rotas da API
	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterDistributorRoutes(api, distributorController)
	route.RegisterInvoiceRoutes(api, invoiceController)
	route.RegisterPurchaseRoutes(api, purchaseController)
	route.RegisterExpenseRoutes(api, expenseController)
	route.RegisterReportRoutes(api, reportController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
