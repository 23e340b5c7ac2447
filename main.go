package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/finance-tracker/backend/internal/config"
	"github.com/finance-tracker/backend/internal/db"
	"github.com/finance-tracker/backend/internal/handler"
	"github.com/finance-tracker/backend/internal/service"
	"github.com/finance-tracker/backend/internal/token"
)

// @title Finance Tracker API
// @version 1.0
// @description Personal finance tracking REST API.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	issuer, err := token.NewIssuer(cfg.JWT)
	if err != nil {
		log.Fatalf("[Startup] %v", err)
	}

	if err := db.Migrate(ctx, cfg.Postgres); err != nil {
		log.Fatalf("[Startup] migration failed: %v", err)
	}

	store, err := db.New(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[Startup] postgres connection failed: %v", err)
	}
	defer store.Close()

	if cfg.Server.SeedData {
		if err := store.Seed(ctx); err != nil {
			log.Fatalf("[Startup] seeding failed: %v", err)
		}
	}

	authHandler := handler.NewAuthHandler(service.NewAuthService(store, issuer), cfg.Server.IsDevelopment())
	userHandler := handler.NewUserHandler(service.NewUserService(store))
	accountHandler := handler.NewAccountHandler(service.NewAccountService(store))
	expenseHandler := handler.NewExpenseHandler(service.NewExpenseService(store))
	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(store))
	transactionHandler := handler.NewTransactionHandler(service.NewTransactionService(store))

	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowCredentials))
	router.Use(handler.MetricsMiddleware())

	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Ping)
	router.GET("/metrics", handler.Metrics())
	router.GET("/openapi.json", handler.OpenAPIDoc)

	v1 := router.Group("/api/v1")
	v1.GET("/health/db", handler.DBHealth(store))
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/users", userHandler.Create)

	protected := v1.Group("")
	protected.Use(handler.AuthMiddleware(issuer))
	{
		protected.GET("/users", userHandler.List)
		protected.GET("/users/:id", userHandler.Get)
		protected.PUT("/users/:id", userHandler.Update)
		protected.DELETE("/users/:id", userHandler.Delete)

		protected.GET("/accounts", accountHandler.List)
		protected.POST("/accounts", accountHandler.Create)
		protected.GET("/accounts/:id", accountHandler.Get)
		protected.PUT("/accounts/:id", accountHandler.Update)
		protected.DELETE("/accounts/:id", accountHandler.Delete)

		protected.GET("/expenses", expenseHandler.List)
		protected.POST("/expenses", expenseHandler.Create)
		protected.GET("/expenses/:id", expenseHandler.Get)
		protected.PUT("/expenses/:id", expenseHandler.Update)
		protected.DELETE("/expenses/:id", expenseHandler.Delete)

		protected.GET("/categories", categoryHandler.List)
		protected.POST("/categories", categoryHandler.Create)
		protected.GET("/categories/:id", categoryHandler.Get)
		protected.PUT("/categories/:id", categoryHandler.Update)
		protected.DELETE("/categories/:id", categoryHandler.Delete)
		protected.GET("/categories/:id/subcategories", categoryHandler.SubCategories)
		protected.GET("/payment-methods", categoryHandler.PaymentMethods)

		protected.GET("/transactions", transactionHandler.List)
		protected.POST("/transactions", transactionHandler.Create)
		protected.GET("/transactions/:id", transactionHandler.Get)
		protected.PUT("/transactions/:id", transactionHandler.Update)
		protected.DELETE("/transactions/:id", transactionHandler.Delete)
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[Startup] server stopped: %v", err)
	}
}
