package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stockfolio/internal/auth"
	"stockfolio/internal/cache"
	"stockfolio/internal/config"
	"stockfolio/internal/db"
	"stockfolio/internal/handler"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
	"stockfolio/internal/router"
	"stockfolio/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Portfolio{},
			&model.Comment{},
			&model.Stock{},
			&model.Role{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Stock{},
		&model.Comment{},
		&model.Portfolio{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := db.SeedRoles(gormDB); err != nil {
		log.Fatalf("seed roles: %v", err)
	}

	stockCache := cache.NewStockCache(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	stockRepo := repository.NewStockRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	portfolioRepo := repository.NewPortfolioRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	stockService := service.NewStockService(stockRepo, stockCache)
	commentService := service.NewCommentService(commentRepo, stockRepo, userRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo, stockRepo, userRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(authService)
	stockHandler := handler.NewStockHandler(stockService)
	commentHandler := handler.NewCommentHandler(commentService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)

	// Register routes
	router.Register(
		e,
		jwtService,
		accountHandler,
		stockHandler,
		commentHandler,
		portfolioHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
