package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/asfiqazi/expense-tracker/internal/analytics"
	"github.com/asfiqazi/expense-tracker/internal/auth"
	"github.com/asfiqazi/expense-tracker/internal/category"
	"github.com/asfiqazi/expense-tracker/internal/config"
	"github.com/asfiqazi/expense-tracker/internal/expense"
	"github.com/asfiqazi/expense-tracker/internal/logger"
	"github.com/asfiqazi/expense-tracker/internal/reports"
	"github.com/asfiqazi/expense-tracker/internal/router"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(!cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("error building logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.DatabaseURL == "" {
		zlog.Fatal("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		zlog.Fatal("JWT_SECRET is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("error creating pgx pool", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		zlog.Fatal("error pinging database", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: router.ErrorHandler(zlog),
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger(zlog))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userStore := auth.NewPostgresUserStore(pool)
	authService := auth.NewService(userStore)
	authHandler := auth.NewHandler(authService, issuer)

	categoryStore := category.NewPostgresStore(pool)
	categoryHandler := category.NewHandler(categoryStore)

	expenseStore := expense.NewPostgresStore(pool)
	expenseHandler := expense.NewHandler(expenseStore, categoryStore)

	analyticsService := analytics.NewService(expenseStore)
	analyticsHandler := analytics.NewHandler(analyticsService)
	reportsHandler := reports.NewHandler(analyticsService, userStore)

	r := &router.Router{
		AuthHandler:      authHandler,
		CategoryHandler:  categoryHandler,
		ExpenseHandler:   expenseHandler,
		AnalyticsHandler: analyticsHandler,
		ReportsHandler:   reportsHandler,
		AuthMW:           auth.Middleware(issuer),
	}
	r.RegisterRoutes(app)

	zlog.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func requestLogger(zlog *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		zlog.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}
