package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "cv-builder/internal/adapter/http"
	repo "cv-builder/internal/adapter/repository"
	"cv-builder/internal/config"
	"cv-builder/internal/domain"
	"cv-builder/internal/infrastructure/migration"
	"cv-builder/internal/templates"
	"cv-builder/internal/usecase"
	"cv-builder/pkg/auth"
	infra "cv-builder/pkg/infrastructure"
	"cv-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

const tokenLifespan = 24 * time.Hour

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}
	log := logger.NewZapLogger(cfg.App.Env)
	defer log.Sync()

	registry := templates.Load(cfg.Templates.Dir, log)

	renderer, err := infra.NewRenderer(cfg.Render.Mode, cfg.Render.ChromePath, cfg.Render.Timeout)
	if err != nil {
		log.Fatal("invalid rasterizer", err)
	}
	log.Info("rasterizer selected", zap.String("mode", cfg.Render.Mode))

	var cvRepo domain.CVRepository
	if cfg.DB.DSN != "" {
		pool, err := infra.NewCVPool(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal("cannot connect to cv database", err)
		}
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool, log); err != nil {
			log.Fatal("migrations failed", err)
		}
		cvRepo = repo.NewCVRepo(pool, log)
	} else {
		log.Warn("CV_DATABASE_URL not set, storing CVs in memory")
		cvRepo = repo.NewMemoryCVRepo()
	}
	if cfg.Auth.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, /api/cvs will reject every request")
	}

	exporter := usecase.NewExporter(registry, renderer, log)
	cvs := usecase.NewCVService(cvRepo, exporter)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, tokenLifespan)

	app := fiber.New(fiber.Config{
		ErrorHandler: httpadapter.ErrorHandler(log),
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	h := httpadapter.NewHandler(exporter, registry, cvs, log, cfg.Render.Timeout)
	httpadapter.RegisterRoutes(app, h, jwtSvc)

	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Fatal("server failed", err)
		}
	}()
	log.Info("server started", zap.String("port", cfg.App.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("shutdown failed", err)
	}
}
