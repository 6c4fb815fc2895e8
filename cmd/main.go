package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"notes-service/internal/config"
	"notes-service/internal/handlers"
	"notes-service/internal/logger"
	"notes-service/internal/repository"
	"notes-service/internal/services"
)

func main() {
	cfg := InitConfig()
	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal("Logger init failed: %v", err)
	}
	defer logger.Sync()

	db := ConnectDatabase(cfg)
	MigrateDatabase(db)

	repo := repository.NewProjectRepository(db)
	service := services.NewProjectService(repo)

	store := session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	app := NewApp(cfg, store)

	// Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h := handlers.NewProjectHandler(service, store)
	app.Get("/", h.Index)
	app.Post("/", h.Submit)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
		logger.Info("Defaulting to port %s", port)
	}
	logger.Info("Server listening on port %s", port)
	logger.Fatal("%v", app.Listen(":"+port))
}

// NewApp builds the Fiber app with the view engine and the middleware
// chain: request logging, the shared Basic credential, session-bound
// anti-forgery tokens. The metrics and health endpoints stay outside the
// credential check.
func NewApp(cfg *config.Config, store *session.Store) *fiber.App {
	engine := html.New("./views", ".html")
	engine.AddFunc("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(fiberlogger.New())

	app.Use(basicauth.New(basicauth.Config{
		Users: map[string]string{cfg.AuthUser: cfg.AuthPassword},
		Realm: cfg.AuthRealm,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "csrf_",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		KeyGenerator:   uuid.NewString,
		Session:        store,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusForbidden).SendString("Invalid anti-forgery token.")
		},
	}))

	return app
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	if err := config.MigrateDatabase(db); err != nil {
		logger.Fatal("Database migration failed: %v", err)
	}
}
