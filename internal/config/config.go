package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"notes-service/internal/models"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort      string
	DBPath       string
	AuthUser     string
	AuthPassword string
	AuthRealm    string
	LogLevel     string
}

// LoadConfig loads configuration from a .env file (if present) and the
// environment. The shared Basic credential is injected here rather than
// baked into the code; startup refuses to proceed without it.
func LoadConfig() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:      os.Getenv("NOTES_PORT"),
		DBPath:       os.Getenv("NOTES_DB_PATH"),
		AuthUser:     os.Getenv("NOTES_AUTH_USER"),
		AuthPassword: os.Getenv("NOTES_AUTH_PASSWORD"),
		AuthRealm:    os.Getenv("NOTES_AUTH_REALM"),
		LogLevel:     os.Getenv("NOTES_LOG_LEVEL"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "notes.db"
	}
	if cfg.AuthRealm == "" {
		cfg.AuthRealm = "Project Notes"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AuthUser == "" || cfg.AuthPassword == "" {
		return nil, fmt.Errorf("auth configuration is incomplete: NOTES_AUTH_USER and NOTES_AUTH_PASSWORD are required")
	}
	return cfg, nil
}

// ConnectDatabase opens the embedded SQLite database file through GORM.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "could not open sqlite database")
	}
	return db, nil
}

// MigrateDatabase applies the schema idempotently at startup: AutoMigrate
// adds any missing columns and indexes without touching existing data.
// Older database files that still carry the boolean "paid" column are
// backfilled into pending_amount exactly once, at the moment the column
// first appears.
func MigrateDatabase(db *gorm.DB) error {
	m := db.Migrator()
	hadLegacyPaid := m.HasTable(&models.Project{}) &&
		m.HasColumn(&models.Project{}, "paid") &&
		!m.HasColumn(&models.Project{}, "pending_amount")

	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return pkgerrors.Wrap(err, "schema migration failed")
	}

	if hadLegacyPaid {
		err := db.Exec(
			"UPDATE projects SET pending_amount = CASE WHEN paid = 1 THEN 0 ELSE total_amount END",
		).Error
		if err != nil {
			return pkgerrors.Wrap(err, "legacy paid column backfill failed")
		}
	}
	return nil
}
