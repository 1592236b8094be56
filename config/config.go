package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"restaurant-booking-api/models"

	"github.com/caarlos0/env/v6"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port      string        `env:"PORT" envDefault:"8080"`
	GinMode   string        `env:"GIN_MODE"`
	DBPath    string        `env:"DB_PATH" envDefault:"restaurant.db"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"restaurant_booking_super_secret_2024"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	UploadDir string        `env:"UPLOAD_DIR" envDefault:"uploads"`

	// Emails granted the admin role at registration time. Changing the
	// list later does not promote accounts that already exist.
	AdminEmails []string `env:"ADMIN_EMAILS" envDefault:"admin@restaurant.local" envSeparator:","`
}

// Load reads the configuration from the environment, picking up a .env
// file first when one is present.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// IsAdminEmail reports whether the email is on the admin allow-list.
// Comparison is case-insensitive.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range c.AdminEmails {
		if strings.ToLower(strings.TrimSpace(admin)) == email {
			return true
		}
	}
	return false
}

// InitDB opens the sqlite database and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Rating{},
		&models.Booking{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return db, nil
}
