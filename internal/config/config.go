package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port string

	// Catalog is read-only and committed with the deployment; the two
	// state files are writable and live outside the repo.
	CatalogFile          string
	IngredientsStateFile string
	OverridesFile        string

	TemplatesGlob string
	ImagesDir     string

	AdminPassword string
	SessionSecret string

	// When set, ingredient/override state moves from JSON files to Postgres.
	DatabaseURL string

	// R2 object storage for cocktail images. All five must be set to
	// switch away from the local images directory.
	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string
}

func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Port:                 getEnv("PORT", "5000"),
		CatalogFile:          getEnv("COCKTAILS_FILE", "cocktails.yaml"),
		IngredientsStateFile: getEnv("INGREDIENTS_STATE_FILE", "ingredients_state.json"),
		OverridesFile:        getEnv("COCKTAILS_OVERRIDES_FILE", "cocktails_overrides.json"),
		TemplatesGlob:        getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
		ImagesDir:            getEnv("IMAGES_DIR", "images"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "admin"),
		SessionSecret:        getEnv("SECRET_KEY", "dev-secret-key-change-in-production"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		R2Endpoint:           os.Getenv("R2_ENDPOINT"),
		R2AccessKey:          os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:          os.Getenv("R2_SECRET_KEY"),
		R2Bucket:             os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:      os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	if cfg.AdminPassword == "admin" {
		log.Warn().Msg("ADMIN_PASSWORD not set, using default")
	}
	if cfg.SessionSecret == "dev-secret-key-change-in-production" {
		log.Warn().Msg("SECRET_KEY not set, sessions use the dev secret")
	}

	return cfg
}

// UseR2 reports whether image storage should go through R2 instead of
// the local images directory.
func (c Config) UseR2() bool {
	return c.R2Endpoint != "" && c.R2AccessKey != "" && c.R2SecretKey != "" &&
		c.R2Bucket != "" && c.R2PublicBaseURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
