package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmaupu/cocktails/internal/auth"
	"github.com/nmaupu/cocktails/internal/catalog"
	"github.com/nmaupu/cocktails/internal/config"
	"github.com/nmaupu/cocktails/internal/db"
	"github.com/nmaupu/cocktails/internal/menu"
	"github.com/nmaupu/cocktails/internal/middleware"
	"github.com/nmaupu/cocktails/internal/state"
	"github.com/nmaupu/cocktails/internal/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	// ───────────────────────── CATALOG + STATE ─────────────────────────
	loader := catalog.NewLoader(cfg.CatalogFile)

	var store state.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Postgres connection failed")
		}
		defer pool.Close()
		store = state.NewPostgresStore(pool)
	} else {
		store = state.NewFileStore(cfg.IngredientsStateFile, cfg.OverridesFile)
	}

	// ───────────────────────── IMAGES ─────────────────────────
	var images storage.ImageStore
	if cfg.UseR2() {
		r2, err := storage.NewR2Store(ctx, storage.R2Config{
			Endpoint:  cfg.R2Endpoint,
			AccessKey: cfg.R2AccessKey,
			SecretKey: cfg.R2SecretKey,
			Bucket:    cfg.R2Bucket,
			BaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("R2 init failed")
		}
		images = r2
	} else {
		local, err := storage.NewLocalStore(cfg.ImagesDir)
		if err != nil {
			log.Fatal().Err(err).Msg("images directory init failed")
		}
		images = local
	}

	// ───────────────────────── SERVICES ─────────────────────────
	sessions := auth.NewSessions(cfg.SessionSecret)
	authService, err := auth.NewService(cfg.AdminPassword, sessions)
	if err != nil {
		log.Fatal().Err(err).Msg("auth init failed")
	}
	menuService := menu.NewService(loader, store)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	menuHandler := menu.NewHandler(menuService)
	imageHandler := storage.NewHandler(images)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// Pages
	r.GET("/", menuHandler.Index)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireSession(sessions))
	{
		admin.GET("", menuHandler.Admin)
	}

	// Public API
	r.GET("/api/state", menuHandler.State)
	r.GET("/api/cocktails/ordered", menuHandler.Ordered)
	r.GET("/api/cocktail/:name", menuHandler.Cocktail)
	r.POST("/api/set-language", menuHandler.SetLanguage)

	// Admin API
	adminAPI := r.Group("/api")
	adminAPI.Use(middleware.RequireSession(sessions))
	{
		adminAPI.POST("/toggle-ingredient", menuHandler.ToggleIngredient)
		adminAPI.POST("/toggle-cocktail", menuHandler.ToggleCocktail)
		adminAPI.POST("/upload-image", imageHandler.Upload)
	}

	// Images
	r.GET("/images/*filepath", images.ServeHandler())

	// Health
	r.GET("/health", menuHandler.Health)
	r.GET("/healthz", menuHandler.Health)

	log.Info().Str("port", cfg.Port).Msg("cocktail menu running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
