package main

import (
	"fmt"
	"os"

	"github.com/smartdiet/smartdiet-backend/internal/app"
	"github.com/smartdiet/smartdiet-backend/internal/catalog"
	"github.com/smartdiet/smartdiet-backend/internal/db"
	"github.com/smartdiet/smartdiet-backend/internal/handlers"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/server"
	"github.com/smartdiet/smartdiet-backend/internal/services"
)

func main() {
	// Config first; the logger's own settings come from it.
	cfg, err := app.LoadConfig(nil)
	if err != nil {
		fmt.Printf("Could not resolve data directory: %v\n", err)
		os.Exit(1)
	}

	// Logger
	log, err := logger.New(logger.Config{
		Mode:             cfg.LogMode,
		RedactionEnabled: cfg.LogRedactionEnabled,
		HashSalt:         cfg.LogHashSalt,
	})
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Resolved data directory", "data_dir", cfg.DataDir)

	// SQLite
	sqliteService, err := db.NewSQLiteService(cfg.DBPath, log)
	if err != nil {
		log.Fatal("SQLite init failed", "error", err)
	}
	if err = sqliteService.MigrateAll(); err != nil {
		log.Fatal("SQLite migration failed", "error", err)
	}
	theDB := sqliteService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	profileRepo := repos.NewHealthProfileRepo(theDB, log)
	historyRepo := repos.NewDietHistoryRepo(theDB, log)
	recipeRepo := repos.NewRecipeRepo(theDB, log)
	recRepo := repos.NewRecommendationRepo(theDB, log)

	// Recipe catalog
	catalogLoader := catalog.NewLoader(cfg.CatalogPath, log)

	// Services
	log.Info("Setting up Services from main...")
	profileService := services.NewProfileService(theDB, log, profileRepo, historyRepo, recRepo)
	historyService := services.NewHistoryService(theDB, log, historyRepo)
	recipeService := services.NewRecipeService(theDB, log, recipeRepo)
	recService := services.NewRecommendationService(theDB, log, profileRepo, recRepo, catalogLoader)

	// Handlers
	log.Info("Setting up handlers from main...")
	profileHandler := handlers.NewProfileHandler(profileService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	recHandler := handlers.NewRecommendationHandler(recService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AllowOrigins:          cfg.AllowOrigins,
		ProfileHandler:        profileHandler,
		HistoryHandler:        historyHandler,
		RecipeHandler:         recipeHandler,
		RecommendationHandler: recHandler,
	})

	fmt.Printf("Server listening on :%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
