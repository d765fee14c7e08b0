package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/smartdiet/smartdiet-backend/internal/handlers"
)

type RouterConfig struct {
	AllowOrigins          []string
	ProfileHandler        *handlers.ProfileHandler
	HistoryHandler        *handlers.HistoryHandler
	RecipeHandler         *handlers.RecipeHandler
	RecommendationHandler *handlers.RecommendationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Profile
		api.POST("/profile", cfg.ProfileHandler.SaveProfile)
		api.GET("/users/:userID/profile", cfg.ProfileHandler.GetProfile)
		api.DELETE("/users/:userID/profile", cfg.ProfileHandler.DeleteProfile)
		// Diet history
		api.POST("/history", cfg.HistoryHandler.LogEntry)
		api.GET("/users/:userID/history", cfg.HistoryHandler.ListHistory)
		api.GET("/users/:userID/history/count", cfg.HistoryHandler.CountHistory)
		api.PATCH("/history/:id", cfg.HistoryHandler.UpdateEntry)
		api.DELETE("/history/:id", cfg.HistoryHandler.DeleteEntry)
		// Recipes
		api.POST("/recipes", cfg.RecipeHandler.SaveRecipe)
		api.GET("/recipes", cfg.RecipeHandler.SearchRecipes)
		api.GET("/recipes/:id", cfg.RecipeHandler.GetRecipe)
		// Recommendations
		api.GET("/users/:userID/recommendations", cfg.RecommendationHandler.GetRecommendations)
		api.GET("/recommendations/:id", cfg.RecommendationHandler.GetRecommendationByID)
	}

	return router
}
