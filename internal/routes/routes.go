package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matchmaker/internal/config"
	"matchmaker/internal/controllers"
)

// SetupRouter initializes all controllers and API routes
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	matchController := controllers.MatchController{DB: db}

	// Set up Gin router
	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	// Group API routes under /api/v1
	api := router.Group("/api/v1")
	{
		matches := api.Group("/matches")
		{
			// GET /api/v1/matches/years
			// Lists reporting years that have stored results
			matches.GET("/years", matchController.GetYears)

			// GET /api/v1/matches/:year
			// Retrieves stored match results for one year
			matches.GET("/:year", matchController.GetMatchesByYear)
		}
	}

	return router
}
