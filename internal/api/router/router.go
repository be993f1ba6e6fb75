package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openhire/jobboard-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "jobboard-api-service",
		})
	})

	jobHandler := handler.NewJobHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			// GET /api/v1/jobs/titles - Paginated keyword search over titles
			jobs.GET("/titles", jobHandler.GetTitles)

			// GET /api/v1/jobs/details/:id - Cached detail lookup
			jobs.GET("/details/:id", jobHandler.GetDetail)
		}
	}

	return r
}
