package router

import (
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/handlers"
	"github.com/onegreenvn/lecture-post-backend/internal/middleware"
	"github.com/onegreenvn/lecture-post-backend/internal/services"
	"github.com/onegreenvn/lecture-post-backend/internal/services/auth"
	"github.com/onegreenvn/lecture-post-backend/internal/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the routes are built from. History may be nil.
type Dependencies struct {
	PostService   *services.PostService
	History       *services.HistoryService
	SSEHub        *services.SSEHub
	Sessions      *session.Store
	SessionTokens *auth.SessionTokenService
	AdminAPIKey   string
}

// SetupRouter configures the Gin router with the lecture post routes
func SetupRouter(deps Dependencies) *gin.Engine {
	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.HeaderSessionToken, middleware.HeaderSessionTokenExpiresAt},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	sessionTokenMiddleware := middleware.NewSessionTokenMiddleware(deps.SessionTokens, deps.Sessions)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(deps.AdminAPIKey)

	postHandler := handlers.NewPostHandler(deps.PostService, deps.SSEHub)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		api.POST("/generate", postHandler.GenerateOnce)
		api.POST("/sessions", postHandler.CreateSession)

		// Session routes
		me := api.Group("/sessions/me")
		me.Use(sessionTokenMiddleware.SessionTokenAuthMiddleware())
		{
			me.GET("", postHandler.GetSession)
			me.PUT("/info", postHandler.ReplaceInfo)
			me.PATCH("/info", postHandler.PatchInfo)
			me.POST("/generate", postHandler.Generate)
			me.POST("/regenerate", postHandler.Regenerate)
			me.POST("/copy/:block", postHandler.Copy)
			me.GET("/events", postHandler.StreamEvents)
		}

		// Admin routes
		if deps.History != nil {
			historyHandler := handlers.NewHistoryHandler(deps.History)
			admin := api.Group("/history")
			admin.Use(apiKeyMiddleware.APIKeyAuthMiddleware())
			{
				admin.GET("", historyHandler.ListHistory)
				admin.GET("/export", historyHandler.ExportHistory)
			}
		} else {
			logrus.Info("History routes disabled (no database configured)")
		}
	}

	return r
}
