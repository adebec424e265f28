package router

import (
	"net/http"

	"gierkopolecacz/backend/internal/auth"
	"gierkopolecacz/backend/internal/handler"
	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/metrics"
	"gierkopolecacz/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup builds the gin engine with every route of the API.
func Setup(h *handler.Handler, users auth.UserGetter) *gin.Engine {
	validation.Setup()

	router := gin.New()
	router.Use(gin.Recovery(), logging.GinMiddleware(), metrics.GinMiddleware())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.RegisterUser)
			authRoutes.POST("/login", h.LoginUser)
		}

		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", h.GetMe)
		}

		// Catalog is public; a token adds the viewer's collection flags.
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.OptionalAuthMiddleware())
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/top", h.GetTopGames)
			gameRoutes.GET("/search", h.SearchGames)
			gameRoutes.GET("/tags", h.GetTags)
			gameRoutes.GET("/:id", h.GetGameByID)
		}

		selectedRoutes := apiV1.Group("/selected-games")
		selectedRoutes.Use(auth.AuthMiddleware())
		{
			selectedRoutes.GET("", h.GetSelectedGames)
			selectedRoutes.POST("/:id", h.AddSelectedGame)
			selectedRoutes.DELETE("/:id", h.RemoveSelectedGame)
		}

		ownedRoutes := apiV1.Group("/owned-games")
		ownedRoutes.Use(auth.AuthMiddleware())
		{
			ownedRoutes.GET("", h.GetOwnedGames)
			ownedRoutes.POST("/:id", h.AddOwnedGame)
			ownedRoutes.DELETE("/:id", h.RemoveOwnedGame)
		}

		recommendationRoutes := apiV1.Group("/recommendations")
		recommendationRoutes.Use(auth.AuthMiddleware())
		{
			recommendationRoutes.POST("", h.CreateRecommendation)
			recommendationRoutes.GET("", h.GetRecommendations)
			recommendationRoutes.GET("/:id", h.GetRecommendationByID)
			recommendationRoutes.GET("/:id/opinion", h.GetOpinion)
			recommendationRoutes.POST("/:id/opinion", h.CreateOpinion)
		}

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware(users))
		{
			adminRoutes.POST("/import", h.StartImport)
			adminRoutes.GET("/import", h.GetImportStatus)
			adminRoutes.GET("/import/events", h.StreamImportEvents)
		}
	}

	return router
}
