package app

import (
	"cricwordle_backend/internal/middleware"
	"cricwordle_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/categories", c.leaderboard.GetCategories)
		public.GET("/leaderboard", c.leaderboard.GetLeaderboard)
	}

	// Puzzle routes allow guests; a valid token attaches ownership.
	puzzle := router.Group("/api/puzzle")
	puzzle.Use(middleware.TryAuthMiddleware(a.Config))
	{
		puzzle.POST("/init", c.puzzle.Init)
		puzzle.POST("/guess", c.puzzle.Guess)
		puzzle.POST("/finish", c.puzzle.Finish)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(a.Config))
	{
		authorized.GET("/profile/me", c.leaderboard.GetProfile)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(a.Config), middleware.AdminMiddleware())
	{
		admin.POST("/words/seed", c.admin.SeedWords)
		admin.GET("/words/categories", c.admin.ListCategories)
		admin.GET("/words/category/:category", c.admin.ListCategoryWords)
		admin.DELETE("/words/category/:category", c.admin.DeleteCategory)
	}
}
