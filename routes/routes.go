package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salahezzat120/task-manager-pro/config"
	"github.com/salahezzat120/task-manager-pro/controllers"
	"github.com/salahezzat120/task-manager-pro/middleware"
)

func RegisterRoutes(r *gin.Engine, conf config.Config) {
	authController := controllers.AuthController{}
	taskController := controllers.TaskController{}
	userController := controllers.UserController{}
	webhookController := controllers.WebhookController{VerifyToken: conf.WhatsAppVerifyToken}

	// Public routes (no authentication)
	public := r.Group("/api")
	{
		auth := public.Group("/auth")
		auth.Use(middleware.RateLimit(10, time.Minute))
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)

		public.GET("/webhooks/whatsapp", webhookController.Verify)
		public.POST("/webhooks/whatsapp", webhookController.Receive)
	}

	// Authenticated routes
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/auth/me", authController.Me)

		private.GET("/tasks", taskController.Index)
		private.POST("/tasks", taskController.Store)
		private.GET("/tasks/stats", taskController.Stats)
		private.GET("/tasks/:id", taskController.Show)
		private.PUT("/tasks/:id", taskController.Update)
		private.DELETE("/tasks/:id", taskController.Destroy)
		private.POST("/tasks/:id/toggle-complete", taskController.ToggleComplete)

		private.GET("/users", userController.Index)
	}

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
