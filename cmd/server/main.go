package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/todocore/todo-app/internal/config"
	"github.com/todocore/todo-app/internal/database"
	"github.com/todocore/todo-app/internal/handlers"
	"github.com/todocore/todo-app/internal/middleware"
	"github.com/todocore/todo-app/internal/services"
	"github.com/todocore/todo-app/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS for the frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Wire the task core
	taskStore := store.NewGormStore(database.GetDB())
	taskService := services.NewTaskService(taskStore, services.WebLimits())
	taskHandler := handlers.NewTaskHandler(taskService)

	verifier := middleware.NewTokenVerifier(cfg.JWTSecret)

	// Health check endpoint
	r.GET("/health", handlers.HealthCheck)

	// Task routes, scoped per user and protected by bearer auth
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(verifier))
	{
		user := api.Group("/:user_id")
		user.Use(middleware.RequireOwnUser())
		{
			user.GET("/tasks", taskHandler.ListTasks)
			user.POST("/tasks", taskHandler.CreateTask)
			user.GET("/tasks/:id", taskHandler.GetTask)
			user.PUT("/tasks/:id", taskHandler.UpdateTask)
			user.DELETE("/tasks/:id", taskHandler.DeleteTask)
			user.PATCH("/tasks/:id/complete", taskHandler.ToggleTask)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
