package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/virally/virally-backend/internal/ai"
	"github.com/virally/virally-backend/internal/api/handlers"
	"github.com/virally/virally-backend/internal/api/middleware"
	"github.com/virally/virally-backend/internal/config"
	"github.com/virally/virally-backend/internal/cron"
	"github.com/virally/virally-backend/internal/db"
	"github.com/virally/virally-backend/internal/email"
	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/seed"
	"github.com/virally/virally-backend/internal/service"
	"github.com/virally/virally-backend/internal/socket"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("🔄 Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// ============================================
	// Initialize PostgreSQL
	// ============================================
	postgres, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
	}
	defer postgres.Close()

	repos := repository.NewRepositories(postgres.Pool)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without cache)", err)
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Println("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Initialize Email Service (optional)
	// ============================================
	var emailSvc *email.Service
	if cfg.SMTPHost != "" {
		emailSvc = email.NewService(&email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
			UseTLS:   cfg.SMTPUseTLS,
		})
		log.Println("📧 Email service initialized")
	} else {
		log.Println("⚠️  Email not configured (SMTP_HOST not set)")
	}

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	broadcaster := socket.NewBroadcaster(hub)
	wsHandler := socket.NewHandler(hub, cfg.JWTSecret)
	log.Println("🔌 WebSocket hub initialized")

	// ============================================
	// Initialize AI Assistant (optional)
	// ============================================
	var assistant service.Assistant
	if gemini := ai.NewGeminiAssistant(cfg.GeminiAPIKey, cfg.GeminiModel); gemini != nil {
		assistant = gemini
		log.Println("🤖 Gemini assistant initialized")
	} else {
		log.Println("⚠️  Assistant not configured (GEMINI_API_KEY not set)")
	}

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize All Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config:      cfg,
		Repos:       repos,
		EmailSvc:    emailSvc,
		Cache:       redisDB,
		Assistant:   assistant,
		Broadcaster: broadcaster,
	})
	log.Println("✨ All services initialized")

	h := handlers.NewHandlers(services)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(repos.InvitationRepo, repos.CalendarRepo, broadcaster)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"timestamp":  time.Now(),
			"database":   "connected",
			"cache":      cacheStatus(redisDB),
			"websocket":  "active",
			"ws_clients": hub.GetConnectedClientsCount(),
			"email":      emailStatus(emailSvc),
			"assistant":  assistantStatus(assistant),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (no auth required)
		// ============================================
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// WebSocket route
		api.GET("/ws", wsHandler.HandleWebSocket)

		// ============================================
		// Protected routes (require auth middleware)
		// ============================================
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(services.Auth))
		{
			// User routes
			users := protected.Group("/users")
			{
				users.GET("/me", h.User.Me)
				users.PUT("/me", h.User.UpdateMe)
			}

			// Workspace routes
			workspaces := protected.Group("/workspaces")
			{
				workspaces.GET("", h.Workspace.List)
				workspaces.POST("", h.Workspace.Create)
				workspaces.GET("/:id", h.Workspace.Get)
				workspaces.PUT("/:id", h.Workspace.Update)
				workspaces.DELETE("/:id", h.Workspace.Delete)

				// Members
				workspaces.GET("/:id/members", h.Workspace.ListMembers)
				workspaces.PUT("/:id/members/:userId", h.Workspace.UpdateMemberRole)
				workspaces.DELETE("/:id/members/:userId", h.Workspace.RemoveMember)

				// Invitations
				workspaces.POST("/:id/invitations", h.Invitation.Invite)
				workspaces.GET("/:id/invitations", h.Invitation.ListByWorkspace)

				// Calendar
				workspaces.GET("/:id/events", h.Calendar.List)
				workspaces.POST("/:id/events", h.Calendar.Create)

				// Ideas
				workspaces.GET("/:id/ideas", h.Idea.List)
				workspaces.POST("/:id/ideas", h.Idea.Create)

				// Scripts
				workspaces.GET("/:id/scripts", h.Script.List)
				workspaces.POST("/:id/scripts", h.Script.Create)

				// Analytics
				workspaces.GET("/:id/analytics", h.Analytics.List)
				workspaces.POST("/:id/analytics", h.Analytics.Create)
				workspaces.GET("/:id/analytics/summary", h.Analytics.Summary)

				// Chat
				workspaces.GET("/:id/chat", h.Chat.History)
				workspaces.POST("/:id/chat", h.Chat.Send)
				workspaces.DELETE("/:id/chat", h.Chat.Clear)
			}

			// Calendar event routes
			events := protected.Group("/events")
			{
				events.GET("/:eventId", h.Calendar.Get)
				events.PUT("/:eventId", h.Calendar.Update)
				events.DELETE("/:eventId", h.Calendar.Delete)
			}

			// Idea routes
			ideas := protected.Group("/ideas")
			{
				ideas.GET("/:ideaId", h.Idea.Get)
				ideas.PUT("/:ideaId", h.Idea.Update)
				ideas.DELETE("/:ideaId", h.Idea.Delete)
				ideas.POST("/:ideaId/promote", h.Idea.Promote)
			}

			// Script routes
			scripts := protected.Group("/scripts")
			{
				scripts.GET("/:scriptId", h.Script.Get)
				scripts.PUT("/:scriptId", h.Script.Update)
				scripts.DELETE("/:scriptId", h.Script.Delete)
			}

			// Analytics entry routes
			analytics := protected.Group("/analytics")
			{
				analytics.PUT("/:entryId", h.Analytics.Update)
				analytics.DELETE("/:entryId", h.Analytics.Delete)
			}

			// Invitation routes
			invitations := protected.Group("/invitations")
			{
				invitations.GET("/pending", h.Invitation.MyInvitations)
				invitations.POST("/accept/:token", h.Invitation.Accept)
				invitations.POST("/decline/:token", h.Invitation.Decline)
				invitations.DELETE("/:invitationId", h.Invitation.Cancel)
			}
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func cacheStatus(redisDB *db.RedisDB) string {
	if redisDB != nil {
		return "connected"
	}
	return "disabled"
}

func emailStatus(emailSvc *email.Service) string {
	if emailSvc != nil {
		return "configured"
	}
	return "disabled"
}

func assistantStatus(assistant service.Assistant) string {
	if assistant != nil {
		return "configured"
	}
	return "disabled"
}
