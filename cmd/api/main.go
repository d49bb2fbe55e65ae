package main

import (
	"context"
	"log"

	"zysculpt/internal/auth"
	"zysculpt/internal/config"
	"zysculpt/internal/handler"
	"zysculpt/internal/llm"
	"zysculpt/internal/middleware"
	"zysculpt/internal/planner"
	"zysculpt/internal/profile"
	"zysculpt/internal/session"
	"zysculpt/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	auth.Init(cfg.JWTSecret)
	ctx := context.Background()

	var (
		sessionMirror session.Mirror
		profileMirror profile.Mirror
		users         handler.UserStore
	)
	if cfg.DBPath == "" {
		log.Println("main(): ZYSCULPT_DB not set, running local-only without cross-device sync")
		mem := storage.NewMemory()
		sessionMirror, profileMirror, users = mem, mem, mem
	} else {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			log.Fatal("main(): Failed to open database: ", err)
		}
		defer store.Close()
		sessionMirror, profileMirror, users = store, store, store
	}

	gateway, err := llm.NewGateway(ctx, cfg)
	if err != nil {
		log.Fatal("main(): Failed to create generation gateway: ", err)
	}

	speech, err := llm.NewSpeechClient(ctx, cfg.GoogleCredentials)
	if err != nil {
		log.Printf("main(): Speech synthesis unavailable: %v", err)
		speech = nil
	} else {
		defer speech.Close()
	}

	sessions := session.NewStore(sessionMirror)
	api := &handler.API{
		Sessions: sessions,
		Profiles: profile.NewStore(profileMirror),
		Gateway:  gateway,
		Speech:   speech,
		Tracker:  planner.NewTracker(sessions, gateway),
		Users:    users,
	}

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Invite-Code")
	router.Use(cors.New(corsConfig))

	router.POST("/signup", middleware.InviteCodeMiddleware(cfg.InviteCode), api.Signup)
	router.POST("/login", api.Login)

	protected := router.Group("/api", middleware.AuthMiddleware())
	{
		protected.GET("/sessions", api.ListSessions)
		protected.POST("/sessions", api.CreateSession)
		protected.PATCH("/sessions/:id", api.UpdateSession)
		protected.DELETE("/sessions/:id", api.DeleteSession)
		protected.POST("/sessions/:id/activate", api.ActivateSession)
		protected.POST("/sessions/:id/background", api.UploadBackground)

		protected.GET("/sessions/:id/export/docx", api.ExportDocx)
		protected.GET("/sessions/:id/export/html", api.ExportHTML)

		protected.GET("/sessions/:id/plan/tasks", api.TasksForDate)
		protected.POST("/sessions/:id/plan/tasks/:taskId/toggle", api.ToggleTask)
		protected.POST("/sessions/:id/plan/logs", api.LogDailyWin)

		protected.GET("/profile", api.GetProfile)
		protected.PATCH("/profile", api.UpdateProfile)

		protected.GET("/jobs", api.ListJobs)
		protected.POST("/jobs/:id/apply", api.ApplyToJob)

		generation := protected.Group("", middleware.GenerationRateLimiter())
		{
			generation.POST("/sessions/:id/finalize", api.FinalizeSession)
			generation.POST("/sessions/:id/plan", api.GeneratePlan)
			generation.POST("/speech", api.Synthesize)
		}
	}

	router.GET("/ws/chat", api.HandleChatConnection)

	log.Fatal(router.Run(":" + cfg.Port))
}
