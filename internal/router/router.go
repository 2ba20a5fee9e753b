package router

import (
	"time"

	"github.com/Shattajit/Mini-CRM/internal/auth"
	"github.com/Shattajit/Mini-CRM/internal/filters"
	"github.com/Shattajit/Mini-CRM/internal/handlers"
	"github.com/Shattajit/Mini-CRM/internal/metrics"
	"github.com/Shattajit/Mini-CRM/internal/middleware"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Tokens         *auth.TokenIssuer
	AllowedOrigins []string
	// Clock defaults to time.Now.
	Clock filters.Clock
	// Location anchors calendar weeks and zone-less timestamps. Defaults to UTC.
	Location *time.Location
}

func NewRouter(deps Dependencies) *gin.Engine {
	handlers.RegisterValidation()

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	users := repository.NewGormUserRepository(deps.DB)

	authHandler := handlers.NewAuthHandler(users, deps.Tokens, logger)
	healthHandler := handlers.NewHealthHandler(deps.DB, logger)
	clientHandler := handlers.NewClientHandler(repository.NewGormClientRepository(deps.DB), logger)
	projectHandler := handlers.NewProjectHandler(repository.NewGormProjectRepository(deps.DB), deps.Location, logger)
	interactionHandler := handlers.NewInteractionHandler(repository.NewGormInteractionRepository(deps.DB), deps.Clock, deps.Location, logger)
	reminderHandler := handlers.NewReminderHandler(repository.NewGormReminderRepository(deps.DB), deps.Clock, deps.Location, logger)

	requireAuth := middleware.AuthMiddleware(deps.Tokens, users, logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.Metrics())

	if len(deps.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", requireAuth, authHandler.Me)

			clients := authGroup.Group("/clients", requireAuth)
			{
				clients.POST("", clientHandler.CreateClient)
				clients.GET("", clientHandler.ListClients)
				clients.PUT("/:id", clientHandler.UpdateClient)
				clients.DELETE("/:id", clientHandler.DeleteClient)
			}
		}

		projects := api.Group("/projects", requireAuth)
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		interactions := api.Group("/interactions", requireAuth)
		{
			interactions.POST("", interactionHandler.CreateInteraction)
			interactions.GET("", interactionHandler.ListInteractions)
			interactions.PUT("/:id", interactionHandler.UpdateInteraction)
			interactions.DELETE("/:id", interactionHandler.DeleteInteraction)
		}

		reminders := api.Group("/reminders", requireAuth)
		{
			reminders.POST("", reminderHandler.CreateReminder)
			reminders.GET("", reminderHandler.ListReminders)
			// Must stay ahead of /:id.
			reminders.GET("/due-this-week", reminderHandler.DueThisWeek)
			reminders.GET("/:id", reminderHandler.GetReminder)
			reminders.PUT("/:id", reminderHandler.UpdateReminder)
			reminders.DELETE("/:id", reminderHandler.DeleteReminder)
		}
	}

	return r
}
