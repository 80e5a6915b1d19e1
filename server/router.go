package server

import (
	"time"

	"creatorflow/infrastructure/configuration"
	"creatorflow/infrastructure/realtime"
	httpHandler "creatorflow/interfaces/http"
	"creatorflow/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultOrigin = "http://localhost:5173"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      httpHandler.IHealthHandler
	Auth        httpHandler.IAuthHandler
	Dashboard   httpHandler.IDashboardHandler
	Calendar    httpHandler.ICalendarHandler
	Connections httpHandler.IConnectionHandler
	Profile     httpHandler.IProfileHandler
	Rating      httpHandler.IRatingHandler
	Billing     httpHandler.IBillingHandler
	Clip        httpHandler.IClipHandler
}

func InitiateRouter(handlers Handlers, session middleware.SessionReader, hub *realtime.Hub) *gin.Engine {
	origins := configuration.C.App.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{defaultOrigin}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", handlers.Health.Healthz)

	router.GET("/auth/login", handlers.Auth.Login)
	router.GET("/auth/callback", handlers.Auth.Callback)

	// The event stream is open to the dashboard before login so it can
	// observe session.login.
	if hub != nil {
		router.GET("/api/events", hub.Serve)
	}

	api := router.Group("api")
	api.Use(middleware.RequireSession(session))

	api.GET("/me", handlers.Auth.Me)
	api.POST("/logout", handlers.Auth.Logout)
	api.GET("/dashboard", handlers.Dashboard.Summary)

	api.GET("/calendar", handlers.Calendar.GetCalendar)
	api.POST("/calendar/generate", handlers.Calendar.Generate)
	api.POST("/calendar/confirm", handlers.Calendar.ConfirmPlan)
	api.PUT("/content/:id", handlers.Calendar.SaveContent)
	api.POST("/content/:id/:action", handlers.Calendar.ApplyAction)

	api.GET("/connections", handlers.Connections.List)
	api.POST("/connections/:platform", handlers.Connections.Connect)
	api.DELETE("/connections/:platform", handlers.Connections.Disconnect)

	api.GET("/profile", handlers.Profile.GetProfile)
	api.POST("/profile", handlers.Profile.UpsertProfile)

	api.POST("/rate", handlers.Rating.RatePost)

	billing := api.Group("/billing")
	{
		billing.GET("/plans", handlers.Billing.Plans)
		billing.POST("/subscribe", handlers.Billing.Subscribe)
	}

	clip := api.Group("/clip")
	{
		clip.GET("/progress", handlers.Clip.Progress)
		clip.GET("/caption", handlers.Clip.Caption)
	}

	return router
}
