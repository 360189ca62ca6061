package api

import (
	"net/http"

	"github.com/alcyxob/fitness-ai/internal/metrics"
	"github.com/alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -destination=service_mocks_test.go -package=api_test github.com/alcyxob/fitness-ai/internal/service AuthService,WorkoutService,ReferenceService,ExportService,GenerationService

type RouteParams struct {
	AuthService      service.AuthService
	WorkoutService   service.WorkoutService
	ReferenceService service.ReferenceService
	// ExportService is nil when no bucket is configured; the export route is then not registered.
	ExportService service.ExportService
	// GenerationService is nil when the audit log is disabled.
	GenerationService service.GenerationService
	Google            GoogleTokenVerifier
	Strava            StravaCodeExchanger
	Metrics           *metrics.Manager
	// Registry serves /metrics when set.
	Registry *prometheus.Registry
}

// NewRouter builds the gin engine with the common middleware chain and all routes.
func NewRouter(params RouteParams) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), LogRequest())
	if params.Metrics != nil {
		router.Use(RequestMetrics(params.Metrics))
	}
	router.Use(PanicRecovery(params.Metrics), ErrorHandler())

	SetupRoutes(router, params)
	return router
}

func SetupRoutes(router *gin.Engine, params RouteParams) {
	authHandler := NewAuthHandler(params.AuthService, params.Google, params.Strava)
	referenceHandler := NewReferenceHandler(params.ReferenceService)
	workoutHandler := NewWorkoutHandler(params.WorkoutService, params.ExportService)

	authMiddleware := AuthMiddleware(params.AuthService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if params.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{})))
	}

	usersGroup := router.Group("/users")
	{
		usersGroup.POST("/register", authHandler.Register)
		usersGroup.POST("/login", authHandler.Login)
		usersGroup.POST("/google-login", authHandler.GoogleLogin)
		usersGroup.POST("/strava-login", authHandler.StravaLogin)
	}

	router.GET("/body-parts", referenceHandler.GetBodyParts)
	router.GET("/equipments", referenceHandler.GetEquipments)

	// --- Workout List Routes ---
	// every route is scoped to the lists of the authenticated user
	workoutGroup := router.Group("/workoutLists")
	workoutGroup.Use(authMiddleware)
	{
		workoutGroup.POST("", workoutHandler.CreateWorkoutList)
		workoutGroup.GET("", workoutHandler.GetWorkoutLists)
		workoutGroup.GET("/:id", workoutHandler.GetWorkoutList)
		workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkoutList)
		workoutGroup.PATCH("/:id/exercises/:exerciseId", workoutHandler.UpdateExercise)

		if params.ExportService != nil {
			workoutGroup.GET("/:id/export", workoutHandler.ExportWorkoutList)
		}
	}

	if params.GenerationService != nil {
		generationHandler := NewGenerationHandler(params.GenerationService)
		router.GET("/generations", authMiddleware, generationHandler.GetGenerations)
	}
}
