package routes

import (
	"quiroclinic-backend/internal/api/handlers"
	"quiroclinic-backend/internal/api/middleware"
	"quiroclinic-backend/internal/auth"
	"quiroclinic-backend/internal/config"
	"quiroclinic-backend/internal/database/models"
	"quiroclinic-backend/internal/repository"
	"quiroclinic-backend/internal/service"
	"quiroclinic-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, store storage.FileStore) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	measureRepo := repository.NewMeasureRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, userRepo, roleRepo, validator)
	userService := service.NewUserService(userRepo, roleRepo, validator)
	patientService := service.NewPatientService(patientRepo, measureRepo, store, validator)
	measureService := service.NewMeasureService(measureRepo, patientRepo, store, validator)
	dashboardService := service.NewDashboardService(patientRepo, measureRepo, userRepo)

	// Initialize auth service and middleware
	authService := auth.NewAuthService(cfg, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, organizationService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	patientHandler := handlers.NewPatientHandler(patientService)
	measureHandler := handlers.NewMeasureHandler(measureService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (public)
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Dashboard routes
		v1.GET("/dashboard", dashboardHandler.GetStats)

		// Organization routes (the caller's own organization only)
		organization := v1.Group("/organization")
		{
			organization.GET("", organizationHandler.GetCurrent)
			organization.PUT("", organizationHandler.Update)
		}

		// Patient routes
		patients := v1.Group("/patients")
		{
			patients.GET("", auth.RequirePermission(models.PermViewPatient), patientHandler.ListPatients)
			patients.POST("", auth.RequirePermission(models.PermCreatePatient), patientHandler.CreatePatient)
			patients.GET("/:id", auth.RequirePermission(models.PermViewPatient), patientHandler.GetPatient)
			patients.PUT("/:id", auth.RequirePermission(models.PermEditPatient), patientHandler.UpdatePatient)
			patients.DELETE("/:id", auth.RequirePatientDelete(), patientHandler.DeletePatient)
			patients.GET("/:id/measures", auth.RequirePermission(models.PermViewMeasure), patientHandler.GetPatientMeasures)
		}

		// Measure routes
		measures := v1.Group("/measures")
		{
			measures.GET("", auth.RequirePermission(models.PermViewMeasure), measureHandler.ListMeasures)
			measures.POST("", auth.RequirePermission(models.PermCreateMeasure), measureHandler.CreateMeasure)
			measures.GET("/:id", auth.RequirePermission(models.PermViewMeasure), measureHandler.GetMeasure)
			measures.PUT("/:id", auth.RequirePermission(models.PermEditMeasure), measureHandler.UpdateMeasure)
			measures.DELETE("/:id", auth.RequirePermission(models.PermDeleteMeasure), measureHandler.DeleteMeasure)
		}

		// User routes; the whole surface is gated by the create-user permission
		users := v1.Group("/users")
		users.Use(auth.RequirePermission(models.PermCreateUser))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
