package main

import (
	"log"
	"os"

	"quiroclinic-backend/internal/api/routes"
	"quiroclinic-backend/internal/config"
	"quiroclinic-backend/internal/database"
	"quiroclinic-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "quiroclinic-backend/docs" // This is needed for swag
)

//	@title			QuiroClinic Backend API
//	@version		1.0
//	@description	Multi-tenant clinical records API for physiotherapy clinics: organizations, users with roles and permissions, patients and their measures.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Seed roles and permissions
	roleDefs, err := database.LoadRoleDefinitions(cfg.RolesFile)
	if err != nil {
		logrus.Fatal("Failed to load role definitions:", err)
	}
	if err := database.SeedRolesAndPermissions(db, roleDefs); err != nil {
		logrus.Fatal("Failed to seed roles and permissions:", err)
	}

	// Initialize measure image storage
	store, err := storage.NewLocalStore(cfg.StoragePath)
	if err != nil {
		logrus.Fatal("Failed to initialize file storage:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, store)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
