package routes

import (
	"log"
	"os"

	_ "autocare/docs" // This will be auto-generated
	"autocare/internal/adapter/http/handlers"
	"autocare/internal/adapter/persistence/repository"
	"autocare/internal/infrastructure/database"
	"autocare/internal/infrastructure/messaging"
	"autocare/internal/infrastructure/scheduler"
	"autocare/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	userRepo := repository.NewUserDynamoRepository(ddb)

	analytics := usecase.NewAnalyticsUseCase(userRepo)
	export := usecase.NewExportUseCase(userRepo)
	coordinator := usecase.NewSessionCoordinator(userRepo, usecase.NewFlowEngine(), analytics, export, logger)

	// Reminders need an outbound channel; without one the service still
	// answers updates, it just never pings users on its own.
	if messenger, err := messaging.NewHTTPMessenger(); err != nil {
		logger.Warn("outbound messenger not configured, reminders disabled", zap.Error(err))
	} else {
		reminders := usecase.NewReminderUseCase(userRepo, messenger, logger)
		sched, err := scheduler.NewReminderScheduler(reminders, logger)
		if err != nil {
			logger.Error("failed to configure reminder scheduler", zap.Error(err))
		} else {
			sched.Start()
		}
	}

	botHandler := handlers.NewBotHandler(coordinator)
	statsHandler := handlers.NewStatsHandler(analytics, export)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBotRoutes(v1, botHandler)
	addStatsRoutes(v1, statsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
