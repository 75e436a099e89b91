package routes

import (
	"log"
	"os"

	_ "client_portal/docs" // This will be auto-generated
	"client_portal/internal/adapter/http/handlers"
	"client_portal/internal/adapter/http/middleware"
	repository2 "client_portal/internal/adapter/persistence/repository"
	"client_portal/internal/infrastructure/auth"
	"client_portal/internal/infrastructure/database"
	"client_portal/internal/infrastructure/storage"
	"client_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8000"

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
	ddb := database.ConnectDynamoDB()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	ticketRepo := repository2.NewSupportTicketDynamoRepository(ddb)
	profileRepo := repository2.NewClientProfileDynamoRepository(ddb)
	revokedRepo := repository2.NewRevokedTokenDynamoRepository(ddb)

	verifier, err := auth.NewJWTVerifier(os.Getenv("AUTH_JWT_SECRET"), revokedRepo)
	if err != nil {
		log.Fatalf("Failed to configure token verification: %v", err)
	}

	fileStore := storage.ConnectS3()

	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, leadRepo)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, fileStore)
	supportUseCase := usecase.NewSupportTicketUseCase(ticketRepo)
	profileUseCase := usecase.NewClientProfileUseCase(profileRepo)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	supportHandler := handlers.NewSupportHandler(supportUseCase)
	clientHandler := handlers.NewClientHandler(profileUseCase)

	addHealthRoutes(&router.RouterGroup)

	api := router.Group("/api")
	api.Use(middleware.RequireAuth(verifier))
	addPortalRoutes(api, leadHandler, appointmentHandler, proposalHandler, supportHandler, clientHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
