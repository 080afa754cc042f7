package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "assettrack/docs" // This will be auto-generated
	"assettrack/internal/adapter/http/handlers"
	repository2 "assettrack/internal/adapter/persistence/repository"
	"assettrack/internal/infrastructure/database"
	"assettrack/internal/infrastructure/suggestion"
	"assettrack/internal/usecase"
	"assettrack/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	roomRepo := repository2.NewRoomDynamoRepository(ddb)
	assetRepo := repository2.NewAssetDynamoRepository(ddb)

	roomUseCase := usecase.NewRoomUseCase(roomRepo, assetRepo)
	assetUseCase := usecase.NewAssetUseCase(assetRepo, roomRepo)
	reportUseCase := usecase.NewReportUseCase(roomRepo, assetRepo)

	var gateway interfaces.ISuggestionGateway
	geminiGateway, err := suggestion.NewGeminiGateway(context.Background(), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		// Suggestions degrade to 503; the rest of the API keeps working.
		log.Printf("Suggestion gateway not configured: %v", err)
	} else {
		gateway = geminiGateway
	}

	suggestionUseCase := usecase.NewSuggestionUseCase(assetRepo, gateway)

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + strconv.Itoa(PORT)
	}

	roomHandler := handlers.NewRoomHandler(roomUseCase)
	assetHandler := handlers.NewAssetHandler(assetUseCase, baseURL)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInventoryRoutes(v1, roomHandler, assetHandler, suggestionHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
