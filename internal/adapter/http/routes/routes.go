package routes

import (
	"log"
	"os"
	"strconv"

	_ "financiamento_xpto/docs" // This will be auto-generated
	"financiamento_xpto/internal/adapter/http/handlers"
	repository2 "financiamento_xpto/internal/adapter/persistence/repository"
	"financiamento_xpto/internal/infrastructure/cache"
	"financiamento_xpto/internal/infrastructure/database"
	"financiamento_xpto/internal/infrastructure/pricing"
	"financiamento_xpto/internal/usecase"
	"financiamento_xpto/internal/usecase/interfaces"

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

	simulationRepo := repository2.NewSimulationDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)

	var pricingCache interfaces.ICacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("[routes][setup] using redis pricing cache addr=%s", addr)
		pricingCache = cache.NewRedisCache(addr)
	} else {
		log.Printf("[routes][setup] REDIS_ADDR not set, using in-memory pricing cache")
		pricingCache = cache.NewMemoryCache()
	}

	pricingUseCase := usecase.NewPricingUseCase(pricing.NewFipeClient(), pricingCache)
	simulationUseCase := usecase.NewSimulationUseCase(simulationRepo)
	wizardUseCase := usecase.NewWizardUseCase(profileRepo, pricingUseCase, simulationUseCase, monthlyRateFromEnv())

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	catalogHandler := handlers.NewCatalogHandler(pricingUseCase)
	documentHandler := handlers.NewDocumentHandler()
	simulationHandler := handlers.NewSimulationHandler(simulationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSimulationRoutes(v1, wizardHandler, catalogHandler, documentHandler, simulationHandler)
}

func monthlyRateFromEnv() float64 {
	raw := os.Getenv("MONTHLY_RATE_PCT")
	if raw == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("[routes][setup] invalid MONTHLY_RATE_PCT=%q, falling back to default", raw)
		return 0
	}
	return rate
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
