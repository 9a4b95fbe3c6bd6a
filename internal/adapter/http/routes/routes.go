package routes

import (
	"os"
	"strconv"

	_ "propie_backend/docs" // swagger registration
	"propie_backend/internal/adapter/http/handlers"
	"propie_backend/internal/adapter/persistence/repository"
	"propie_backend/internal/infrastructure/database"
	"propie_backend/internal/infrastructure/payments"
	"propie_backend/internal/usecase"
	"propie_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
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
		logrus.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	claimRepo := repository.NewHTBClaimDynamoRepository(ddb)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	valuationRepo := repository.NewValuationDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	unitRepo := repository.NewUnitDynamoRepository(ddb)
	mortgageRepo := repository.NewMortgageApplicationDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logrus.Warnf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	claimUseCase := usecase.NewHTBClaimUseCase(claimRepo, paymentGateway)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo)
	valuationUseCase := usecase.NewValuationUseCase(valuationRepo, notificationRepo)
	webhookUseCase := usecase.NewPaymentWebhookUseCase(paymentRepo, unitRepo, claimRepo)
	mortgageUseCase := usecase.NewMortgageUseCase(mortgageRepo)
	propertyUseCase := usecase.NewPropertyUseCase(unitRepo)
	reportingUseCase := usecase.NewReportingUseCase(unitRepo, valuationRepo, transactionRepo)

	claimHandler := handlers.NewHTBClaimHandler(claimUseCase)
	transactionHandler := handlers.NewTransactionHandler(transactionUseCase)
	valuationHandler := handlers.NewValuationHandler(valuationUseCase)
	webhookHandler := handlers.NewPaymentWebhookHandler(webhookUseCase)
	mortgageHandler := handlers.NewMortgageHandler(mortgageUseCase)
	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	reportingHandler := handlers.NewReportingHandler(reportingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlatformRoutes(v1, claimHandler, transactionHandler, valuationHandler, webhookHandler, mortgageHandler, propertyHandler, reportingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
