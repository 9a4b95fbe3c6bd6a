package routes

import (
	"propie_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHTBClaims    = "/htb/claims"
	PathTransactions = "/transactions"
	PathValuations   = "/valuations"
	PathPayments     = "/payments"
	PathMortgages    = "/mortgage-applications"
	PathProperties   = "/properties"
	PathReports      = "/reports"
)

func addPlatformRoutes(
	rg *gin.RouterGroup,
	claimHandler *handlers.HTBClaimHandler,
	transactionHandler *handlers.TransactionHandler,
	valuationHandler *handlers.ValuationHandler,
	webhookHandler *handlers.PaymentWebhookHandler,
	mortgageHandler *handlers.MortgageHandler,
	propertyHandler *handlers.PropertyHandler,
	reportingHandler *handlers.ReportingHandler,
) {
	claims := rg.Group(PathHTBClaims)
	{
		claims.POST("", claimHandler.CreateClaim)
		claims.GET("", claimHandler.ListClaims)
		claims.GET("/:id", claimHandler.GetClaim)
		claims.PATCH("/:id/status", claimHandler.UpdateStatus)
		claims.POST("/:id/documents", claimHandler.AddDocument)
		claims.POST("/:id/notes", claimHandler.AddNote)
		claims.POST("/:id/drawdown", claimHandler.SubmitDrawdown)
	}

	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("", transactionHandler.CreateTransaction)
		transactions.GET("", transactionHandler.ListTransactions)
		transactions.GET("/:id", transactionHandler.GetTransaction)
		transactions.PATCH("/:id/status", transactionHandler.UpdateStatus)
	}

	valuations := rg.Group(PathValuations)
	{
		valuations.POST("", valuationHandler.SubmitValuation)
		valuations.GET("", valuationHandler.ListValuations)
		valuations.GET("/:id", valuationHandler.GetValuation)
		valuations.PATCH("/:id/review", valuationHandler.ReviewValuation)
		valuations.PATCH("/:id/paid", valuationHandler.MarkPaid)
	}

	paymentsGroup := rg.Group(PathPayments)
	{
		paymentsGroup.POST("/webhook", webhookHandler.HandleWebhook)
		paymentsGroup.GET("/:event_id", webhookHandler.GetPayment)
	}

	mortgages := rg.Group(PathMortgages)
	{
		mortgages.POST("", mortgageHandler.CreateApplication)
		mortgages.GET("", mortgageHandler.ListApplications)
		mortgages.GET("/:id", mortgageHandler.GetApplication)
	}

	properties := rg.Group(PathProperties)
	{
		properties.GET("", propertyHandler.SearchUnits)
		properties.GET("/:id", propertyHandler.GetUnit)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/developments/:id/sales", reportingHandler.DevelopmentSales)
		reports.GET("/projects/:id/valuations", reportingHandler.ProjectValuations)
		reports.GET("/transactions/funnel", reportingHandler.TransactionFunnel)
	}
}
