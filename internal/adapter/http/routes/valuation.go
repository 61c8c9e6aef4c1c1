package routes

import (
	"tradein_valuation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathValuations = "/valuations"
)

func addValuationRoutes(rg *gin.RouterGroup, valuationHandler *handlers.ValuationHandler) {
	valuations := rg.Group(PathValuations)
	{
		valuations.POST("/quote", valuationHandler.QuoteValuation)
		valuations.POST("", valuationHandler.SubmitValuation)
		valuations.GET("/:id", valuationHandler.GetValuation)
		valuations.PATCH("/:id/status", valuationHandler.UpdateStatus)
		valuations.PATCH("/:id/remarks", valuationHandler.UpdateRemarks)
	}
}
