package handlers

import (
	"errors"
	"net/http"

	"propie_backend/internal/usecase"
	"propie_backend/pkg"

	"github.com/gin-gonic/gin"
)

// ReportingHandler serves the dashboard rollup endpoints.

type ReportingHandler struct {
	usecase usecase.IReportingUseCase
}

func NewReportingHandler(uc usecase.IReportingUseCase) *ReportingHandler {
	return &ReportingHandler{usecase: uc}
}

// DevelopmentSales godoc
// @Summary  Sales rollup for a development
// @Tags     reports
// @Produce  json
// @Param    id path string true "development id"
// @Success  200 {object} usecase.DevelopmentSalesSummary
// @Failure  400 {object} pkg.HTTPError
// @Router   /reports/developments/{id}/sales [get]
func (h *ReportingHandler) DevelopmentSales(c *gin.Context) {
	summary, err := h.usecase.DevelopmentSales(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ProjectValuations godoc
// @Summary  Certificate rollup for a project
// @Tags     reports
// @Produce  json
// @Param    id path string true "project id"
// @Success  200 {object} usecase.ProjectValuationSummary
// @Failure  400 {object} pkg.HTTPError
// @Router   /reports/projects/{id}/valuations [get]
func (h *ReportingHandler) ProjectValuations(c *gin.Context) {
	summary, err := h.usecase.ProjectValuations(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// TransactionFunnel godoc
// @Summary  Platform-wide purchase funnel
// @Tags     reports
// @Produce  json
// @Success  200 {object} usecase.TransactionFunnelSummary
// @Router   /reports/transactions/funnel [get]
func (h *ReportingHandler) TransactionFunnel(c *gin.Context) {
	summary, err := h.usecase.TransactionFunnel(c.Request.Context())
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func mapReportingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportScope):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid report scope", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
