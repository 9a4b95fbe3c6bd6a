package handlers

import (
	"errors"
	"net/http"

	"propie_backend/internal/adapter/http/dto/request"
	response "propie_backend/internal/adapter/http/dto/response"
	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase"
	"propie_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MortgageHandler handles HTTP requests for mortgage applications.

type MortgageHandler struct {
	usecase usecase.IMortgageUseCase
}

func NewMortgageHandler(uc usecase.IMortgageUseCase) *MortgageHandler {
	return &MortgageHandler{usecase: uc}
}

// CreateApplication godoc
// @Summary  Create a mortgage application
// @Tags     mortgages
// @Accept   json
// @Produce  json
// @Param    application body request.CreateMortgageApplicationRequest true "application"
// @Success  201 {object} response.MortgageApplicationResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /mortgage-applications [post]
func (h *MortgageHandler) CreateApplication(c *gin.Context) {
	var req request.CreateMortgageApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	loan, err := req.LoanAmount.ToMonetaryAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	value, err := req.PropertyValue.ToMonetaryAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	app, err := h.usecase.CreateApplication(c.Request.Context(), req.BuyerID, req.TransactionID, req.Lender, loan, value, req.TermYears)
	if err != nil {
		logrus.Warnf("[mortgage][handler] create failed buyer_id=%s err=%v", req.BuyerID, err)
		appErr := mapMortgageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[mortgage][handler] create success application_id=%s ltv=%s", app.ID, app.LTV)

	c.JSON(http.StatusCreated, response.FromMortgageApplication(app))
}

// GetApplication godoc
// @Summary  Get a mortgage application by id
// @Tags     mortgages
// @Produce  json
// @Param    id path string true "application id"
// @Success  200 {object} response.MortgageApplicationResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /mortgage-applications/{id} [get]
func (h *MortgageHandler) GetApplication(c *gin.Context) {
	id := c.Param("id")

	app, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapMortgageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMortgageApplication(app))
}

// ListApplications godoc
// @Summary  List mortgage applications for a buyer
// @Tags     mortgages
// @Produce  json
// @Param    buyer_id query string true "buyer id"
// @Success  200 {array} response.MortgageApplicationResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /mortgage-applications [get]
func (h *MortgageHandler) ListApplications(c *gin.Context) {
	buyerID := c.Query("buyer_id")

	apps, err := h.usecase.ListByBuyerID(c.Request.Context(), buyerID)
	if err != nil {
		appErr := mapMortgageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMortgageApplications(apps))
}

func mapMortgageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMortgageInput), errors.Is(err, entities.ErrCurrencyMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMortgageAppNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Mortgage application not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
