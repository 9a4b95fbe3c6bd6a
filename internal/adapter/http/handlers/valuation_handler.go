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

// ValuationHandler handles HTTP requests for contractor payment
// certificates.

type ValuationHandler struct {
	usecase usecase.IValuationUseCase
}

func NewValuationHandler(uc usecase.IValuationUseCase) *ValuationHandler {
	return &ValuationHandler{usecase: uc}
}

// SubmitValuation godoc
// @Summary  Submit a contractor valuation for QS review
// @Tags     valuations
// @Accept   json
// @Produce  json
// @Param    valuation body request.SubmitValuationRequest true "valuation"
// @Success  201 {object} response.ValuationResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /valuations [post]
func (h *ValuationHandler) SubmitValuation(c *gin.Context) {
	var req request.SubmitValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Warnf("[valuation][handler] submit invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	submission, err := req.ToSubmission()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	valuation, err := h.usecase.SubmitValuation(c.Request.Context(), submission)
	if err != nil {
		logrus.Warnf("[valuation][handler] submit failed project_id=%s number=%d err=%v", req.ProjectID, req.ValuationNumber, err)
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[valuation][handler] submit success valuation_id=%s project_id=%s number=%d", valuation.ID, valuation.ProjectID, valuation.ValuationNumber)

	c.JSON(http.StatusCreated, response.FromValuation(valuation))
}

// GetValuation godoc
// @Summary  Get a valuation by id
// @Tags     valuations
// @Produce  json
// @Param    id path string true "valuation id"
// @Success  200 {object} response.ValuationResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /valuations/{id} [get]
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	id := c.Param("id")

	valuation, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(valuation))
}

// ListValuations godoc
// @Summary  List valuations for a project
// @Tags     valuations
// @Produce  json
// @Param    project_id query string true "project id"
// @Success  200 {array} response.ValuationResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /valuations [get]
func (h *ValuationHandler) ListValuations(c *gin.Context) {
	projectID := c.Query("project_id")

	valuations, err := h.usecase.ListByProjectID(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromValuations(valuations))
}

// ReviewValuation godoc
// @Summary  Approve or reject a submitted valuation
// @Tags     valuations
// @Accept   json
// @Produce  json
// @Param    id path string true "valuation id"
// @Param    review body request.ReviewValuationRequest true "review"
// @Success  200 {object} response.ValuationResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /valuations/{id}/review [patch]
func (h *ValuationHandler) ReviewValuation(c *gin.Context) {
	id := c.Param("id")
	var req request.ReviewValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	valuation, err := h.usecase.ReviewValuation(c.Request.Context(), id, req.Decision, req.ReviewerID, req.Comments)
	if err != nil {
		logrus.Warnf("[valuation][handler] review failed valuation_id=%s decision=%s err=%v", id, req.Decision, err)
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[valuation][handler] review success valuation_id=%s status=%s", valuation.ID, valuation.Status)

	c.JSON(http.StatusOK, response.FromValuation(valuation))
}

// MarkPaid godoc
// @Summary  Mark an approved valuation as paid
// @Tags     valuations
// @Produce  json
// @Param    id path string true "valuation id"
// @Success  200 {object} response.ValuationResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /valuations/{id}/paid [patch]
func (h *ValuationHandler) MarkPaid(c *gin.Context) {
	id := c.Param("id")

	valuation, err := h.usecase.MarkPaid(c.Request.Context(), id)
	if err != nil {
		logrus.Warnf("[valuation][handler] mark-paid failed valuation_id=%s err=%v", id, err)
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[valuation][handler] mark-paid success valuation_id=%s", valuation.ID)

	c.JSON(http.StatusOK, response.FromValuation(valuation))
}

func mapValuationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValuationValidation),
		errors.Is(err, usecase.ErrInvalidReviewDecision),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, entities.ErrCurrencyMismatch):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValuationNotFound):
		return pkg.NewDomainErrorSimple("VALUATION_NOT_FOUND", "Valuation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValuationNumberTaken):
		return pkg.NewDomainErrorSimple("VALUATION_NUMBER_TAKEN", "Valuation number already used for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrValuationNotSubmitted):
		return pkg.NewDomainErrorSimple("VALUATION_NOT_SUBMITTED", "Valuation is not awaiting review", http.StatusConflict)
	case errors.Is(err, usecase.ErrValuationNotApproved):
		return pkg.NewDomainErrorSimple("VALUATION_NOT_APPROVED", "Valuation is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrValuationImmutable):
		return pkg.NewDomainErrorSimple("VALUATION_IMMUTABLE", "Paid valuations are immutable", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Valuation was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
