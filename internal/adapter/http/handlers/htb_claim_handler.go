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

// HTBClaimHandler handles HTTP requests for Help-to-Buy claims.

type HTBClaimHandler struct {
	usecase usecase.IHTBClaimUseCase
}

func NewHTBClaimHandler(uc usecase.IHTBClaimUseCase) *HTBClaimHandler {
	return &HTBClaimHandler{usecase: uc}
}

// CreateClaim godoc
// @Summary  Create a Help-to-Buy claim
// @Tags     htb
// @Accept   json
// @Produce  json
// @Param    claim body request.CreateHTBClaimRequest true "claim"
// @Success  201 {object} response.HTBClaimResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /htb/claims [post]
func (h *HTBClaimHandler) CreateClaim(c *gin.Context) {
	var req request.CreateHTBClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Warnf("[htb][handler] create invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	amount, err := req.RequestedAmount.ToMonetaryAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.CreateClaim(c.Request.Context(), req.BuyerID, req.PropertyID, amount)
	if err != nil {
		logrus.Errorf("[htb][handler] create failed buyer_id=%s err=%v", req.BuyerID, err)
		appErr := mapHTBClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[htb][handler] create success claim_id=%s buyer_id=%s", claim.ID, claim.BuyerID)

	c.JSON(http.StatusCreated, response.FromHTBClaim(claim))
}

// GetClaim godoc
// @Summary  Get a claim by id
// @Tags     htb
// @Produce  json
// @Param    id path string true "claim id"
// @Success  200 {object} response.HTBClaimResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /htb/claims/{id} [get]
func (h *HTBClaimHandler) GetClaim(c *gin.Context) {
	id := c.Param("id")

	claim, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapHTBClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHTBClaim(claim))
}

// ListClaims godoc
// @Summary  List claims for a buyer
// @Tags     htb
// @Produce  json
// @Param    buyer_id query string true "buyer id"
// @Success  200 {array} response.HTBClaimResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /htb/claims [get]
func (h *HTBClaimHandler) ListClaims(c *gin.Context) {
	buyerID := c.Query("buyer_id")

	claims, err := h.usecase.ListByBuyerID(c.Request.Context(), buyerID)
	if err != nil {
		appErr := mapHTBClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHTBClaims(claims))
}

// UpdateStatus godoc
// @Summary  Transition a claim to a new status
// @Tags     htb
// @Accept   json
// @Produce  json
// @Param    id path string true "claim id"
// @Param    update body request.UpdateHTBClaimStatusRequest true "transition"
// @Success  200 {object} response.HTBClaimResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /htb/claims/{id}/status [patch]
func (h *HTBClaimHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req request.UpdateHTBClaimStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Warnf("[htb][handler] status invalid body claim_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	changes, err := req.ToTransitionChanges()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.HTBClaimStatus(req.NewStatus), req.ActorID, req.Note, changes)
	if err != nil {
		logrus.Warnf("[htb][handler] status update failed claim_id=%s new_status=%s err=%v", id, req.NewStatus, err)
		appErr := mapHTBClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[htb][handler] status update success claim_id=%s status=%s", claim.ID, claim.Status)

	c.JSON(http.StatusOK, response.FromHTBClaim(claim))
}

// AddDocument godoc
// @Summary  Attach a document to a claim
// @Tags     htb
// @Accept   json
// @Produce  json
// @Param    id path string true "claim id"
// @Param    document body request.AddHTBDocumentRequest true "document"
// @Success  200 {object} response.HTBClaimResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /htb/claims/{id}/documents [post]
func (h *HTBClaimHandler) AddDocument(c *gin.Context) {
	id := c.Param("id")
	var req request.AddHTBDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.AddDocument(c.Request.Context(), id, req.URL, req.Name, req.Type, req.UploadedBy)
	if err != nil {
		appErr := mapHTBClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHTBClaim(claim))
}

// AddNote godoc
// @Summary  Add a note to a claim
// @Tags     htb
// @Accept   json
// @Produce  json
// @Param    id path string true "claim id"
// @Param    note body request.AddHTBNoteRequest true "note"
// @Success  200 {object} response.HTBClaimResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /htb/claims/{id}/notes [post]
func (h *HTBClaimHandler) AddNote(c *gin.Context) {
	id := c.Param("id")
	var req request.AddHTBNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.AddNote(c.Request.Context(), id, req.Content, req.Private, req.AuthorID)
	if err != nil {
		appErr := mapHTBClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHTBClaim(claim))
}

// SubmitDrawdown godoc
// @Summary  Submit the HTB funds drawdown to the payment provider
// @Tags     htb
// @Accept   json
// @Produce  json
// @Param    id path string true "claim id"
// @Param    drawdown body request.SubmitHTBDrawdownRequest true "drawdown"
// @Success  200 {object} response.HTBClaimResponse
// @Failure  409 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /htb/claims/{id}/drawdown [post]
func (h *HTBClaimHandler) SubmitDrawdown(c *gin.Context) {
	id := c.Param("id")
	var req request.SubmitHTBDrawdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[htb][handler] drawdown start claim_id=%s actor_id=%s", id, req.ActorID)

	claim, err := h.usecase.SubmitFundsDrawdown(c.Request.Context(), id, req.ActorID)
	if err != nil {
		logrus.Errorf("[htb][handler] drawdown failed claim_id=%s err=%v", id, err)
		appErr := mapHTBClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[htb][handler] drawdown submitted claim_id=%s funds_payment_status=%s", claim.ID, claim.FundsPaymentStatus)

	c.JSON(http.StatusOK, response.FromHTBClaim(claim))
}

func mapHTBClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimBuyerID),
		errors.Is(err, usecase.ErrInvalidClaimPropertyID),
		errors.Is(err, usecase.ErrInvalidRequestedAmount),
		errors.Is(err, usecase.ErrInvalidClaimStatus),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrReasonNoteRequired),
		errors.Is(err, entities.ErrCurrencyMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidClaimTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Claim was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrDrawdownNotAllowed):
		return pkg.NewDomainErrorSimple("DRAWDOWN_NOT_ALLOWED", "Drawdown requires FUNDS_REQUESTED status", http.StatusConflict)
	case errors.Is(err, usecase.ErrDrawdownAlreadyInFlight):
		return pkg.NewDomainErrorSimple("DRAWDOWN_IN_FLIGHT", "A drawdown is already being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
