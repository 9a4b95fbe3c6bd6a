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

// TransactionHandler handles HTTP requests for purchase transactions.

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// CreateTransaction godoc
// @Summary  Create a purchase transaction
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    transaction body request.CreateTransactionRequest true "transaction"
// @Success  201 {object} response.TransactionResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Warnf("[transaction][handler] create invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	price, err := req.AgreedPrice.ToMonetaryAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.usecase.CreateTransaction(c.Request.Context(), req.BuyerID, req.UnitID, price, req.MortgageRequired)
	if err != nil {
		logrus.Errorf("[transaction][handler] create failed buyer_id=%s err=%v", req.BuyerID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[transaction][handler] create success transaction_id=%s reference=%s", tx.ID, tx.ReferenceNumber)

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// GetTransaction godoc
// @Summary  Get a transaction by id
// @Tags     transactions
// @Produce  json
// @Param    id path string true "transaction id"
// @Success  200 {object} response.TransactionResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")

	tx, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListTransactions godoc
// @Summary  List transactions for a buyer
// @Tags     transactions
// @Produce  json
// @Param    buyer_id query string true "buyer id"
// @Success  200 {array} response.TransactionResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	buyerID := c.Query("buyer_id")

	txs, err := h.usecase.ListByBuyerID(c.Request.Context(), buyerID)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

// UpdateStatus godoc
// @Summary  Move a transaction along the purchase funnel
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    id path string true "transaction id"
// @Param    update body request.UpdateTransactionStatusRequest true "status update"
// @Success  200 {object} response.TransactionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /transactions/{id}/status [patch]
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req request.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Warnf("[transaction][handler] status invalid body transaction_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	changes, err := req.ToFinancialChanges()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid monetary amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.TransactionStatus(req.NewStatus), changes)
	if err != nil {
		logrus.Warnf("[transaction][handler] status update failed transaction_id=%s new_status=%s err=%v", id, req.NewStatus, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[transaction][handler] status update success transaction_id=%s status=%s stage=%s", tx.ID, tx.Status, tx.Stage)

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTxBuyerID),
		errors.Is(err, usecase.ErrInvalidTxUnitID),
		errors.Is(err, usecase.ErrInvalidAgreedPrice),
		errors.Is(err, usecase.ErrInvalidTxStatus),
		errors.Is(err, usecase.ErrInvalidFinancials),
		errors.Is(err, entities.ErrCurrencyMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTxTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Transaction was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
