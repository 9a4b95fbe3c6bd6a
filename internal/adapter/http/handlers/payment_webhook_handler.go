package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	response "propie_backend/internal/adapter/http/dto/response"
	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase"
	"propie_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Payment-Signature"

// PaymentWebhookHandler receives payment-provider event deliveries.
//
// Response contract, tuned to at-least-once provider retries:
//   - bad signature or malformed body: 400, provider gives up
//   - event recorded (first time or replay): 200
//   - failed to record the event: 500, provider retries and the conditional
//     put keeps the retry from double-applying

type PaymentWebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
	secret  func() string
}

func NewPaymentWebhookHandler(uc usecase.IPaymentWebhookUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		usecase: uc,
		secret:  func() string { return os.Getenv("PAYMENT_WEBHOOK_SECRET") },
	}
}

// HandleWebhook godoc
// @Summary  Receive a payment provider event
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Payment-Signature header string true "hex HMAC-SHA256 of the body"
// @Success  200 {object} response.WebhookAckResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /payments/webhook [post]
func (h *PaymentWebhookHandler) HandleWebhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !h.verifySignature(raw, c.GetHeader(signatureHeader)) {
		logrus.Warnf("[payment][handler] webhook signature rejected len=%d", len(raw))
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var event entities.PaymentEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		logrus.Warnf("[payment][handler] webhook body unmarshal failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.HandlePaymentEvent(c.Request.Context(), event); err != nil {
		if errors.Is(err, usecase.ErrInvalidPaymentEvent) {
			appErr := pkg.NewDomainErrorSimple("INVALID_EVENT", "Invalid payment event", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		logrus.Errorf("[payment][handler] webhook processing failed event_id=%s err=%v", event.EventID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}

// GetPayment godoc
// @Summary  Get a recorded payment by provider event id
// @Tags     payments
// @Produce  json
// @Param    event_id path string true "provider event id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{event_id} [get]
func (h *PaymentWebhookHandler) GetPayment(c *gin.Context) {
	eventID := c.Param("event_id")

	p, err := h.usecase.GetByEventID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentWebhookHandler) verifySignature(body []byte, got string) bool {
	secret := h.secret()
	if secret == "" || got == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(want), []byte(got))
}
