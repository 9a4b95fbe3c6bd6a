package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"propie_backend/internal/adapter/http/handlers/mocks"
	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "whsec_test"

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookRouter(h *PaymentWebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/webhook", h.HandleWebhook)
	r.GET("/v1/payments/:event_id", h.GetPayment)
	return r
}

func TestPaymentWebhookHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := []byte(`{"id":"evt-1","type":"payment_intent.succeeded","amount":{"amount":"5000","currency":"EUR"},"metadata":{"buyer_id":"buyer-1","property_id":"unit-1","payment_type":"booking_deposit"}}`)

	t.Run("valid signature and event", func(t *testing.T) {
		t.Setenv("PAYMENT_WEBHOOK_SECRET", testWebhookSecret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		uc.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event entities.PaymentEvent) error {
				if event.EventID != "evt-1" || event.Metadata.PaymentType != entities.PaymentTypeBookingDeposit {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(validBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(signatureHeader, sign(validBody, testWebhookSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("wrong signature", func(t *testing.T) {
		t.Setenv("PAYMENT_WEBHOOK_SECRET", testWebhookSecret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(validBody))
		req.Header.Set(signatureHeader, sign(validBody, "other-secret"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing signature header", func(t *testing.T) {
		t.Setenv("PAYMENT_WEBHOOK_SECRET", testWebhookSecret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(validBody))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("secret not configured rejects everything", func(t *testing.T) {
		t.Setenv("PAYMENT_WEBHOOK_SECRET", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(validBody))
		req.Header.Set(signatureHeader, sign(validBody, ""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("signed but malformed body", func(t *testing.T) {
		t.Setenv("PAYMENT_WEBHOOK_SECRET", testWebhookSecret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		body := []byte("{not-json")
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(body))
		req.Header.Set(signatureHeader, sign(body, testWebhookSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid event maps to 400", func(t *testing.T) {
		t.Setenv("PAYMENT_WEBHOOK_SECRET", testWebhookSecret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		uc.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any()).Return(usecase.ErrInvalidPaymentEvent)

		body := []byte(`{"id":"evt-1","type":"payment_intent.created"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(body))
		req.Header.Set(signatureHeader, sign(body, testWebhookSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("record write failure maps to 500 for provider retry", func(t *testing.T) {
		t.Setenv("PAYMENT_WEBHOOK_SECRET", testWebhookSecret)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		uc.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any()).Return(errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(validBody))
		req.Header.Set(signatureHeader, sign(validBody, testWebhookSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPaymentWebhookHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		uc.EXPECT().GetByEventID(gomock.Any(), "evt-1").Return(entities.Payment{
			EventID: "evt-1",
			Status:  entities.PaymentStatusCompleted,
			Amount:  entities.MustMonetaryAmount("5000", "EUR"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/evt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)
		r := newWebhookRouter(h)

		uc.EXPECT().GetByEventID(gomock.Any(), "evt-404").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/evt-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
