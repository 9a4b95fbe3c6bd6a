package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"propie_backend/internal/adapter/http/handlers/mocks"
	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTransactionRouter(h *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/transactions", h.CreateTransaction)
	r.GET("/v1/transactions", h.ListTransactions)
	r.GET("/v1/transactions/:id", h.GetTransaction)
	r.PATCH("/v1/transactions/:id/status", h.UpdateStatus)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-decimal agreed price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		body := `{"buyer_id":"buyer-1","unit_id":"unit-1","agreed_price":{"amount":"a lot","currency":"EUR"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		uc.EXPECT().CreateTransaction(gomock.Any(), "buyer-1", "unit-1", entities.MustMonetaryAmount("350000", "EUR"), true).
			Return(entities.Transaction{
				ID:              "tx-1",
				ReferenceNumber: "TXN-20260828-0001",
				Status:          entities.TxStatusEnquiry,
				Stage:           entities.TxStageInitialEnquiry,
			}, nil)

		body := `{"buyer_id":"buyer-1","unit_id":"unit-1","agreed_price":{"amount":"350000","currency":"EUR"},"mortgage_required":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "tx-1" || resp["status"] != string(entities.TxStatusEnquiry) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "tx-404").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/tx-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "tx-1", entities.TxStatusCompleted, gomock.Any()).
			Return(entities.Transaction{}, fmt.Errorf("%w: ENQUIRY -> COMPLETED", usecase.ErrInvalidTxTransition))

		body := `{"new_status":"COMPLETED"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/transactions/tx-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid financials map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "tx-1", entities.TxStatusReserved, gomock.Any()).
			Return(entities.Transaction{}, usecase.ErrInvalidFinancials)

		body := `{"new_status":"RESERVED","deposit_paid":{"amount":"999999","currency":"EUR"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/transactions/tx-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("financial changes carried through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "tx-1", entities.TxStatusReserved, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.TransactionStatus, changes usecase.FinancialChanges) (entities.Transaction, error) {
				if changes.DepositPaid == nil || changes.DepositPaid.Amount.String() != "5000" {
					t.Fatalf("expected deposit in changes, got %+v", changes)
				}
				if changes.MortgageApproved == nil || !*changes.MortgageApproved {
					t.Fatalf("expected mortgage_approved in changes, got %+v", changes)
				}
				return entities.Transaction{ID: "tx-1", Status: status, Stage: status.Stage()}, nil
			})

		body := `{"new_status":"RESERVED","deposit_paid":{"amount":"5000","currency":"EUR"},"mortgage_approved":true}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/transactions/tx-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("concurrent modification maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := newTransactionRouter(NewTransactionHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "tx-1", entities.TxStatusOfferAccepted, gomock.Any()).
			Return(entities.Transaction{}, usecase.ErrConcurrentModification)

		body := `{"new_status":"OFFER_ACCEPTED"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/transactions/tx-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
