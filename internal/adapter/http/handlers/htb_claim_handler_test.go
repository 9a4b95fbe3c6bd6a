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

func newHTBRouter(h *HTBClaimHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/htb/claims", h.CreateClaim)
	r.GET("/v1/htb/claims", h.ListClaims)
	r.GET("/v1/htb/claims/:id", h.GetClaim)
	r.PATCH("/v1/htb/claims/:id/status", h.UpdateStatus)
	r.POST("/v1/htb/claims/:id/drawdown", h.SubmitDrawdown)
	return r
}

func TestHTBClaimHandler_CreateClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/htb/claims", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/htb/claims", bytes.NewBufferString(`{"buyer_id":"buyer-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-decimal amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		body := `{"buyer_id":"buyer-1","property_id":"prop-1","requested_amount":{"amount":"lots","currency":"EUR"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/htb/claims", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		uc.EXPECT().CreateClaim(gomock.Any(), "buyer-1", "prop-1", entities.MustMonetaryAmount("30000", "EUR")).
			Return(entities.HTBClaim{ID: "claim-1", BuyerID: "buyer-1", PropertyID: "prop-1", Status: entities.HTBStatusInitiated}, nil)

		body := `{"buyer_id":"buyer-1","property_id":"prop-1","requested_amount":{"amount":"30000","currency":"EUR"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/htb/claims", bytes.NewBufferString(body))
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
		if resp["id"] != "claim-1" || resp["status"] != string(entities.HTBStatusInitiated) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestHTBClaimHandler_GetClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "claim-404").Return(entities.HTBClaim{}, usecase.ErrClaimNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/htb/claims/claim-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestHTBClaimHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.HTBStatusFundsReceived, "agent-1", "", gomock.Any()).
			Return(entities.HTBClaim{}, fmt.Errorf("%w: INITIATED -> FUNDS_RECEIVED", usecase.ErrInvalidClaimTransition))

		body := `{"new_status":"FUNDS_RECEIVED","actor_id":"agent-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/htb/claims/claim-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent modification maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.HTBStatusAccessCodeReceived, "agent-1", "", gomock.Any()).
			Return(entities.HTBClaim{}, usecase.ErrConcurrentModification)

		body := `{"new_status":"ACCESS_CODE_RECEIVED","actor_id":"agent-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/htb/claims/claim-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("transition changes carried through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "claim-1", entities.HTBStatusAccessCodeReceived, "agent-1", "code issued", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.HTBClaimStatus, _, _ string, changes entities.HTBTransitionChanges) (entities.HTBClaim, error) {
				if changes.AccessCode != "AC-123" {
					t.Fatalf("expected access code in changes, got %+v", changes)
				}
				return entities.HTBClaim{ID: "claim-1", Status: status, AccessCode: changes.AccessCode}, nil
			})

		body := `{"new_status":"ACCESS_CODE_RECEIVED","actor_id":"agent-1","note":"code issued","access_code":"AC-123"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/htb/claims/claim-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestHTBClaimHandler_SubmitDrawdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway unavailable maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		uc.EXPECT().SubmitFundsDrawdown(gomock.Any(), "claim-1", "agent-1").
			Return(entities.HTBClaim{}, usecase.ErrPaymentGatewayUnavailable)

		body := `{"actor_id":"agent-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/htb/claims/claim-1/drawdown", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("in-flight drawdown maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHTBClaimUseCase(ctrl)
		r := newHTBRouter(NewHTBClaimHandler(uc))

		uc.EXPECT().SubmitFundsDrawdown(gomock.Any(), "claim-1", "agent-1").
			Return(entities.HTBClaim{}, usecase.ErrDrawdownAlreadyInFlight)

		body := `{"actor_id":"agent-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/htb/claims/claim-1/drawdown", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
