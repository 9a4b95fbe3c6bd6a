package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"propie_backend/internal/adapter/http/handlers/mocks"
	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newValuationRouter(h *ValuationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/valuations", h.SubmitValuation)
	r.GET("/v1/valuations", h.ListValuations)
	r.GET("/v1/valuations/:id", h.GetValuation)
	r.PATCH("/v1/valuations/:id/review", h.ReviewValuation)
	r.PATCH("/v1/valuations/:id/paid", h.MarkPaid)
	return r
}

func validValuationBody() string {
	return `{
		"project_id": "proj-1",
		"valuation_number": 1,
		"period_from": "2026-07-01T00:00:00Z",
		"period_to": "2026-07-31T00:00:00Z",
		"contractor_id": "contractor-1",
		"contractor_notes": "July works complete",
		"currency": "EUR",
		"retention_percentage": "5",
		"work_completed": [
			{"description": "Groundworks", "amount": {"amount": "250000", "currency": "EUR"}},
			{"description": "Superstructure", "amount": {"amount": "175000", "currency": "EUR"}}
		],
		"materials_on_site": [
			{"description": "Steel on site", "value": {"amount": "40000", "currency": "EUR"}}
		]
	}`
}

func TestValuationHandler_SubmitValuation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/valuations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-decimal retention percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		body := strings.Replace(validValuationBody(), `"retention_percentage": "5"`, `"retention_percentage": "five"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/v1/valuations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400 with field message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().SubmitValuation(gomock.Any(), gomock.Any()).
			Return(entities.ContractorValuation{}, fmt.Errorf("%w: retention_percentage must not be negative", usecase.ErrValuationValidation))

		req := httptest.NewRequest(http.MethodPost, "/v1/valuations", bytes.NewBufferString(validValuationBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "retention_percentage") {
			t.Fatalf("expected field name in body, got %s", w.Body.String())
		}
	})

	t.Run("duplicate valuation number maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().SubmitValuation(gomock.Any(), gomock.Any()).
			Return(entities.ContractorValuation{}, usecase.ErrValuationNumberTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/valuations", bytes.NewBufferString(validValuationBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().SubmitValuation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.ValuationSubmission) (entities.ContractorValuation, error) {
				if in.ProjectID != "proj-1" || in.ValuationNumber != 1 || in.ContractorID != "contractor-1" {
					t.Fatalf("unexpected submission: %+v", in)
				}
				if len(in.WorkCompleted) != 2 || len(in.MaterialsOnSite) != 1 {
					t.Fatalf("unexpected line items: %+v", in)
				}
				return entities.ContractorValuation{
					ID:              "val-1",
					ProjectID:       in.ProjectID,
					ValuationNumber: in.ValuationNumber,
					Status:          entities.ValuationStatusSubmitted,
					GrossValuation:  entities.MustMonetaryAmount("465000", "EUR"),
					RetentionAmount: entities.MustMonetaryAmount("23250", "EUR"),
					NetAmount:       entities.MustMonetaryAmount("441750", "EUR"),
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/valuations", bytes.NewBufferString(validValuationBody()))
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
		if resp["id"] != "val-1" || resp["status"] != string(entities.ValuationStatusSubmitted) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestValuationHandler_GetValuation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "val-404").Return(entities.ContractorValuation{}, usecase.ErrValuationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/valuations/val-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestValuationHandler_ReviewValuation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reviewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		body := `{"decision":"approve"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/valuations/val-1/review", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().ReviewValuation(gomock.Any(), "val-1", "approve", "qs-1", "all certified").
			Return(entities.ContractorValuation{ID: "val-1", Status: entities.ValuationStatusApproved}, nil)

		body := `{"decision":"approve","reviewer_id":"qs-1","comments":"all certified"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/valuations/val-1/review", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("not awaiting review maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().ReviewValuation(gomock.Any(), "val-1", "approve", "qs-1", "").
			Return(entities.ContractorValuation{}, usecase.ErrValuationNotSubmitted)

		body := `{"decision":"approve","reviewer_id":"qs-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/valuations/val-1/review", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("paid valuation maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().ReviewValuation(gomock.Any(), "val-1", "reject", "qs-1", "").
			Return(entities.ContractorValuation{}, usecase.ErrValuationImmutable)

		body := `{"decision":"reject","reviewer_id":"qs-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/valuations/val-1/review", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestValuationHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved valuation paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().MarkPaid(gomock.Any(), "val-1").
			Return(entities.ContractorValuation{ID: "val-1", Status: entities.ValuationStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/valuations/val-1/paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unapproved valuation maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValuationUseCase(ctrl)
		r := newValuationRouter(NewValuationHandler(uc))

		uc.EXPECT().MarkPaid(gomock.Any(), "val-1").
			Return(entities.ContractorValuation{}, usecase.ErrValuationNotApproved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/valuations/val-1/paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
