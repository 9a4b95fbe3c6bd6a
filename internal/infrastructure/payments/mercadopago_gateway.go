package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"propie_backend/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway submits HTB drawdown payments through Mercado Pago.
//
// Mock mode (PAYMENT_GATEWAY_MOCK) approves every drawdown locally without
// touching the provider, which keeps local and CI environments credential
// free.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		logrus.Infof("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		logrus.Errorf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logrus.Errorf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	logrus.Infof("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) SubmitDrawdown(ctx context.Context, req interfaces.DrawdownRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		logrus.Infof("[payment][gateway] mock drawdown start claim_id=%s amount=%s", req.ClaimID, req.Amount)

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp := map[string]any{
			"id":                 id,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": req.ClaimID,
			"date_created":       now,
			"date_approved":      now,
		}

		b, err := json.Marshal(resp)
		if err != nil {
			logrus.Errorf("[payment][gateway] mock response marshal failed err=%v", err)
			return "", "", nil, err
		}

		logrus.Infof("[payment][gateway] mock drawdown success provider_payment_id=%s provider_status=approved", id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		logrus.Errorf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	logrus.Infof("[payment][gateway] drawdown start claim_id=%s amount=%s", req.ClaimID, req.Amount)

	mpReq := payment.Request{
		TransactionAmount: req.Amount.Amount.InexactFloat64(),
		Description:       req.Description,
		ExternalReference: req.ClaimID,
		Metadata: map[string]any{
			"claim_id": req.ClaimID,
			"buyer_id": req.BuyerID,
			"currency": req.Amount.Currency,
		},
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		logrus.Errorf("[payment][gateway] sdk create failed claim_id=%s err=%v", req.ClaimID, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logrus.Errorf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	logrus.Infof("[payment][gateway] drawdown success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
