package interfaces

import (
	"context"
	"encoding/json"

	"propie_backend/internal/domain/entities"
)

// DrawdownRequest is the outbound payment submission for an HTB claim whose
// funds have been requested.

type DrawdownRequest struct {
	ClaimID     string
	BuyerID     string
	Amount      entities.MonetaryAmount
	Description string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The platform uses it to submit the HTB funds drawdown and keeps the
// provider response payload for traceability.
type IPaymentGateway interface {
	SubmitDrawdown(ctx context.Context, req DrawdownRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
