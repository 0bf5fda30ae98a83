package response

import (
	"quoteportal/internal/domain/entities"
	"time"
)

type BillingPaymentResponse struct {
	ID             string    `json:"id"`
	QuoteID        string    `json:"quote_id"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status,omitempty"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

type BillingPaymentEnvelope struct {
	Success bool                   `json:"success"`
	Payment BillingPaymentResponse `json:"payment"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		ID:             p.ID,
		QuoteID:        p.QuoteID,
		Date:           p.Date,
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayloadRaw:   string(p.MPPayloadRaw),
		MPPayload:      p.MPPayload,
	}
}
