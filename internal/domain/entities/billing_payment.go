package entities

import (
	"encoding/json"
	"time"
)

// BillingPayment is one payment attempt for a quote, processed by the payment gateway.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (quote_id-index): quote_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for audit.
//   - MPPayload is the parsed form of the same body.
type BillingPayment struct {
	ID             string        `json:"id"`
	QuoteID        string        `json:"quote_id"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`
	ProviderStatus string        `json:"provider_status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago payment status onto the
// portal payment vocabulary.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusPaid
	case "rejected", "cancelled":
		return PaymentStatusFailed
	case "refunded", "charged_back":
		return PaymentStatusRefunded
	case "pending", "in_process", "in_mediation":
		return PaymentStatusInProgress
	default:
		return PaymentStatusPending
	}
}
