package request

import "encoding/json"

// BillingPaymentCreateRequest is the wrapped form of the payment route body.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. The route also accepts the gateway payload unwrapped.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
