package response

import (
	"encoding/json"
	"testing"
	"time"

	"quoteportal/internal/domain/entities"
)

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:             "pay-1",
		QuoteID:        "q-1",
		Date:           now,
		Status:         entities.PaymentStatusPaid,
		ProviderStatus: "approved",
		MPPayloadRaw:   raw,
		MPPayload:      payload,
	}

	res := FromBillingPayment(p)
	if res.ID != "pay-1" || res.QuoteID != "q-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "Paid" || res.ProviderStatus != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
