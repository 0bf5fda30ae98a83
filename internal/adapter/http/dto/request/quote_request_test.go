package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	cases := map[string]int{
		`{"quantity":3}`:     3,
		`{"quantity":"12"}`:  12,
		`{"quantity":" 4 "}`: 4,
		`{"quantity":""}`:    0,
		`{"quantity":null}`:  0,
		`{}`:                 0,
	}
	for body, want := range cases {
		var r QuoteRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("%s: unexpected error %v", body, err)
		}
		if int(r.Quantity) != want {
			t.Fatalf("%s: expected %d, got %d", body, want, r.Quantity)
		}
	}

	var r QuoteRequest
	err := json.Unmarshal([]byte(`{"quantity":"two"}`), &r)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestQuoteRequest_ToCommand(t *testing.T) {
	r := QuoteRequest{
		Name:        "Ana",
		Email:       "ana@example.com",
		PhoneNumber: "9876543210",
		Product:     "p-1",
		Quantity:    2,
		Delivery:    "2026-11-01",
	}
	cmd := r.ToCommand()
	if cmd.Phone != "9876543210" || cmd.ProductID != "p-1" || cmd.Quantity != 2 {
		t.Fatalf("unexpected command %+v", cmd)
	}
}
