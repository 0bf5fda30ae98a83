package entities

import "testing"

func TestQuoteForm_Validate(t *testing.T) {
	valid := QuoteForm{Name: "Ana", Email: "ana@example.com", Phone: "9876543210", ProductID: "p-1", Quantity: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}

	withDate := valid
	withDate.Delivery = "2026-11-01"
	if err := withDate.Validate(); err != nil {
		t.Fatalf("expected delivery date to be accepted, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*QuoteForm)
		msg    string
	}{
		{"blank name", func(f *QuoteForm) { f.Name = "  " }, "name is required"},
		{"bad email", func(f *QuoteForm) { f.Email = "ana@" }, "enter a valid email"},
		{"short phone", func(f *QuoteForm) { f.Phone = "12345" }, "enter valid 10-digit number"},
		{"no product", func(f *QuoteForm) { f.ProductID = "" }, "please select a product"},
		{"zero quantity", func(f *QuoteForm) { f.Quantity = 0 }, "enter a valid quantity"},
		{"bad delivery", func(f *QuoteForm) { f.Delivery = "01/11/2026" }, "delivery must be YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)
			err := f.Validate()
			if err == nil || err.Error() != tc.msg {
				t.Fatalf("expected %q, got %v", tc.msg, err)
			}
		})
	}
}
