package entities

import "time"

// Quote is a user-submitted request for a product. Once approved it doubles as
// the order record, so it carries all three status dimensions.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Amount is product price times quantity, fixed when the quote is requested.
type Quote struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phonenumber"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"product"`
	Quantity    int       `json:"quantity"`
	Delivery    string    `json:"delivery,omitempty"`
	Message     string    `json:"message,omitempty"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Status         QuoteStatus    `json:"status"`
	TrackingStatus TrackingStatus `json:"trackingStatus"`
	PaymentStatus  PaymentStatus  `json:"paymentStatus"`
}

// StatusOf returns the current label of one status dimension.
func (q Quote) StatusOf(f StatusField) string {
	switch f {
	case FieldQuoteStatus:
		return string(q.Status)
	case FieldTrackingStatus:
		return string(q.TrackingStatus)
	case FieldPaymentStatus:
		return string(q.PaymentStatus)
	default:
		return ""
	}
}

// WithStatus returns a copy of q with one status dimension replaced.
func (q Quote) WithStatus(f StatusField, label string) Quote {
	switch f {
	case FieldQuoteStatus:
		q.Status = QuoteStatus(label)
	case FieldTrackingStatus:
		q.TrackingStatus = TrackingStatus(label)
	case FieldPaymentStatus:
		q.PaymentStatus = PaymentStatus(label)
	}
	return q
}

// Quotation is a quote joined with its most recent payment attempt.
type Quotation struct {
	Quote
	LatestPayment *BillingPayment `json:"latestPayment,omitempty"`
}
