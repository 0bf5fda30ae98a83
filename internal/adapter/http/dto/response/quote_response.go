package response

import (
	"quoteportal/internal/domain/entities"
	"time"
)

type QuoteResponse struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phonenumber"`
	ProductID      string    `json:"productId"`
	Product        string    `json:"product"`
	Quantity       int       `json:"quantity"`
	Delivery       string    `json:"delivery,omitempty"`
	Message        string    `json:"message,omitempty"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	TrackingStatus string    `json:"trackingStatus"`
	PaymentStatus  string    `json:"paymentStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type QuoteEnvelope struct {
	Success bool          `json:"success"`
	Quote   QuoteResponse `json:"quote"`
}

type QuoteListEnvelope struct {
	Success bool            `json:"success"`
	Quotes  []QuoteResponse `json:"quotes"`
}

type QuotationResponse struct {
	QuoteResponse
	LatestPayment *BillingPaymentResponse `json:"latestPayment,omitempty"`
}

type QuotationListEnvelope struct {
	Success    bool                `json:"success"`
	Quotations []QuotationResponse `json:"quotations"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		Name:           q.Name,
		Email:          q.Email,
		PhoneNumber:    q.Phone,
		ProductID:      q.ProductID,
		Product:        q.ProductName,
		Quantity:       q.Quantity,
		Delivery:       q.Delivery,
		Message:        q.Message,
		Amount:         q.Amount,
		Status:         string(q.Status),
		TrackingStatus: string(q.TrackingStatus),
		PaymentStatus:  string(q.PaymentStatus),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromQuotations(rows []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(rows))
	for _, r := range rows {
		row := QuotationResponse{QuoteResponse: FromQuote(r.Quote)}
		if r.LatestPayment != nil {
			p := FromBillingPayment(*r.LatestPayment)
			row.LatestPayment = &p
		}
		out = append(out, row)
	}
	return out
}
