package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"quoteportal/internal/domain/entities"
)

// QuoteRequest is the user quote form.
type QuoteRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phonenumber"`
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
	Delivery  string `json:"delivery,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Validate applies the form rules; the first failing field is reported.
func (r QuoteRequest) Validate() error {
	form := entities.QuoteForm{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Delivery:  r.Delivery,
	}
	if err := form.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Payment is the latest payment attempt shown next to a quotation.
type Payment struct {
	ID             string                 `json:"id"`
	QuoteID        string                 `json:"quote_id"`
	Date           time.Time              `json:"date"`
	Status         entities.PaymentStatus `json:"status"`
	ProviderStatus string                 `json:"provider_status,omitempty"`
}

// Quotation is a quote row with its latest payment, if any.
type Quotation struct {
	entities.Quote
	LatestPayment *Payment `json:"latestPayment,omitempty"`
}

type quoteEnvelope struct {
	Quote entities.Quote `json:"quote"`
}

func (c *Client) RequestQuote(ctx context.Context, r QuoteRequest) (entities.Quote, error) {
	if err := r.Validate(); err != nil {
		return entities.Quote{}, err
	}
	var out quoteEnvelope
	if err := c.do(ctx, http.MethodPost, "requestquote", r, &out); err != nil {
		return entities.Quote{}, err
	}
	return out.Quote, nil
}

func (c *Client) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	var out struct {
		Quotes []entities.Quote `json:"quotes"`
	}
	if err := c.do(ctx, http.MethodGet, "requestquote-getitems", nil, &out); err != nil {
		return nil, err
	}
	return out.Quotes, nil
}

func (c *Client) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	if err := requireID(id); err != nil {
		return entities.Quote{}, err
	}
	var out quoteEnvelope
	if err := c.do(ctx, http.MethodGet, "requestquote-getitems/"+id, nil, &out); err != nil {
		return entities.Quote{}, err
	}
	return out.Quote, nil
}

func (c *Client) ListQuotations(ctx context.Context) ([]Quotation, error) {
	var out struct {
		Quotations []Quotation `json:"quotations"`
	}
	if err := c.do(ctx, http.MethodGet, "quotations", nil, &out); err != nil {
		return nil, err
	}
	return out.Quotations, nil
}

// statusRoutes maps each status field to its route and body key.
var statusRoutes = map[entities.StatusField]struct {
	path string
	key  string
}{
	entities.FieldQuoteStatus:    {path: "update-quote-status/", key: "status"},
	entities.FieldTrackingStatus: {path: "update-tracking-status/", key: "status"},
	entities.FieldPaymentStatus:  {path: "update-payment-status/", key: "paymentStatus"},
}

// UpdateStatus writes one status field of a quote. The label is checked
// against the field's enumeration before the request is sent.
func (c *Client) UpdateStatus(ctx context.Context, s Session, id string, field entities.StatusField, value string) (entities.Quote, error) {
	if err := s.requireAdmin(); err != nil {
		return entities.Quote{}, err
	}
	if err := requireID(id); err != nil {
		return entities.Quote{}, err
	}
	route, ok := statusRoutes[field]
	if !ok {
		return entities.Quote{}, fmt.Errorf("%w: status field %q", ErrInvalidInput, string(field))
	}
	if err := field.Validate(value); err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var out quoteEnvelope
	if err := c.do(ctx, http.MethodPut, route.path+id, map[string]string{route.key: value}, &out); err != nil {
		return entities.Quote{}, err
	}
	return out.Quote, nil
}

// Pay submits a gateway payment payload for a quote.
func (c *Client) Pay(ctx context.Context, quoteID string, payload json.RawMessage) (Payment, error) {
	if err := requireID(quoteID); err != nil {
		return Payment{}, err
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return Payment{}, fmt.Errorf("%w: payment payload is not valid json", ErrInvalidInput)
	}
	var out struct {
		Payment Payment `json:"payment"`
	}
	if err := c.do(ctx, http.MethodPost, "payments/"+quoteID, payload, &out); err != nil {
		return Payment{}, err
	}
	return out.Payment, nil
}

func (c *Client) LatestPayment(ctx context.Context, quoteID string) (Payment, error) {
	if err := requireID(quoteID); err != nil {
		return Payment{}, err
	}
	var out struct {
		Payment Payment `json:"payment"`
	}
	if err := c.do(ctx, http.MethodGet, "payments/"+quoteID, nil, &out); err != nil {
		return Payment{}, err
	}
	return out.Payment, nil
}

// StatusWriter binds s to the client's status routes for a Transitioner.
func (c *Client) StatusWriter(s Session) StatusWriter {
	return sessionWriter{c: c, s: s}
}

type sessionWriter struct {
	c *Client
	s Session
}

func (w sessionWriter) WriteStatus(ctx context.Context, id string, field entities.StatusField, value string) (entities.Quote, error) {
	return w.c.UpdateStatus(ctx, w.s, id, field, value)
}
