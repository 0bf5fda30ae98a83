package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase is the user-side "pay for my quote" flow.
//
// A processed payment is stored and its outcome is copied onto the quote's
// payment status.

type IBillingPaymentUseCase interface {
	Pay(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BillingPayment, error)
}

// paymentStatusWriter is the part of IQuoteUseCase the payment flow needs.
type paymentStatusWriter interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdatePaymentStatus(ctx context.Context, id string, status string) (entities.Quote, error)
}

type BillingPaymentUseCase struct {
	repo    interfaces.IBillingPaymentRepository
	quotes  paymentStatusWriter
	gateway interfaces.IPaymentGateway

	// sandboxPayerEmail fills payer.email when the caller sent no payer identity.
	sandboxPayerEmail string
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, quotes paymentStatusWriter, gateway interfaces.IPaymentGateway, sandboxPayerEmail string) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, quotes: quotes, gateway: gateway, sandboxPayerEmail: strings.TrimSpace(sandboxPayerEmail)}
}

func (u *BillingPaymentUseCase) Pay(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.BillingPayment{}, ErrInvalidQuoteID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	log := zap.L().Named("payment").With(zap.String("quote_id", quoteID))

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("payload rejected", zap.String("reason", "missing payment_method_id"))
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	u.ensurePayerDefaults(reqMap)
	if !hasPayer(reqMap) {
		log.Info("payload rejected", zap.String("reason", "missing payer"))
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quote %s - %s x%d", q.ID, q.ProductName, q.Quantity)
	}
	// The stored amount is the only trusted amount.
	reqMap["transaction_amount"] = q.Amount

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.BillingPayment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Warn("provider response not parsed", zap.Error(err))
		}
	}

	p := entities.BillingPayment{
		ID:             providerPaymentID,
		QuoteID:        q.ID,
		Date:           time.Now().UTC(),
		Status:         entities.PaymentStatusFromProvider(providerStatus),
		ProviderStatus: providerStatus,
		MPPayloadRaw:   providerResp,
		MPPayload:      parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment not stored", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}

	// The stored payment is authoritative; a failed status copy is visible in
	// quotations and is only logged here.
	if _, err := u.quotes.UpdatePaymentStatus(ctx, q.ID, string(created.Status)); err != nil {
		log.Warn("quote payment status not synced", zap.String("payment_id", created.ID), zap.Error(err))
	}

	log.Info("payment processed",
		zap.String("payment_id", created.ID),
		zap.String("provider_status", providerStatus),
		zap.String("status", string(created.Status)))
	return created, nil
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.sandboxPayerEmail != "" {
		payer["email"] = u.sandboxPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BillingPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}
