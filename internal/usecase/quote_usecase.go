package usecase

import (
	"context"
	"errors"
	"fmt"
	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuoteInput = errors.New("invalid quote input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("status changed by another request")
)

// RequestQuoteCommand is what a user submits from the quote request form.
type RequestQuoteCommand struct {
	Name      string
	Email     string
	Phone     string
	ProductID string
	Quantity  int
	Delivery  string
	Message   string
}

// IQuoteUseCase exposes quote/order record operations.
//
// The three status fields are written independently:
//   - UpdateQuoteStatus follows the quote transition table (approve/reject/revoke/reconsider).
//   - UpdateTrackingStatus overwrites freely unless strict tracking is on.
//   - UpdatePaymentStatus accepts any payment label.

type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, cmd RequestQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id string, status string) (entities.Quote, error)
	UpdateTrackingStatus(ctx context.Context, id string, status string) (entities.Quote, error)
	UpdatePaymentStatus(ctx context.Context, id string, status string) (entities.Quote, error)
	ListQuotations(ctx context.Context) ([]entities.Quotation, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	productRepo interfaces.IProductRepository
	paymentRepo interfaces.IBillingPaymentRepository
	publisher   interfaces.IStatusPublisher

	strictTracking bool
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

type QuoteOption func(*QuoteUseCase)

// WithStrictTracking rejects tracking writes that skip or repeat a stage.
func WithStrictTracking(on bool) QuoteOption {
	return func(u *QuoteUseCase) { u.strictTracking = on }
}

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	productRepo interfaces.IProductRepository,
	paymentRepo interfaces.IBillingPaymentRepository,
	publisher interfaces.IStatusPublisher,
	opts ...QuoteOption,
) *QuoteUseCase {
	u := &QuoteUseCase{repo: repo, productRepo: productRepo, paymentRepo: paymentRepo, publisher: publisher}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *QuoteUseCase) RequestQuote(ctx context.Context, cmd RequestQuoteCommand) (entities.Quote, error) {
	cmd = normalizeQuoteCommand(cmd)
	if err := validateQuoteCommand(cmd); err != nil {
		return entities.Quote{}, err
	}

	product, err := u.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return entities.Quote{}, err
	}
	if product.ID == "" {
		return entities.Quote{}, ErrProductNotFound
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:             uuid.NewString(),
		Name:           cmd.Name,
		Email:          cmd.Email,
		Phone:          cmd.Phone,
		ProductID:      product.ID,
		ProductName:    product.Name,
		Quantity:       cmd.Quantity,
		Delivery:       cmd.Delivery,
		Message:        cmd.Message,
		Amount:         product.Price * float64(cmd.Quantity),
		Status:         entities.QuoteStatusPending,
		TrackingStatus: entities.TrackingStatusOrdered,
		PaymentStatus:  entities.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	zap.L().Named("quote").Info("quote requested",
		zap.String("quote_id", created.ID),
		zap.String("product_id", created.ProductID),
		zap.Int("quantity", created.Quantity))
	return created, nil
}

func normalizeQuoteCommand(cmd RequestQuoteCommand) RequestQuoteCommand {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	cmd.ProductID = strings.TrimSpace(cmd.ProductID)
	cmd.Delivery = strings.TrimSpace(cmd.Delivery)
	cmd.Message = strings.TrimSpace(cmd.Message)
	return cmd
}

func validateQuoteCommand(cmd RequestQuoteCommand) error {
	form := entities.QuoteForm{
		Name:      cmd.Name,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		ProductID: cmd.ProductID,
		Quantity:  cmd.Quantity,
		Delivery:  cmd.Delivery,
	}
	if err := form.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuoteInput, err)
	}
	return nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// List returns every quote, newest first.
func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (u *QuoteUseCase) UpdateQuoteStatus(ctx context.Context, id string, status string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.FieldQuoteStatus, status, func(from string) error {
		if !entities.QuoteStatus(from).CanTransitionTo(entities.QuoteStatus(status)) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, status)
		}
		return nil
	})
}

func (u *QuoteUseCase) UpdateTrackingStatus(ctx context.Context, id string, status string) (entities.Quote, error) {
	var check func(string) error
	if u.strictTracking {
		check = func(from string) error {
			if !entities.TrackingStatus(from).IsAdjacent(entities.TrackingStatus(status)) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, status)
			}
			return nil
		}
	}
	return u.updateStatus(ctx, id, entities.FieldTrackingStatus, status, check)
}

func (u *QuoteUseCase) UpdatePaymentStatus(ctx context.Context, id string, status string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.FieldPaymentStatus, status, nil)
}

func (u *QuoteUseCase) updateStatus(
	ctx context.Context,
	id string,
	field entities.StatusField,
	to string,
	check func(from string) error,
) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if err := field.Validate(to); err != nil {
		return entities.Quote{}, err
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	from := current.StatusOf(field)
	if from == to {
		return current, nil
	}
	if check != nil {
		if err := check(from); err != nil {
			return entities.Quote{}, err
		}
	}

	log := zap.L().Named("quote").With(
		zap.String("quote_id", id),
		zap.String("field", string(field)),
		zap.String("from", from),
		zap.String("to", to))

	updated, err := u.repo.UpdateStatus(ctx, id, field, from, to)
	if err != nil {
		log.Error("status write failed", zap.Error(err))
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		log.Warn("status write lost a race")
		return entities.Quote{}, ErrStatusConflict
	}
	log.Info("status changed")

	if u.publisher != nil {
		change := interfaces.StatusChange{QuoteID: id, Field: field, From: from, To: to}
		if err := u.publisher.PublishStatusChanged(ctx, change); err != nil {
			log.Warn("status event not published", zap.Error(err))
		}
	}
	return updated, nil
}

// ListQuotations joins every quote with its most recent payment attempt.
func (u *QuoteUseCase) ListQuotations(ctx context.Context) ([]entities.Quotation, error) {
	quotes, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	latest := map[string]entities.BillingPayment{}
	if u.paymentRepo != nil {
		payments, err := u.paymentRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			if cur, ok := latest[p.QuoteID]; !ok || p.Date.After(cur.Date) {
				latest[p.QuoteID] = p
			}
		}
	}

	out := make([]entities.Quotation, 0, len(quotes))
	for _, q := range quotes {
		row := entities.Quotation{Quote: q}
		if p, ok := latest[q.ID]; ok {
			row.LatestPayment = &p
		}
		out = append(out, row)
	}
	return out, nil
}
