package portal

import (
	"context"
	"errors"
	"fmt"

	"quoteportal/internal/domain/entities"

	"go.uber.org/zap"
)

// StatusWriter persists one status field of a record.
type StatusWriter interface {
	WriteStatus(ctx context.Context, id string, field entities.StatusField, value string) (entities.Quote, error)
}

// OutcomeKind says what a transition request did to the displayed value.
type OutcomeKind int

const (
	// Unchanged: nothing was sent; the field already shows the target or the
	// move does not exist (stepper ends).
	Unchanged OutcomeKind = iota
	// Applied: the backend confirmed the write.
	Applied
	// RolledBack: the request failed and the optimistic value was withdrawn.
	RolledBack
	// Rejected: the target failed local validation; nothing was sent.
	Rejected
)

func (k OutcomeKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Applied:
		return "applied"
	case RolledBack:
		return "rolled back"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one status mutation. Value is what the view shows
// for the field once the mutation is settled.
type Outcome struct {
	Kind      OutcomeKind
	ID        string
	Field     entities.StatusField
	Requested string
	Previous  string
	Value     string
	Err       error
}

func (o Outcome) OK() bool { return o.Kind == Applied || o.Kind == Unchanged }

// Transitioner applies status changes optimistically to a View and reconciles
// them with the backend.
//
// Any failure (transport or application) reverts the field to its last
// confirmed value, unless a newer request for the same field is already on
// screen. Requests are neither retried nor debounced.
type Transitioner struct {
	view   *View
	writer StatusWriter
	log    *zap.Logger
}

func NewTransitioner(view *View, writer StatusWriter) *Transitioner {
	return &Transitioner{view: view, writer: writer, log: zap.L().Named("portal.transition")}
}

func (t *Transitioner) View() *View { return t.view }

// Set moves one field of a loaded record to target.
func (t *Transitioner) Set(ctx context.Context, id string, field entities.StatusField, target string) Outcome {
	out := Outcome{ID: id, Field: field, Requested: target}

	current, ok := t.view.Get(id, field)
	if !ok {
		out.Kind, out.Err = Rejected, fmt.Errorf("%w: %s", ErrUnknownRecord, id)
		return out
	}
	out.Previous, out.Value = current, current

	if err := field.Validate(target); err != nil {
		out.Kind, out.Err = Rejected, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		return out
	}
	if current == target {
		out.Kind = Unchanged
		return out
	}

	gen, prev, err := t.view.begin(id, field, target)
	if err != nil {
		out.Kind, out.Err = Rejected, err
		return out
	}
	out.Previous = prev

	q, err := t.writer.WriteStatus(ctx, id, field, target)
	if err != nil {
		out.Kind, out.Err = RolledBack, err
		out.Value = t.view.fail(id, field, gen)
		t.log.Warn("status write failed",
			zap.String("quote_id", id),
			zap.String("field", string(field)),
			zap.String("from", prev),
			zap.String("to", target),
			zap.String("shown", out.Value),
			zap.Error(err))
		return out
	}

	confirmed := q.StatusOf(field)
	if confirmed == "" {
		confirmed = target
	}
	out.Kind = Applied
	out.Value = t.view.succeed(id, field, gen, confirmed)
	return out
}

// Approve, Reject, Revoke and Reconsider are the quote row buttons. Each is
// only offered from the statuses listed by entities.QuoteActions.
func (t *Transitioner) Approve(ctx context.Context, id string) Outcome {
	return t.act(ctx, id, entities.QuoteActionApprove)
}

func (t *Transitioner) Reject(ctx context.Context, id string) Outcome {
	return t.act(ctx, id, entities.QuoteActionReject)
}

func (t *Transitioner) Revoke(ctx context.Context, id string) Outcome {
	return t.act(ctx, id, entities.QuoteActionRevoke)
}

func (t *Transitioner) Reconsider(ctx context.Context, id string) Outcome {
	return t.act(ctx, id, entities.QuoteActionReconsider)
}

var ErrActionNotOffered = errors.New("action not offered for current status")

func (t *Transitioner) act(ctx context.Context, id string, action entities.QuoteAction) Outcome {
	field := entities.FieldQuoteStatus
	target := string(action.Target())

	current, ok := t.view.Get(id, field)
	if !ok {
		return Outcome{Kind: Rejected, ID: id, Field: field, Requested: target, Err: fmt.Errorf("%w: %s", ErrUnknownRecord, id)}
	}
	for _, a := range entities.QuoteActions(entities.QuoteStatus(current)) {
		if a == action {
			return t.Set(ctx, id, field, target)
		}
	}
	return Outcome{
		Kind:      Rejected,
		ID:        id,
		Field:     field,
		Requested: target,
		Previous:  current,
		Value:     current,
		Err:       fmt.Errorf("%w: %s from %s", ErrActionNotOffered, action, current),
	}
}

// TogglePayment flips the displayed payment status (Paid to Pending, anything
// else to Paid).
func (t *Transitioner) TogglePayment(ctx context.Context, id string) Outcome {
	field := entities.FieldPaymentStatus
	current, ok := t.view.Get(id, field)
	if !ok {
		return Outcome{Kind: Rejected, ID: id, Field: field, Err: fmt.Errorf("%w: %s", ErrUnknownRecord, id)}
	}
	return t.Set(ctx, id, field, string(entities.PaymentStatus(current).Toggle()))
}
