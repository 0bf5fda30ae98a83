package portal

import (
	"context"
	"fmt"

	"quoteportal/internal/domain/entities"
)

// Stepper moves a record's tracking status one pipeline stage at a time.
// There is no way to jump to an arbitrary stage through it.
type Stepper struct {
	t *Transitioner
}

func NewStepper(t *Transitioner) *Stepper { return &Stepper{t: t} }

func (s *Stepper) current(id string) (entities.TrackingStatus, bool) {
	v, ok := s.t.view.Get(id, entities.FieldTrackingStatus)
	return entities.TrackingStatus(v), ok
}

func (s *Stepper) CanNext(id string) bool {
	cur, ok := s.current(id)
	if !ok {
		return false
	}
	_, ok = cur.Next()
	return ok
}

func (s *Stepper) CanPrevious(id string) bool {
	cur, ok := s.current(id)
	if !ok {
		return false
	}
	_, ok = cur.Previous()
	return ok
}

func (s *Stepper) Next(ctx context.Context, id string) Outcome {
	return s.step(ctx, id, entities.TrackingStatus.Next)
}

func (s *Stepper) Previous(ctx context.Context, id string) Outcome {
	return s.step(ctx, id, entities.TrackingStatus.Previous)
}

func (s *Stepper) step(ctx context.Context, id string, move func(entities.TrackingStatus) (entities.TrackingStatus, bool)) Outcome {
	field := entities.FieldTrackingStatus
	cur, ok := s.current(id)
	if !ok {
		return Outcome{Kind: Rejected, ID: id, Field: field, Err: fmt.Errorf("%w: %s", ErrUnknownRecord, id)}
	}
	to, ok := move(cur)
	if !ok {
		return Outcome{Kind: Unchanged, ID: id, Field: field, Requested: string(cur), Previous: string(cur), Value: string(cur)}
	}
	return s.t.Set(ctx, id, field, string(to))
}
