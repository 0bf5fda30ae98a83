package portal

import (
	"sync"

	"quoteportal/internal/domain/entities"
)

// View is the client's local copy of the status fields of each loaded record.
//
// Every field keeps two values: the one on screen and the last one the backend
// confirmed. Both carry the generation of the request (or load) that produced
// them, so completions that arrive out of order can be told apart.
type View struct {
	mu     sync.Mutex
	fields map[fieldKey]*fieldState
	order  []string
}

type fieldKey struct {
	id    string
	field entities.StatusField
}

type fieldState struct {
	shown        string
	shownGen     uint64
	confirmed    string
	confirmedGen uint64
	gen          uint64
}

// Record is a snapshot of the displayed status fields of one record.
type Record struct {
	ID             string
	Status         entities.QuoteStatus
	TrackingStatus entities.TrackingStatus
	PaymentStatus  entities.PaymentStatus
}

// NewView returns an empty view; call Load before transitioning records.
func NewView() *View {
	return &View{fields: make(map[fieldKey]*fieldState)}
}

// Load replaces the local state of each record with the backend values.
// Requests still in flight for those fields no longer affect the screen.
func (v *View) Load(quotes []entities.Quote) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, q := range quotes {
		if q.ID == "" {
			continue
		}
		if _, seen := v.fields[fieldKey{q.ID, entities.FieldQuoteStatus}]; !seen {
			v.order = append(v.order, q.ID)
		}
		for _, f := range entities.StatusFields {
			k := fieldKey{q.ID, f}
			st, ok := v.fields[k]
			if !ok {
				st = &fieldState{}
				v.fields[k] = st
			}
			st.gen++
			value := q.StatusOf(f)
			st.shown, st.shownGen = value, st.gen
			st.confirmed, st.confirmedGen = value, st.gen
		}
	}
}

// Get returns the displayed value of one field.
func (v *View) Get(id string, field entities.StatusField) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	st, ok := v.fields[fieldKey{id, field}]
	if !ok {
		return "", false
	}
	return st.shown, true
}

// Confirmed returns the last backend-confirmed value of one field.
func (v *View) Confirmed(id string, field entities.StatusField) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	st, ok := v.fields[fieldKey{id, field}]
	if !ok {
		return "", false
	}
	return st.confirmed, true
}

// Record returns the displayed values of one record, false if it was never loaded.
func (v *View) Record(id string) (Record, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.recordLocked(id)
}

// Records lists the loaded records in load order.
func (v *View) Records() []Record {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Record, 0, len(v.order))
	for _, id := range v.order {
		if r, ok := v.recordLocked(id); ok {
			out = append(out, r)
		}
	}
	return out
}

func (v *View) recordLocked(id string) (Record, bool) {
	qs, ok := v.fields[fieldKey{id, entities.FieldQuoteStatus}]
	if !ok {
		return Record{}, false
	}
	r := Record{ID: id, Status: entities.QuoteStatus(qs.shown)}
	if st := v.fields[fieldKey{id, entities.FieldTrackingStatus}]; st != nil {
		r.TrackingStatus = entities.TrackingStatus(st.shown)
	}
	if st := v.fields[fieldKey{id, entities.FieldPaymentStatus}]; st != nil {
		r.PaymentStatus = entities.PaymentStatus(st.shown)
	}
	return r, true
}

// begin shows target optimistically and returns the generation of the new
// request and the value that was on screen before it.
func (v *View) begin(id string, field entities.StatusField, target string) (gen uint64, prev string, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	st, ok := v.fields[fieldKey{id, field}]
	if !ok {
		return 0, "", ErrUnknownRecord
	}
	prev = st.shown
	st.gen++
	st.shown, st.shownGen = target, st.gen
	return st.gen, prev, nil
}

// succeed records a confirmed write. The screen only follows it when no newer
// request or load is on screen.
func (v *View) succeed(id string, field entities.StatusField, gen uint64, value string) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := v.fields[fieldKey{id, field}]
	if gen > st.confirmedGen {
		st.confirmed, st.confirmedGen = value, gen
	}
	if gen >= st.shownGen {
		st.shown, st.shownGen = value, gen
	}
	return st.shown
}

// fail reverts the screen to the last confirmed value when the failed request
// is the one on screen.
func (v *View) fail(id string, field entities.StatusField, gen uint64) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := v.fields[fieldKey{id, field}]
	if gen == st.shownGen {
		st.shown, st.shownGen = st.confirmed, st.confirmedGen
	}
	return st.shown
}
