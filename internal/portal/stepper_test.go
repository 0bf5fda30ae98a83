package portal

import (
	"context"
	"testing"

	"quoteportal/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func viewAt(stage entities.TrackingStatus) *View {
	v := NewView()
	v.Load([]entities.Quote{{ID: "abc", Status: entities.QuoteStatusApproved, TrackingStatus: stage, PaymentStatus: entities.PaymentStatusPaid}})
	return v
}

func TestStepper_NextAndPreviousMoveOneStage(t *testing.T) {
	ctx := context.Background()
	for i, stage := range entities.TrackingStatuses {
		t.Run(string(stage), func(t *testing.T) {
			w := &stubWriter{}
			s := NewStepper(NewTransitioner(viewAt(stage), w))

			next := s.Next(ctx, "abc")
			if i == len(entities.TrackingStatuses)-1 {
				require.False(t, s.CanNext("abc"))
				require.Equal(t, Unchanged, next.Kind)
				require.Equal(t, string(stage), next.Value)
				require.Empty(t, w.calls)
				return
			}
			require.Equal(t, Applied, next.Kind)
			require.Equal(t, string(entities.TrackingStatuses[i+1]), next.Value)
		})
	}

	for i, stage := range entities.TrackingStatuses {
		t.Run("previous from "+string(stage), func(t *testing.T) {
			w := &stubWriter{}
			s := NewStepper(NewTransitioner(viewAt(stage), w))

			prev := s.Previous(ctx, "abc")
			if i == 0 {
				require.False(t, s.CanPrevious("abc"))
				require.Equal(t, Unchanged, prev.Kind)
				require.Empty(t, w.calls)
				return
			}
			require.Equal(t, Applied, prev.Kind)
			require.Equal(t, string(entities.TrackingStatuses[i-1]), prev.Value)
		})
	}
}

func TestStepper_FailedStepRollsBack(t *testing.T) {
	v := viewAt(entities.TrackingStatusTesting)
	w := &stubWriter{fn: func(string, entities.StatusField, string) (entities.Quote, error) {
		return entities.Quote{}, &APIError{StatusCode: 500, Message: "boom"}
	}}
	s := NewStepper(NewTransitioner(v, w))

	out := s.Next(context.Background(), "abc")
	require.Equal(t, RolledBack, out.Kind)
	got, _ := v.Get("abc", entities.FieldTrackingStatus)
	require.Equal(t, "Testing", got)
}

func TestStepper_UnknownRecord(t *testing.T) {
	s := NewStepper(NewTransitioner(NewView(), &stubWriter{}))
	require.False(t, s.CanNext("nope"))
	require.False(t, s.CanPrevious("nope"))
	w := &stubWriter{}
	s = NewStepper(NewTransitioner(NewView(), w))
	for _, out := range []Outcome{s.Next(context.Background(), "nope"), s.Previous(context.Background(), "nope")} {
		require.Equal(t, Rejected, out.Kind)
		require.Equal(t, entities.FieldTrackingStatus, out.Field)
		require.Empty(t, out.Requested)
		require.ErrorIs(t, out.Err, ErrUnknownRecord)
	}
	require.Empty(t, w.calls)
}

func TestStepper_CanMoveInsidePipeline(t *testing.T) {
	s := NewStepper(NewTransitioner(viewAt(entities.TrackingStatusInProduction), &stubWriter{}))
	require.True(t, s.CanNext("abc"))
	require.True(t, s.CanPrevious("abc"))
}
