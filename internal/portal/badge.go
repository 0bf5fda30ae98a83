package portal

import "quoteportal/internal/domain/entities"

// Badge is how a status label is drawn.
type Badge struct {
	Class string
	Icon  string
}

var neutralBadge = Badge{Class: "gray", Icon: "•"}

// Labels are shared across fields ("Pending" is both a quote and a payment
// status) so one table serves all three.
var badges = map[string]Badge{
	string(entities.QuoteStatusPending):  {Class: "yellow", Icon: "⏳"},
	string(entities.QuoteStatusApproved): {Class: "green", Icon: "✔"},
	string(entities.QuoteStatusRejected): {Class: "red", Icon: "✖"},

	string(entities.TrackingStatusOrdered):          {Class: "blue", Icon: "📦"},
	string(entities.TrackingStatusInProduction):     {Class: "blue", Icon: "🏭"},
	string(entities.TrackingStatusTesting):          {Class: "blue", Icon: "🧪"},
	string(entities.TrackingStatusReadyForDelivery): {Class: "blue", Icon: "🚚"},
	string(entities.TrackingStatusCompleted):        {Class: "green", Icon: "🏁"},

	string(entities.PaymentStatusPaid):       {Class: "green", Icon: "✔"},
	string(entities.PaymentStatusUnpaid):     {Class: "red", Icon: "✖"},
	string(entities.PaymentStatusFailed):     {Class: "red", Icon: "✖"},
	string(entities.PaymentStatusRefunded):   {Class: "blue", Icon: "↩"},
	string(entities.PaymentStatusInProgress): {Class: "purple", Icon: "⟳"},
}

// BadgeFor looks up the badge of a label. Unknown labels get the neutral badge.
func BadgeFor(label string) Badge {
	if b, ok := badges[label]; ok {
		return b
	}
	return neutralBadge
}

// Text renders a badge for terminal output.
func (b Badge) Text(label string) string {
	if label == "" {
		label = "-"
	}
	return b.Icon + " " + label
}

type StepState string

const (
	StepDone     StepState = "done"
	StepCurrent  StepState = "current"
	StepUpcoming StepState = "upcoming"
)

type Step struct {
	Label entities.TrackingStatus
	Icon  string
	State StepState
}

// Steps lays out the tracking pipeline around current. An unknown current
// value leaves every step upcoming.
func Steps(current entities.TrackingStatus) []Step {
	idx := current.Index()
	out := make([]Step, 0, len(entities.TrackingStatuses))
	for i, s := range entities.TrackingStatuses {
		st := StepUpcoming
		switch {
		case idx < 0:
		case i < idx:
			st = StepDone
		case i == idx:
			st = StepCurrent
		}
		out = append(out, Step{Label: s, Icon: BadgeFor(string(s)).Icon, State: st})
	}
	return out
}
