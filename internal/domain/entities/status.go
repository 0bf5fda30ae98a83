package entities

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown status")

// QuoteStatus is the admin decision on a quote request.
//
// Domain notes:
//   - A new quote starts Pending.
//   - Approved and Rejected can both be taken back to Pending (Revoke / Reconsider).
//   - Approved <-> Rejected is never a single step.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "Pending"
	QuoteStatusApproved QuoteStatus = "Approved"
	QuoteStatusRejected QuoteStatus = "Rejected"
)

var QuoteStatuses = []QuoteStatus{QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected}

var quoteTransitions = map[QuoteStatus]map[QuoteStatus]bool{
	QuoteStatusPending:  {QuoteStatusApproved: true, QuoteStatusRejected: true},
	QuoteStatusApproved: {QuoteStatusPending: true},
	QuoteStatusRejected: {QuoteStatusPending: true},
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

func (s QuoteStatus) CanTransitionTo(to QuoteStatus) bool {
	return quoteTransitions[s][to]
}

func ParseQuoteStatus(v string) (QuoteStatus, error) {
	s := QuoteStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: quote status %q", ErrUnknownStatus, v)
	}
	return s, nil
}

// QuoteAction is a named admin button on a quote row.
type QuoteAction string

const (
	QuoteActionApprove    QuoteAction = "approve"
	QuoteActionReject     QuoteAction = "reject"
	QuoteActionRevoke     QuoteAction = "revoke"
	QuoteActionReconsider QuoteAction = "reconsider"
)

// Target returns the status an action moves a quote to.
func (a QuoteAction) Target() QuoteStatus {
	switch a {
	case QuoteActionApprove:
		return QuoteStatusApproved
	case QuoteActionReject:
		return QuoteStatusRejected
	case QuoteActionRevoke, QuoteActionReconsider:
		return QuoteStatusPending
	default:
		return ""
	}
}

// QuoteActions lists the actions offered for a quote in the given status.
func QuoteActions(s QuoteStatus) []QuoteAction {
	switch s {
	case QuoteStatusPending:
		return []QuoteAction{QuoteActionApprove, QuoteActionReject}
	case QuoteStatusApproved:
		return []QuoteAction{QuoteActionRevoke}
	case QuoteStatusRejected:
		return []QuoteAction{QuoteActionReconsider}
	default:
		return nil
	}
}

// TrackingStatus is the production/delivery stage of an order.
// The order of TrackingStatuses is the pipeline order.
type TrackingStatus string

const (
	TrackingStatusOrdered          TrackingStatus = "Ordered"
	TrackingStatusInProduction     TrackingStatus = "In Production"
	TrackingStatusTesting          TrackingStatus = "Testing"
	TrackingStatusReadyForDelivery TrackingStatus = "Ready for Delivery"
	TrackingStatusCompleted        TrackingStatus = "Completed"
)

var TrackingStatuses = []TrackingStatus{
	TrackingStatusOrdered,
	TrackingStatusInProduction,
	TrackingStatusTesting,
	TrackingStatusReadyForDelivery,
	TrackingStatusCompleted,
}

// Index returns the pipeline position, or -1 for an unknown label.
func (s TrackingStatus) Index() int {
	for i, v := range TrackingStatuses {
		if v == s {
			return i
		}
	}
	return -1
}

func (s TrackingStatus) Valid() bool { return s.Index() >= 0 }

// Next returns the following stage. At the last stage (or for an unknown
// label) it returns s unchanged and false.
func (s TrackingStatus) Next() (TrackingStatus, bool) {
	i := s.Index()
	if i < 0 || i == len(TrackingStatuses)-1 {
		return s, false
	}
	return TrackingStatuses[i+1], true
}

// Previous returns the preceding stage. At the first stage (or for an unknown
// label) it returns s unchanged and false.
func (s TrackingStatus) Previous() (TrackingStatus, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return TrackingStatuses[i-1], true
}

// IsAdjacent reports whether to is exactly one stage away from s.
func (s TrackingStatus) IsAdjacent(to TrackingStatus) bool {
	i, j := s.Index(), to.Index()
	if i < 0 || j < 0 {
		return false
	}
	return i-j == 1 || j-i == 1
}

func ParseTrackingStatus(v string) (TrackingStatus, error) {
	s := TrackingStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: tracking status %q", ErrUnknownStatus, v)
	}
	return s, nil
}

// PaymentStatus is whether the amount due for an order has been collected.
//
// Admin screens only toggle between Pending and Paid; the remaining values are
// produced by the payment gateway or by direct writes.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "Pending"
	PaymentStatusPaid       PaymentStatus = "Paid"
	PaymentStatusUnpaid     PaymentStatus = "Unpaid"
	PaymentStatusFailed     PaymentStatus = "Failed"
	PaymentStatusRefunded   PaymentStatus = "Refunded"
	PaymentStatusInProgress PaymentStatus = "In Progress"
)

var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusUnpaid,
	PaymentStatusFailed,
	PaymentStatusRefunded,
	PaymentStatusInProgress,
}

func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Toggle flips Paid back to Pending and marks anything else Paid.
func (s PaymentStatus) Toggle() PaymentStatus {
	if s == PaymentStatusPaid {
		return PaymentStatusPending
	}
	return PaymentStatusPaid
}

func ParsePaymentStatus(v string) (PaymentStatus, error) {
	s := PaymentStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: payment status %q", ErrUnknownStatus, v)
	}
	return s, nil
}

// StatusField names one of the three independent status dimensions of a quote
// record. The values double as the JSON/DynamoDB attribute names.
type StatusField string

const (
	FieldQuoteStatus    StatusField = "status"
	FieldTrackingStatus StatusField = "trackingStatus"
	FieldPaymentStatus  StatusField = "paymentStatus"
)

var StatusFields = []StatusField{FieldQuoteStatus, FieldTrackingStatus, FieldPaymentStatus}

// Validate checks label against the enumeration of the field.
func (f StatusField) Validate(label string) error {
	var err error
	switch f {
	case FieldQuoteStatus:
		_, err = ParseQuoteStatus(label)
	case FieldTrackingStatus:
		_, err = ParseTrackingStatus(label)
	case FieldPaymentStatus:
		_, err = ParsePaymentStatus(label)
	default:
		err = fmt.Errorf("%w: field %q", ErrUnknownStatus, string(f))
	}
	return err
}

// Initial is the value a freshly requested quote carries for the field.
func (f StatusField) Initial() string {
	switch f {
	case FieldQuoteStatus:
		return string(QuoteStatusPending)
	case FieldTrackingStatus:
		return string(TrackingStatusOrdered)
	case FieldPaymentStatus:
		return string(PaymentStatusPending)
	default:
		return ""
	}
}
