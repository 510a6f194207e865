package commands

import (
	"fleetdispatch/internal/core/domain/model/order"
)

// Outcome is how automatic assignment ended for a new order.
type Outcome string

const (
	OutcomeAssigned  Outcome = "assigned"
	OutcomeNoZone    Outcome = "no_zone"
	OutcomeNoVehicle Outcome = "no_vehicle"
)

// MetricsRecorder receives events after a successful commit.
type MetricsRecorder interface {
	AssignmentOutcome(outcome Outcome)
	OrderTransition(event order.Event)
}

type nopRecorder struct{}

func (nopRecorder) AssignmentOutcome(Outcome) {}
func (nopRecorder) OrderTransition(order.Event) {}

func recorderOrNop(r MetricsRecorder) MetricsRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
