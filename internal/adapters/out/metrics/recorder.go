// Package metrics exports assignment and order lifecycle counters to
// Prometheus.
package metrics

import (
	"errors"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fleetdispatch"

// Recorder implements commands.MetricsRecorder and services.ZoneSkipRecorder.
type Recorder struct {
	outcomes    *prometheus.CounterVec
	transitions *prometheus.CounterVec
	zoneSkips   prometheus.Counter
}

// NewRecorder registers the collectors on reg, or on the default registerer
// when reg is nil. Collectors that are already registered are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignment_outcomes_total",
		Help:      "Orders created, by automatic assignment outcome",
	}, []string{"outcome"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Committed order state transitions, by event",
	}, []string{"event"})
	zoneSkips := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "zones_skipped_total",
		Help:      "Zones left out of resolution because their geometry is malformed",
	})

	var err error
	if outcomes, err = register(reg, outcomes); err != nil {
		return nil, err
	}
	if transitions, err = register(reg, transitions); err != nil {
		return nil, err
	}
	if zoneSkips, err = register(reg, zoneSkips); err != nil {
		return nil, err
	}

	return &Recorder{outcomes: outcomes, transitions: transitions, zoneSkips: zoneSkips}, nil
}

func (r *Recorder) AssignmentOutcome(outcome commands.Outcome) {
	r.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (r *Recorder) OrderTransition(event order.Event) {
	r.transitions.WithLabelValues(event.String()).Inc()
}

func (r *Recorder) ZoneSkipped() {
	r.zoneSkips.Inc()
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
