package order

import (
	"fmt"
	"strings"

	"fleetdispatch/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	           Assign            Ship            Deliver
//	PENDING ───────────> ASSIGNED ──────> SHIPPED ───────> DELIVERED
//	   │   <───────────    │  ↺ Assign
//	   │     Unassign      │
//	   │ Cancel,           │ AdminCancel
//	   │ AdminCancel       │
//	   └──────> CANCELLED <┘
//
// DELIVERED and CANCELLED are terminal.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Assigned
	Shipped
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus is the inverse of String for the valid statuses. It is case-insensitive.
func ParseStatus(s string) (Status, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for st, name := range getStatusStrings() {
		if st != Unknown && name == want {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order still holds a vehicle's capacity.
func (s Status) IsActive() bool {
	return s == Assigned || s == Shipped
}

// validateCanHaveVehicle checks that the vehicle reference agrees with the status.
func (s Status) validateCanHaveVehicle(hasVehicle bool) error {
	needsVehicle := s == Assigned || s == Shipped || s == Delivered
	if hasVehicle && !needsVehicle {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a vehicle", s),
		)
	}
	if !hasVehicle && needsVehicle {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no vehicle", s),
		)
	}
	return nil
}

// Event drives a status change.
type Event int

const (
	EventAssign Event = iota + 1
	EventUnassign
	EventShip
	EventDeliver
	EventCancel
	EventAdminCancel
)

func (e Event) String() string {
	switch e {
	case EventAssign:
		return "assign"
	case EventUnassign:
		return "unassign"
	case EventShip:
		return "ship"
	case EventDeliver:
		return "deliver"
	case EventCancel:
		return "cancel"
	case EventAdminCancel:
		return "admin cancel"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

type edge struct {
	from  Status
	event Event
}

var transitions = map[edge]Status{
	{Pending, EventAssign}:       Assigned,
	{Assigned, EventAssign}:      Assigned,
	{Assigned, EventUnassign}:    Pending,
	{Assigned, EventShip}:        Shipped,
	{Shipped, EventDeliver}:      Delivered,
	{Pending, EventCancel}:       Cancelled,
	{Pending, EventAdminCancel}:  Cancelled,
	{Assigned, EventAdminCancel}: Cancelled,
}

// Transition is the single source of truth for the order lifecycle. An event
// that is not legal in from yields a *errs.PreconditionFailedError and
// Unknown.
func Transition(from Status, event Event) (Status, error) {
	if to, ok := transitions[edge{from: from, event: event}]; ok {
		return to, nil
	}
	return Unknown, errs.NewPreconditionFailedError(
		fmt.Sprintf("cannot %s an order in status %s", event, from))
}
