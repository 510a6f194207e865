package commands

import (
	"errors"
	"strings"

	"fleetdispatch/internal/core/domain/model/zone"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/pkg/errs"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand registers a service area. Boundary pairs are latitude first.
type CreateZoneCommand struct {
	fleetAction
	name     string
	boundary zone.Boundary
}

func NewCreateZoneCommand(principal policy.Principal, name string, pairs [][]float64) (CreateZoneCommand, error) {
	action, actionErr := newFleetAction(principal)

	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	boundary, boundaryErr := zone.NewBoundary(pairs)

	if err := errors.Join(actionErr, nameErr, boundaryErr); err != nil {
		return CreateZoneCommand{}, err
	}

	return CreateZoneCommand{fleetAction: action, name: name, boundary: boundary}, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) Name() string {
	return c.name
}

func (c CreateZoneCommand) Boundary() zone.Boundary {
	return c.boundary
}
