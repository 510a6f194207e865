package zone

import (
	"errors"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a named service area. It keeps its stored geometry text verbatim;
// the boundary is parsed lazily so that a zone with broken geometry can
// still be loaded, listed and deleted.
type Zone struct {
	id        kernel.UUID
	name      string
	geometry  string
	createdAt time.Time

	boundary      *Boundary
	boundaryErr   error
	isConstructed bool
}

// NewZone validates the boundary before accepting it.
func NewZone(id kernel.UUID, name string, boundary Boundary, createdAt time.Time) (*Zone, error) {
	geometry, encodeErr := boundary.Encode()
	if encodeErr != nil {
		encodeErr = errs.NewValueIsInvalidErrorWithCause("boundary", encodeErr)
	}

	z := &Zone{isConstructed: true}
	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCreatedAt(createdAt),
		encodeErr,
	); err != nil {
		return nil, err
	}

	z.geometry = geometry
	z.boundary = &boundary
	return z, nil
}

// RestoreZone rebuilds a zone from storage without parsing its geometry.
func RestoreZone(id kernel.UUID, name string, geometry string, createdAt time.Time) (*Zone, error) {
	z := &Zone{isConstructed: true}
	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	z.geometry = geometry
	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

// Geometry is the stored [[lat, lng], ...] text.
func (z *Zone) Geometry() string {
	return z.geometry
}

func (z *Zone) CreatedAt() time.Time {
	return z.createdAt
}

// Boundary parses the geometry on first use and caches the outcome.
func (z *Zone) Boundary() (Boundary, error) {
	if z.boundary == nil && z.boundaryErr == nil {
		b, err := ParseBoundary(z.geometry)
		if err != nil {
			z.boundaryErr = err
		} else {
			z.boundary = &b
		}
	}
	if z.boundaryErr != nil {
		return Boundary{}, z.boundaryErr
	}
	return *z.boundary, nil
}

// Before reports whether z precedes other in enumeration order: creation
// time first, identifier second.
func (z *Zone) Before(other *Zone) bool {
	if !z.createdAt.Equal(other.createdAt) {
		return z.createdAt.Before(other.createdAt)
	}
	return z.id.Less(other.id)
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	z.name = name
	return nil
}

func (z *Zone) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	z.createdAt = createdAt
	return nil
}
