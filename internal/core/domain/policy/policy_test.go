package policy_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	admin     policy.Principal
	requester policy.Principal
	stranger  policy.Principal
	driver    policy.Principal
	other     policy.Principal
	order     *order.Order
	vehicle   *vehicle.Vehicle
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		admin:     policy.Principal{UserID: kernel.NewUUID(), Role: policy.RoleAdmin},
		requester: policy.Principal{UserID: kernel.NewUUID(), Role: policy.RoleRequester},
		stranger:  policy.Principal{UserID: kernel.NewUUID(), Role: policy.RoleRequester},
		driver:    policy.Principal{UserID: kernel.NewUUID(), Role: policy.RoleDriver},
		other:     policy.Principal{UserID: kernel.NewUUID(), Role: policy.RoleDriver},
	}

	dims, err := kernel.NewDimensions(10, 10, 10)
	require.NoError(t, err)
	pickup, err := kernel.NewLocation(1, 1)
	require.NoError(t, err)
	f.order, err = order.NewOrder(kernel.NewUUID(), f.requester.UserID,
		order.Parcel{Dimensions: dims, WeightKg: 1}, order.Route{Pickup: pickup}, time.Now())
	require.NoError(t, err)

	capacity, err := kernel.NewLoad(100, 10)
	require.NoError(t, err)
	f.vehicle, err = vehicle.NewVehicle(kernel.NewUUID(), "V1", capacity, nil, f.driver.UserID.Ptr(), time.Now())
	require.NoError(t, err)
	return f
}

func TestPolicy_AdminOnlyActions(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	checks := map[string]func(policy.Principal) error{
		"assign":       p.CanAssign,
		"unassign":     p.CanUnassign,
		"admin cancel": p.CanAdminCancel,
		"manage fleet": p.CanManageFleet,
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, check(f.admin))
			for _, who := range []policy.Principal{f.requester, f.driver} {
				require.ErrorIs(t, check(who), errs.ErrForbidden)
			}
		})
	}
}

func TestPolicy_CanCreateOrder(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	require.NoError(t, p.CanCreateOrder(f.requester))
	require.NoError(t, p.CanCreateOrder(f.admin))
	require.ErrorIs(t, p.CanCreateOrder(f.driver), errs.ErrForbidden)
}

func TestPolicy_CanCancel(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	require.NoError(t, p.CanCancel(f.requester, f.order))
	require.ErrorIs(t, p.CanCancel(f.stranger, f.order), errs.ErrForbidden)
	require.ErrorIs(t, p.CanCancel(f.admin, f.order), errs.ErrForbidden)
	require.ErrorIs(t, p.CanCancel(f.driver, f.order), errs.ErrForbidden)
}

func TestPolicy_CanStartShipment(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	require.NoError(t, p.CanStartShipment(f.driver, f.vehicle))
	require.ErrorIs(t, p.CanStartShipment(f.other, f.vehicle), errs.ErrForbidden)
	require.ErrorIs(t, p.CanStartShipment(f.driver, nil), errs.ErrForbidden)
	require.ErrorIs(t, p.CanStartShipment(f.admin, f.vehicle), errs.ErrForbidden)
}

func TestPolicy_CanConfirm(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	party, err := p.CanConfirm(f.driver, f.order, f.vehicle)
	require.NoError(t, err)
	assert.Equal(t, order.PartyDriver, party)

	party, err = p.CanConfirm(f.requester, f.order, f.vehicle)
	require.NoError(t, err)
	assert.Equal(t, order.PartyRequester, party)

	for _, who := range []policy.Principal{f.other, f.stranger, f.admin} {
		var forbidden *errs.ForbiddenError
		_, err = p.CanConfirm(who, f.order, f.vehicle)
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "confirm delivery", forbidden.Action)
	}
}

func TestPolicy_CanViewOrder(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	require.NoError(t, p.CanViewOrder(f.admin, f.order, nil))
	require.NoError(t, p.CanViewOrder(f.requester, f.order, nil))
	require.NoError(t, p.CanViewOrder(f.driver, f.order, f.vehicle))
	require.ErrorIs(t, p.CanViewOrder(f.stranger, f.order, f.vehicle), errs.ErrForbidden)
	require.ErrorIs(t, p.CanViewOrder(f.other, f.order, f.vehicle), errs.ErrForbidden)
}

func TestPolicy_CanListOrders(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	require.NoError(t, p.CanListOrders(f.admin))
	require.NoError(t, p.CanListOrders(f.requester))
	require.ErrorIs(t, p.CanListOrders(f.driver), errs.ErrForbidden)
}

func TestPolicy_CanListDriverOrders(t *testing.T) {
	f := newFixture(t)
	p := policy.New()

	require.NoError(t, p.CanListDriverOrders(f.driver))
	require.ErrorIs(t, p.CanListDriverOrders(f.admin), errs.ErrForbidden)
}

func TestParseRole(t *testing.T) {
	tests := map[string]policy.Role{
		"ADMIN":       policy.RoleAdmin,
		"super_admin": policy.RoleAdmin,
		"Requester":   policy.RoleRequester,
		"MSME":        policy.RoleRequester,
		" driver ":    policy.RoleDriver,
	}
	for in, want := range tests {
		got, err := policy.ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := policy.ParseRole("guest")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPrincipal(t *testing.T) {
	p, err := policy.NewPrincipal(kernel.NewUUID(), policy.RoleDriver)
	require.NoError(t, err)
	assert.True(t, p.IsDriver())

	_, err = policy.NewPrincipal(kernel.UUID{}, policy.Role("guest"))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
