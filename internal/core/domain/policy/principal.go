package policy

import (
	"errors"
	"fmt"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleRequester Role = "REQUESTER"
	RoleDriver    Role = "DRIVER"
)

// ParseRole accepts the role names issued by the identity provider,
// including the legacy SUPER_ADMIN and MSME spellings.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN", "SUPER_ADMIN":
		return RoleAdmin, nil
	case "REQUESTER", "MSME":
		return RoleRequester, nil
	case "DRIVER":
		return RoleDriver, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Principal is the authenticated actor behind a request.
type Principal struct {
	UserID kernel.UUID
	Role   Role
}

func NewPrincipal(userID kernel.UUID, role Role) (Principal, error) {
	var roleErr error
	if _, err := ParseRole(string(role)); err != nil {
		roleErr = err
	}
	if err := errors.Join(userID.Validate(), roleErr); err != nil {
		return Principal{}, err
	}
	return Principal{UserID: userID, Role: role}, nil
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsRequester() bool {
	return p.Role == RoleRequester
}

func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}
