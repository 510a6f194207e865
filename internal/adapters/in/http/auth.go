package http

import (
	"net/http"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	tokenKey     = "user"
	principalKey = "principal"
)

// Claims are carried by the bearer token. Subject is the user id and Role one
// of ADMIN, REQUESTER or DRIVER (legacy SUPER_ADMIN and MSME are accepted).
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies HS256 bearer tokens signed with secret and stores the
// resulting policy.Principal on the request context.
func Authenticate(secret []byte) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:    secret,
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    tokenKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing or invalid bearer token",
			})
		},
	})
	return []echo.MiddlewareFunc{verify, withPrincipal}
}

func withPrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := principalFromToken(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "token does not identify a user with a known role",
			})
		}
		c.Set(principalKey, p)
		return next(c)
	}
}

func principalFromToken(c echo.Context) (policy.Principal, bool) {
	token, ok := c.Get(tokenKey).(*jwt.Token)
	if !ok {
		return policy.Principal{}, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return policy.Principal{}, false
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return policy.Principal{}, false
	}
	role, err := policy.ParseRole(claims.Role)
	if err != nil {
		return policy.Principal{}, false
	}
	p, err := policy.NewPrincipal(userID, role)
	if err != nil {
		return policy.Principal{}, false
	}
	return p, true
}

func principalFrom(c echo.Context) policy.Principal {
	p, _ := c.Get(principalKey).(policy.Principal)
	return p
}
