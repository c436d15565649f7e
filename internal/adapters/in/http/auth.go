package http

import (
	"errors"
	"net/http"
	"strings"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/services"
	"laundromart/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// actorClaims is the JWT payload the auth service issues. The subject is
// the user id; shopId is set for shop employees.
type actorClaims struct {
	Role   string `json:"role"`
	ShopID string `json:"shopId,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token and resolves the caller into a
// domain Actor. Every identity attribute the domain gates on (role, shop
// membership) comes from the verified token, never from the request body.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFromToken(c.Request().Header.Get("Authorization"), secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFromToken(header, secret string) (services.Actor, error) {
	if secret == "" {
		return services.Actor{}, errors.New("auth secret is not configured")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return services.Actor{}, errors.New("missing bearer token")
	}

	claims := &actorClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return services.Actor{}, err
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return services.Actor{}, errors.New("invalid subject claim")
	}
	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return services.Actor{}, errors.New("invalid role claim")
	}

	actor := services.Actor{ID: userID, Role: role}
	if claims.ShopID != "" {
		shopID, shopErr := kernel.UUIDFromString(claims.ShopID)
		if shopErr != nil {
			return services.Actor{}, errors.New("invalid shop claim")
		}
		actor.ShopID = &shopID
	}

	return actor, nil
}

// actorFrom returns the authenticated actor set by AuthMiddleware.
func actorFrom(c echo.Context) (services.Actor, error) {
	actor, ok := c.Get(actorContextKey).(services.Actor)
	if !ok {
		return services.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return actor, nil
}

// requireShopAccess admits admins and employees of the given shop.
func requireShopAccess(actor services.Actor, shopID kernel.UUID) error {
	if actor.Role == kernel.RoleAdmin {
		return nil
	}
	if actor.Role == kernel.RoleEmployee && actor.ShopID != nil && actor.ShopID.IsEqual(shopID) {
		return nil
	}
	return errs.NewForbiddenError(actor.Role.String(), "view shop orders")
}
