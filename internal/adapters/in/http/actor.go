package http

import (
	"strings"

	"telecom/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	HeaderActorKind = "X-Actor-Kind"
	HeaderActorName = "X-Actor-Name"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
	actorKindSystem = "system"
)

// ActorMiddleware resolves the caller once per request. Authentication happens
// upstream; the headers are trusted as set by the gateway.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(actorContextKey, ResolveActor(c.Request().Header.Get(HeaderActorKind),
				c.Request().Header.Get(HeaderActorName),
				c.Request().Header.Get(HeaderActorRole)))
			return next(c)
		}
	}
}

// ResolveActor maps the identity headers to an Actor. Anything that does not
// name a caller falls back to Anonymous.
func ResolveActor(kind string, name string, role string) kernel.Actor {
	if strings.EqualFold(strings.TrimSpace(kind), actorKindSystem) {
		if system, err := kernel.NewSystemActor(name); err == nil {
			return system
		}
		return kernel.Anonymous{}
	}

	if principal, err := kernel.NewNamedPrincipal(name, role); err == nil {
		return principal
	}
	return kernel.Anonymous{}
}

func actorFrom(c echo.Context) kernel.Actor {
	if actor, ok := c.Get(actorContextKey).(kernel.Actor); ok {
		return actor
	}
	return kernel.Anonymous{}
}
