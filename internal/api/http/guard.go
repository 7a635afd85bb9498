package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/authz"
	"github.com/spec-kit/hr-console/internal/gateway"
	"github.com/spec-kit/hr-console/internal/session"
)

// RouteGuard applies the authorization gate to console navigation. The
// decision is made synchronously from the cached session; no network calls.
type RouteGuard struct {
	store      session.Store
	redirector *gateway.LoginRedirector
}

// NewRouteGuard constructs the guard.
func NewRouteGuard(store session.Store, redirector *gateway.LoginRedirector) *RouteGuard {
	return &RouteGuard{store: store, redirector: redirector}
}

// Protect gates a route group with the given requirement.
func (g *RouteGuard) Protect(req authz.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch authz.Decide(g.store.Current(), req) {
		case authz.Allow:
			return c.Next()
		case authz.RedirectToLogin:
			return c.Redirect(authz.LoginPath, fiber.StatusFound)
		default:
			return c.Redirect(authz.DefaultPath, fiber.StatusFound)
		}
	}
}

// ConsumeForcedLogin redirects when the gateway latched a login navigation
// from a background 401. Runs before the per-route requirements.
func (g *RouteGuard) ConsumeForcedLogin(c *fiber.Ctx) error {
	if g.redirector != nil && g.redirector.ConsumePending() {
		return c.Redirect(authz.LoginPath, fiber.StatusFound)
	}
	return c.Next()
}
