package authz

import (
	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/session"
)

// DefaultPath is where authenticated users land when a view is denied or
// a path is unknown.
const DefaultPath = "/"

// LoginPath is the public login view.
const LoginPath = "/login"

// routeTable maps console views to their role requirements.
var routeTable = map[string]Requirement{
	"/":           RequireAnyAuthenticated(),
	"/employees":  RequireRoles(domain.RoleAdmin),
	"/leave":      RequireRoles(domain.RoleAdmin, domain.RoleEmployee),
	"/payroll":    RequireRoles(domain.RoleAdmin),
	"/attendance": RequireRoles(domain.RoleAdmin, domain.RoleEmployee),
	"/reports":    RequireRoles(domain.RoleAdmin),
	"/settings":   RequireRoles(domain.RoleAdmin),
}

// DecidePath resolves a navigation attempt for a concrete path. Paths with
// no route definition redirect to the default view unconditionally.
func DecidePath(sess session.Session, path string) Decision {
	req, ok := routeTable[path]
	if !ok {
		return RedirectToDefault
	}
	return Decide(sess, req)
}

// GuardedPaths lists every path the route table knows about.
func GuardedPaths() []string {
	paths := make([]string, 0, len(routeTable))
	for path := range routeTable {
		paths = append(paths, path)
	}
	return paths
}
