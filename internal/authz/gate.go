package authz

import (
	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/session"
)

// Decision is the outcome of a navigation check.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectToLogin sends an unauthenticated visitor to the login view.
	RedirectToLogin
	// RedirectToDefault sends an authenticated but unauthorized user home.
	RedirectToDefault
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToDefault:
		return "redirect_to_default"
	default:
		return "unknown"
	}
}

// Requirement describes who may open a view. AnyAuthenticated admits every
// signed-in user regardless of role; otherwise the user's role must be in
// Roles.
type Requirement struct {
	AnyAuthenticated bool
	Roles            map[domain.Role]struct{}
}

// RequireAnyAuthenticated admits any signed-in user.
func RequireAnyAuthenticated() Requirement {
	return Requirement{AnyAuthenticated: true}
}

// RequireRoles admits only the listed roles.
func RequireRoles(roles ...domain.Role) Requirement {
	set := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return Requirement{Roles: set}
}

// Decide resolves a navigation attempt from cached session state. It never
// performs I/O; the session must already be resident from Store.Load.
func Decide(sess session.Session, req Requirement) Decision {
	if !sess.Authenticated() {
		return RedirectToLogin
	}
	if req.AnyAuthenticated {
		return Allow
	}
	if _, ok := req.Roles[sess.User.Role]; ok {
		return Allow
	}
	return RedirectToDefault
}
