package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/session"
)

func adminSession() session.Session {
	return session.Session{Token: "t", User: &session.User{ID: 1, Username: "boss", Role: domain.RoleAdmin}}
}

func employeeSession() session.Session {
	return session.Session{Token: "t", User: &session.User{ID: 2, Username: "worker", Role: domain.RoleEmployee}}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		sess session.Session
		req  Requirement
		want Decision
	}{
		{"no user always redirects to login", session.Session{}, RequireRoles(domain.RoleAdmin), RedirectToLogin},
		{"no user redirects to login even for any-authenticated", session.Session{}, RequireAnyAuthenticated(), RedirectToLogin},
		{"token without user still redirects to login", session.Session{Token: "stale"}, RequireAnyAuthenticated(), RedirectToLogin},
		{"admin allowed on admin view", adminSession(), RequireRoles(domain.RoleAdmin), Allow},
		{"admin allowed on shared view", adminSession(), RequireRoles(domain.RoleAdmin, domain.RoleEmployee), Allow},
		{"admin denied on employee-only view", adminSession(), RequireRoles(domain.RoleEmployee), RedirectToDefault},
		{"employee denied on admin view", employeeSession(), RequireRoles(domain.RoleAdmin), RedirectToDefault},
		{"employee allowed on shared view", employeeSession(), RequireRoles(domain.RoleAdmin, domain.RoleEmployee), Allow},
		{"employee allowed on any-authenticated view", employeeSession(), RequireAnyAuthenticated(), Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.sess, tt.req))
		})
	}
}

func TestDecidePath(t *testing.T) {
	assert.Equal(t, Allow, DecidePath(employeeSession(), "/"))
	assert.Equal(t, Allow, DecidePath(employeeSession(), "/attendance"))
	assert.Equal(t, RedirectToDefault, DecidePath(employeeSession(), "/employees"))
	assert.Equal(t, Allow, DecidePath(adminSession(), "/reports"))
	assert.Equal(t, RedirectToLogin, DecidePath(session.Session{}, "/payroll"))

	// Unknown paths resolve to the default view regardless of session state.
	assert.Equal(t, RedirectToDefault, DecidePath(adminSession(), "/no-such-view"))
	assert.Equal(t, RedirectToDefault, DecidePath(session.Session{}, "/no-such-view"))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect_to_login", RedirectToLogin.String())
	assert.Equal(t, "redirect_to_default", RedirectToDefault.String())
}
