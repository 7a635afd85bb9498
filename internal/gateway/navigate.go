package gateway

import "sync/atomic"

// Navigator receives the application-level command to move the user to the
// login view. It decouples the gateway's 401 handling from any particular
// rendering of the console.
type Navigator interface {
	GoToLogin()
}

// LoginRedirector is the web console's Navigator: it latches a pending
// redirect that the route guard consumes on the next page request.
type LoginRedirector struct {
	pending atomic.Bool
}

// NewLoginRedirector builds a redirector.
func NewLoginRedirector() *LoginRedirector {
	return &LoginRedirector{}
}

// GoToLogin latches the redirect.
func (r *LoginRedirector) GoToLogin() {
	r.pending.Store(true)
}

// ConsumePending reports and resets the latched redirect.
func (r *LoginRedirector) ConsumePending() bool {
	return r.pending.Swap(false)
}
