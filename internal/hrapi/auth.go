// Package hrapi wraps the remote HR service endpoints with typed calls.
// Every call funnels through the gateway client, which owns token
// attachment and error classification.
package hrapi

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hr-console/internal/events"
	"github.com/spec-kit/hr-console/internal/gateway"
	"github.com/spec-kit/hr-console/internal/session"
	"github.com/spec-kit/hr-console/pkg/util"
)

// AuthAPI covers login, registration and logout.
type AuthAPI struct {
	client     *gateway.Client
	store      session.Store
	dispatcher events.Dispatcher
}

// NewAuthAPI builds the auth wrapper.
func NewAuthAPI(client *gateway.Client, store session.Store, dispatcher events.Dispatcher) *AuthAPI {
	return &AuthAPI{client: client, store: store, dispatcher: dispatcher}
}

// loginResponse is the nested shape the service returns on login.
type loginResponse struct {
	Token struct {
		Token string       `json:"token"`
		User  session.User `json:"user"`
	} `json:"token"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Login authenticates and persists the unwrapped token and user profile.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (*session.User, error) {
	payload := map[string]string{"username": username, "password": password}

	var resp loginResponse
	if err := a.client.Post(ctx, "/auth/login", payload, &resp); err != nil {
		return nil, err
	}

	// The shape is validated here rather than trusted downstream: a login
	// without token or role is a contract break, not an empty session.
	if resp.Token.Token == "" {
		return nil, util.NewParseError(errors.New("login response missing token"))
	}
	if !resp.Token.User.Role.Valid() {
		return nil, util.NewParseError(errors.New("login response missing user role"))
	}

	if err := a.store.Set(resp.Token.Token, resp.Token.User); err != nil {
		return nil, err
	}

	if a.dispatcher != nil {
		_ = a.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionStarted,
			Timestamp: time.Now(),
			Payload: events.SessionStartedPayload{
				UserID: resp.Token.User.ID,
				Role:   resp.Token.User.Role,
			},
		})
	}

	user := resp.Token.User
	return &user, nil
}

// Register creates an account. It deliberately stores nothing: the new user
// signs in afterwards.
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) error {
	return a.client.Post(ctx, "/auth/register", req, nil)
}

// Logout tells the service goodbye and clears the local session either way.
func (a *AuthAPI) Logout(ctx context.Context) error {
	remoteErr := a.client.Post(ctx, "/auth/logout", nil, nil)

	if err := a.store.Clear(); err != nil {
		return err
	}
	if a.dispatcher != nil {
		_ = a.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionCleared,
			Timestamp: time.Now(),
		})
	}
	// A 401 during logout already cleared the session; nothing left to do.
	if remoteErr != nil && !util.IsKind(remoteErr, util.KindAuthExpired) {
		return remoteErr
	}
	return nil
}
