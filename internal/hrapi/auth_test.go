package hrapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/config"
	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/events"
	"github.com/spec-kit/hr-console/internal/gateway"
	"github.com/spec-kit/hr-console/internal/observability"
	"github.com/spec-kit/hr-console/internal/session"
	"github.com/spec-kit/hr-console/pkg/util"
)

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

type noopNavigator struct{}

func (noopNavigator) GoToLogin() {}

func newAuthAPI(t *testing.T, baseURL string) (*AuthAPI, *session.FileStore, events.Dispatcher) {
	t.Helper()

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	dispatcher := events.NewInMemoryDispatcher()
	client := gateway.New(
		config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 10},
		gateway.Dependencies{
			Store:      store,
			Notifier:   noopNotifier{},
			Navigator:  noopNavigator{},
			Dispatcher: dispatcher,
			Metrics:    observability.NewMetrics(),
			Logger:     zap.NewNop(),
		},
	)
	return NewAuthAPI(client, store, dispatcher), store, dispatcher
}

func TestLoginUnwrapsNestedTokenShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "amira", body["username"])

		_, _ = w.Write([]byte(`{"token":{"token":"jwt-abc","user":{"id":7,"username":"amira","role":"admin"}}}`))
	}))
	defer srv.Close()

	api, store, dispatcher := newAuthAPI(t, srv.URL)

	var started int
	dispatcher.Subscribe(events.EventSessionStarted, func(context.Context, events.Event) error {
		started++
		return nil
	})

	user, err := api.Login(context.Background(), "amira", "secret")
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	sess := store.Current()
	assert.Equal(t, "jwt-abc", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "amira", sess.User.Username)
	assert.Equal(t, 1, started)
}

func TestLoginMissingTokenIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":{"user":{"id":7,"username":"amira","role":"admin"}}}`))
	}))
	defer srv.Close()

	api, store, _ := newAuthAPI(t, srv.URL)

	_, err := api.Login(context.Background(), "amira", "secret")
	assert.True(t, util.IsKind(err, util.KindParse))
	assert.False(t, store.Current().Authenticated())
}

func TestLoginMissingRoleIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":{"token":"jwt-abc","user":{"id":7,"username":"amira"}}}`))
	}))
	defer srv.Close()

	api, store, _ := newAuthAPI(t, srv.URL)

	_, err := api.Login(context.Background(), "amira", "secret")
	assert.True(t, util.IsKind(err, util.KindParse))
	assert.False(t, store.Current().Authenticated())
}

func TestLogoutClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api, store, dispatcher := newAuthAPI(t, srv.URL)
	require.NoError(t, store.Set("jwt-abc", session.User{ID: 7, Username: "amira", Role: domain.RoleAdmin}))

	var cleared int
	dispatcher.Subscribe(events.EventSessionCleared, func(context.Context, events.Event) error {
		cleared++
		return nil
	})

	require.NoError(t, api.Logout(context.Background()))
	assert.False(t, store.Current().Authenticated())
	assert.Equal(t, 1, cleared)
}

func TestLogoutToleratesExpiredSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	api, store, _ := newAuthAPI(t, srv.URL)
	require.NoError(t, store.Set("jwt-abc", session.User{ID: 7, Username: "amira", Role: domain.RoleAdmin}))

	require.NoError(t, api.Logout(context.Background()))
	assert.False(t, store.Current().Authenticated())
}
