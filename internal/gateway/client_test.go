package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/config"
	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/observability"
	"github.com/spec-kit/hr-console/internal/session"
	"github.com/spec-kit/hr-console/pkg/util"
)

type recordingNotifier struct {
	mu       sync.Mutex
	errors   []string
	messages []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

type recordingNavigator struct {
	mu     sync.Mutex
	logins int
}

func (n *recordingNavigator) GoToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.logins++
}

func newTestClient(t *testing.T, baseURL string, timeoutSeconds int) (*Client, *session.FileStore, *recordingNotifier, *recordingNavigator) {
	t.Helper()

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}

	client := New(
		config.APIConfig{BaseURL: baseURL, TimeoutSeconds: timeoutSeconds},
		Dependencies{
			Store:     store,
			Notifier:  notifier,
			Navigator: navigator,
			Metrics:   observability.NewMetrics(),
			Logger:    zap.NewNop(),
		},
	)
	return client, store, notifier, navigator
}

func loggedIn(t *testing.T, store *session.FileStore) {
	t.Helper()
	require.NoError(t, store.Set("tok-123", session.User{ID: 1, Username: "amira", Role: domain.RoleAdmin}))
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client, store, _, _ := newTestClient(t, srv.URL, 10)
	loggedIn(t, store)

	var out map[string]bool
	require.NoError(t, client.Get(context.Background(), "/employees", &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.True(t, out["ok"])
}

func TestClientOmitsBearerWhenAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, _, _, _ := newTestClient(t, srv.URL, 10)

	require.NoError(t, client.Get(context.Background(), "/auth/login", nil))
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorizedClearsSessionAndRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, store, notifier, navigator := newTestClient(t, srv.URL, 10)
	loggedIn(t, store)

	// The failing endpoint does not matter: any 401 invalidates the session.
	err := client.Get(context.Background(), "/payment/report/monthly", nil)

	assert.True(t, util.IsKind(err, util.KindAuthExpired))
	assert.False(t, store.Current().Authenticated())
	assert.Empty(t, store.Current().Token)
	assert.Equal(t, 1, navigator.logins)
	require.NotEmpty(t, notifier.errors)
	assert.Equal(t, "Session expired. Please login again.", notifier.errors[0])
}

func TestClientServerErrorKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, store, notifier, navigator := newTestClient(t, srv.URL, 10)
	loggedIn(t, store)

	err := client.Get(context.Background(), "/employees", nil)

	assert.True(t, util.IsKind(err, util.KindServerError))
	assert.True(t, store.Current().Authenticated())
	assert.Zero(t, navigator.logins)
	require.NotEmpty(t, notifier.errors)
	assert.Equal(t, "Server error. Please try again later.", notifier.errors[0])
}

func TestClientTimeoutKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
	}))
	defer srv.Close()

	client, store, notifier, _ := newTestClient(t, srv.URL, 1)
	loggedIn(t, store)

	err := client.Get(context.Background(), "/attendance", nil)

	assert.True(t, util.IsKind(err, util.KindTimeout))
	assert.True(t, store.Current().Authenticated())
	require.NotEmpty(t, notifier.errors)
	assert.Equal(t, "Request timeout. Check your internet connection.", notifier.errors[0])
}

func TestClientSurfacesServerProvidedMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate employee code"}`))
	}))
	defer srv.Close()

	client, store, notifier, _ := newTestClient(t, srv.URL, 10)
	loggedIn(t, store)

	err := client.Post(context.Background(), "/employees", map[string]string{"employee_code": "EMP-001"}, nil)

	assert.True(t, util.IsKind(err, util.KindValidation))
	apiErr := util.ToAPIError(err)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "duplicate employee code", apiErr.Message)
	require.NotEmpty(t, notifier.errors)
	assert.Equal(t, "duplicate employee code", notifier.errors[0])
}

func TestClientFallsBackToUnknownError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, _, notifier, _ := newTestClient(t, srv.URL, 10)

	err := client.Get(context.Background(), "/leaves", nil)

	assert.True(t, util.IsKind(err, util.KindValidation))
	require.NotEmpty(t, notifier.errors)
	assert.Equal(t, "Unknown error", notifier.errors[0])
}

func TestClientMalformedSuccessBodyIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken`))
	}))
	defer srv.Close()

	client, _, _, _ := newTestClient(t, srv.URL, 10)

	var out map[string]any
	err := client.Get(context.Background(), "/departments", &out)
	assert.True(t, util.IsKind(err, util.KindParse))
}

func TestClientNetworkUnreachable(t *testing.T) {
	client, _, _, _ := newTestClient(t, "http://127.0.0.1:1", 1)

	err := client.Get(context.Background(), "/employees", nil)
	assert.True(t, util.IsKind(err, util.KindNetwork))
}
