package broadcaster_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/centrifuge/core/broadcaster"
	"github.com/dmitrymomot/centrifuge/core/hub"
	"github.com/dmitrymomot/centrifuge/core/logger"
	"github.com/dmitrymomot/centrifuge/pkg/signer"
)

const testSecret = "f95bf295-bee6-4259-8912-0a58f4ecd30e"

type hubServer struct {
	mu     sync.Mutex
	bodies []string
}

func (h *hubServer) last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.bodies) == 0 {
		return ""
	}
	return h.bodies[len(h.bodies)-1]
}

func newHub(t *testing.T, reply string) (*hub.Client, *hubServer) {
	t.Helper()

	rec := &hubServer{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.bodies = append(rec.bodies, string(body))
		rec.mu.Unlock()
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	cfg := hub.DefaultConfig()
	cfg.URL = srv.URL
	cfg.Secret = testSecret

	client, err := hub.New(cfg, hub.WithLogger(logger.Discard()))
	require.NoError(t, err)
	return client, rec
}

func TestBroadcast(t *testing.T) {
	t.Parallel()

	t.Run("adds event and excludes socket", func(t *testing.T) {
		t.Parallel()

		client, rec := newHub(t, `[{"method":"broadcast","error":null,"body":null}]`)
		b := broadcaster.New(client, broadcaster.WithLogger(logger.Discard()))

		socket := uuid.NewString()
		payload := map[string]any{"id": 42, "socket": socket}
		err := b.Broadcast(context.Background(), []string{"orders"}, "order.created", payload)
		require.NoError(t, err)

		assert.JSONEq(t,
			`{"method":"broadcast","params":{"channels":["orders"],"data":{"event":"order.created","id":42},"client":"`+socket+`"}}`,
			rec.last(),
		)
		assert.Contains(t, payload, "socket", "caller payload must stay untouched")
		assert.NotContains(t, payload, "event")
	})

	t.Run("without socket", func(t *testing.T) {
		t.Parallel()

		client, rec := newHub(t, `[{"method":"broadcast","error":null,"body":null}]`)
		b := broadcaster.New(client, broadcaster.WithLogger(logger.Discard()))

		require.NoError(t, b.Broadcast(context.Background(), []string{"a", "b"}, "ping", nil))
		assert.JSONEq(t, `{"method":"broadcast","params":{"channels":["a","b"],"data":{"event":"ping"}}}`, rec.last())
	})

	t.Run("hub error", func(t *testing.T) {
		t.Parallel()

		client, _ := newHub(t, `[{"method":"broadcast","error":"namespace not found","body":null}]`)
		b := broadcaster.New(client, broadcaster.WithLogger(logger.Discard()))

		err := b.Broadcast(context.Background(), []string{"x:y"}, "ping", nil)
		require.ErrorIs(t, err, broadcaster.ErrBroadcastFailed)
		assert.Contains(t, err.Error(), "namespace not found")
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		cfg := hub.DefaultConfig()
		cfg.URL = "http://127.0.0.1:1"
		cfg.Secret = testSecret
		client, err := hub.New(cfg, hub.WithLogger(logger.Discard()))
		require.NoError(t, err)

		b := broadcaster.New(client, broadcaster.WithLogger(logger.Discard()))
		err = b.Broadcast(context.Background(), []string{"a"}, "ping", nil)
		require.ErrorIs(t, err, broadcaster.ErrBroadcastFailed)
		require.ErrorIs(t, err, hub.ErrTransport)
	})
}

type authResponse map[string]struct {
	Sign   string `json:"sign"`
	Info   string `json:"info"`
	Status int    `json:"status"`
}

func TestAuthHandler(t *testing.T) {
	t.Parallel()

	client, _ := newHub(t, `[]`)
	b := broadcaster.New(client, broadcaster.WithLogger(logger.Discard()))

	var (
		mu      sync.Mutex
		checked []string
	)
	resolve := func(r *http.Request) (string, bool) {
		user := r.Header.Get("X-User")
		return user, user != ""
	}
	check := func(_ context.Context, user, channel string) (bool, error) {
		mu.Lock()
		checked = append(checked, channel)
		mu.Unlock()
		switch channel {
		case "broken":
			return false, assert.AnError
		case "admin":
			return user == "root", nil
		default:
			return true, nil
		}
	}
	handler := b.AuthHandler(resolve, check)

	clientID := uuid.NewString()
	sign := func(channel string) string {
		s, err := signer.Sign(testSecret, []byte(clientID), []byte(channel), []byte("[]"))
		require.NoError(t, err)
		return s
	}

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/broadcasting/auth", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("json list", func(t *testing.T) {
		body := `{"client":"` + clientID + `","channels":["$private","admin","broken"]}`
		req := httptest.NewRequest(http.MethodPost, "/broadcasting/auth", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		req.Header.Set("X-User", "alice")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp authResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 3)

		assert.Equal(t, sign("$private"), resp["$private"].Sign)
		assert.Equal(t, "[]", resp["$private"].Info)
		assert.Zero(t, resp["$private"].Status)
		assert.Equal(t, http.StatusForbidden, resp["admin"].Status)
		assert.Empty(t, resp["admin"].Sign)
		assert.Equal(t, http.StatusForbidden, resp["broken"].Status)

		mu.Lock()
		assert.Contains(t, checked, "private")
		assert.NotContains(t, checked, "$private")
		mu.Unlock()
	})

	t.Run("json single channel", func(t *testing.T) {
		body := `{"client":"` + clientID + `","channels":"news"}`
		req := httptest.NewRequest(http.MethodPost, "/broadcasting/auth", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User", "alice")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp authResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, sign("news"), resp["news"].Sign)
	})

	t.Run("form", func(t *testing.T) {
		form := url.Values{"client": {clientID}, "channels[]": {"news", "admin"}}
		req := httptest.NewRequest(http.MethodPost, "/broadcasting/auth", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-User", "root")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp authResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, sign("news"), resp["news"].Sign)
		assert.Equal(t, sign("admin"), resp["admin"].Sign)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/broadcasting/auth", strings.NewReader(`{"channels":{}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User", "alice")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
