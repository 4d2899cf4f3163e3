package gateway

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/user/companyscout/internal/auth"
	"github.com/user/companyscout/internal/mcp"
	"github.com/user/companyscout/internal/ratelimit"
	"github.com/user/companyscout/internal/session"
	"github.com/user/companyscout/internal/types"
)

type mockInvoker struct {
	lastKey  string
	lastName string
	response string
}

func (m *mockInvoker) Invoke(_ context.Context, apiKey, name string, _ json.RawMessage) (string, error) {
	m.lastKey = apiKey
	m.lastName = name
	return m.response, nil
}

func setupServer(t *testing.T, fallbackKey string, mock *mockInvoker) (*Server, *session.Registry) {
	t.Helper()
	sessions := session.NewRegistry()
	tools := []mcp.Tool{{Name: "company_overview", InputSchema: json.RawMessage(`{"type":"object"}`)}}
	srv := NewServer(auth.NewResolver(fallbackKey), ratelimit.New(), sessions, tools, mock, "test")
	return srv, sessions
}

func TestSSEWithoutAnyKey(t *testing.T) {
	srv, sessions := setupServer(t, "", &mockInvoker{})

	req := httptest.NewRequest(http.MethodGet, "/sse", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Errorf("expected error payload, got %s", w.Body.String())
	}
	if sessions.Count() != 0 {
		t.Errorf("rejected stream must not create a session, count = %d", sessions.Count())
	}
}

func TestSSEFreeTierRateLimited(t *testing.T) {
	srv, _ := setupServer(t, "fallback-key-00000", &mockInvoker{})

	// Exhaust the per-second window, then expect a 429. Streams are
	// opened with canceled contexts so the handlers return at once.
	got429 := false
	for i := 0; i < ratelimit.QPSLimit+1; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/sse", nil).WithContext(ctx)
		req.RemoteAddr = "10.1.1.1:4000"
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			got429 = true
			if !strings.Contains(w.Body.String(), "per second") {
				t.Errorf("unexpected limit reason: %s", w.Body.String())
			}
		}
	}
	if !got429 {
		t.Error("expected a rate-limited stream attempt")
	}
}

func TestSSEUserKeySkipsRateLimit(t *testing.T) {
	srv, _ := setupServer(t, "fallback-key-00000", &mockInvoker{})

	for i := 0; i < ratelimit.QPSLimit+2; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/sse?apiKey=user-key-12345", nil).WithContext(ctx)
		req.RemoteAddr = "10.1.1.1:4000"
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			t.Fatal("user-provided key should not be rate limited")
		}
	}
}

func TestMessageWithoutSessionID(t *testing.T) {
	srv, _ := setupServer(t, "fallback-key-00000", &mockInvoker{})

	for _, path := range []string{"/messages", "/messages/"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("POST %s: expected status 400, got %d", path, w.Code)
		}
	}
}

func TestMessageUnknownSession(t *testing.T) {
	srv, sessions := setupServer(t, "fallback-key-00000", &mockInvoker{})

	req := httptest.NewRequest(http.MethodPost, "/messages/"+string(types.NewSessionID()), strings.NewReader("{}"))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if sessions.Count() != 0 {
		t.Errorf("unknown session post must not create a session, count = %d", sessions.Count())
	}
}

func TestMessageDeliveredToSessionTransport(t *testing.T) {
	srv, sessions := setupServer(t, "fallback-key-00000", &mockInvoker{})

	transport := session.NewTransport(4)
	sess := sessions.Create("some-key", transport)

	body := `{"jsonrpc":"2.0","id":1,"method":"ping"}`
	req := httptest.NewRequest(http.MethodPost, "/messages/"+string(sess.ID), strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", w.Code)
	}
	select {
	case msg := <-transport.Recv():
		if !bytes.Equal(msg, []byte(body)) {
			t.Errorf("delivered %s, want %s", msg, body)
		}
	default:
		t.Fatal("message not delivered to transport")
	}
}

func TestMessageToClosedTransport(t *testing.T) {
	srv, sessions := setupServer(t, "fallback-key-00000", &mockInvoker{})

	transport := session.NewTransport(4)
	sess := sessions.Create("some-key", transport)
	transport.Close()

	req := httptest.NewRequest(http.MethodPost, "/messages/"+string(sess.ID), strings.NewReader("{}"))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}

func TestHealthReportsActiveSessions(t *testing.T) {
	srv, sessions := setupServer(t, "fallback-key-00000", &mockInvoker{})
	sessions.Create("k1", session.NewTransport(1))
	sessions.Create("k2", session.NewTransport(1))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp struct {
		Status         string `json:"status"`
		Service        string `json:"service"`
		ActiveSessions int    `json:"active_sessions"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %s", resp.Status)
	}
	if resp.Service != ServiceName {
		t.Errorf("service = %s", resp.Service)
	}
	if resp.ActiveSessions != 2 {
		t.Errorf("active_sessions = %d, want 2", resp.ActiveSessions)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := setupServer(t, "fallback-key-00000", &mockInvoker{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "gateway_active_sessions") {
		t.Error("metrics output missing session gauge")
	}
}

func TestHomePage(t *testing.T) {
	srv, _ := setupServer(t, "fallback-key-00000", &mockInvoker{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "company_overview") {
		t.Error("home page should list tools")
	}
}

// readSSEEvent reads one "event:"/"data:" pair from the stream.
func readSSEEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var event, data string
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read SSE stream: %v", err)
		}
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "" && event != "":
			return event, data
		}
	}
}

func TestStreamLifecycle(t *testing.T) {
	mock := &mockInvoker{response: "Acme makes widgets."}
	srv, sessions := setupServer(t, "fallback-key-00000", mock)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/sse?apiKey=session-user-key")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	event, endpoint := readSSEEvent(t, reader)
	if event != "endpoint" {
		t.Fatalf("first event = %s, want endpoint", event)
	}
	if !strings.HasPrefix(endpoint, "/messages/") {
		t.Fatalf("endpoint = %s", endpoint)
	}
	if sessions.Count() != 1 {
		t.Fatalf("active sessions = %d, want 1", sessions.Count())
	}

	post := func(msg string) {
		t.Helper()
		r, err := http.Post(ts.URL+endpoint, "application/json", strings.NewReader(msg))
		if err != nil {
			t.Fatal(err)
		}
		defer r.Body.Close()
		if r.StatusCode != http.StatusAccepted {
			t.Fatalf("post status = %d, want 202", r.StatusCode)
		}
	}

	post(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	event, data := readSSEEvent(t, reader)
	if event != "message" {
		t.Fatalf("event = %s, want message", event)
	}
	if !strings.Contains(data, mcp.ProtocolVersion) {
		t.Errorf("initialize response missing protocol version: %s", data)
	}

	post(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)

	// The call must run with the session-bound key even though the
	// POST itself carries no credential.
	post(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"company_overview","arguments":{"company_name":"Acme"}}}`)
	event, data = readSSEEvent(t, reader)
	if event != "message" {
		t.Fatalf("event = %s, want message", event)
	}
	if !strings.Contains(data, "Acme makes widgets.") {
		t.Errorf("tool result missing: %s", data)
	}
	if mock.lastKey != "session-user-key" {
		t.Errorf("invoker key = %q, want session-user-key", mock.lastKey)
	}

	resp.Body.Close()
	deadline := time.Now().Add(2 * time.Second)
	for sessions.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("session not closed after stream teardown")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSweepClosesIdleSessionOnNewStream(t *testing.T) {
	now := time.Now()
	sessions := session.NewRegistryWithClock(func() time.Time { return now })
	tools := []mcp.Tool{}
	srv := NewServer(auth.NewResolver("fallback-key-00000"), ratelimit.New(), sessions, tools, &mockInvoker{}, "test")

	stale := sessions.Create("old-key", session.NewTransport(1))
	now = now.Add(61 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/sse?apiKey=user-key-12345", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if _, err := sessions.Get(stale.ID); err == nil {
		t.Error("stale session should have been swept on stream accept")
	}
}
