// internal/gateway/server.go
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/user/companyscout/internal/auth"
	"github.com/user/companyscout/internal/mcp"
	"github.com/user/companyscout/internal/ratelimit"
	"github.com/user/companyscout/internal/session"
	"github.com/user/companyscout/internal/types"
)

// ServiceName identifies this service in health responses.
const ServiceName = "companyscout-mcp"

// Invoker mirrors the tool execution dependency; see mcp.Invoker.
type Invoker = mcp.Invoker

// Server is the HTTP front of the research service: the SSE streaming
// endpoint, the message-post endpoint, health, metrics, and a landing
// page.
type Server struct {
	resolver *auth.Resolver
	limiter  *ratelimit.Limiter
	sessions *session.Registry
	mcp      *mcp.Server
	metrics  *metrics
	mux      *http.ServeMux
}

// NewServer wires the gateway to its collaborators. The tool list and
// invoker feed the MCP server used for every stream.
func NewServer(resolver *auth.Resolver, limiter *ratelimit.Limiter, sessions *session.Registry, tools []mcp.Tool, invoker Invoker, version string) *Server {
	s := &Server{
		resolver: resolver,
		limiter:  limiter,
		sessions: sessions,
		mux:      http.NewServeMux(),
	}
	s.metrics = newMetrics(sessions.Count)
	counted := &countingInvoker{inner: invoker, metrics: s.metrics}
	s.mcp = mcp.NewServer(mcp.ServerInfo{Name: "companyscout", Version: version}, tools, counted, slog.Default())

	s.mux.HandleFunc("GET /sse", s.handleSSE)
	s.mux.HandleFunc("POST /messages", s.handleMessage)
	s.mux.HandleFunc("POST /messages/", s.handleMessage)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.handler())
	s.mux.HandleFunc("GET /", s.handleHome)
	return s
}

// ServeHTTP delegates to the internal mux, implementing http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	apiKey, userProvided := s.resolver.Resolve(r)
	clientIP := auth.ClientIP(r)

	if apiKey == "" {
		s.metrics.streamsOpened.WithLabelValues("unauthenticated").Inc()
		http.Error(w, `{"error":"No API key available. Please provide your Linkup API key: /sse?apiKey=lk-xxxxx"}`, http.StatusUnauthorized)
		return
	}

	if !userProvided {
		allowed, reason := s.limiter.Check(clientIP)
		if !allowed {
			s.metrics.streamsOpened.WithLabelValues("rate_limited").Inc()
			s.metrics.rateLimited.WithLabelValues(limitKind(reason)).Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": reason})
			return
		}
		slog.Info("free tier connection", "client_ip", clientIP)
	} else {
		slog.Info("user API key connection", "client_ip", clientIP)
	}

	// Lazy expiry: each accepted stream sweeps idle sessions.
	if n := s.sessions.Sweep(session.IdleExpiry); n > 0 {
		slog.Info("swept expired sessions", "count", n)
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.metrics.streamsOpened.WithLabelValues("unstreamable").Inc()
		http.Error(w, `{"error":"streaming unsupported"}`, http.StatusInternalServerError)
		return
	}

	transport := session.NewTransport(0)
	sess := s.sessions.Create(apiKey, transport)
	defer s.sessions.Close(sess.ID)
	s.metrics.streamsOpened.WithLabelValues("opened").Inc()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	send := func(event string, data []byte) error {
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	// Advertise where this session posts its messages.
	if err := send("endpoint", []byte("/messages/"+string(sess.ID))); err != nil {
		slog.Warn("endpoint event write failed", "session_id", sess.ID, "error", err)
		return
	}

	// The serve loop must also stop when the session is closed from
	// elsewhere (a sweep on another request).
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		select {
		case <-transport.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	err := s.mcp.Serve(ctx, apiKey, transport.Recv(), func(data []byte) error {
		return send("message", data)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("session stream ended", "session_id", sess.ID, "error", err)
	}
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/messages")
	id = strings.TrimPrefix(id, "/")
	if id == "" {
		s.metrics.messagesPosted.WithLabelValues("missing_session").Inc()
		http.Error(w, `{"error":"session_id is required"}`, http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Get(types.SessionID(id))
	if err != nil {
		s.metrics.messagesPosted.WithLabelValues("not_found").Inc()
		http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
		return
	}
	if err := s.sessions.Touch(sess.ID); err != nil {
		s.metrics.messagesPosted.WithLabelValues("not_found").Inc()
		http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.metrics.messagesPosted.WithLabelValues("bad_body").Inc()
		http.Error(w, `{"error":"unable to read body"}`, http.StatusBadRequest)
		return
	}

	if err := sess.Transport.Deliver(body); err != nil {
		s.metrics.messagesPosted.WithLabelValues("undeliverable").Inc()
		slog.Warn("message delivery failed", "session_id", sess.ID, "error", err)
		http.Error(w, `{"error":"unable to deliver message"}`, http.StatusServiceUnavailable)
		return
	}

	s.metrics.messagesPosted.WithLabelValues("accepted").Inc()
	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte("Accepted"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":          "healthy",
		"service":         ServiceName,
		"active_sessions": s.sessions.Count(),
	})
}

func limitKind(reason string) string {
	if strings.HasPrefix(reason, "Daily") {
		return "daily"
	}
	return "qps"
}

// countingInvoker wraps tool execution with per-tool outcome counters.
type countingInvoker struct {
	inner   Invoker
	metrics *metrics
}

func (c *countingInvoker) Invoke(ctx context.Context, apiKey, name string, args json.RawMessage) (string, error) {
	text, err := c.inner.Invoke(ctx, apiKey, name, args)
	if err != nil {
		c.metrics.toolCalls.WithLabelValues(name, "error").Inc()
		return "", err
	}
	c.metrics.toolCalls.WithLabelValues(name, "ok").Inc()
	return text, nil
}
