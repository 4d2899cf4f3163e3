package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// Invoker executes a named tool with JSON arguments and returns the
// result text. The API key is the credential bound to the session the
// call arrived on.
type Invoker interface {
	Invoke(ctx context.Context, apiKey, name string, args json.RawMessage) (string, error)
}

// Server handles the MCP method set for one or more sessions. It holds
// no per-session state; each Serve call runs one session's loop.
type Server struct {
	info    ServerInfo
	tools   []Tool
	invoker Invoker
	logger  *slog.Logger
}

// NewServer creates an MCP server exposing the given tools.
func NewServer(info ServerInfo, tools []Tool, invoker Invoker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{info: info, tools: tools, invoker: invoker, logger: logger}
}

// Serve processes one session's inbound messages sequentially until the
// channel closes or the context is canceled. Responses go out through
// send; a send failure ends the loop since the stream is gone.
func (s *Server) Serve(ctx context.Context, apiKey string, inbound <-chan json.RawMessage, send func([]byte) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-inbound:
			if !ok {
				return nil
			}
			resp := s.handle(ctx, apiKey, raw)
			if resp == nil {
				continue
			}
			out, err := json.Marshal(resp)
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			if err := send(out); err != nil {
				return fmt.Errorf("push response: %w", err)
			}
		}
	}
}

// handle dispatches one message. Notifications return nil (nothing to
// send).
func (s *Server) handle(ctx context.Context, apiKey string, raw json.RawMessage) *Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(nil, ErrCodeParseError, "parse error")
	}
	if req.ID == nil || strings.HasPrefix(req.Method, "notifications/") {
		// notifications/initialized and friends need no reply
		return nil
	}

	switch req.Method {
	case "initialize":
		return resultResponse(req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    Capabilities{Tools: &ToolsCapability{}},
			ServerInfo:      s.info,
		})
	case "ping":
		return resultResponse(req.ID, struct{}{})
	case "tools/list":
		return resultResponse(req.ID, ListToolsResult{Tools: s.tools})
	case "tools/call":
		return s.callTool(ctx, apiKey, req)
	default:
		return errorResponse(req.ID, ErrCodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func (s *Server) callTool(ctx context.Context, apiKey string, req Request) *Response {
	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, ErrCodeInvalidParams, "invalid tools/call params")
	}
	if params.Name == "" {
		return errorResponse(req.ID, ErrCodeInvalidParams, "tool name is required")
	}
	text, err := s.invoker.Invoke(ctx, apiKey, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool invocation failed", "tool", params.Name, "error", err)
		return resultResponse(req.ID, TextResult(err.Error(), true))
	}
	return resultResponse(req.ID, TextResult(text, false))
}

func resultResponse(id any, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id any, code int, message string) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Error: &RPCError{Code: code, Message: message}}
}
