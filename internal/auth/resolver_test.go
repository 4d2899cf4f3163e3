package auth

import (
	"net/http/httptest"
	"testing"
)

func TestResolve_UserKey(t *testing.T) {
	r := NewResolver("fallback-key-123")

	req := httptest.NewRequest("GET", "/sse?apiKey=lk-12345678901234567890", nil)
	key, userProvided := r.Resolve(req)
	if !userProvided {
		t.Error("expected user-provided key")
	}
	if key != "lk-12345678901234567890" {
		t.Errorf("unexpected key: %q", key)
	}
}

func TestResolve_AliasParam(t *testing.T) {
	r := NewResolver("fallback-key-123")

	req := httptest.NewRequest("GET", "/sse?api_key=lk-12345678901234567890", nil)
	key, userProvided := r.Resolve(req)
	if !userProvided {
		t.Error("expected user-provided key from alias param")
	}
	if key != "lk-12345678901234567890" {
		t.Errorf("unexpected key: %q", key)
	}
}

func TestResolve_ShortKeyFallsBack(t *testing.T) {
	r := NewResolver("fallback-key-123")

	// 10 characters is not enough; the threshold is strictly greater.
	req := httptest.NewRequest("GET", "/sse?apiKey=exactly10c", nil)
	key, userProvided := r.Resolve(req)
	if userProvided {
		t.Error("short key should not count as user-provided")
	}
	if key != "fallback-key-123" {
		t.Errorf("expected fallback key, got %q", key)
	}
}

func TestResolve_NoKeyNoFallback(t *testing.T) {
	r := NewResolver("")

	req := httptest.NewRequest("GET", "/sse", nil)
	key, userProvided := r.Resolve(req)
	if userProvided {
		t.Error("expected no user key")
	}
	if key != "" {
		t.Errorf("expected empty key, got %q", key)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded_for", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "127.0.0.1:1234", "1.2.3.4"},
		{"real_ip", map[string]string{"X-Real-Ip": "5.6.7.8"}, "127.0.0.1:1234", "5.6.7.8"},
		{"cf_ip", map[string]string{"Cf-Connecting-Ip": "9.9.9.9"}, "127.0.0.1:1234", "9.9.9.9"},
		{"remote_addr", nil, "192.168.1.10:5555", "192.168.1.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/sse", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
