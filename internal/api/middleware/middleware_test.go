package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tlodholz/OpsReadyAPI/config"
	"github.com/tlodholz/OpsReadyAPI/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWT() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "middleware-test-secret-0123456789abcdef",
		Issuer:         "OpsReady",
		Audience:       "OpsReadyClient",
		AccessTokenTTL: 15 * time.Minute,
	})
}

// whoami echoes the actor the auth middleware resolved
func whoami(c *gin.Context) {
	username, _ := c.Get(ContextUsername)
	name, _ := username.(string)
	c.String(http.StatusOK, name)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	mgr := newTestJWT()
	token, err := mgr.GenerateAccessToken(1, "jdoe", "User")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := gin.New()
	r.GET("/me", JWTAuth(mgr, nil, zap.NewNop()), whoami)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"valid token", "Bearer " + token, http.StatusOK, "jdoe"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestOptionalJWTAuth(t *testing.T) {
	mgr := newTestJWT()
	token, _ := mgr.GenerateAccessToken(2, "asmith", "Admin")

	r := gin.New()
	r.GET("/actor", OptionalJWTAuth(mgr, nil, zap.NewNop()), whoami)

	req := httptest.NewRequest(http.MethodGet, "/actor", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if w := serve(r, req); w.Code != http.StatusOK || w.Body.String() != "asmith" {
		t.Errorf("expected asmith, got %d %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/actor", nil)
	if w := serve(r, req); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Errorf("expected anonymous pass-through, got %d %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/actor", nil)
	req.Header.Set("Authorization", "Bearer broken")
	if w := serve(r, req); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Errorf("expected invalid token to be treated as anonymous, got %d %q", w.Code, w.Body.String())
	}
}

func TestRoleAuth(t *testing.T) {
	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if role != "" {
				c.Set(ContextRole, role)
			}
			c.Next()
		}
	}

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"admin allowed", "Admin", http.StatusOK},
		{"user forbidden", "User", http.StatusForbidden},
		{"unauthenticated", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin", withRole(tt.role), RoleAuth("Admin"), whoami)
			w := serve(r, httptest.NewRequest(http.MethodGet, "/admin", nil))
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := serve(r, req)
	if w.Header().Get(requestIDHeader) != "abc-123" || w.Body.String() != "abc-123" {
		t.Errorf("expected inbound id to propagate, got %q", w.Header().Get(requestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("x", requestIDMaxLen+1))
	w = serve(r, req)
	if got := w.Header().Get(requestIDHeader); len(got) != 36 {
		t.Errorf("expected generated uuid for oversized id, got %q", got)
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.POST("/", BodyLimit(8), func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, string(data))
	})

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	if w.Code != http.StatusOK || w.Body.String() != "small" {
		t.Errorf("expected small body to pass, got %d", w.Code)
	}

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("much too large")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected declared oversize body to be rejected, got %d", w.Code)
	}

	// unknown length: the limit trips on read
	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(strings.NewReader("much too large")))
	req.ContentLength = -1
	w = serve(r, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected streamed oversize body to fail on read, got %d", w.Code)
	}
}

func TestRateLimit_NilRedisAllows(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(nil, 1, time.Minute, zap.NewNop()), whoami)

	for i := 0; i < 3; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodPost, "/login", nil)); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 without redis, got %d", i, w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173/"}))
	r.GET("/", whoami)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(r, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected preflight 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Errorf("expected origin echoed, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("unexpected CORS header for disallowed origin")
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/health", whoami)
	r.GET("/api/vehicle/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	if logs.Len() != 0 {
		t.Fatalf("expected successful /health to be skipped, got %d entries", logs.Len())
	}

	serve(r, httptest.NewRequest(http.MethodGet, "/api/vehicle/9", nil))
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "client error" {
		t.Errorf("unexpected entry %s %q", e.Level, e.Message)
	}
	fields := e.ContextMap()
	if fields["route"] != "/api/vehicle/:id" || fields["request_id"] == nil {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name     string
		maxAge   time.Duration
		wantHSTS string
	}{
		{"plain http", 0, ""},
		{"sub-second rounds to off", 500 * time.Millisecond, ""},
		{"one year", 365 * 24 * time.Hour, "max-age=31536000; includeSubDomains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(SecurityHeaders(tt.maxAge))
			r.GET("/", whoami)

			w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
			if got := w.Header().Get("Strict-Transport-Security"); got != tt.wantHSTS {
				t.Errorf("expected HSTS %q, got %q", tt.wantHSTS, got)
			}
			for header, want := range map[string]string{
				"X-Content-Type-Options": "nosniff",
				"X-Frame-Options":        "DENY",
				"Cache-Control":          "no-store",
			} {
				if got := w.Header().Get(header); got != want {
					t.Errorf("expected %s %q, got %q", header, want, got)
				}
			}
		})
	}
}
