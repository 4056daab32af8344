package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "valid bearer token",
			header:   "Bearer abc123",
			expected: "abc123",
		},
		{
			name:     "bearer with extra spaces",
			header:   "Bearer   token-with-spaces   ",
			expected: "token-with-spaces",
		},
		{
			name:     "lowercase bearer",
			header:   "bearer token123",
			expected: "token123",
		},
		{
			name:     "empty header",
			header:   "",
			expected: "",
		},
		{
			name:     "no bearer prefix",
			header:   "token123",
			expected: "",
		},
		{
			name:     "basic auth",
			header:   "Basic dXNlcjpwYXNz",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			result := extractBearerToken(req)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestGetAuthContext(t *testing.T) {
	if result := GetAuthContext(context.TODO()); result != nil {
		t.Error("expected nil for empty context")
	}

	if result := GetAuthContext(context.Background()); result != nil {
		t.Error("expected nil for context without auth")
	}

	authCtx := &domain.AuthContext{
		UserID:    "user-123",
		Email:     "test@example.com",
		SessionID: "session-1",
	}
	ctx := context.WithValue(context.Background(), authContextKey, authCtx)
	result := GetAuthContext(ctx)
	if result == nil {
		t.Fatal("expected auth context to be returned")
	}
	if result.UserID != "user-123" {
		t.Errorf("expected user ID user-123, got %s", result.UserID)
	}
	if result.Email != "test@example.com" {
		t.Errorf("expected email test@example.com, got %s", result.Email)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authService := &mockAuthService{
		validateTokenFn: func(ctx context.Context, token string) (*domain.AuthContext, error) {
			if token != "valid-token" {
				t.Errorf("expected valid-token, got %q", token)
			}
			return &domain.AuthContext{UserID: "user-1", Email: "a@b.com", SessionID: "s-1"}, nil
		},
	}
	middleware := NewAuthMiddleware(authService)

	var seen *domain.AuthContext
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetAuthContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()

	middleware.Authenticate(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if seen == nil || seen.UserID != "user-1" {
		t.Errorf("expected auth context injected, got %+v", seen)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	middleware := NewAuthMiddleware(&mockAuthService{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	middleware.Authenticate(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestAuthMiddleware_TokenErrors(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		wantError string
	}{
		{"expired", domain.ErrTokenExpired, "token expired"},
		{"session revoked", domain.ErrSessionNotFound, "session not found"},
		{"invalid", domain.ErrTokenInvalid, "invalid token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			middleware := NewAuthMiddleware(&mockAuthService{
				validateTokenFn: func(ctx context.Context, token string) (*domain.AuthContext, error) {
					return nil, tc.err
				},
			})

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run with a rejected token")
			})

			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", "Bearer bad-token")
			rr := httptest.NewRecorder()

			middleware.Authenticate(handler).ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rr.Code)
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	middleware := NewLoggingMiddleware()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	middleware.Handler(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	middleware := NewRecoveryMiddleware()

	// Handler that panics
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	// Should not panic
	middleware.Handler(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	middleware := NewCORSMiddleware([]string{"https://example.com"})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()

	middleware.Handler(handler).ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Error("expected CORS headers for allowed origin")
	}

	// Disallowed origin gets no CORS headers
	req = httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()

	middleware.Handler(handler).ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no CORS headers for disallowed origin")
	}
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	middleware := NewCORSMiddleware([]string{"*"})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "https://anything.example")
	rr := httptest.NewRecorder()

	middleware.Handler(handler).ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "https://anything.example" {
		t.Error("expected CORS headers with wildcard config")
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	middleware := NewCORSMiddleware([]string{"*"})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the handler")
	})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()

	middleware.Handler(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rr.Code)
	}
}
