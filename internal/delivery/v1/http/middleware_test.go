package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matbakh-tech/go-backend/internal/cfg"
	"github.com/matbakh-tech/go-backend/pkg/e"
)

func newTestAuth() *AdminAuth {
	return NewAdminAuth(&cfg.AdminCfg{
		Secret:     "super-secret",
		JWTKey:     "signing-key",
		SessionTTL: time.Hour,
	})
}

func TestCheckSecret(t *testing.T) {
	auth := newTestAuth()

	if err := auth.CheckSecret("super-secret"); err != nil {
		t.Fatalf("valid secret rejected: %v", err)
	}
	if err := auth.CheckSecret("guess"); !errors.Is(err, e.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if err := auth.CheckSecret(""); !errors.Is(err, e.ErrInvalidCredentials) {
		t.Errorf("empty secret: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundtrip(t *testing.T) {
	auth := newTestAuth()

	token, err := auth.IssueToken(time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if err := auth.verifyToken(token); err != nil {
		t.Errorf("fresh token rejected: %v", err)
	}
}

func TestVerifyTokenWrongKey(t *testing.T) {
	other := NewAdminAuth(&cfg.AdminCfg{
		Secret:     "super-secret",
		JWTKey:     "different-key",
		SessionTTL: time.Hour,
	})

	token, err := other.IssueToken(time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if err := newTestAuth().verifyToken(token); !errors.Is(err, e.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	auth := newTestAuth()

	token, err := auth.IssueToken(time.Now().Add(-2 * time.Hour))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if err := auth.verifyToken(token); !errors.Is(err, e.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	if err := newTestAuth().verifyToken("not.a.token"); !errors.Is(err, e.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestMiddleware(t *testing.T) {
	auth := newTestAuth()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := auth.Middleware(next)

	token, err := auth.IssueToken(time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid token", header: "Bearer " + token, want: http.StatusNoContent},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "no bearer prefix", header: token, want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + token + "x", want: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
