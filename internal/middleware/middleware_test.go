package middleware

import (
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/token"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func identityEcho(t *testing.T, want Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err := IdentityFromContext(r.Context())
		if err != nil {
			t.Errorf("identity missing: %v", err)
		}
		if got != want {
			t.Errorf("identity = %+v, want %+v", got, want)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth(t *testing.T) {
	user := &model.User{ID: 7, Role: model.RolePlayer}
	tok, err := token.GenerateAccessToken(user, "sess", secret, time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	h := Auth(secret)(identityEcho(t, Identity{UserID: 7, Role: model.RolePlayer, SessionID: "sess"}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid", header: "Bearer " + tok, want: http.StatusNoContent},
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "no bearer prefix", header: tok, want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/game/balance", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RequireAdmin(ok)

	tests := []struct {
		name string
		id   *Identity
		want int
	}{
		{name: "admin", id: &Identity{UserID: 1, Role: model.RoleAdmin}, want: http.StatusOK},
		{name: "player", id: &Identity{UserID: 2, Role: model.RolePlayer}, want: http.StatusForbidden},
		{name: "anonymous", id: nil, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/admin/reports", nil)
			if tt.id != nil {
				r = r.WithContext(WithIdentity(r.Context(), *tt.id))
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d", w.Code)
	}
}
