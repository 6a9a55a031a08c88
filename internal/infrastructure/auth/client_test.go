package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshroute/admin-api/internal/infrastructure/auth"
)

func TestCreateAccountSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/users" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer service-key" {
			t.Errorf("unexpected authorization header: %s", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "alice@example.com" {
			t.Errorf("unexpected email: %v", body["email"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "11111111-2222-3333-4444-555555555555"})
	}))
	defer server.Close()

	client := auth.NewClient(server.URL, "service-key")
	defer client.Close()

	id, err := client.CreateAccount(context.Background(), "alice@example.com", "s3cret!pw1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "11111111-2222-3333-4444-555555555555" {
		t.Fatalf("unexpected id: %s", id)
	}
}

func TestCreateAccountEmailTaken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "email already registered"})
	}))
	defer server.Close()

	client := auth.NewClient(server.URL, "service-key")
	defer client.Close()

	_, err := client.CreateAccount(context.Background(), "alice@example.com", "s3cret!pw1")
	if !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreateAccountServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "database unavailable"})
	}))
	defer server.Close()

	client := auth.NewClient(server.URL, "service-key")
	defer client.Close()

	_, err := client.CreateAccount(context.Background(), "alice@example.com", "s3cret!pw1")
	if err == nil {
		t.Fatal("expected error")
	}
}
