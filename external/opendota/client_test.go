package opendota

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/usecase"
)

func TestClient_FetchMatchups(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/heroes/1/matchups" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"hero_id": 2, "games_played": 20, "wins": 13}]`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	raw, err := client.FetchMatchups(context.Background(), hero.Hero{ID: 1, Name: "Anti-Mage"})
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected a raw payload")
	}
}

func TestClient_FetchMatchups_NotFoundStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.FetchMatchups(context.Background(), hero.Hero{ID: 999, Name: "Unknown"})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchMatchups_EmptyBodyIsNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.FetchMatchups(context.Background(), hero.Hero{ID: 1, Name: "Anti-Mage"})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an empty body, got %v", err)
	}
}

func TestClient_FetchMatchups_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse every connection

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: time.Second, MaxRetries: 0})

	_, err := client.FetchMatchups(context.Background(), hero.Hero{ID: 1, Name: "Anti-Mage"})
	if !errors.Is(err, usecase.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestClient_FetchMatchups_RetriesTransientStatusOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[{"hero_id": 2, "games_played": 20, "wins": 13}]`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: time.Second, MaxRetries: 1})

	if _, err := client.FetchMatchups(context.Background(), hero.Hero{ID: 1, Name: "Anti-Mage"}); err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected exactly two attempts, got %d", calls.Load())
	}
}

func TestClient_FetchMatchups_NoRetryOnNotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: time.Second, MaxRetries: 2})

	_, err := client.FetchMatchups(context.Background(), hero.Hero{ID: 1, Name: "Anti-Mage"})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("not-found must not be retried, got %d attempts", calls.Load())
	}
}
