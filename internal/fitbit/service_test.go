package fitbit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julianstephens/vitalog/internal/keyring"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
}

func TestServiceUsesValidTokenWithoutRefresh(t *testing.T) {
	refreshCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			refreshCalled = true
			t.Error("no refresh expected for a valid token")
			return
		}
		if r.Header.Get("Authorization") != "Bearer valid-token" {
			t.Errorf("expected the stored token, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"summary": {"caloriesOut": 2000, "steps": 5000}, "activities": []}`))
	}))
	defer srv.Close()

	svc := NewService(NewClient("id", "secret", "", WithBaseURLs(srv.URL, srv.URL, srv.URL)))
	svc.now = fixedNow
	svc.load = func() (Tokens, error) {
		return Tokens{AccessToken: "valid-token", ExpiresAt: fixedNow().Add(time.Hour)}, nil
	}
	svc.save = func(Tokens) error {
		t.Error("no save expected for a valid token")
		return nil
	}

	day, err := svc.DailyActivity(context.Background(), "2025-07-01")
	if err != nil {
		t.Fatalf("DailyActivity failed: %v", err)
	}
	if day.Summary == nil || day.Summary.Steps != 5000 {
		t.Errorf("unexpected summary: %+v", day.Summary)
	}
	if refreshCalled {
		t.Error("refresh must not run when the token is fresh")
	}
}

func TestServiceRefreshesExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			r.ParseForm()
			if r.PostForm.Get("grant_type") != "refresh_token" {
				t.Errorf("expected refresh_token grant, got %q", r.PostForm.Get("grant_type"))
			}
			if r.PostForm.Get("refresh_token") != "rt-old" {
				t.Errorf("expected rt-old, got %q", r.PostForm.Get("refresh_token"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "at-new", "refresh_token": "rt-new", "expires_in": 28800,
			})
			return
		}
		if r.Header.Get("Authorization") != "Bearer at-new" {
			t.Errorf("expected the refreshed token, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"activities": []}`))
	}))
	defer srv.Close()

	var saved *Tokens
	svc := NewService(NewClient("id", "secret", "", WithBaseURLs(srv.URL, srv.URL, srv.URL)))
	svc.now = fixedNow
	svc.load = func() (Tokens, error) {
		return Tokens{AccessToken: "at-old", RefreshToken: "rt-old", ExpiresAt: fixedNow().Add(-time.Hour)}, nil
	}
	svc.save = func(tok Tokens) error {
		saved = &tok
		return nil
	}

	if _, err := svc.DailyActivity(context.Background(), "2025-07-01"); err != nil {
		t.Fatalf("DailyActivity failed: %v", err)
	}
	if saved == nil {
		t.Fatal("expected the rotated pair to be persisted")
	}
	if saved.AccessToken != "at-new" || saved.RefreshToken != "rt-new" {
		t.Errorf("unexpected saved tokens: %+v", saved)
	}
}

func TestServiceFailsWhenNotConnected(t *testing.T) {
	svc := NewService(NewClient("id", "secret", ""))
	svc.load = func() (Tokens, error) {
		return Tokens{}, keyring.ErrNotFound
	}

	if _, err := svc.DailyActivity(context.Background(), "2025-07-01"); err == nil {
		t.Error("expected an error when no tokens are stored")
	}
}
