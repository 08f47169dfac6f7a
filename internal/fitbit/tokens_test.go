package fitbit

import (
	"errors"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/vitalog/internal/keyring"
)

func TestTokenStorageRoundTrip(t *testing.T) {
	gokeyring.MockInit()

	tokens := Tokens{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		ExpiresAt:    time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC),
	}
	if err := SaveTokens(tokens); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}

	got, err := LoadTokens()
	if err != nil {
		t.Fatalf("LoadTokens failed: %v", err)
	}
	if got.AccessToken != tokens.AccessToken || got.RefreshToken != tokens.RefreshToken {
		t.Errorf("unexpected tokens: %+v", got)
	}
	if !got.ExpiresAt.Equal(tokens.ExpiresAt) {
		t.Errorf("expiry mismatch: %v != %v", got.ExpiresAt, tokens.ExpiresAt)
	}

	if err := DeleteTokens(); err != nil {
		t.Fatalf("DeleteTokens failed: %v", err)
	}
	if _, err := LoadTokens(); !errors.Is(err, keyring.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
