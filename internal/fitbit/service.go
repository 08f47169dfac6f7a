package fitbit

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/vitalog/internal/logger"
	"github.com/julianstephens/vitalog/internal/models"
)

// Service wraps a Client with stored-credential handling: it loads the token
// pair, refreshes it before expiry, and persists the rotated pair. It is the
// ActivitySource the sync reconciler consumes.
type Service struct {
	client *Client

	// overridable in tests
	load func() (Tokens, error)
	save func(Tokens) error
	now  func() time.Time
}

func NewService(client *Client) *Service {
	return &Service{
		client: client,
		load:   LoadTokens,
		save:   SaveTokens,
		now:    time.Now,
	}
}

func (s *Service) freshAccessToken(ctx context.Context) (string, error) {
	tokens, err := s.load()
	if err != nil {
		return "", fmt.Errorf("fitbit is not connected: %w", err)
	}
	if !tokens.Expired(s.now()) {
		return tokens.AccessToken, nil
	}

	refreshed, err := s.client.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}
	if err := s.save(refreshed); err != nil {
		// The refreshed token still works for this call.
		logger.Warn("Failed to persist refreshed tokens", "error", err)
	}
	return refreshed.AccessToken, nil
}

// DailyActivity fetches one date's summary and activities using the stored
// credentials.
func (s *Service) DailyActivity(ctx context.Context, date string) (*models.DailyFitbitData, error) {
	token, err := s.freshAccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.DailyActivity(ctx, token, date)
}

// Disconnect revokes the stored credentials with the provider and removes
// them from the keyring.
func (s *Service) Disconnect(ctx context.Context) error {
	tokens, err := s.load()
	if err != nil {
		return fmt.Errorf("fitbit is not connected: %w", err)
	}
	if err := s.client.Revoke(ctx, tokens.AccessToken); err != nil {
		logger.Warn("Token revocation failed, removing local credentials anyway", "error", err)
	}
	return DeleteTokens()
}
