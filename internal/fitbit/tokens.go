package fitbit

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/vitalog/internal/constants"
	"github.com/julianstephens/vitalog/internal/keyring"
)

// Token storage. The pair lives in the OS keyring, never in the document.

// SaveTokens stores the token pair in the OS keyring.
func SaveTokens(t Tokens) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to serialize tokens: %w", err)
	}
	return keyring.Set(constants.KeyringFitbitUser, string(data))
}

// LoadTokens retrieves the stored token pair. Returns keyring.ErrNotFound
// when the account has never been connected.
func LoadTokens() (Tokens, error) {
	raw, err := keyring.Get(constants.KeyringFitbitUser)
	if err != nil {
		return Tokens{}, err
	}
	var t Tokens
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return Tokens{}, fmt.Errorf("stored tokens are unreadable: %w", err)
	}
	return t, nil
}

// DeleteTokens removes the stored token pair.
func DeleteTokens() error {
	return keyring.Delete(constants.KeyringFitbitUser)
}
