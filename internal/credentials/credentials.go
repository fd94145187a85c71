// Package credentials resolves the management-service credential for a
// subscription.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// TokenEnvVar overrides any stored credential when set.
const TokenEnvVar = "HDX_TOKEN"

// keyringService namespaces hdx entries in the OS keyring.
const keyringService = "hdx"

// Token returns the credential for the given subscription: the HDX_TOKEN
// environment variable if set, otherwise the OS keyring entry written by
// `hdx login`.
func Token(subscription string) (string, error) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}

	token, err := keyring.Get(keyringService, subscription)
	if err != nil {
		return "", fmt.Errorf("no credential for subscription %s (set %s or run 'hdx login'): %w", subscription, TokenEnvVar, err)
	}
	return token, nil
}

// Store saves the credential for a subscription in the OS keyring.
func Store(subscription, token string) error {
	if err := keyring.Set(keyringService, subscription, token); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// Delete removes the stored credential for a subscription. Deleting an
// absent entry is not an error.
func Delete(subscription string) error {
	err := keyring.Delete(keyringService, subscription)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
