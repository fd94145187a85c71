package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/openbda/hdx/internal/credentials"
)

// storeToken persists a credential - replaced in tests.
var storeToken = credentials.Store

// Login handles the login command: it stores the credential for the
// selected subscription in the OS keyring, prompting for it when not given
// on the command line.
func Login(ctx context.Context, g Global, token string) error {
	sub, err := g.subscription()
	if err != nil {
		return err
	}

	if token == "" {
		prompt := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Credential Token").
				Description(fmt.Sprintf("Management-service credential for subscription %s", sub)).
				EchoMode(huh.EchoModePassword).
				Value(&token).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("token must not be empty")
					}
					return nil
				}),
		))
		if err := prompt.RunWithContext(ctx); err != nil {
			return fmt.Errorf("prompting for token: %w", err)
		}
	}

	if err := storeToken(sub, token); err != nil {
		return err
	}

	fmt.Printf("Stored credential for subscription %s\n", sub)
	return nil
}
