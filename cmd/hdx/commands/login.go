package commands

import (
	"github.com/spf13/cobra"

	"github.com/openbda/hdx/cmd/hdx/handlers"
)

// Login returns the command that stores a management-service credential in
// the OS keyring.
func Login() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the credential for a subscription",
		Long: `Store the management-service credential for a subscription in
the OS keyring. Subsequent commands pick it up automatically; the
HDX_TOKEN environment variable always takes precedence.

Example:
  hdx login -s my-subscription`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Login(cmd.Context(), global, token)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Credential token (prompted for if omitted)")

	return cmd
}
