// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/openbda/hdx/cmd/hdx/handlers"
)

var global handlers.Global

// Root returns the root command for the hdx CLI.
//
// The root command serves as the entry point and parent for all
// subcommands. It provides basic CLI metadata and organizes the command
// hierarchy.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hdx",
		Short: "Provision and manage HDX compute clusters",
	}

	cmd.PersistentFlags().StringVarP(&global.Subscription, "subscription", "s", "", "Subscription ID (default: HDX_SUBSCRIPTION)")
	cmd.PersistentFlags().StringVar(&global.Endpoint, "endpoint", handlers.DefaultEndpoint, "Management service endpoint")
	cmd.PersistentFlags().BoolVar(&global.Verbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(Cluster())
	cmd.AddCommand(Config())
	cmd.AddCommand(Login())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
