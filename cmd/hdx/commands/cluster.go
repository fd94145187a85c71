package commands

import (
	"github.com/spf13/cobra"

	"github.com/openbda/hdx/cmd/hdx/handlers"
)

// Cluster returns the parent command for cluster lifecycle operations.
func Cluster() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Create, inspect, list and delete clusters",
	}

	cmd.AddCommand(clusterCreate())
	cmd.AddCommand(clusterShow())
	cmd.AddCommand(clusterList())
	cmd.AddCommand(clusterDelete())

	return cmd
}

// clusterCreate returns the command for provisioning a new cluster.
//
// Creation parameters are resolved in priority order: explicit flag, then
// the config file, then an interactive prompt. The command blocks until
// the cluster reaches a terminal state.
func clusterCreate() *cobra.Command {
	var opts handlers.CreateClusterOptions

	cmd := &cobra.Command{
		Use:   "create [config-file]",
		Short: "Provision a new cluster",
		Long: `Provision a new cluster through the management service.

The command checks that no cluster with the same name exists, registers
the target location with the subscription if the service does not know it
yet, submits the creation request, and waits for the cluster to become
operational.

Parameters missing from both flags and the config file are prompted for
interactively.

Examples:
  # Create from a staged config file
  hdx cluster create cluster.yaml

  # Create from flags only, prompting for the rest
  hdx cluster create --name c1 --nodes 4 --location westus`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.ConfigPath = args[0]
			}
			return handlers.ClusterCreate(cmd.Context(), global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Cluster name")
	cmd.Flags().IntVar(&opts.NodeCount, "nodes", 0, "Number of data nodes")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Target location")
	cmd.Flags().StringVar(&opts.StorageAccountName, "storage-account-name", "", "Primary storage account name")
	cmd.Flags().StringVar(&opts.StorageAccountKey, "storage-account-key", "", "Primary storage account key")
	cmd.Flags().StringVar(&opts.StorageContainer, "storage-container", "", "Default storage container")
	cmd.Flags().StringVar(&opts.AdminUser, "username", "", "Cluster admin user")
	cmd.Flags().StringVar(&opts.AdminPassword, "password", "", "Cluster admin password")

	return cmd
}

// clusterShow returns the command for inspecting a single cluster.
func clusterShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.ClusterShow(cmd.Context(), global, args[0])
		},
	}
}

// clusterList returns the command for listing all clusters.
func clusterList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clusters visible to the subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ClusterList(cmd.Context(), global)
		},
	}
}

// clusterDelete returns the command for tearing down a cluster.
func clusterDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a cluster",
		Long: `Delete a cluster and its compute resources.

The storage accounts attached to the cluster are not touched.

WARNING: This operation is irreversible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.ClusterDelete(cmd.Context(), global, args[0])
		},
	}
}
