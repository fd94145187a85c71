package commands

import (
	"github.com/spf13/cobra"

	"github.com/openbda/hdx/cmd/hdx/handlers"
	"github.com/openbda/hdx/internal/mgmt"
)

// defaultConfigFile is used when no config file argument is given.
const defaultConfigFile = "cluster.yaml"

// configPath resolves the optional positional config file argument.
func configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultConfigFile
}

// Config returns the parent command for config-file operations.
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Stage cluster-creation parameters in a config file",
		Long: `Manage the versioned configuration files used to stage
cluster-creation parameters before submission.

All subcommands take an optional config file argument, defaulting to
cluster.yaml in the current directory.`,
	}

	cmd.AddCommand(configCreate())
	cmd.AddCommand(configShow())
	cmd.AddCommand(configSet())
	cmd.AddCommand(configStorage())
	cmd.AddCommand(configMetastore())

	return cmd
}

// setFlags binds the shared parameter flags and returns a collector that
// turns only the flags actually set into options.
func setFlags(cmd *cobra.Command) func() handlers.ConfigSetOptions {
	var (
		name               string
		nodeCount          int
		location           string
		storageAccountName string
		storageAccountKey  string
		storageContainer   string
		adminUser          string
		adminPassword      string
	)

	cmd.Flags().StringVar(&name, "name", "", "Cluster name")
	cmd.Flags().IntVar(&nodeCount, "nodes", 0, "Number of data nodes")
	cmd.Flags().StringVar(&location, "location", "", "Target location")
	cmd.Flags().StringVar(&storageAccountName, "storage-account-name", "", "Primary storage account name")
	cmd.Flags().StringVar(&storageAccountKey, "storage-account-key", "", "Primary storage account key")
	cmd.Flags().StringVar(&storageContainer, "storage-container", "", "Default storage container")
	cmd.Flags().StringVar(&adminUser, "username", "", "Cluster admin user")
	cmd.Flags().StringVar(&adminPassword, "password", "", "Cluster admin password")

	return func() handlers.ConfigSetOptions {
		var opts handlers.ConfigSetOptions
		if cmd.Flags().Changed("name") {
			opts.Name = &name
		}
		if cmd.Flags().Changed("nodes") {
			opts.NodeCount = &nodeCount
		}
		if cmd.Flags().Changed("location") {
			opts.Location = &location
		}
		if cmd.Flags().Changed("storage-account-name") {
			opts.StorageAccountName = &storageAccountName
		}
		if cmd.Flags().Changed("storage-account-key") {
			opts.StorageAccountKey = &storageAccountKey
		}
		if cmd.Flags().Changed("storage-container") {
			opts.StorageContainer = &storageContainer
		}
		if cmd.Flags().Changed("username") {
			opts.AdminUser = &adminUser
		}
		if cmd.Flags().Changed("password") {
			opts.AdminPassword = &adminPassword
		}
		return opts
	}
}

// configCreate returns the command that writes a fresh config file.
func configCreate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [file]",
		Short: "Create a new config file",
		Args:  cobra.MaximumNArgs(1),
	}
	collect := setFlags(cmd)
	cmd.RunE = func(_ *cobra.Command, args []string) error {
		return handlers.ConfigCreate(configPath(args), collect())
	}
	return cmd
}

// configShow returns the command that prints a config file.
func configShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Show a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ConfigShow(configPath(args))
		},
	}
}

// configSet returns the command that updates fields of a config file.
func configSet() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [file]",
		Short: "Set parameters in a config file",
		Args:  cobra.MaximumNArgs(1),
	}
	collect := setFlags(cmd)
	cmd.RunE = func(_ *cobra.Command, args []string) error {
		return handlers.ConfigSet(configPath(args), collect())
	}
	return cmd
}

// configStorage returns the command group for additional storage accounts.
func configStorage() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage additional storage accounts in a config file",
	}

	var name, key string
	add := &cobra.Command{
		Use:   "add [file]",
		Short: "Attach an additional storage account",
		Long: `Attach an additional storage account to the staged cluster.

Adding an account whose name is already attached replaces its key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ConfigStorageAdd(configPath(args), name, key)
		},
	}
	add.Flags().StringVar(&name, "name", "", "Storage account name")
	add.Flags().StringVar(&key, "key", "", "Storage account key")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("key")

	var removeName string
	remove := &cobra.Command{
		Use:   "remove [file]",
		Short: "Detach an additional storage account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ConfigStorageRemove(configPath(args), removeName)
		},
	}
	remove.Flags().StringVar(&removeName, "name", "", "Storage account name")
	_ = remove.MarkFlagRequired("name")

	cmd.AddCommand(add)
	cmd.AddCommand(remove)
	return cmd
}

// configMetastore returns the command group for external metastores.
func configMetastore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metastore",
		Short: "Manage external metastores in a config file",
	}

	var metastore mgmt.MetastoreConfig
	set := &cobra.Command{
		Use:   "set <kind> [file]",
		Short: "Point a metastore kind (e.g. hive, oozie) at an external database",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ConfigMetastoreSet(configPath(args[1:]), args[0], metastore)
		},
	}
	set.Flags().StringVar(&metastore.Server, "server", "", "Database server")
	set.Flags().StringVar(&metastore.Database, "database", "", "Database name")
	set.Flags().StringVar(&metastore.User, "user", "", "Database user")
	set.Flags().StringVar(&metastore.Password, "password", "", "Database password")
	_ = set.MarkFlagRequired("server")
	_ = set.MarkFlagRequired("database")
	_ = set.MarkFlagRequired("user")
	_ = set.MarkFlagRequired("password")

	clearCmd := &cobra.Command{
		Use:   "clear <kind> [file]",
		Short: "Remove a metastore setting",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ConfigMetastoreClear(configPath(args[1:]), args[0])
		},
	}

	cmd.AddCommand(set)
	cmd.AddCommand(clearCmd)
	return cmd
}
