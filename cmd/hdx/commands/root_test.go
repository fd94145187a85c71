package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "hdx", cmd.Use)
	assert.Equal(t, "Provision and manage HDX compute clusters", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"cluster",
		"config",
		"login",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
}

func TestCluster_HasSubcommands(t *testing.T) {
	cmd := Cluster()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"create", "show", "list", "delete"} {
		assert.True(t, names[expected], "Expected subcommand %s not found", expected)
	}
}

func TestConfig_HasSubcommands(t *testing.T) {
	cmd := Config()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"create", "show", "set", "storage", "metastore"} {
		assert.True(t, names[expected], "Expected subcommand %s not found", expected)
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "cluster.yaml", configPath(nil))
	assert.Equal(t, "other.yaml", configPath([]string{"other.yaml"}))
}
