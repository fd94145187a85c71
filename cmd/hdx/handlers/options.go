// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openbda/hdx/internal/credentials"
	"github.com/openbda/hdx/internal/mgmt"
	"github.com/openbda/hdx/internal/provisioning"
)

// DefaultEndpoint is the public management-service endpoint.
const DefaultEndpoint = "https://management.openbda.io"

// subscriptionEnvVar selects the subscription when no flag is given.
const subscriptionEnvVar = "HDX_SUBSCRIPTION"

// Global holds the persistent flags shared by every command.
type Global struct {
	Subscription string
	Endpoint     string
	Verbose      bool
}

// subscription resolves the subscription ID from the flag or environment.
func (g Global) subscription() (string, error) {
	if g.Subscription != "" {
		return g.Subscription, nil
	}
	if sub := os.Getenv(subscriptionEnvVar); sub != "" {
		return sub, nil
	}
	return "", fmt.Errorf("no subscription selected (use --subscription or set %s)", subscriptionEnvVar)
}

// Factory function variables - can be replaced in tests.
var (
	// newManagementClient creates the client for the management service.
	newManagementClient = func(endpoint, subscription, token string, log logr.Logger) mgmt.Client {
		return mgmt.NewHTTPClient(endpoint, subscription, token, log)
	}

	// resolveToken looks up the credential for a subscription.
	resolveToken = credentials.Token
)

// newLogger builds the CLI logger. Progress lines go to stderr; --verbose
// additionally surfaces per-request debug output.
func newLogger(verbose bool) logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}

// workflowFor assembles the provisioning workflow for the selected
// subscription.
func workflowFor(g Global) (*provisioning.Workflow, error) {
	sub, err := g.subscription()
	if err != nil {
		return nil, err
	}

	token, err := resolveToken(sub)
	if err != nil {
		return nil, err
	}

	log := newLogger(g.Verbose)
	client := newManagementClient(g.Endpoint, sub, token, log)
	return provisioning.NewWorkflow(client, log), nil
}
