// Package wizard prompts interactively for cluster-creation parameters
// that were supplied neither on the command line nor in the config file.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/openbda/hdx/internal/mgmt"
)

// CompleteRequest prompts for every required creation field the request is
// still missing and fills in the answers. A request that is already
// complete prompts for nothing.
func CompleteRequest(ctx context.Context, req *mgmt.CreateRequest) error {
	var fields []huh.Field
	var nodeCountInput string

	if req.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Cluster Name").
			Placeholder("my-cluster").
			Value(&req.Name).
			Validate(notEmpty("cluster name")))
	}
	if req.NodeCount <= 0 {
		fields = append(fields, huh.NewInput().
			Title("Node Count").
			Description("Number of data nodes").
			Placeholder("4").
			Value(&nodeCountInput).
			Validate(validateNodeCount))
	}
	if req.Location == "" {
		fields = append(fields, huh.NewInput().
			Title("Location").
			Description("Region the cluster is placed in").
			Placeholder("westus").
			Value(&req.Location).
			Validate(notEmpty("location")))
	}
	if req.StorageAccountName == "" {
		fields = append(fields, huh.NewInput().
			Title("Storage Account Name").
			Value(&req.StorageAccountName).
			Validate(notEmpty("storage account name")))
	}
	if req.StorageAccountKey == "" {
		fields = append(fields, huh.NewInput().
			Title("Storage Account Key").
			EchoMode(huh.EchoModePassword).
			Value(&req.StorageAccountKey).
			Validate(notEmpty("storage account key")))
	}
	if req.StorageContainer == "" {
		fields = append(fields, huh.NewInput().
			Title("Storage Container").
			Value(&req.StorageContainer).
			Validate(notEmpty("storage container")))
	}
	if req.AdminUser == "" {
		fields = append(fields, huh.NewInput().
			Title("Admin User").
			Value(&req.AdminUser).
			Validate(notEmpty("admin user")))
	}
	if req.AdminPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("Admin Password").
			EchoMode(huh.EchoModePassword).
			Value(&req.AdminPassword).
			Validate(notEmpty("admin password")))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...).Title("Cluster Creation"))
	if err := form.RunWithContext(ctx); err != nil {
		return fmt.Errorf("prompting for cluster parameters: %w", err)
	}

	if nodeCountInput != "" {
		// Validated by the form, so this cannot fail.
		req.NodeCount, _ = strconv.Atoi(strings.TrimSpace(nodeCountInput))
	}
	return nil
}

// notEmpty rejects blank input.
func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

// validateNodeCount requires a positive integer.
func validateNodeCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("node count must be an integer")
	}
	if n <= 0 {
		return fmt.Errorf("node count must be positive")
	}
	return nil
}
