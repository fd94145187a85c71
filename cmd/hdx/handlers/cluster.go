package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openbda/hdx/internal/config"
	"github.com/openbda/hdx/internal/config/wizard"
	"github.com/openbda/hdx/internal/mgmt"
	"github.com/openbda/hdx/internal/provisioning"
)

// promptMissing fills in creation parameters interactively - replaced in
// tests.
var promptMissing = wizard.CompleteRequest

// CreateClusterOptions carries the cluster create flags. Zero values mean
// "not given"; the config file and prompts fill the gaps.
type CreateClusterOptions struct {
	ConfigPath string

	Name               string
	NodeCount          int
	Location           string
	StorageAccountName string
	StorageAccountKey  string
	StorageContainer   string
	AdminUser          string
	AdminPassword      string
}

// ClusterCreate handles the cluster create command.
//
// Parameters are resolved flag-over-config-over-prompt, then the
// provisioning workflow runs to a terminal state. On conflict or
// provisioning failure the observed cluster is printed alongside the
// error.
func ClusterCreate(ctx context.Context, g Global, opts CreateClusterOptions) error {
	req := mgmt.CreateRequest{SchemaVersion: config.SchemaVersion}

	if opts.ConfigPath != "" {
		doc, err := config.NewStore(opts.ConfigPath).LoadCompatible()
		if err != nil {
			return err
		}
		req = doc.CreateRequest()
	}
	opts.apply(&req)

	if err := promptMissing(ctx, &req); err != nil {
		return err
	}

	w, err := workflowFor(g)
	if err != nil {
		return err
	}

	cluster, err := w.Create(ctx, req)
	if err != nil {
		var conflict *provisioning.ConflictError
		if errors.As(err, &conflict) {
			fmt.Println(renderCluster(conflict.Cluster))
		}
		var failed *provisioning.ClusterFailedError
		if errors.As(err, &failed) {
			fmt.Println(renderCluster(failed.Cluster))
		}
		return err
	}

	fmt.Println(renderCluster(cluster))
	return nil
}

// apply overlays explicitly given flags onto the request.
func (o CreateClusterOptions) apply(req *mgmt.CreateRequest) {
	if o.Name != "" {
		req.Name = o.Name
	}
	if o.NodeCount > 0 {
		req.NodeCount = o.NodeCount
	}
	if o.Location != "" {
		req.Location = o.Location
	}
	if o.StorageAccountName != "" {
		req.StorageAccountName = o.StorageAccountName
	}
	if o.StorageAccountKey != "" {
		req.StorageAccountKey = o.StorageAccountKey
	}
	if o.StorageContainer != "" {
		req.StorageContainer = o.StorageContainer
	}
	if o.AdminUser != "" {
		req.AdminUser = o.AdminUser
	}
	if o.AdminPassword != "" {
		req.AdminPassword = o.AdminPassword
	}
}

// ClusterShow handles the cluster show command.
func ClusterShow(ctx context.Context, g Global, name string) error {
	w, err := workflowFor(g)
	if err != nil {
		return err
	}

	cluster, err := w.FetchByName(ctx, name)
	if err != nil {
		return err
	}

	fmt.Println(renderCluster(cluster))
	return nil
}

// ClusterList handles the cluster list command.
func ClusterList(ctx context.Context, g Global) error {
	w, err := workflowFor(g)
	if err != nil {
		return err
	}

	resp, err := w.Client.ListClusters(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clusters: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("list clusters returned status %d", resp.StatusCode)
	}

	fmt.Print(renderClusterTable(resp.Clusters))
	return nil
}

// ClusterDelete handles the cluster delete command.
func ClusterDelete(ctx context.Context, g Global, name string) error {
	w, err := workflowFor(g)
	if err != nil {
		return err
	}

	if err := w.Delete(ctx, name); err != nil {
		return err
	}

	fmt.Printf("Deleted cluster %s\n", name)
	return nil
}
