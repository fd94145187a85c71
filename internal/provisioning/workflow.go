// Package provisioning implements the cluster-provisioning workflow: the
// ordered sequence of management-service calls that takes a cluster from
// requested to operational, with bounded-retry polling on the asynchronous
// steps.
package provisioning

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	"github.com/openbda/hdx/internal/mgmt"
	"github.com/openbda/hdx/internal/util/poll"
)

// Workflow drives cluster lifecycle operations against the management
// service. It owns no remote state; the service is the source of truth and
// the workflow only observes it.
type Workflow struct {
	Client mgmt.Client
	Log    logr.Logger

	// pollOpts tune the polling sessions; defaults are 1s interval and a
	// ceiling of 25 failures. Tests shorten the interval.
	pollOpts []poll.Option
}

// NewWorkflow creates a workflow over the given client.
func NewWorkflow(client mgmt.Client, log logr.Logger, opts ...poll.Option) *Workflow {
	return &Workflow{Client: client, Log: log, pollOpts: opts}
}

// Create provisions a new cluster and blocks until it reaches a terminal
// state. On success it returns the cluster as last observed; failures are
// reported through the typed errors in this package.
//
// A cluster that was submitted but failed to come up is left as-is; there
// is no rollback.
func (w *Workflow) Create(ctx context.Context, req mgmt.CreateRequest) (*mgmt.Cluster, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	w.Log.Info("checking for existing cluster", "cluster", req.Name)
	existing, err := w.lookup(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing cluster: %w", err)
	}
	if existing != nil {
		return nil, &ConflictError{Cluster: existing}
	}

	if err := w.ensureLocation(ctx, req.Location); err != nil {
		return nil, err
	}

	w.Log.Info("submitting cluster creation", "cluster", req.Name, "location", req.Location, "nodes", req.NodeCount)
	resp, err := w.Client.CreateCluster(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit cluster creation: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, &RemoteRejectionError{Op: "create cluster", StatusCode: resp.StatusCode}
	}

	return w.waitReady(ctx, req.Name)
}

// FetchByName returns the cluster with the given name, matched
// case-insensitively. The management service has no get-by-name call, so
// this lists all clusters and scans.
func (w *Workflow) FetchByName(ctx context.Context, name string) (*mgmt.Cluster, error) {
	cluster, err := w.lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	if cluster == nil {
		return nil, &NotFoundError{Name: name}
	}
	return cluster, nil
}

// Delete tears down the named cluster, resolving its location through a
// list scan first.
func (w *Workflow) Delete(ctx context.Context, name string) error {
	cluster, err := w.FetchByName(ctx, name)
	if err != nil {
		return err
	}
	w.Log.Info("deleting cluster", "cluster", cluster.Name, "location", cluster.Location)
	return w.Client.DeleteCluster(ctx, cluster.Name, cluster.Location)
}

// ensureLocation checks that the target location is registered for the
// subscription, registering it and polling until the registration lands if
// the service does not know it yet.
func (w *Workflow) ensureLocation(ctx context.Context, location string) error {
	resp, err := w.Client.ValidateLocation(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to validate location %s: %w", location, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		w.Log.Info("registering location", "location", location)
		if err := w.Client.RegisterLocation(ctx, location); err != nil {
			return fmt.Errorf("failed to register location %s: %w", location, err)
		}
		_, err := poll.Until(ctx,
			func(ctx context.Context) (mgmt.StatusResponse, error) {
				return w.Client.ValidateLocation(ctx, location)
			},
			locationValidated,
			w.pollOpts...)
		if err != nil && !errors.Is(err, poll.ErrExhausted) {
			return fmt.Errorf("waiting for location %s: %w", location, err)
		}
		// On exhaustion the creation request is still submitted; the
		// service rejects it if registration never landed.
		return nil
	default:
		return &RemoteRejectionError{Op: "validate location", StatusCode: resp.StatusCode}
	}
}

// waitReady polls until the cluster reaches a terminal state, then
// re-fetches it for a final verdict. Poll exhaustion is not success: the
// final fetch decides either way.
func (w *Workflow) waitReady(ctx context.Context, name string) (*mgmt.Cluster, error) {
	w.Log.Info("waiting for cluster to become operational", "cluster", name)
	_, err := poll.Until(ctx,
		func(ctx context.Context) (*mgmt.Cluster, error) {
			cluster, err := w.lookup(ctx, name)
			if err != nil {
				return nil, err
			}
			if cluster == nil {
				return nil, fmt.Errorf("cluster %s not in listing", name)
			}
			return cluster, nil
		},
		clusterReady,
		w.pollOpts...)
	if err != nil && !errors.Is(err, poll.ErrExhausted) {
		return nil, fmt.Errorf("waiting for cluster %s: %w", name, err)
	}

	cluster, err := w.lookup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cluster %s after provisioning: %w", name, err)
	}
	if cluster == nil {
		return nil, &NotFoundError{Name: name}
	}
	if cluster.Error != "" {
		return nil, &ClusterFailedError{Cluster: cluster}
	}
	w.Log.Info("cluster provisioned", "cluster", cluster.Name, "state", cluster.State)
	return cluster, nil
}

// lookup scans the cluster listing for a case-insensitive name match. A
// nil cluster with nil error means the name is absent.
func (w *Workflow) lookup(ctx context.Context, name string) (*mgmt.Cluster, error) {
	resp, err := w.Client.ListClusters(ctx)
	if err != nil {
		return nil, err
	}
	for i := range resp.Clusters {
		if strings.EqualFold(resp.Clusters[i].Name, name) {
			return &resp.Clusters[i], nil
		}
	}
	return nil, nil
}

// clusterReady reports whether a cluster state is terminal: operational,
// running, errored, or carrying an error message. Requested, registering
// and unknown states keep the poll going.
func clusterReady(cluster *mgmt.Cluster) bool {
	if cluster == nil {
		return false
	}
	switch cluster.State {
	case mgmt.StateOperational, mgmt.StateRunning, mgmt.StateError:
		return true
	}
	return cluster.Error != ""
}

// locationValidated reports whether a validate-location probe is terminal.
func locationValidated(resp mgmt.StatusResponse) bool {
	return resp.StatusCode == http.StatusOK
}

// validateRequest checks the required creation parameters before any
// remote call is made.
func validateRequest(req mgmt.CreateRequest) error {
	if req.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if req.NodeCount <= 0 {
		return &ValidationError{Field: "node count", Reason: "must be a positive integer"}
	}
	if req.Location == "" {
		return &ValidationError{Field: "location", Reason: "must not be empty"}
	}
	if req.StorageAccountName == "" {
		return &ValidationError{Field: "storage account name", Reason: "must not be empty"}
	}
	if req.StorageAccountKey == "" {
		return &ValidationError{Field: "storage account key", Reason: "must not be empty"}
	}
	if req.StorageContainer == "" {
		return &ValidationError{Field: "storage container", Reason: "must not be empty"}
	}
	if req.AdminUser == "" {
		return &ValidationError{Field: "admin user", Reason: "must not be empty"}
	}
	if req.AdminPassword == "" {
		return &ValidationError{Field: "admin password", Reason: "must not be empty"}
	}
	seen := make(map[string]struct{}, len(req.AdditionalStorageAccounts))
	for _, account := range req.AdditionalStorageAccounts {
		if _, dup := seen[account.Name]; dup {
			return &ValidationError{Field: "additional storage accounts", Reason: fmt.Sprintf("duplicate account %s", account.Name)}
		}
		seen[account.Name] = struct{}{}
	}
	return nil
}
