package provisioning

import (
	"fmt"

	"github.com/openbda/hdx/internal/mgmt"
)

// ConflictError reports that a cluster with the requested name already
// exists. No remote mutation was performed.
type ConflictError struct {
	Cluster *mgmt.Cluster
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cluster %s already exists in %s", e.Cluster.Name, e.Cluster.Location)
}

// RemoteRejectionError reports that the management service answered a call
// with an unexpected status code. The call is not retried.
type RemoteRejectionError struct {
	Op         string
	StatusCode int
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("%s request failed with status %d", e.Op, e.StatusCode)
}

// NotFoundError reports that no cluster with the given name is visible to
// the subscription.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cluster %s not found", e.Name)
}

// ClusterFailedError reports that the cluster reached a terminal state with
// an error. The observed cluster is attached for reporting.
type ClusterFailedError struct {
	Cluster *mgmt.Cluster
}

func (e *ClusterFailedError) Error() string {
	return fmt.Sprintf("cluster %s failed to provision: %s", e.Cluster.Name, e.Cluster.Error)
}

// ValidationError reports malformed or missing creation parameters. It is
// raised before any remote call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
