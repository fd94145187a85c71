// Package mgmt provides a client for the cluster resource-management
// service.
package mgmt

import (
	"context"
)

// Client defines the calls the provisioning workflow needs against the
// management service. It abstracts the underlying transport.
type Client interface {
	// ListClusters returns every cluster visible to the subscription.
	// There is no get-by-name call; callers scan the list.
	ListClusters(ctx context.Context) (ListResponse, error)

	// CreateCluster submits a cluster-creation request. A 200 or 202
	// status means the request was accepted; provisioning continues
	// asynchronously.
	CreateCluster(ctx context.Context, req CreateRequest) (StatusResponse, error)

	// DeleteCluster tears down the named cluster in the given location.
	DeleteCluster(ctx context.Context, name, location string) error

	// ValidateLocation reports whether the location is registered for the
	// subscription (200) or unknown (404).
	ValidateLocation(ctx context.Context, location string) (StatusResponse, error)

	// RegisterLocation registers a location with the subscription.
	// Registration completes asynchronously; poll ValidateLocation to
	// observe it.
	RegisterLocation(ctx context.Context, location string) error
}
