package mgmt

import (
	"context"
	"net/http"
)

// MockClient is a mock implementation of Client.
type MockClient struct {
	ListClustersFunc     func(ctx context.Context) (ListResponse, error)
	CreateClusterFunc    func(ctx context.Context, req CreateRequest) (StatusResponse, error)
	DeleteClusterFunc    func(ctx context.Context, name, location string) error
	ValidateLocationFunc func(ctx context.Context, location string) (StatusResponse, error)
	RegisterLocationFunc func(ctx context.Context, location string) error
}

// Ensure interface compliance.
var _ Client = (*MockClient)(nil)

// ListClusters mocks listing clusters.
func (m *MockClient) ListClusters(ctx context.Context) (ListResponse, error) {
	if m.ListClustersFunc != nil {
		return m.ListClustersFunc(ctx)
	}
	return ListResponse{StatusCode: http.StatusOK}, nil
}

// CreateCluster mocks submitting a creation request.
func (m *MockClient) CreateCluster(ctx context.Context, req CreateRequest) (StatusResponse, error) {
	if m.CreateClusterFunc != nil {
		return m.CreateClusterFunc(ctx, req)
	}
	return StatusResponse{StatusCode: http.StatusOK}, nil
}

// DeleteCluster mocks cluster deletion.
func (m *MockClient) DeleteCluster(ctx context.Context, name, location string) error {
	if m.DeleteClusterFunc != nil {
		return m.DeleteClusterFunc(ctx, name, location)
	}
	return nil
}

// ValidateLocation mocks location validation.
func (m *MockClient) ValidateLocation(ctx context.Context, location string) (StatusResponse, error) {
	if m.ValidateLocationFunc != nil {
		return m.ValidateLocationFunc(ctx, location)
	}
	return StatusResponse{StatusCode: http.StatusOK}, nil
}

// RegisterLocation mocks location registration.
func (m *MockClient) RegisterLocation(ctx context.Context, location string) error {
	if m.RegisterLocationFunc != nil {
		return m.RegisterLocationFunc(ctx, location)
	}
	return nil
}
