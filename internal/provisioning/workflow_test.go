package provisioning

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbda/hdx/internal/mgmt"
	"github.com/openbda/hdx/internal/util/poll"
)

func validRequest() mgmt.CreateRequest {
	return mgmt.CreateRequest{
		SchemaVersion:      1.0,
		Name:               "c1",
		NodeCount:          4,
		Location:           "westus",
		StorageAccountName: "primary",
		StorageAccountKey:  "key",
		StorageContainer:   "deploy",
		AdminUser:          "admin",
		AdminPassword:      "pw",
	}
}

func newTestWorkflow(client mgmt.Client) *Workflow {
	return NewWorkflow(client, logr.Discard(),
		poll.WithInterval(time.Millisecond),
		poll.WithFailureCeiling(3))
}

func listOf(clusters ...mgmt.Cluster) func(context.Context) (mgmt.ListResponse, error) {
	return func(context.Context) (mgmt.ListResponse, error) {
		return mgmt.ListResponse{StatusCode: http.StatusOK, Clusters: clusters}, nil
	}
}

func TestCreate_Succeeds(t *testing.T) {
	t.Parallel()
	var listCalls atomic.Int32
	client := &mgmt.MockClient{
		ListClustersFunc: func(context.Context) (mgmt.ListResponse, error) {
			// First call is the existence check; afterwards the cluster
			// progresses from Requested to Running.
			switch listCalls.Add(1) {
			case 1:
				return mgmt.ListResponse{StatusCode: http.StatusOK}, nil
			case 2:
				return mgmt.ListResponse{StatusCode: http.StatusOK, Clusters: []mgmt.Cluster{
					{Name: "c1", Location: "westus", State: mgmt.StateRequested},
				}}, nil
			default:
				return mgmt.ListResponse{StatusCode: http.StatusOK, Clusters: []mgmt.Cluster{
					{Name: "c1", Location: "westus", State: mgmt.StateRunning},
				}}, nil
			}
		},
		CreateClusterFunc: func(_ context.Context, req mgmt.CreateRequest) (mgmt.StatusResponse, error) {
			assert.Equal(t, "c1", req.Name)
			return mgmt.StatusResponse{StatusCode: http.StatusAccepted}, nil
		},
	}

	cluster, err := newTestWorkflow(client).Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, mgmt.StateRunning, cluster.State)
	assert.Empty(t, cluster.Error)
}

func TestCreate_ConflictIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	created := false
	client := &mgmt.MockClient{
		ListClustersFunc: listOf(mgmt.Cluster{Name: "C1", Location: "westus", State: mgmt.StateRunning}),
		CreateClusterFunc: func(context.Context, mgmt.CreateRequest) (mgmt.StatusResponse, error) {
			created = true
			return mgmt.StatusResponse{StatusCode: http.StatusOK}, nil
		},
	}

	_, err := newTestWorkflow(client).Create(context.Background(), validRequest())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "C1", conflict.Cluster.Name)
	assert.False(t, created, "CreateCluster must not be called on conflict")
}

func TestCreate_RegistersUnknownLocation(t *testing.T) {
	t.Parallel()
	var (
		validateCalls atomic.Int32
		registered    atomic.Int32
		order         []string
	)
	client := &mgmt.MockClient{
		ListClustersFunc: func(context.Context) (mgmt.ListResponse, error) {
			if registered.Load() > 0 {
				return mgmt.ListResponse{StatusCode: http.StatusOK, Clusters: []mgmt.Cluster{
					{Name: "c1", Location: "westus", State: mgmt.StateOperational},
				}}, nil
			}
			return mgmt.ListResponse{StatusCode: http.StatusOK}, nil
		},
		ValidateLocationFunc: func(_ context.Context, location string) (mgmt.StatusResponse, error) {
			assert.Equal(t, "westus", location)
			// 404 before registration, then two more polls until the
			// registration lands.
			if validateCalls.Add(1) < 4 {
				return mgmt.StatusResponse{StatusCode: http.StatusNotFound}, nil
			}
			return mgmt.StatusResponse{StatusCode: http.StatusOK}, nil
		},
		RegisterLocationFunc: func(_ context.Context, location string) error {
			registered.Add(1)
			order = append(order, "register")
			return nil
		},
		CreateClusterFunc: func(context.Context, mgmt.CreateRequest) (mgmt.StatusResponse, error) {
			order = append(order, "create")
			return mgmt.StatusResponse{StatusCode: http.StatusOK}, nil
		},
	}

	cluster, err := newTestWorkflow(client).Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, mgmt.StateOperational, cluster.State)
	assert.Equal(t, int32(1), registered.Load(), "RegisterLocation must be called exactly once")
	assert.GreaterOrEqual(t, validateCalls.Load(), int32(4))
	assert.Equal(t, []string{"register", "create"}, order)
}

func TestCreate_RejectedSubmission(t *testing.T) {
	t.Parallel()
	var listCalls atomic.Int32
	client := &mgmt.MockClient{
		ListClustersFunc: func(context.Context) (mgmt.ListResponse, error) {
			listCalls.Add(1)
			return mgmt.ListResponse{StatusCode: http.StatusOK}, nil
		},
		CreateClusterFunc: func(context.Context, mgmt.CreateRequest) (mgmt.StatusResponse, error) {
			return mgmt.StatusResponse{StatusCode: http.StatusInternalServerError}, nil
		},
	}

	_, err := newTestWorkflow(client).Create(context.Background(), validRequest())

	var rejection *RemoteRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusInternalServerError, rejection.StatusCode)
	// Only the existence check; the workflow must not enter the wait loop.
	assert.Equal(t, int32(1), listCalls.Load())
}

func TestCreate_UnexpectedValidateStatus(t *testing.T) {
	t.Parallel()
	client := &mgmt.MockClient{
		ValidateLocationFunc: func(context.Context, string) (mgmt.StatusResponse, error) {
			return mgmt.StatusResponse{StatusCode: http.StatusForbidden}, nil
		},
	}

	_, err := newTestWorkflow(client).Create(context.Background(), validRequest())

	var rejection *RemoteRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "validate location", rejection.Op)
}

func TestCreate_ClusterEndsInError(t *testing.T) {
	t.Parallel()
	var listCalls atomic.Int32
	client := &mgmt.MockClient{
		ListClustersFunc: func(context.Context) (mgmt.ListResponse, error) {
			if listCalls.Add(1) == 1 {
				return mgmt.ListResponse{StatusCode: http.StatusOK}, nil
			}
			return mgmt.ListResponse{StatusCode: http.StatusOK, Clusters: []mgmt.Cluster{
				{Name: "c1", Location: "westus", State: mgmt.StateError, Error: "ProvisioningFailed"},
			}}, nil
		},
	}

	_, err := newTestWorkflow(client).Create(context.Background(), validRequest())

	var failed *ClusterFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "ProvisioningFailed", failed.Cluster.Error)
	assert.Equal(t, mgmt.StateError, failed.Cluster.State)
}

func TestCreate_ClusterNeverAppears(t *testing.T) {
	t.Parallel()
	client := &mgmt.MockClient{}

	// The mock lists no clusters: every wait probe is an empty result, the
	// failure ceiling trips, and the final fetch finds nothing.
	_, err := newTestWorkflow(client).Create(context.Background(), validRequest())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "c1", notFound.Name)
}

func TestCreate_ValidationErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*mgmt.CreateRequest)
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(r *mgmt.CreateRequest) { r.Name = "" },
			field:  "name",
		},
		{
			name:   "zero node count",
			mutate: func(r *mgmt.CreateRequest) { r.NodeCount = 0 },
			field:  "node count",
		},
		{
			name:   "negative node count",
			mutate: func(r *mgmt.CreateRequest) { r.NodeCount = -2 },
			field:  "node count",
		},
		{
			name:   "missing location",
			mutate: func(r *mgmt.CreateRequest) { r.Location = "" },
			field:  "location",
		},
		{
			name:   "missing admin password",
			mutate: func(r *mgmt.CreateRequest) { r.AdminPassword = "" },
			field:  "admin password",
		},
		{
			name: "duplicate additional storage account",
			mutate: func(r *mgmt.CreateRequest) {
				r.AdditionalStorageAccounts = []mgmt.StorageAccount{
					{Name: "extra1", Key: "k1"},
					{Name: "extra1", Key: "k2"},
				}
			},
			field: "additional storage accounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listed := false
			client := &mgmt.MockClient{
				ListClustersFunc: func(context.Context) (mgmt.ListResponse, error) {
					listed = true
					return mgmt.ListResponse{StatusCode: http.StatusOK}, nil
				},
			}

			req := validRequest()
			tt.mutate(&req)
			_, err := newTestWorkflow(client).Create(context.Background(), req)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.False(t, listed, "validation must abort before any remote call")
		})
	}
}

func TestFetchByName(t *testing.T) {
	t.Parallel()
	client := &mgmt.MockClient{
		ListClustersFunc: listOf(
			mgmt.Cluster{Name: "other", Location: "eastus", State: mgmt.StateRunning},
			mgmt.Cluster{Name: "C1", Location: "westus", State: mgmt.StateOperational},
		),
	}
	w := newTestWorkflow(client)

	cluster, err := w.FetchByName(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "C1", cluster.Name)

	_, err = w.FetchByName(context.Background(), "nope")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	var deletedName, deletedLocation string
	client := &mgmt.MockClient{
		ListClustersFunc: listOf(mgmt.Cluster{Name: "c1", Location: "westus", State: mgmt.StateRunning}),
		DeleteClusterFunc: func(_ context.Context, name, location string) error {
			deletedName, deletedLocation = name, location
			return nil
		},
	}

	require.NoError(t, newTestWorkflow(client).Delete(context.Background(), "c1"))
	assert.Equal(t, "c1", deletedName)
	assert.Equal(t, "westus", deletedLocation)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()
	deleted := false
	client := &mgmt.MockClient{
		DeleteClusterFunc: func(context.Context, string, string) error {
			deleted = true
			return nil
		},
	}

	err := newTestWorkflow(client).Delete(context.Background(), "ghost")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.False(t, deleted)
}

func TestClusterReady(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cluster  *mgmt.Cluster
		expected bool
	}{
		{"nil cluster", nil, false},
		{"requested", &mgmt.Cluster{State: mgmt.StateRequested}, false},
		{"registering", &mgmt.Cluster{State: mgmt.StateRegistering}, false},
		{"unknown", &mgmt.Cluster{State: mgmt.StateUnknown}, false},
		{"operational", &mgmt.Cluster{State: mgmt.StateOperational}, true},
		{"running", &mgmt.Cluster{State: mgmt.StateRunning}, true},
		{"error state", &mgmt.Cluster{State: mgmt.StateError}, true},
		{"unknown state with error message", &mgmt.Cluster{State: mgmt.StateUnknown, Error: "boom"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clusterReady(tt.cluster))
		})
	}
}
