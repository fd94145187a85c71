package mgmt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-logr/logr"
)

// HTTPClient implements Client against the management service's REST
// endpoint.
type HTTPClient struct {
	endpoint     string
	subscription string
	token        string
	httpClient   *http.Client
	log          logr.Logger
}

// NewHTTPClient creates a client for the given service endpoint and
// subscription, authenticating with a bearer token.
func NewHTTPClient(endpoint, subscription, token string, log logr.Logger) *HTTPClient {
	return &HTTPClient{
		endpoint:     endpoint,
		subscription: subscription,
		token:        token,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		log:          log,
	}
}

// Ensure interface compliance.
var _ Client = (*HTTPClient)(nil)

// listEnvelope is the wire shape of the list-clusters response body.
type listEnvelope struct {
	Clusters []struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		State    string `json:"state"`
		Error    string `json:"error"`
	} `json:"clusters"`
}

// ListClusters returns every cluster visible to the subscription.
func (c *HTTPClient) ListClusters(ctx context.Context) (ListResponse, error) {
	resp, body, err := c.do(ctx, http.MethodGet, c.url("clusters"), nil)
	if err != nil {
		return ListResponse{}, err
	}

	out := ListResponse{StatusCode: resp.StatusCode}
	if resp.StatusCode != http.StatusOK {
		c.log.V(1).Info("list clusters returned non-OK status", "status", resp.StatusCode)
		return out, nil
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ListResponse{}, fmt.Errorf("failed to decode cluster list: %w", err)
	}
	for _, raw := range envelope.Clusters {
		out.Clusters = append(out.Clusters, Cluster{
			Name:     raw.Name,
			Location: raw.Location,
			State:    ParseClusterState(raw.State),
			Error:    raw.Error,
		})
	}
	return out, nil
}

// CreateCluster submits a cluster-creation request.
func (c *HTTPClient) CreateCluster(ctx context.Context, req CreateRequest) (StatusResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return StatusResponse{}, fmt.Errorf("failed to encode create request: %w", err)
	}

	resp, _, err := c.do(ctx, http.MethodPost, c.url("clusters"), payload)
	if err != nil {
		return StatusResponse{}, err
	}
	c.log.V(1).Info("submitted cluster creation", "cluster", req.Name, "status", resp.StatusCode)
	return StatusResponse{StatusCode: resp.StatusCode}, nil
}

// DeleteCluster tears down the named cluster.
func (c *HTTPClient) DeleteCluster(ctx context.Context, name, location string) error {
	u := c.url("clusters", name) + "?location=" + url.QueryEscape(location)
	resp, body, err := c.do(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("delete cluster %s failed with status %d: %s", name, resp.StatusCode, string(body))
	}
	return nil
}

// ValidateLocation reports whether the location is registered.
func (c *HTTPClient) ValidateLocation(ctx context.Context, location string) (StatusResponse, error) {
	resp, _, err := c.do(ctx, http.MethodGet, c.url("locations", location), nil)
	if err != nil {
		return StatusResponse{}, err
	}
	return StatusResponse{StatusCode: resp.StatusCode}, nil
}

// RegisterLocation registers a location with the subscription.
func (c *HTTPClient) RegisterLocation(ctx context.Context, location string) error {
	resp, body, err := c.do(ctx, http.MethodPut, c.url("locations", location), nil)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("register location %s failed with status %d: %s", location, resp.StatusCode, string(body))
	}
	c.log.V(1).Info("registered location", "location", location, "status", resp.StatusCode)
	return nil
}

// url joins the endpoint, subscription and path segments.
func (c *HTTPClient) url(segments ...string) string {
	u := c.endpoint + "/" + url.PathEscape(c.subscription)
	for _, s := range segments {
		u += "/" + url.PathEscape(s)
	}
	return u
}

// do issues a request with auth headers and drains the body.
func (c *HTTPClient) do(ctx context.Context, method, u string, payload []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request to management service failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp, body, nil
}
