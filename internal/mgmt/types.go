package mgmt

// ClusterState is the lifecycle state a cluster reports through the
// management service.
type ClusterState string

const (
	StateRequested   ClusterState = "Requested"
	StateRegistering ClusterState = "Registering"
	StateOperational ClusterState = "Operational"
	StateRunning     ClusterState = "Running"
	StateError       ClusterState = "Error"
	StateUnknown     ClusterState = "Unknown"
)

// ParseClusterState maps a state string from the remote service onto the
// known enum, falling back to StateUnknown for anything unrecognized.
func ParseClusterState(s string) ClusterState {
	switch ClusterState(s) {
	case StateRequested, StateRegistering, StateOperational, StateRunning, StateError:
		return ClusterState(s)
	default:
		return StateUnknown
	}
}

// Cluster describes a cluster as observed through the management service.
// Only the remote service produces these; clients re-fetch rather than
// mutate them.
type Cluster struct {
	Name     string       `json:"name"`
	Location string       `json:"location"`
	State    ClusterState `json:"state"`
	Error    string       `json:"error,omitempty"`
}

// StorageAccount is an additional storage account attached to a cluster.
type StorageAccount struct {
	Name string `json:"name" mapstructure:"name" yaml:"name"`
	Key  string `json:"key" mapstructure:"key" yaml:"key"`
}

// MetastoreConfig points a metastore kind (e.g. "hive", "oozie") at an
// external database.
type MetastoreConfig struct {
	Server   string `json:"server" mapstructure:"server" yaml:"server"`
	Database string `json:"database" mapstructure:"database" yaml:"database"`
	User     string `json:"user" mapstructure:"user" yaml:"user"`
	Password string `json:"password" mapstructure:"password" yaml:"password"`
}

// CreateRequest carries everything needed to provision a new cluster. It is
// assembled from config file, flags and prompts, submitted once, and then
// discarded.
type CreateRequest struct {
	SchemaVersion float64 `json:"schemaVersion"`

	Name               string `json:"name"`
	NodeCount          int    `json:"nodeCount"`
	Location           string `json:"location"`
	StorageAccountName string `json:"storageAccountName"`
	StorageAccountKey  string `json:"storageAccountKey"`
	StorageContainer   string `json:"storageContainer"`
	AdminUser          string `json:"adminUser"`
	AdminPassword      string `json:"adminPassword"`

	AdditionalStorageAccounts []StorageAccount           `json:"additionalStorageAccounts,omitempty"`
	Metastores                map[string]MetastoreConfig `json:"metastores,omitempty"`
}

// ListResponse is the envelope returned by ListClusters. The status code is
// surfaced as-is; callers decide what a non-200 means.
type ListResponse struct {
	StatusCode int
	Clusters   []Cluster
}

// StatusResponse is the envelope for calls whose only useful payload is the
// HTTP status code.
type StatusResponse struct {
	StatusCode int
}
