// Package config defines the versioned cluster-creation configuration
// document and its on-disk store.
package config

import (
	"github.com/openbda/hdx/internal/mgmt"
)

// SchemaVersion is the config schema version this build reads and writes.
// Compatibility is major-version equality; the fractional part is
// informational only.
const SchemaVersion = 1.0

// Document is the persisted configuration: the full set of
// cluster-creation parameters plus a schema version tag.
//
// SchemaVersion is deliberately untyped: a document is only usable when
// the field is present and numeric, and IsCompatible has to be able to
// fail closed on anything else it finds in the file.
type Document struct {
	SchemaVersion any `mapstructure:"schema_version" yaml:"schema_version"`

	Name               string `mapstructure:"name" yaml:"name,omitempty"`
	NodeCount          int    `mapstructure:"node_count" yaml:"node_count,omitempty"`
	Location           string `mapstructure:"location" yaml:"location,omitempty"`
	StorageAccountName string `mapstructure:"storage_account_name" yaml:"storage_account_name,omitempty"`
	StorageAccountKey  string `mapstructure:"storage_account_key" yaml:"storage_account_key,omitempty"`
	StorageContainer   string `mapstructure:"storage_container" yaml:"storage_container,omitempty"`
	AdminUser          string `mapstructure:"admin_user" yaml:"admin_user,omitempty"`
	AdminPassword      string `mapstructure:"admin_password" yaml:"admin_password,omitempty"`

	AdditionalStorageAccounts []mgmt.StorageAccount           `mapstructure:"additional_storage_accounts" yaml:"additional_storage_accounts,omitempty"`
	Metastores                map[string]mgmt.MetastoreConfig `mapstructure:"metastores" yaml:"metastores,omitempty"`
}

// NewDocument returns an empty document stamped with the current schema
// version.
func NewDocument() *Document {
	return &Document{SchemaVersion: SchemaVersion}
}

// AddStorageAccount attaches an additional storage account. An existing
// entry with the same name is replaced, not duplicated.
func (d *Document) AddStorageAccount(name, key string) {
	d.RemoveStorageAccount(name)
	d.AdditionalStorageAccounts = append(d.AdditionalStorageAccounts, mgmt.StorageAccount{Name: name, Key: key})
}

// RemoveStorageAccount drops every additional storage account with the
// given name. Removing a name that is not present is a no-op.
func (d *Document) RemoveStorageAccount(name string) {
	kept := d.AdditionalStorageAccounts[:0]
	for _, account := range d.AdditionalStorageAccounts {
		if account.Name != name {
			kept = append(kept, account)
		}
	}
	d.AdditionalStorageAccounts = kept
}

// SetMetastore points the given metastore kind (e.g. "hive", "oozie") at
// an external database, replacing any previous setting for that kind.
func (d *Document) SetMetastore(kind string, metastore mgmt.MetastoreConfig) {
	if d.Metastores == nil {
		d.Metastores = make(map[string]mgmt.MetastoreConfig)
	}
	d.Metastores[kind] = metastore
}

// ClearMetastore removes the setting for a metastore kind. Clearing an
// absent kind is a no-op.
func (d *Document) ClearMetastore(kind string) {
	delete(d.Metastores, kind)
}

// CreateRequest converts the document into a creation request. Fields the
// document does not carry stay at their zero value; callers merge in flag
// and prompt values on top.
func (d *Document) CreateRequest() mgmt.CreateRequest {
	req := mgmt.CreateRequest{
		SchemaVersion:      SchemaVersion,
		Name:               d.Name,
		NodeCount:          d.NodeCount,
		Location:           d.Location,
		StorageAccountName: d.StorageAccountName,
		StorageAccountKey:  d.StorageAccountKey,
		StorageContainer:   d.StorageContainer,
		AdminUser:          d.AdminUser,
		AdminPassword:      d.AdminPassword,
	}
	req.AdditionalStorageAccounts = append(req.AdditionalStorageAccounts, d.AdditionalStorageAccounts...)
	if len(d.Metastores) > 0 {
		req.Metastores = make(map[string]mgmt.MetastoreConfig, len(d.Metastores))
		for kind, metastore := range d.Metastores {
			req.Metastores[kind] = metastore
		}
	}
	return req
}
