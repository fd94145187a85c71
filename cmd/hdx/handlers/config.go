package handlers

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/openbda/hdx/internal/config"
	"github.com/openbda/hdx/internal/mgmt"
)

// ConfigSetOptions carries the config parameter flags. Nil means the flag
// was not given and the field keeps its current value.
type ConfigSetOptions struct {
	Name               *string
	NodeCount          *int
	Location           *string
	StorageAccountName *string
	StorageAccountKey  *string
	StorageContainer   *string
	AdminUser          *string
	AdminPassword      *string
}

// apply overlays the given flags onto the document.
func (o ConfigSetOptions) apply(doc *config.Document) {
	if o.Name != nil {
		doc.Name = *o.Name
	}
	if o.NodeCount != nil {
		doc.NodeCount = *o.NodeCount
	}
	if o.Location != nil {
		doc.Location = *o.Location
	}
	if o.StorageAccountName != nil {
		doc.StorageAccountName = *o.StorageAccountName
	}
	if o.StorageAccountKey != nil {
		doc.StorageAccountKey = *o.StorageAccountKey
	}
	if o.StorageContainer != nil {
		doc.StorageContainer = *o.StorageContainer
	}
	if o.AdminUser != nil {
		doc.AdminUser = *o.AdminUser
	}
	if o.AdminPassword != nil {
		doc.AdminPassword = *o.AdminPassword
	}
}

// ConfigCreate handles config create: it writes a fresh document stamped
// with the current schema version.
func ConfigCreate(path string, opts ConfigSetOptions) error {
	doc := config.NewDocument()
	opts.apply(doc)

	if err := config.NewStore(path).Save(doc); err != nil {
		return err
	}
	fmt.Printf("Created config %s\n", path)
	return nil
}

// ConfigShow handles config show.
func ConfigShow(path string) error {
	doc, err := config.NewStore(path).LoadCompatible()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// ConfigSet handles config set. An incompatible file is reported and left
// untouched.
func ConfigSet(path string, opts ConfigSetOptions) error {
	return mutateConfig(path, func(doc *config.Document) {
		opts.apply(doc)
	})
}

// ConfigStorageAdd handles config storage add. An account that is already
// attached has its key replaced.
func ConfigStorageAdd(path, name, key string) error {
	return mutateConfig(path, func(doc *config.Document) {
		doc.AddStorageAccount(name, key)
	})
}

// ConfigStorageRemove handles config storage remove.
func ConfigStorageRemove(path, name string) error {
	return mutateConfig(path, func(doc *config.Document) {
		doc.RemoveStorageAccount(name)
	})
}

// ConfigMetastoreSet handles config metastore set.
func ConfigMetastoreSet(path, kind string, metastore mgmt.MetastoreConfig) error {
	return mutateConfig(path, func(doc *config.Document) {
		doc.SetMetastore(kind, metastore)
	})
}

// ConfigMetastoreClear handles config metastore clear.
func ConfigMetastoreClear(path, kind string) error {
	return mutateConfig(path, func(doc *config.Document) {
		doc.ClearMetastore(kind)
	})
}

// mutateConfig loads a compatible document, applies the mutation, and
// writes it back. Incompatible documents are never written.
func mutateConfig(path string, mutate func(*config.Document)) error {
	store := config.NewStore(path)

	doc, err := store.LoadCompatible()
	if err != nil {
		return err
	}

	mutate(doc)

	if err := store.Save(doc); err != nil {
		return err
	}
	fmt.Printf("Updated config %s\n", path)
	return nil
}
