package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Store reads and writes a Document at a fixed path. It carries no
// business logic and takes no locks; concurrent writers race and the last
// one wins.
type Store struct {
	Path string
}

// NewStore creates a store for the given config file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads and parses the document from the config file.
func (s *Store) Load() (*Document, error) {
	// #nosec G304
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var doc Document
	if err := mapstructure.Decode(rawConfig, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &doc, nil
}

// LoadCompatible loads the document and rejects it with an
// IncompatibleSchemaError if its schema version cannot be read by this
// build. Every mutating command goes through this so an unreadable file is
// never rewritten.
func (s *Store) LoadCompatible() (*Document, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if !IsCompatible(doc.SchemaVersion, SchemaVersion) {
		return nil, &IncompatibleSchemaError{Found: doc.SchemaVersion, Supported: SchemaVersion}
	}
	return doc, nil
}

// Save serializes the document back to the config file. Formatting is not
// preserved; only structural equality is.
func (s *Store) Save(doc *Document) error {
	if doc.SchemaVersion == nil {
		doc.SchemaVersion = SchemaVersion
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
