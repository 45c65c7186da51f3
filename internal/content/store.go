package content

import (
	"encoding/json"
	"os"
	"path/filepath"

	"sbsoverseas/internal/domain"
)

// Store reads and writes one JSON file per content domain. A domain's file,
// if present and parseable, is authoritative; otherwise the bundled default
// applies. Writes overwrite the whole file with no locking — concurrent
// writers are last-write-wins.
type Store struct {
	dir string
}

// NewStore ensures the content directory exists and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Read returns the domain's document. Missing or unparseable files fall back
// to the bundled default; the only error is an unknown domain name.
func (s *Store) Read(name string) (any, error) {
	if !Known(name) {
		return nil, ErrUnknownDomain
	}
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return Default(name)
	}
	doc, err := Decode(name, b)
	if err != nil {
		return Default(name)
	}
	return doc, nil
}

// Write overwrites the domain's file with doc. The caller is expected to
// pass a document produced by Decode so only shape-checked data is persisted.
func (s *Store) Write(name string, doc any) error {
	if !Known(name) {
		return ErrUnknownDomain
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), b, 0o644)
}

// Products returns the products list domain as its concrete type.
func (s *Store) Products() ([]domain.Product, error) {
	doc, err := s.Read(DomainProducts)
	if err != nil {
		return nil, err
	}
	return doc.([]domain.Product), nil
}
