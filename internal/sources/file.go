package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

// FileStore keeps entries in a YAML file:
//
//	sources:
//	  - name: acme
//	    kind: plugin
//	    path: /opt/acme-commands
//	    priority: 10
//	    enabled: true
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileData struct {
	Sources []Entry `yaml:"sources"`
}

// NewFileStore returns a store backed by the YAML file at path. The file is
// created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Entries returns every entry in file order. A missing file is an empty store.
func (s *FileStore) Entries(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	return d.Sources, nil
}

// Add appends a new entry.
func (s *FileStore) Add(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckEntry(e); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}
	if d.find(e.Name) >= 0 {
		return fmt.Errorf("%w: %q", ErrExists, e.Name)
	}
	d.Sources = append(d.Sources, e)
	return s.save(d)
}

// Remove deletes the entry with the given name.
func (s *FileStore) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}
	i := d.find(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	d.Sources = append(d.Sources[:i], d.Sources[i+1:]...)
	return s.save(d)
}

// SetEnabled toggles the entry with the given name.
func (s *FileStore) SetEnabled(ctx context.Context, name string, enabled bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}
	i := d.find(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	d.Sources[i].Enabled = enabled
	return s.save(d)
}

func (d *fileData) find(name string) int {
	for i := range d.Sources {
		if d.Sources[i].Name == name {
			return i
		}
	}
	return -1
}

// load reads, validates and decodes the file.
func (s *FileStore) load() (*fileData, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileData{}, nil
		}
		return nil, fmt.Errorf("reading sources %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &fileData{}, nil
	}

	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	var d fileData
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing sources %s: %w", s.path, err)
	}
	return &d, nil
}

func (s *FileStore) save(d *fileData) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling sources: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating sources directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing sources %s: %w", s.path, err)
	}
	return nil
}

// CheckEntry enforces the constraints every backend shares.
func CheckEntry(e Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("source name is required")
	}
	if strings.ContainsAny(e.Name, `/\`) {
		return fmt.Errorf("source name %q must not contain path separators", e.Name)
	}
	if strings.TrimSpace(e.Kind) == "" {
		return errors.New("source kind is required")
	}
	if strings.TrimSpace(e.Path) == "" {
		return errors.New("source path is required")
	}
	return nil
}
