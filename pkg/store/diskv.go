package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DataKey is the single key the aggregate lives under.
const DataKey = "cyberride-data"

// Slot is the durable home of the serialized aggregate.
type Slot interface {
	// Read returns the stored blob, or nil when nothing was ever written.
	Read() ([]byte, error)
	Write(blob []byte) error
	// Erase removes the blob. Erasing an empty slot is not an error.
	Erase() error
	// Path is the file backing the slot.
	Path() string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Slot backed by diskv using the provided config.
func Load(cfg Config) (Slot, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &slot{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No read cache: the file may be rewritten by another process.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

const tempDir = ".tmp"

type slot struct {
	d        *diskv.Diskv
	basePath string
}

func (s *slot) Read() ([]byte, error) {
	if !s.d.Has(DataKey) {
		return nil, nil
	}
	val, err := s.d.Read(DataKey)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", DataKey, err)
	}
	return val, nil
}

func (s *slot) Write(blob []byte) error {
	if err := s.d.Write(DataKey, blob); err != nil {
		return fmt.Errorf("store: write %s: %w", DataKey, err)
	}
	return nil
}

func (s *slot) Erase() error {
	if !s.d.Has(DataKey) {
		return nil
	}
	if err := s.d.Erase(DataKey); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", DataKey, err)
	}
	return nil
}

func (s *slot) Path() string {
	pk := keyToPathTransform(DataKey)
	return filepath.Join(append([]string{s.basePath}, append(pk.Path, pk.FileName)...)...)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
