// Package files manages the on-disk data directory where uploaded documents
// are kept. The vector store holds the embedded chunks; this directory holds
// the raw files the read_file tool serves.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Info struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes a file into the data directory, replacing any existing file
// with the same name. Names with path separators are rejected.
func (s *Store) Save(name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to save file %s: %w", name, err)
	}
	return nil
}

func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %s not found", name)
		}
		return fmt.Errorf("failed to delete file %s: %w", name, err)
	}
	return nil
}

func (s *Store) Exists(name string) bool {
	if err := validateName(name); err != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	infos := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileInfo, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		infos = append(infos, Info{
			Name:      entry.Name(),
			SizeBytes: fileInfo.Size(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("file name is required")
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("file name %q must not contain path separators", name)
	}
	return nil
}
