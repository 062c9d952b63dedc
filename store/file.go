// Package store persists a tag collection as the JSON attribute value
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lixenwraith/tagboard/tag"
)

// File stores the collection at Path
type File struct {
	Path string
}

// NewFile creates a file store
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads the collection; a missing file is an empty collection
func (f *File) Load() (tag.Collection, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return tag.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	c, err := tag.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", f.Path, err)
	}
	return c, nil
}

// Save writes the collection through a temp file and rename
func (f *File) Save(c tag.Collection) error {
	data, err := tag.Encode(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", f.Path, err)
	}
	return nil
}
