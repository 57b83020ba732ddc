// Package modarchive gives read access to FS17 mod archives (zip files)
// and locates them on disk.
package modarchive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
)

// DescriptorName is the metadata document every mod archive must carry.
const DescriptorName = "modDesc.xml"

// ErrEntryNotFound reports that a named file does not exist inside an
// archive. Callers distinguish it from genuine read failures.
var ErrEntryNotFound = errors.New("entry not found in archive")

// Source is one opened mod archive.
type Source struct {
	Path string

	zr      *zip.ReadCloser
	entries map[string]*zip.File
}

// Open opens the archive at path and indexes its entry names.
func Open(path string) (*Source, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("modarchive: open %s: %w", path, err)
	}
	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		entries[f.Name] = f
	}
	return &Source{Path: path, zr: zr, entries: entries}, nil
}

// Close releases the underlying zip reader.
func (s *Source) Close() error {
	return s.zr.Close()
}

// Has reports whether the archive contains an entry with exactly name.
func (s *Source) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// ReadFile returns the full contents of the named entry. A missing entry
// fails with ErrEntryNotFound.
func (s *Source) ReadFile(name string) ([]byte, error) {
	f, ok := s.entries[name]
	if !ok {
		return nil, fmt.Errorf("modarchive: %s: %s: %w", s.Path, name, ErrEntryNotFound)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("modarchive: %s: open %s: %w", s.Path, name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("modarchive: %s: read %s: %w", s.Path, name, err)
	}
	return data, nil
}
