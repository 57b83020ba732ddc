package modarchive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CategoryNone is the category assigned to archives sitting directly in
// the vault root rather than in a subdirectory.
const CategoryNone = "None"

// Scan walks root recursively and returns the root-relative paths of all
// zip archives, in lexical walk order. The order is the discovery order
// the catalog preserves.
func Scan(root string) ([]string, error) {
	var archives []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".zip") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		archives = append(archives, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("modarchive: scan %s: %w", root, err)
	}
	return archives, nil
}

// Category derives the catalog category from an archive's vault-relative
// path: the containing directory, or CategoryNone at the vault root.
func Category(rel string) string {
	dir := filepath.Dir(rel)
	if dir == "." {
		return CategoryNone
	}
	return filepath.ToSlash(dir)
}

// InstalledSet lists the base names of the zip files directly inside dir.
// A missing directory yields an empty set; installed status is then
// simply false for every mod.
func InstalledSet(dir string) map[string]bool {
	installed := make(map[string]bool)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return installed
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".zip") {
			installed[e.Name()] = true
		}
	}
	return installed
}
