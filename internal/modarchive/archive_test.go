package modarchive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeZip creates a zip file at path with the given entries.
func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSourceReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.zip")
	writeZip(t, path, map[string]string{
		DescriptorName: "<modDesc/>",
		"icon.dds":     "raw",
	})

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer src.Close()

	data, err := src.ReadFile(DescriptorName)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "<modDesc/>" {
		t.Errorf("ReadFile() = %q, want %q", data, "<modDesc/>")
	}

	if !src.Has("icon.dds") || src.Has("icon.png") {
		t.Error("Has() does not match archive contents")
	}

	_, err = src.ReadFile("missing.xml")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want ErrEntryNotFound", err)
	}
}

func TestOpenRejectsNonArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.zip")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open() accepted a non-zip file")
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeZip(t, filepath.Join(root, "b.zip"), map[string]string{"x": ""})
	writeZip(t, filepath.Join(root, "2_Vehicles", "a.zip"), map[string]string{"x": ""})
	writeZip(t, filepath.Join(root, "10_Equipment", "c.zip"), map[string]string{"x": ""})
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	want := []string{
		filepath.Join("10_Equipment", "c.zip"),
		filepath.Join("2_Vehicles", "a.zip"),
		"b.zip",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"mod.zip", CategoryNone},
		{filepath.Join("2_Vehicles", "mod.zip"), "2_Vehicles"},
		{filepath.Join("maps", "europe", "mod.zip"), "maps/europe"},
	}
	for _, tt := range tests {
		if got := Category(tt.rel); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestInstalledSet(t *testing.T) {
	dir := t.TempDir()
	writeZip(t, filepath.Join(dir, "installed.zip"), map[string]string{"x": ""})
	writeZip(t, filepath.Join(dir, "nested", "skipped.zip"), map[string]string{"x": ""})
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	got := InstalledSet(dir)
	if !got["installed.zip"] {
		t.Error("installed.zip missing from set")
	}
	if got["skipped.zip"] {
		t.Error("nested zips must not count as installed")
	}
	if len(got) != 1 {
		t.Errorf("InstalledSet() has %d entries, want 1", len(got))
	}

	if got := InstalledSet(filepath.Join(dir, "does-not-exist")); len(got) != 0 {
		t.Errorf("missing dir should yield empty set, got %v", got)
	}
}
