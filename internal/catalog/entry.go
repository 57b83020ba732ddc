// Package catalog extracts mod metadata from archives and assembles the
// HTML catalog document.
package catalog

import "errors"

// Error taxonomy for per-entry failures. All of them cause the one entry
// to be skipped; the run continues.
var (
	// ErrDescriptorRead: the mandatory modDesc.xml is missing or unreadable.
	ErrDescriptorRead = errors.New("descriptor unreadable")
	// ErrParse: the descriptor still fails structural parsing after repair.
	ErrParse = errors.New("descriptor parse failed")
	// ErrMissingField: author or version is absent.
	ErrMissingField = errors.New("required field missing")
)

// Entry is one cataloged mod, fully extracted from its archive.
// Entries are built once per run and are not mutated afterwards.
type Entry struct {
	SourceID string // vault-relative archive path, unique within a run
	FileName string // archive base name, the installed-set key
	Category string // containing directory, or "None" at the vault root

	Title       string // resolved display title, "UNKNOWN" when absent
	Author      string
	Version     string
	Description string // trimmed, newlines already carry <br> markers
	Multiplayer bool
	IsMap       bool

	Icon       []byte // re-encoded square icon
	StoreItems []StoreItem

	Installed bool
}

// StoreItem is one purchasable object declared by a mod.
type StoreItem struct {
	Category    string
	Brand       string // empty when the item declares no brand
	Name        string
	Price       int    // 0 when absent or unparsable
	DailyUpkeep string // numeric text preserved as declared, "0" when absent
}
