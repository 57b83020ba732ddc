package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fs17-mod-catalog/internal/descriptor"
	"fs17-mod-catalog/internal/icon"
	"fs17-mod-catalog/internal/modarchive"
)

// storeToken in a declared icon path refers to the game's store data
// directory rather than the archive.
const storeToken = "$data/store/"

// Options carries the per-run settings the extractor needs.
type Options struct {
	GameDir    string
	IconSize   int
	IconFormat string
	Installed  map[string]bool
}

// Extract reads one archive's descriptor and produces a complete Entry.
// rel is the archive's vault-relative path. Author and version are
// required; most other fields degrade gracefully when absent. A failure
// on one declared store item drops only that item.
func Extract(src *modarchive.Source, rel string, opts Options) (*Entry, error) {
	raw, err := src.ReadFile(modarchive.DescriptorName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", rel, ErrDescriptorRead, err)
	}

	doc, err := descriptor.Parse(descriptor.Repair(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", rel, ErrParse, err)
	}
	root := doc.Root()
	res := descriptor.NewResolver(doc, src.ReadFile)

	e := &Entry{
		SourceID: rel,
		FileName: filepath.Base(rel),
		Category: modarchive.Category(rel),
	}
	e.Installed = opts.Installed[e.FileName]

	e.Title = res.Resolve(root.First("title"))
	if e.Title == "" {
		e.Title = "UNKNOWN"
	}

	author := root.First("author")
	if author == nil {
		return nil, fmt.Errorf("%s: author: %w", rel, ErrMissingField)
	}
	e.Author = author.Text()

	version := root.First("version")
	if version == nil {
		return nil, fmt.Errorf("%s: version: %w", rel, ErrMissingField)
	}
	e.Version = version.Text()

	desc := res.Resolve(root.First("description"))
	e.Description = strings.ReplaceAll(strings.TrimSpace(desc), "\n", "<br>\n")

	if supported, ok := root.First("multiplayer").Attr("supported"); ok {
		e.Multiplayer = supported == "true"
	}
	e.IsMap = root.First("maps") != nil

	e.Icon, err = extractIcon(src, root, res, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}

	for _, ref := range root.All("storeItems", "storeItem") {
		name, ok := ref.Attr("xmlFilename")
		if !ok {
			continue
		}
		item, err := extractStoreItem(src, res, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: store item %s: %v\n", rel, name, err)
			continue
		}
		e.StoreItems = append(e.StoreItems, item)
	}

	return e, nil
}

// extractIcon resolves the declared icon path, rewrites the store token,
// locates the bytes and converts them to the catalog's icon format.
func extractIcon(src *modarchive.Source, root *descriptor.Node, res *descriptor.Resolver, opts Options) ([]byte, error) {
	declared := res.Resolve(root.First("iconFilename"))
	if declared == "" {
		return nil, fmt.Errorf("iconFilename: %w", icon.ErrNotFound)
	}

	storeDir := filepath.ToSlash(filepath.Join(opts.GameDir, "data", "store")) + "/"
	declared = strings.ReplaceAll(declared, storeToken, storeDir)

	raw, err := icon.Locate(src, declared)
	if err != nil {
		return nil, err
	}
	return icon.Convert(raw, opts.IconSize, opts.IconFormat)
}

// extractStoreItem reads, repairs and parses one referenced store item
// document. res belongs to the parent descriptor: item texts resolve
// their $l10n_ keys against the parent's tables.
func extractStoreItem(src *modarchive.Source, res *descriptor.Resolver, name string) (StoreItem, error) {
	raw, err := src.ReadFile(name)
	if err != nil {
		return StoreItem{}, fmt.Errorf("read: %w", err)
	}

	doc, err := descriptor.Parse(descriptor.Repair(string(raw)))
	if err != nil {
		return StoreItem{}, fmt.Errorf("parse: %w", err)
	}
	data := doc.Root().First("storeData")

	item := StoreItem{
		Category:    res.Resolve(data.First("category")),
		Brand:       res.Resolve(data.First("brand")),
		Name:        res.Resolve(data.First("name")),
		DailyUpkeep: "0",
	}

	if price, err := strconv.Atoi(strings.TrimSpace(data.First("price").Text())); err == nil {
		item.Price = price
	}
	if upkeep := data.First("dailyUpkeep"); upkeep != nil {
		item.DailyUpkeep = upkeep.Text()
	}

	return item, nil
}
