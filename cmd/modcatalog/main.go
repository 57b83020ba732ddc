package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fs17-mod-catalog/internal/catalog"
	"fs17-mod-catalog/internal/config"
	"fs17-mod-catalog/internal/modarchive"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	vaultDir := flag.String("vault", "", "Directory scanned for mod archives (default: current dir)")
	installDir := flag.String("install", "", "Directory the game loads mods from")
	gameDir := flag.String("game", "", "Game installation root, used for $data/store icons")
	outputFile := flag.String("output", "", "Catalog destination (default: _FS17_Mod_List.html in the vault)")
	iconSize := flag.Int("size", 0, "Icon square size in pixels (default: 128)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InstallDir: *installDir,
		GameDir:    *gameDir,
		VaultDir:   *vaultDir,
		OutputFile: *outputFile,
		IconSize:   *iconSize,
	})

	installed := modarchive.InstalledSet(cfg.InstallDir)

	fmt.Printf("Finding mods in %s\n", cfg.VaultDir)
	archives, err := modarchive.Scan(cfg.VaultDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning vault: %v\n", err)
		os.Exit(1)
	}
	if len(archives) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no mod archives (zip files) found in %s\n", cfg.VaultDir)
		os.Exit(1)
	}

	fmt.Printf("Reading information for %d mods...\n", len(archives))
	start := time.Now()

	opts := catalog.Options{
		GameDir:    cfg.GameDir,
		IconSize:   cfg.IconSize,
		IconFormat: cfg.IconFormat,
		Installed:  installed,
	}

	var entries []*catalog.Entry
	var skipped []string
	for _, rel := range archives {
		entry, err := processArchive(cfg.VaultDir, rel, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", rel, err)
			skipped = append(skipped, rel)
			continue
		}
		entries = append(entries, entry)
	}

	doc := catalog.Assemble(entries, catalog.Style{
		Title:      cfg.Title,
		IconSize:   cfg.IconSize,
		IconFormat: cfg.IconFormat,
	})

	fmt.Printf("Writing catalog: %s ...\n", cfg.OutputFile)
	if err := doc.WriteFile(cfg.OutputFile, " "); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())
	fmt.Printf("Cataloged: %d/%d\n", len(entries), len(archives))
	if len(skipped) > 0 {
		fmt.Printf("\nSkipped (%d):\n", len(skipped))
		for _, rel := range skipped {
			fmt.Printf("  %s\n", rel)
		}
	}
}

// processArchive opens one archive, extracts its entry and closes it
// before the next archive is considered.
func processArchive(vaultDir, rel string, opts catalog.Options) (*catalog.Entry, error) {
	src, err := modarchive.Open(filepath.Join(vaultDir, rel))
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return catalog.Extract(src, rel, opts)
}
