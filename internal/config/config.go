package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fs17-mod-catalog/internal/icon"
)

// Config holds all configurable paths and catalog settings.
type Config struct {
	// Paths
	InstallDir string `json:"install_dir"` // where the game loads mods from
	GameDir    string `json:"game_dir"`    // product install root, for $data/store icons
	VaultDir   string `json:"vault_dir"`   // root directory scanned for mod archives
	OutputFile string `json:"output_file"` // catalog destination

	// Catalog settings
	Title      string `json:"title"`
	IconSize   int    `json:"icon_size"`
	IconFormat string `json:"icon_format"` // "png" or "webp"
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InstallDir string
	GameDir    string
	VaultDir   string
	OutputFile string
	IconSize   int
}

// Resolve applies flag overrides and fills any remaining empty fields
// with defaults. A leading "~" in path fields expands to the home
// directory.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InstallDir != "" {
		c.InstallDir = flags.InstallDir
	}
	if flags.GameDir != "" {
		c.GameDir = flags.GameDir
	}
	if flags.VaultDir != "" {
		c.VaultDir = flags.VaultDir
	}
	if flags.OutputFile != "" {
		c.OutputFile = flags.OutputFile
	}
	if flags.IconSize > 0 {
		c.IconSize = flags.IconSize
	}

	if c.InstallDir == "" {
		c.InstallDir = filepath.Join("~", "Documents", "My Games", "FarmingSimulator2017", "mods")
	}
	if c.VaultDir == "" {
		c.VaultDir = "."
	}
	c.InstallDir = expandUser(c.InstallDir)
	c.GameDir = expandUser(c.GameDir)
	c.VaultDir = expandUser(c.VaultDir)

	// The leading underscore lists the catalog first in file browsers.
	if c.OutputFile == "" {
		c.OutputFile = "_FS17_Mod_List.html"
	}
	if !filepath.IsAbs(c.OutputFile) {
		c.OutputFile = filepath.Join(c.VaultDir, c.OutputFile)
	}

	if c.Title == "" {
		c.Title = "FS17 - Mod List"
	}
	if c.IconSize <= 0 {
		c.IconSize = 128
	}
	if c.IconFormat == "" {
		c.IconFormat = icon.FormatPNG
	}
}

// expandUser replaces a leading "~" with the current home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
