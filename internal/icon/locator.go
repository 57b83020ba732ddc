// Package icon locates mod icon files and converts them to fixed-size
// embeddable images.
package icon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fs17-mod-catalog/internal/modarchive"
)

// ErrNotFound reports that an icon could not be located after every
// candidate name and source was tried.
var ErrNotFound = errors.New("icon not found")

// Locate resolves a declared icon path to raw bytes. declared must
// already be localization-resolved and have any $data/store/ token
// rewritten. Candidates are tried in a fixed order: the declared name in
// the archive, the .dds-substituted name in the archive, then the local
// filesystem. Each later step runs only when the previous one missed.
func Locate(src *modarchive.Source, declared string) ([]byte, error) {
	names := []string{declared}
	// Some mods declare .png while shipping the .dds the game engine uses.
	if strings.HasSuffix(declared, ".png") {
		names = append(names, strings.TrimSuffix(declared, ".png")+".dds")
	}

	for _, name := range names {
		data, err := src.ReadFile(name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, modarchive.ErrEntryNotFound) {
			return nil, err
		}
	}

	// Store icons live outside the archive, in the game installation.
	fsName := names[len(names)-1]
	if data, err := os.ReadFile(fsName); err == nil {
		return data, nil
	}

	return nil, fmt.Errorf("icon: %s: %w", declared, ErrNotFound)
}
