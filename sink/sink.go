// Package sink writes generated documents to disk. Writes go through a
// temporary file and an atomic rename, so consumers either see the
// complete artifact or none at all.
package sink

import (
	"fmt"
	"io"
	"os"
)

// WriteFile writes doc to path via path+".tmp" in the same directory,
// syncing before the rename.
func WriteFile(path string, doc io.WriterTo) error {
	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file %s: %w", tmpPath, err)
	}

	if _, err := doc.WriteTo(file); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}

	// Sync to disk
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s: %w", tmpPath, err)
	}

	return nil
}
