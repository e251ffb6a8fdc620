package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ErrorFunc receives repository I/O failures so the UI can surface a toast.
// In-memory state stays valid regardless.
type ErrorFunc func(err error)

// readJSONFile decodes path into out. A missing file is not an error; a
// corrupt one is logged, reported and leaves out untouched so the caller
// keeps its zero value.
func readJSONFile(path string, out any, notify ErrorFunc) {
	raw, err := os.ReadFile(path) //nolint:gosec // paths are derived from the data dir
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read %s: %v", path, err)
			if notify != nil {
				notify(fmt.Errorf("read %s: %w", filepath.Base(path), err))
			}
		}
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[WARN] decode %s: %v", path, err)
		if notify != nil {
			notify(fmt.Errorf("decode %s: %w", filepath.Base(path), err))
		}
	}
}

// writeJSONFile encodes v and writes it to path, 2-space indented. The
// document is marshaled before the file is opened so encode failures never
// truncate it. Last write wins; there is no temp-file swap.
func writeJSONFile(path string, v any, notify ErrorFunc) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		if notify != nil {
			notify(err)
		}
		return fmt.Errorf("create dir for %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		if notify != nil {
			notify(err)
		}
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
