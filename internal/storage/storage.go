package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/pomo/internal/model"
)

// ErrCorrupt is returned by Load when the session file exists but cannot be parsed.
var ErrCorrupt = errors.New("corrupt session file")

// BaseDir returns the root data directory (~/.pomo).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".pomo"), nil
}

// DefaultPath returns the session file location inside base.
func DefaultPath(base string) string {
	return filepath.Join(base, "sessions.json")
}

// File is the JSON session log on disk.
type File struct {
	Path string
}

// Load reads all records from the file. A missing or empty file is an empty log.
func (f File) Load() ([]model.Record, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return []model.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", f.Path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Record{}, nil
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, f.corrupt(data, err)
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, f.corrupt(data, fmt.Errorf("record %d: %w", i, err))
		}
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// corrupt copies the unreadable file to <path>.corrupt and builds the error.
// The file itself is left untouched.
func (f File) corrupt(data []byte, cause error) error {
	backupPath := f.Path + ".corrupt"
	if err := os.WriteFile(backupPath, data, 0o600); err != nil {
		return fmt.Errorf("%w %s (backup failed: %v): %v", ErrCorrupt, f.Path, err, cause)
	}
	return fmt.Errorf("%w %s (copy saved to %s): %v", ErrCorrupt, f.Path, backupPath, cause)
}

// Save atomically rewrites the whole file with records.
func (f File) Save(records []model.Record) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	if records == nil {
		records = []model.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file, flush, then rename.
	tmpPath := f.Path + ".tmp"
	if err := writeSynced(tmpPath, data); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

func writeSynced(path string, data []byte) error {
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := fh.Write(data); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Sync(); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
