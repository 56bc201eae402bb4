package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tiliavir/pomo/internal/storage"
)

// Config is the root configuration for pomo, stored in ~/.pomo/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// DataFile is the session log location. Empty means <base>/sessions.json.
	DataFile string `json:"data_file"`
	// Bell rings the terminal bell when an interval completes.
	Bell *bool `json:"bell"`
	// Debug raises the log level and mirrors the log to stderr.
	Debug bool `json:"debug"`
}

// BellEnabled reports whether the completion bell should ring. Defaults to true.
func (c Config) BellEnabled() bool {
	return c.Bell == nil || *c.Bell
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing.
const configTemplate = `// pomo configuration – ~/.pomo/config.json
//
// All settings are optional. Work (25 min) and break (5 min) lengths are fixed.
{
  // Where completed sessions are stored. Leave empty for ~/.pomo/sessions.json.
  // A leading ~/ is expanded to your home directory.
  "data_file": "",

  // Ring the terminal bell when a countdown completes.
  "bell": true,

  // Write debug logs to stderr as well as ~/.pomo/logs/pomo.log.
  "debug": false
}
`

// FilePath returns the config location inside base.
func FilePath(base string) string {
	return filepath.Join(base, "config.json")
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads <base>/config.json, creating it with annotated defaults on first
// run, and resolves DataFile to an absolute path.
func Load(base string) (Config, error) {
	path := FilePath(base)
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	cfg.DataFile, err = resolveDataFile(base, cfg.DataFile)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveDataFile(base, p string) (string, error) {
	if p == "" {
		return storage.DefaultPath(base), nil
	}
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, p[2:]), nil
	}
	if !filepath.IsAbs(p) {
		return filepath.Join(base, p), nil
	}
	return p, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
