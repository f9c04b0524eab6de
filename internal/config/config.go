// Package config loads the optional aidlkit.toml manifest that seeds scan
// defaults. Command-line flags always win over manifest values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors the aidlkit.toml layout.
type Config struct {
	Output      OutputConfig      `toml:"output"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

type OutputConfig struct {
	// Format is "json" or "yaml". Empty means json.
	Format string `toml:"format"`
	Pretty bool   `toml:"pretty"`
	// Path names the output file. Empty means stdout.
	Path string `toml:"path"`
}

type DiagnosticsConfig struct {
	Hide bool `toml:"hide"`
	// Max caps diagnostics per file. 0 keeps the engine default.
	Max int `toml:"max"`
	// Jobs limits parallel parsing. 0 means one worker per CPU.
	Jobs int `toml:"jobs"`
}

// Manifest is a loaded aidlkit.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks from startDir towards the filesystem root looking for
// aidlkit.toml. The second return is false when no manifest exists.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "aidlkit.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest manifest above startDir. A missing
// manifest is not an error: the second return is false and the config holds
// zero values.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := parseFile(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func parseFile(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if format := strings.TrimSpace(cfg.Output.Format); format != "" {
		switch format {
		case "json", "yaml":
		default:
			return Config{}, fmt.Errorf("%s: [output].format must be \"json\" or \"yaml\", got %q", path, format)
		}
	}
	if meta.IsDefined("diagnostics", "max") && cfg.Diagnostics.Max < 0 {
		return Config{}, fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	if meta.IsDefined("diagnostics", "jobs") && cfg.Diagnostics.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [diagnostics].jobs must not be negative", path)
	}
	return cfg, nil
}
