// Package driver walks a directory tree for AIDL sources, registers them in a
// FileSet and runs them through the parsing engine.
package driver

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"aidlkit/internal/engine"
	"aidlkit/internal/source"
)

// Options configure one scan.
type Options struct {
	// MaxDiagnostics caps diagnostics per file. 0 means the engine default.
	MaxDiagnostics int
	// Jobs limits parallel per-file parsing. 0 means GOMAXPROCS.
	Jobs int
	// Validate enables cross-file type resolution and semantic checks after
	// parsing.
	Validate bool
	// Progress receives one dot per registered file. Nil disables progress.
	Progress io.Writer
	// Engine overrides the built-in engine. Nil selects engine.New.
	Engine engine.Engine
	// Log receives per-file debug events.
	Log zerolog.Logger
}

// Result pairs the populated FileSet with the per-file engine outcomes.
type Result struct {
	FileSet  *source.FileSet
	Outcomes map[source.FileID]engine.Outcome
}

// listAIDLFiles returns the sorted disk paths of every *.aidl file under dir.
// The extension match is case-insensitive.
func listAIDLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".aidl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list AIDL files in %s: %w", dir, err)
	}

	// Sorted for deterministic registration order.
	sort.Strings(files)
	return files, nil
}

// Scan walks dir, registers every AIDL file under its path relative to dir
// and runs the engine over the registered contents.
func Scan(ctx context.Context, dir string, opts Options) (*Result, error) {
	files, err := listAIDLFiles(dir)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	eng := opts.Engine
	if eng == nil {
		eng = engine.New(engine.Options{
			MaxDiagnostics: opts.MaxDiagnostics,
			Jobs:           opts.Jobs,
		})
	}

	for _, path := range files {
		rel, err := source.RelativePath(path, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}

		id, err := fileSet.Load(path, rel)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		eng.AddContent(id, fileSet.Get(id).Content)
		opts.Log.Debug().Str("path", rel).Uint32("file", uint32(id)).Msg("registered source file")

		if opts.Progress != nil {
			fmt.Fprint(opts.Progress, ".")
		}
	}
	if opts.Progress != nil && len(files) > 0 {
		fmt.Fprintln(opts.Progress)
	}

	var outcomes map[source.FileID]engine.Outcome
	if opts.Validate {
		outcomes, err = eng.Validate(ctx)
	} else {
		outcomes, err = eng.Parse(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &Result{FileSet: fileSet, Outcomes: outcomes}, nil
}
