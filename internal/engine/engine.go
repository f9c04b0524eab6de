// Package engine exposes the parsing engine behind a narrow contract: feed it
// file contents keyed by identity, then ask for a parse-only or a full
// validate pass. Callers never see the lexer, parser or resolver directly, so
// a stricter or incremental engine can be swapped in behind this interface.
package engine

import (
	"context"

	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/source"
)

// Outcome is the per-file result: an optional AST root (nil when parsing
// failed entirely) and the ordered diagnostics. Both may be populated at once;
// a file with error diagnostics can still carry a partial AST.
type Outcome struct {
	AST         *ast.File
	Diagnostics []diag.Diagnostic
}

// Engine is the external parsing collaborator. AddContent may be called any
// number of times before Parse or Validate; every added identity gets exactly
// one Outcome.
type Engine interface {
	// AddContent registers text under the caller-chosen identity.
	AddContent(id source.FileID, text []byte)
	// Parse runs a syntax-only pass over every added file.
	Parse(ctx context.Context) (map[source.FileID]Outcome, error)
	// Validate runs Parse plus cross-file type resolution and semantic checks.
	Validate(ctx context.Context) (map[source.FileID]Outcome, error)
}

// Options configure the built-in engine.
type Options struct {
	// MaxDiagnostics caps diagnostics per file. 0 means the default of 100.
	MaxDiagnostics int
	// Jobs limits parallel per-file parsing. 0 means GOMAXPROCS.
	Jobs int
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}
