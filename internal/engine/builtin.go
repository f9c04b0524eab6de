package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/parser"
	"aidlkit/internal/sema"
	"aidlkit/internal/source"
)

type entry struct {
	id   source.FileID
	text []byte
}

// Builtin is the in-tree AIDL engine: hand-written lexer and recursive
// descent parser, plus a cross-file resolver for the validate pass.
type Builtin struct {
	opts    Options
	entries []entry
}

// New creates an empty built-in engine.
func New(opts Options) *Builtin {
	return &Builtin{opts: opts}
}

// AddContent registers text under id. Later calls with the same id are
// appended and produce a last-write-wins outcome, matching map semantics.
func (e *Builtin) AddContent(id source.FileID, text []byte) {
	e.entries = append(e.entries, entry{id: id, text: text})
}

type fileResult struct {
	id  source.FileID
	ast *ast.File
	bag *diag.Bag
}

// parseAll parses every entry in parallel. The per-entry result index is
// unique per goroutine, so no locking is needed.
func (e *Builtin) parseAll(ctx context.Context) ([]fileResult, error) {
	results := make([]fileResult, len(e.entries))

	jobs := e.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(e.entries), 1)))

	for i, ent := range e.entries {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(e.opts.maxDiagnostics())
			file := &source.File{ID: ent.id, Content: ent.text}
			tree := parser.ParseFile(file, parser.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})
			results[i] = fileResult{id: ent.id, ast: tree, bag: bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Parse runs the syntax-only pass.
func (e *Builtin) Parse(ctx context.Context) (map[source.FileID]Outcome, error) {
	results, err := e.parseAll(ctx)
	if err != nil {
		return nil, err
	}
	return collect(results), nil
}

// Validate runs the syntax pass plus cross-file resolution and checks.
func (e *Builtin) Validate(ctx context.Context) (map[source.FileID]Outcome, error) {
	results, err := e.parseAll(ctx)
	if err != nil {
		return nil, err
	}

	files := make(map[source.FileID]*ast.File)
	reporters := make(map[source.FileID]diag.Reporter)
	for _, r := range results {
		if r.ast != nil {
			files[r.id] = r.ast
		}
		reporters[r.id] = diag.BagReporter{Bag: r.bag}
	}
	sema.New(files, reporters).Run()

	return collect(results), nil
}

// collect folds per-entry results into the outcome map. Entries added later
// under the same id win, like the map write they turn into.
func collect(results []fileResult) map[source.FileID]Outcome {
	out := make(map[source.FileID]Outcome, len(results))
	for _, r := range results {
		r.bag.Sort()
		out[r.id] = Outcome{AST: r.ast, Diagnostics: r.bag.Items()}
	}
	return out
}
