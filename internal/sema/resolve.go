// Package sema is the validate pass: it resolves type references across all
// parsed files and checks interface-level constraints. Parse-only runs skip
// this package entirely.
package sema

import (
	"sort"

	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/source"
)

// symbol is one declared item in the project-wide table.
type symbol struct {
	qualified string
	file      source.FileID
	span      source.Span
}

// Analyzer resolves type references against the set of all declared items.
type Analyzer struct {
	files     map[source.FileID]*ast.File
	reporters map[source.FileID]diag.Reporter
	table     map[string]symbol // qualified name -> declaration
	bySimple  map[string][]symbol
}

// New builds an Analyzer over every successfully parsed file. reporters must
// hold one Reporter per file id present in files.
func New(files map[source.FileID]*ast.File, reporters map[source.FileID]diag.Reporter) *Analyzer {
	return &Analyzer{
		files:     files,
		reporters: reporters,
		table:     make(map[string]symbol),
		bySimple:  make(map[string][]symbol),
	}
}

// Run performs symbol collection, type resolution and interface checks.
func (a *Analyzer) Run() {
	a.collect()

	ids := make([]source.FileID, 0, len(a.files))
	for id := range a.files {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		f := a.files[id]
		a.resolveFile(id, f)
		a.checkFile(id, f)
	}
}

// errorAt starts an error report against the reporter registered for id.
func (a *Analyzer) errorAt(id source.FileID, code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	return diag.ReportError(a.reporters[id], code, sp, msg)
}

// warnAt starts a warning report against the reporter registered for id.
func (a *Analyzer) warnAt(id source.FileID, code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	return diag.ReportWarning(a.reporters[id], code, sp, msg)
}

// collect fills the symbol table with every declared item, flagging duplicate
// qualified names.
func (a *Analyzer) collect() {
	ids := make([]source.FileID, 0, len(a.files))
	for id := range a.files {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		f := a.files[id]
		if f.Item == nil {
			continue
		}
		qualified := f.Package.Name + "." + f.Item.ItemName()
		if prev, ok := a.table[qualified]; ok {
			a.errorAt(id, diag.SemDuplicateItem, f.Item.NameSpan(),
				"duplicate declaration of `"+qualified+"`").
				WithContext("already declared").
				WithRelated(prev.span, "first declaration is here").
				WithHint("rename one of the declarations or remove the duplicate file").
				Emit()
			continue
		}
		sym := symbol{qualified: qualified, file: id, span: f.Item.NameSpan()}
		a.table[qualified] = sym
		a.bySimple[f.Item.ItemName()] = append(a.bySimple[f.Item.ItemName()], sym)
	}
}

// resolveFile resolves every type reference declared in f.
func (a *Analyzer) resolveFile(id source.FileID, f *ast.File) {
	switch item := f.Item.(type) {
	case *ast.Interface:
		for _, m := range item.Members {
			switch member := m.(type) {
			case *ast.Method:
				a.resolveType(id, f, &member.ReturnType)
				for i := range member.Args {
					a.resolveType(id, f, &member.Args[i].Type)
				}
			case *ast.Const:
				a.resolveType(id, f, &member.Type)
			}
		}
	case *ast.Parcelable:
		for i := range item.Fields {
			a.resolveType(id, f, &item.Fields[i].Type)
		}
	case *ast.Enum:
		// Enum constants carry no type references.
	}
}

// resolveType resolves t in place, recursing into generic arguments.
func (a *Analyzer) resolveType(id source.FileID, f *ast.File, t *ast.Type) {
	for i := range t.Generic {
		a.resolveType(id, f, &t.Generic[i])
	}

	if t.Kind != ast.TypeUnresolved {
		return
	}

	if qualified, ok := a.lookup(f, t.Name); ok {
		t.Kind = ast.TypeResolved
		t.Qualified = qualified
		return
	}

	b := a.errorAt(id, diag.SemUnresolvedType, t.Span, "unknown type `"+t.Name+"`").
		WithContext("type is not resolved")
	if others := a.bySimple[simpleName(t.Name)]; len(others) > 0 {
		other := others[0]
		b.WithRelated(other.span, "a declaration named `"+other.qualified+"` exists").
			WithHint("did you mean to import `" + other.qualified + "`?")
	} else {
		b.WithHint("did you forget to import `" + t.Name + "`?")
	}
	b.Emit()
}

// lookup resolves name from the viewpoint of file f: fully qualified names,
// then same-package names, then imported names.
func (a *Analyzer) lookup(f *ast.File, name string) (string, bool) {
	if sym, ok := a.table[name]; ok {
		return sym.qualified, true
	}
	if sym, ok := a.table[f.Package.Name+"."+name]; ok {
		return sym.qualified, true
	}
	for _, imp := range f.Imports {
		if imp.SimpleName() != name {
			continue
		}
		if sym, ok := a.table[imp.Path]; ok {
			return sym.qualified, true
		}
	}
	return "", false
}

func simpleName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
