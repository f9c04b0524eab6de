// Package ast defines the AIDL syntax tree handed out by the engine.
// The item and type kinds form closed sets fixed by the engine contract;
// consumers match exhaustively over them.
package ast

import (
	"aidlkit/internal/source"
)

// File is the parse result of one AIDL source file: a package declaration,
// zero or more imports, and exactly one top-level item.
type File struct {
	Package Package
	Imports []Import
	Item    Item
}

// Package is a dotted package declaration such as `com.example.os`.
type Package struct {
	Name string
	Span source.Span
}

// Import references an item declared in another file.
type Import struct {
	// Path is the dotted qualified name, e.g. `com.example.IServiceCallback`.
	Path string
	Span source.Span
}

// SimpleName returns the last segment of the import path.
func (im Import) SimpleName() string {
	for i := len(im.Path) - 1; i >= 0; i-- {
		if im.Path[i] == '.' {
			return im.Path[i+1:]
		}
	}
	return im.Path
}
