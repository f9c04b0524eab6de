package ast

import (
	"aidlkit/internal/source"
)

// TypeKind discriminates the closed set of type reference shapes.
type TypeKind uint8

const (
	// TypeUnresolved is a bare name not yet (or never) resolved to a
	// declared item.
	TypeUnresolved TypeKind = iota
	// TypeResolved is a reference resolved to a declared item; Qualified
	// carries the fully qualified name.
	TypeResolved
	// TypePrimitive covers void, boolean, byte, char, int, long, float, double.
	TypePrimitive
	// TypeString covers String and CharSequence.
	TypeString
	// TypeArray is `T[]`, carried as base name "Array" with one generic argument.
	TypeArray
	// TypeList is `List` or `List<T>`.
	TypeList
	// TypeMap is `Map` or `Map<K, V>`.
	TypeMap
)

// Type is a possibly-generic, possibly-unresolved type reference.
// Generic holds 0 arguments for scalars, 1 for Array/List, 2 for Map.
// Nesting is finite and acyclic by construction.
type Type struct {
	Kind      TypeKind
	Name      string
	Generic   []Type
	Qualified string // set when Kind == TypeResolved
	Span      source.Span
}

var primitives = map[string]struct{}{
	"void":    {},
	"boolean": {},
	"byte":    {},
	"char":    {},
	"int":     {},
	"long":    {},
	"float":   {},
	"double":  {},
}

// IsPrimitiveName reports whether name is an AIDL primitive type name.
func IsPrimitiveName(name string) bool {
	_, ok := primitives[name]
	return ok
}

// IsStringName reports whether name is one of the built-in string types.
func IsStringName(name string) bool {
	return name == "String" || name == "CharSequence"
}
