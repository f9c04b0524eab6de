package ast

import (
	"aidlkit/internal/source"
)

// Item is one of Interface, Parcelable or Enum. The set is closed: no other
// implementations exist.
type Item interface {
	isItem()

	// ItemName returns the declared name.
	ItemName() string
	// NameSpan returns the span of the declared name.
	NameSpan() source.Span
	// ItemDoc returns the doc comment, or "".
	ItemDoc() string
}

// Interface declares a remotable interface with methods and constants.
type Interface struct {
	Name    string
	Doc     string
	Span    source.Span // span of the name
	Members []InterfaceMember
}

// Parcelable declares a serializable data structure.
type Parcelable struct {
	Name   string
	Doc    string
	Span   source.Span
	Fields []Field
}

// Enum declares an enumeration.
type Enum struct {
	Name     string
	Doc      string
	Span     source.Span
	Elements []EnumElement
}

func (*Interface) isItem()  {}
func (*Parcelable) isItem() {}
func (*Enum) isItem()       {}

func (i *Interface) ItemName() string  { return i.Name }
func (p *Parcelable) ItemName() string { return p.Name }
func (e *Enum) ItemName() string       { return e.Name }

func (i *Interface) NameSpan() source.Span  { return i.Span }
func (p *Parcelable) NameSpan() source.Span { return p.Span }
func (e *Enum) NameSpan() source.Span       { return e.Span }

func (i *Interface) ItemDoc() string  { return i.Doc }
func (p *Parcelable) ItemDoc() string { return p.Doc }
func (e *Enum) ItemDoc() string       { return e.Doc }
