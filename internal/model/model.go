// Package model holds the canonical, serializable project model: the
// normalized aggregation of every successfully parsed item across a scan.
// It carries no positional data; spans stay on the diagnostic path.
package model

// Project is the root of the exported model.
type Project struct {
	Root  string          `json:"root" yaml:"root"`
	Items map[string]Item `json:"items" yaml:"items"`
}

// ItemType tags the kind of a declared item.
type ItemType string

const (
	ItemInterface  ItemType = "interface"
	ItemParcelable ItemType = "parcelable"
	ItemEnum       ItemType = "enum"
)

// Item is one declared item, keyed in Project.Items by `<package>.<name>`.
type Item struct {
	Path     string             `json:"path" yaml:"path"`
	ItemType ItemType           `json:"itemType" yaml:"itemType"`
	Name     string             `json:"name" yaml:"name"`
	Elements map[string]Element `json:"elements" yaml:"elements"`
	Doc      string             `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ElementType tags the kind of an item member.
type ElementType string

const (
	ElementMethod      ElementType = "method"
	ElementConst       ElementType = "const"
	ElementField       ElementType = "field"
	ElementEnumElement ElementType = "enumElement"
)

// Element is one normalized member. Fields not applicable to the element's
// type are omitted from the serialized form. Value carries the method
// transaction id (number) or the const/enum literal text (string). Args is a
// pointer so that methods always serialize an argument list (empty included)
// while the other element kinds carry no args key at all.
type Element struct {
	ElementType ElementType `json:"elementType" yaml:"elementType"`
	Name        string      `json:"name" yaml:"name"`
	Oneway      *bool       `json:"oneway,omitempty" yaml:"oneway,omitempty"`
	ReturnType  string      `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	Args        *[]Arg      `json:"args,omitempty" yaml:"args,omitempty"`
	Type        string      `json:"type,omitempty" yaml:"type,omitempty"`
	Value       any         `json:"value,omitempty" yaml:"value,omitempty"`
	Doc         string      `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Direction is the normalized argument direction. The zero value means
// unspecified and is omitted from the serialized form.
type Direction string

const (
	DirIn    Direction = "in"
	DirOut   Direction = "out"
	DirInOut Direction = "inOut"
)

// Arg is one normalized method argument. Direction is omitted when
// unspecified; Name stays null for unnamed arguments.
type Arg struct {
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"`
	Name      *string   `json:"name" yaml:"name"`
	Type      string    `json:"type" yaml:"type"`
	Doc       string    `json:"doc,omitempty" yaml:"doc,omitempty"`
}
