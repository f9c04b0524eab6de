package ast

import (
	"aidlkit/internal/source"
)

// InterfaceMember is either a *Method or a *Const.
type InterfaceMember interface {
	isInterfaceMember()

	// MemberName returns the declared member name.
	MemberName() string
}

// Method is an interface method declaration.
type Method struct {
	Oneway     bool
	Name       string
	ReturnType Type
	Args       []Arg
	// TransactionID is the explicit `= N` transaction id, if declared.
	TransactionID *uint32
	Doc           string
	Span          source.Span // span of the name
}

// Const is an interface constant declaration.
type Const struct {
	Name  string
	Type  Type
	Value string // literal text as written
	Doc   string
	Span  source.Span
}

func (*Method) isInterfaceMember() {}
func (*Const) isInterfaceMember()  {}

func (m *Method) MemberName() string { return m.Name }
func (c *Const) MemberName() string  { return c.Name }

// Arg is one method argument.
type Arg struct {
	Direction Direction
	// Name is empty for unnamed arguments.
	Name string
	Type Type
	Doc  string
	Span source.Span
}

// Field is a parcelable field declaration.
type Field struct {
	Name string
	Type Type
	Doc  string
	Span source.Span
}

// EnumElement is one enumeration constant, with an optional literal value.
type EnumElement struct {
	Name  string
	Value string // literal text, "" when implicit
	Doc   string
	Span  source.Span
}

// Direction is the data flow direction of a method argument.
type Direction uint8

const (
	// DirUnspecified means no direction keyword was written.
	DirUnspecified Direction = iota
	DirIn
	DirOut
	DirInOut
)

func (d Direction) String() string {
	switch d {
	case DirIn:
		return "in"
	case DirOut:
		return "out"
	case DirInOut:
		return "inout"
	default:
		return ""
	}
}
