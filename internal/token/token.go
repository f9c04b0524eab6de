package token

import (
	"aidlkit/internal/source"
)

// Token represents a single source token with its location.
// Doc carries the text of the last `/** ... */` comment that immediately
// precedes the token, with comment markers already stripped.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Doc  string
}

// IsLiteral reports whether the token is a numeric, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is an AIDL keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPackage, KwImport, KwInterface, KwParcelable, KwEnum,
		KwOneway, KwConst, KwIn, KwOut, KwInOut:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
