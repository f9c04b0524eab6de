package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal (decimal or hex).
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// CharLit represents a single-quoted character literal.
	CharLit

	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwParcelable represents the 'parcelable' keyword.
	KwParcelable // parcelable
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwOneway represents the 'oneway' keyword.
	KwOneway // oneway
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwIn represents the 'in' direction keyword.
	KwIn // in
	// KwOut represents the 'out' direction keyword.
	KwOut // out
	// KwInOut represents the 'inout' direction keyword.
	KwInOut // inout

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Lt        // <
	Gt        // >
	Comma     // ,
	Semicolon // ;
	Dot       // .
	Assign    // =
	Minus     // -
	At        // @
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case IntLit:
		return "integer literal"
	case FloatLit:
		return "float literal"
	case StringLit:
		return "string literal"
	case CharLit:
		return "char literal"
	case KwPackage:
		return "'package'"
	case KwImport:
		return "'import'"
	case KwInterface:
		return "'interface'"
	case KwParcelable:
		return "'parcelable'"
	case KwEnum:
		return "'enum'"
	case KwOneway:
		return "'oneway'"
	case KwConst:
		return "'const'"
	case KwIn:
		return "'in'"
	case KwOut:
		return "'out'"
	case KwInOut:
		return "'inout'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Lt:
		return "'<'"
	case Gt:
		return "'>'"
	case Comma:
		return "','"
	case Semicolon:
		return "';'"
	case Dot:
		return "'.'"
	case Assign:
		return "'='"
	case Minus:
		return "'-'"
	case At:
		return "'@'"
	}
	return "unknown"
}
