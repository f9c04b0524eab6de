package diag

import (
	"fmt"
)

// Code identifies the concrete kind of a diagnostic.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005

	// Syntax
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectPackage      Code = 2004
	SynExpectItem         Code = 2005
	SynExpectMember       Code = 2006
	SynExpectType         Code = 2007
	SynExpectRBrace       Code = 2008
	SynExpectRParen       Code = 2009
	SynExpectValue        Code = 2010
	SynExtraItem          Code = 2011
	SynBadTransactionID   Code = 2012

	// Semantic
	SemUnresolvedType       Code = 3001
	SemDuplicateItem        Code = 3002
	SemOnewayWithResult     Code = 3003
	SemDuplicateTransaction Code = 3004
	SemDuplicateMember      Code = 3005
)

func (c Code) String() string {
	switch {
	case c >= 3000:
		return fmt.Sprintf("SEM%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("DIAG%04d", uint16(c))
	}
}
