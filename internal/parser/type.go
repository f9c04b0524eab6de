package parser

import (
	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/token"
)

// parsedType couples a parsed type reference with the doc comment attached to
// its first token, so member parsers can promote it to the member's doc.
type parsedType struct {
	Type ast.Type
	doc  string
}

func (t parsedType) Doc() string { return t.doc }

// parseType parses a type reference:
//
//	int
//	String
//	com.example.Data
//	List<String>
//	Map<String, List<int>>
//	byte[]
func (p *Parser) parseType() (parsedType, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynExpectType, "expected type")
		return parsedType{}, false
	}

	first := p.lx.Peek()
	name, sp, ok := p.parseDottedName()
	if !ok {
		return parsedType{}, false
	}

	typ := ast.Type{
		Kind: classifyTypeName(name),
		Name: name,
		Span: sp,
	}

	// Generic arguments.
	if p.at(token.Lt) {
		p.advance()
		for {
			inner, ok := p.parseType()
			if !ok {
				return parsedType{}, false
			}
			typ.Generic = append(typ.Generic, inner.Type)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		gt, ok := p.expect(token.Gt, diag.SynExpectType, "expected '>' to close generic arguments")
		if !ok {
			return parsedType{}, false
		}
		typ.Span = typ.Span.Cover(gt.Span)
	}

	// Array suffixes: each `[]` wraps the type once.
	for p.at(token.LBracket) {
		p.advance()
		rb, ok := p.expect(token.RBracket, diag.SynExpectType, "expected ']' in array type")
		if !ok {
			return parsedType{}, false
		}
		typ = ast.Type{
			Kind:    ast.TypeArray,
			Name:    "Array",
			Generic: []ast.Type{typ},
			Span:    typ.Span.Cover(rb.Span),
		}
	}

	return parsedType{Type: typ, doc: first.Doc}, true
}

func classifyTypeName(name string) ast.TypeKind {
	switch {
	case ast.IsPrimitiveName(name):
		return ast.TypePrimitive
	case ast.IsStringName(name):
		return ast.TypeString
	case name == "List":
		return ast.TypeList
	case name == "Map":
		return ast.TypeMap
	default:
		return ast.TypeUnresolved
	}
}

// parseLiteral parses a constant value and returns its text as written.
// Negative numbers keep their sign.
func (p *Parser) parseLiteral() (string, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Minus:
		p.advance()
		if p.atAny(token.IntLit, token.FloatLit) {
			num := p.advance()
			return "-" + num.Text, true
		}
		p.err(diag.SynExpectValue, "expected number after '-'")
		return "", false

	case tok.IsLiteral():
		p.advance()
		return tok.Text, true

	case tok.Kind == token.Ident && (tok.Text == "true" || tok.Text == "false"):
		p.advance()
		return tok.Text, true

	default:
		p.err(diag.SynExpectValue, "expected literal value")
		return "", false
	}
}
