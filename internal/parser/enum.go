package parser

import (
	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/token"
)

// parseEnum parses:
//
//	enum Status {
//	    UNKNOWN = 0,
//	    STARTED,
//	    DONE,
//	}
func (p *Parser) parseEnum() (ast.Item, bool) {
	kw := p.advance() // 'enum'

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum name")
	if !ok {
		return nil, false
	}

	enum := &ast.Enum{
		Name: name.Text,
		Doc:  firstNonEmpty(kw.Doc, name.Doc),
		Span: name.Span,
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after enum name"); !ok {
		return nil, false
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		elem, ok := p.parseEnumElement()
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace)
			if p.at(token.Comma) {
				p.advance()
			}
			continue
		}
		enum.Elements = append(enum.Elements, elem)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close enum body")
	p.eatOptionalSemicolon()
	return enum, true
}

// parseEnumElement parses `NAME [= literal]`.
func (p *Parser) parseEnumElement() (ast.EnumElement, bool) {
	p.skipAnnotations()

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum constant name")
	if !ok {
		return ast.EnumElement{}, false
	}

	elem := ast.EnumElement{
		Name: name.Text,
		Doc:  name.Doc,
		Span: name.Span,
	}

	if p.at(token.Assign) {
		p.advance()
		value, ok := p.parseLiteral()
		if !ok {
			return ast.EnumElement{}, false
		}
		elem.Value = value
	}
	return elem, true
}
