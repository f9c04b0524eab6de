package parser

import (
	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/token"
)

// parseParcelable parses:
//
//	parcelable Data {
//	    int id;
//	    List<String> names;
//	}
func (p *Parser) parseParcelable() (ast.Item, bool) {
	kw := p.advance() // 'parcelable'

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parcelable name")
	if !ok {
		return nil, false
	}

	par := &ast.Parcelable{
		Name: name.Text,
		Doc:  firstNonEmpty(kw.Doc, name.Doc),
		Span: name.Span,
	}

	// Forward declaration without a body: `parcelable Data;`.
	if p.at(token.Semicolon) {
		p.advance()
		return par, true
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after parcelable name"); !ok {
		return nil, false
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		field, ok := p.parseField()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		par.Fields = append(par.Fields, field)
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close parcelable body")
	p.eatOptionalSemicolon()
	return par, true
}

// parseField parses `<type> name [= literal];`. A default value is accepted
// but not retained.
func (p *Parser) parseField() (ast.Field, bool) {
	p.skipAnnotations()

	typ, ok := p.parseType()
	if !ok {
		return ast.Field{}, false
	}

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
	if !ok {
		return ast.Field{}, false
	}

	if p.at(token.Assign) {
		p.advance()
		if _, ok := p.parseLiteral(); !ok {
			return ast.Field{}, false
		}
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after field declaration")

	return ast.Field{
		Name: name.Text,
		Type: typ.Type,
		Doc:  firstNonEmpty(typ.Doc(), name.Doc),
		Span: name.Span,
	}, true
}
