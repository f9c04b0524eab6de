package parser

import (
	"strconv"

	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/token"
)

// parseInterface parses:
//
//	interface IFoo {
//	    const int VERSION = 2;
//	    void doWork(in Data data);
//	}
func (p *Parser) parseInterface() (ast.Item, bool) {
	kw := p.advance() // 'interface'

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected interface name")
	if !ok {
		return nil, false
	}

	iface := &ast.Interface{
		Name: name.Text,
		Doc:  firstNonEmpty(kw.Doc, name.Doc),
		Span: name.Span,
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after interface name"); !ok {
		return nil, false
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		member, ok := p.parseInterfaceMember()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		iface.Members = append(iface.Members, member)
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close interface body")
	p.eatOptionalSemicolon()
	return iface, true
}

func (p *Parser) parseInterfaceMember() (ast.InterfaceMember, bool) {
	p.skipAnnotations()

	if p.at(token.KwConst) {
		return p.parseConst()
	}
	return p.parseMethod()
}

// parseConst parses `const <type> NAME = <literal>;`.
func (p *Parser) parseConst() (ast.InterfaceMember, bool) {
	kw := p.advance() // 'const'

	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected constant name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectValue, "expected '=' in constant declaration"); !ok {
		return nil, false
	}
	value, ok := p.parseLiteral()
	if !ok {
		return nil, false
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after constant declaration")

	return &ast.Const{
		Name:  name.Text,
		Type:  typ.Type,
		Value: value,
		Doc:   firstNonEmpty(kw.Doc, name.Doc),
		Span:  name.Span,
	}, true
}

// parseMethod parses:
//
//	oneway void notify(in int what);
//	int getState() = 3;
func (p *Parser) parseMethod() (ast.InterfaceMember, bool) {
	var oneway bool
	var doc string

	if p.at(token.KwOneway) {
		kw := p.advance()
		oneway = true
		doc = kw.Doc
	}

	ret, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if doc == "" {
		doc = ret.Doc()
	}

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected method name")
	if !ok {
		return nil, false
	}

	method := &ast.Method{
		Oneway:     oneway,
		Name:       name.Text,
		ReturnType: ret.Type,
		Doc:        doc,
		Span:       name.Span,
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after method name"); !ok {
		return nil, false
	}
	if args, ok := p.parseArgs(); ok {
		method.Args = args
	} else {
		return nil, false
	}

	// Optional explicit transaction id: `= N`.
	if p.at(token.Assign) {
		p.advance()
		lit, ok := p.expect(token.IntLit, diag.SynBadTransactionID, "expected transaction id after '='")
		if !ok {
			return nil, false
		}
		id, err := strconv.ParseUint(lit.Text, 0, 32)
		if err != nil {
			diag.ReportError(p.opts.Reporter, diag.SynBadTransactionID, lit.Span,
				"transaction id out of range").
				WithContext("must fit an unsigned 32-bit integer").
				Emit()
			return nil, false
		}
		v := uint32(id)
		method.TransactionID = &v
	}

	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after method declaration")
	return method, true
}

// parseArgs parses the parenthesized argument list; the opening '(' is
// already consumed.
func (p *Parser) parseArgs() ([]ast.Arg, bool) {
	var args []ast.Arg

	if p.at(token.RParen) {
		p.advance()
		return args, true
	}

	for {
		arg, ok := p.parseArg()
		if !ok {
			return nil, false
		}
		args = append(args, arg)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after argument list"); !ok {
		return nil, false
	}
	return args, true
}

// parseArg parses `[direction] <type> [name]`.
func (p *Parser) parseArg() (ast.Arg, bool) {
	p.skipAnnotations()

	arg := ast.Arg{Direction: ast.DirUnspecified}
	switch p.lx.Peek().Kind {
	case token.KwIn:
		arg.Direction = ast.DirIn
		arg.Doc = p.advance().Doc
	case token.KwOut:
		arg.Direction = ast.DirOut
		arg.Doc = p.advance().Doc
	case token.KwInOut:
		arg.Direction = ast.DirInOut
		arg.Doc = p.advance().Doc
	}

	typ, ok := p.parseType()
	if !ok {
		return ast.Arg{}, false
	}
	arg.Type = typ.Type
	arg.Span = typ.Type.Span
	if arg.Doc == "" {
		arg.Doc = typ.Doc()
	}

	if p.at(token.Ident) {
		name := p.advance()
		arg.Name = name.Text
		arg.Span = arg.Span.Cover(name.Span)
	}
	return arg, true
}

func (p *Parser) eatOptionalSemicolon() {
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
