package parser

import (
	"slices"

	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/lexer"
	"aidlkit/internal/source"
	"aidlkit/internal/token"
)

// Options configure a Parser.
type Options struct {
	Reporter diag.Reporter
}

// Parser holds the parse state for one file.
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics at EOF
}

// ParseFile parses one AIDL file. The returned *ast.File is nil when no usable
// declaration could be recovered; diagnostics go to opts.Reporter either way.
func ParseFile(file *source.File, opts Options) *ast.File {
	p := Parser{
		lx:   lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		file: file,
		opts: opts,
	}
	return p.parseFile()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan returns the best span for a diagnostic at the current position.
// At EOF the caret points just past the last consumed token.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports an error and returns false.
// Decorators run against the report builder before the diagnostic is emitted.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string, decorate ...func(*diag.ReportBuilder)) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	b := diag.ReportError(p.opts.Reporter, code, sp, msg).
		WithContext("found " + p.lx.Peek().Kind.String())
	for _, dec := range decorate {
		dec(b)
	}
	b.Emit()
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	diag.ReportError(p.opts.Reporter, code, p.diagSpan(), msg).Emit()
}

// resyncUntil skips tokens until one of kinds (or EOF) is at the front.
// The stop token itself is not consumed.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(kinds...) {
		p.advance()
	}
}

// parseFile is the file-level grammar: package decl, imports, one item.
func (p *Parser) parseFile() *ast.File {
	out := &ast.File{}

	pkg, ok := p.parsePackage()
	if !ok {
		p.resyncUntil(token.KwInterface, token.KwParcelable, token.KwEnum, token.KwImport)
	}
	out.Package = pkg

	for p.at(token.KwImport) {
		if imp, ok := p.parseImport(); ok {
			out.Imports = append(out.Imports, imp)
		} else {
			p.resyncUntil(token.KwImport, token.KwInterface, token.KwParcelable, token.KwEnum)
		}
	}

	for !p.at(token.EOF) {
		item, ok := p.parseItem()
		if !ok {
			p.resyncUntil(token.KwInterface, token.KwParcelable, token.KwEnum)
			continue
		}
		if out.Item != nil {
			diag.ReportError(p.opts.Reporter, diag.SynExtraItem, item.NameSpan(),
				"expected exactly one declaration per file").
				WithRelated(out.Item.NameSpan(), "first declaration is here").
				WithHint("move `" + item.ItemName() + "` into its own file").
				Emit()
			continue
		}
		out.Item = item
	}

	if out.Item == nil {
		return nil
	}
	return out
}

// parsePackage parses `package a.b.c;`.
func (p *Parser) parsePackage() (ast.Package, bool) {
	kw, ok := p.expect(token.KwPackage, diag.SynExpectPackage, "expected package declaration")
	if !ok {
		return ast.Package{}, false
	}

	name, sp, ok := p.parseDottedName()
	if !ok {
		return ast.Package{}, false
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after package declaration")

	return ast.Package{Name: name, Span: kw.Span.Cover(sp)}, true
}

// parseImport parses `import a.b.C;`.
func (p *Parser) parseImport() (ast.Import, bool) {
	kw := p.advance() // 'import'

	path, sp, ok := p.parseDottedName()
	if !ok {
		return ast.Import{}, false
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import")

	return ast.Import{Path: path, Span: kw.Span.Cover(sp)}, true
}

// parseDottedName parses `ident ('.' ident)*` and returns the joined name.
func (p *Parser) parseDottedName() (string, source.Span, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier")
	if !ok {
		return "", first.Span, false
	}

	name := first.Text
	sp := first.Span
	for p.at(token.Dot) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '.'")
		if !ok {
			return name, sp, false
		}
		name += "." + seg.Text
		sp = sp.Cover(seg.Span)
	}
	return name, sp, true
}

// parseItem dispatches on the item keyword.
func (p *Parser) parseItem() (ast.Item, bool) {
	p.skipAnnotations()

	switch p.lx.Peek().Kind {
	case token.KwInterface:
		return p.parseInterface()
	case token.KwParcelable:
		return p.parseParcelable()
	case token.KwEnum:
		return p.parseEnum()
	default:
		p.err(diag.SynExpectItem, "expected interface, parcelable or enum declaration")
		return nil, false
	}
}

// skipAnnotations consumes `@Name` and `@Name(...)` sequences. Annotation
// contents do not survive into the AST.
func (p *Parser) skipAnnotations() {
	for p.at(token.At) {
		p.advance() // '@'
		if !p.at(token.Ident) {
			p.err(diag.SynExpectIdentifier, "expected annotation name after '@'")
			return
		}
		p.advance()
		if p.at(token.LParen) {
			depth := 0
			for !p.at(token.EOF) {
				tok := p.advance()
				if tok.Kind == token.LParen {
					depth++
				}
				if tok.Kind == token.RParen {
					depth--
					if depth == 0 {
						break
					}
				}
			}
		}
	}
}
