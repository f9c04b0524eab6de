package lexer

import (
	"aidlkit/internal/diag"
	"aidlkit/internal/source"
)

// Options configure a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. Nil falls back to NopReporter:
	// errors are dropped, but lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.opts.Reporter.Report(diag.NewError(code, sp, msg))
}
