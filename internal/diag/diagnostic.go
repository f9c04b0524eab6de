package diag

import (
	"aidlkit/internal/source"
)

// RelatedInfo points at a secondary span that gives context for a diagnostic,
// e.g. the first declaration site of a duplicated name.
type RelatedInfo struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one engine-reported issue anchored to a primary span.
// ContextMsg, when non-empty, labels the primary span itself; Message is the
// headline. Hint, when non-empty, suggests a remediation.
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Message    string
	Primary    source.Span
	ContextMsg string
	Related    []RelatedInfo
	Hint       string
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithContext(msg string) Diagnostic {
	d.ContextMsg = msg
	return d
}

func (d Diagnostic) WithRelated(sp source.Span, msg string) Diagnostic {
	d.Related = append(d.Related, RelatedInfo{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithHint(hint string) Diagnostic {
	d.Hint = hint
	return d
}
