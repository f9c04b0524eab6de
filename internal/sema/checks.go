package sema

import (
	"strconv"

	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/source"
)

// checkFile runs interface-level constraint checks on f.
func (a *Analyzer) checkFile(id source.FileID, f *ast.File) {
	iface, ok := f.Item.(*ast.Interface)
	if !ok {
		a.checkMemberNames(id, f)
		return
	}

	seenTransaction := make(map[uint32]*ast.Method)
	for _, m := range iface.Members {
		method, ok := m.(*ast.Method)
		if !ok {
			continue
		}

		// oneway methods cannot deliver a result back to the caller.
		if method.Oneway && !isVoid(method.ReturnType) {
			a.errorAt(id, diag.SemOnewayWithResult, method.ReturnType.Span,
				"oneway method `"+method.Name+"` must return void").
				WithContext("non-void return type").
				WithHint("drop `oneway` or change the return type to void").
				Emit()
		}
		for i := range method.Args {
			if method.Oneway && method.Args[i].Direction != ast.DirIn && method.Args[i].Direction != ast.DirUnspecified {
				a.errorAt(id, diag.SemOnewayWithResult, method.Args[i].Span,
					"oneway method `"+method.Name+"` cannot have out parameters").
					WithHint("drop `oneway` or pass the argument with `in`").
					Emit()
			}
		}

		if method.TransactionID != nil {
			if prev, dup := seenTransaction[*method.TransactionID]; dup {
				a.errorAt(id, diag.SemDuplicateTransaction, method.Span,
					"transaction id "+strconv.FormatUint(uint64(*method.TransactionID), 10)+" is already used").
					WithContext("duplicate transaction id").
					WithRelated(prev.Span, "first used by `"+prev.Name+"`").
					Emit()
			} else {
				seenTransaction[*method.TransactionID] = method
			}
		}
	}

	a.checkMemberNames(id, f)
}

// checkMemberNames warns about duplicate member names within one item. The
// parser accepts them and the projection folds them away, so this is the one
// place the user hears about it.
func (a *Analyzer) checkMemberNames(id source.FileID, f *ast.File) {
	type decl struct {
		name string
		span source.Span
	}
	var decls []decl

	switch item := f.Item.(type) {
	case *ast.Interface:
		for _, m := range item.Members {
			switch member := m.(type) {
			case *ast.Method:
				decls = append(decls, decl{member.Name, member.Span})
			case *ast.Const:
				decls = append(decls, decl{member.Name, member.Span})
			}
		}
	case *ast.Parcelable:
		for _, fld := range item.Fields {
			decls = append(decls, decl{fld.Name, fld.Span})
		}
	case *ast.Enum:
		for _, el := range item.Elements {
			decls = append(decls, decl{el.Name, el.Span})
		}
	}

	seen := make(map[string]source.Span, len(decls))
	for _, d := range decls {
		if first, dup := seen[d.name]; dup {
			a.warnAt(id, diag.SemDuplicateMember, d.span,
				"duplicate member name `"+d.name+"`").
				WithContext("declared again here").
				WithRelated(first, "first declared here").
				WithHint("rename one of the members; only one survives in exported models").
				Emit()
			continue
		}
		seen[d.name] = d.span
	}
}

func isVoid(t ast.Type) bool {
	return t.Kind == ast.TypePrimitive && t.Name == "void"
}
