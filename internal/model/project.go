package model

import (
	"sort"

	"aidlkit/internal/ast"
	"aidlkit/internal/engine"
	"aidlkit/internal/source"
)

// Build projects every successfully parsed outcome into one Project. Files
// without an AST contribute nothing. Member lists fold into name-keyed maps;
// when a name repeats inside one item the later member wins.
func Build(fs *source.FileSet, results map[source.FileID]engine.Outcome, root string) *Project {
	project := &Project{
		Root:  root,
		Items: make(map[string]Item, len(results)),
	}

	ids := make([]source.FileID, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		outcome := results[id]
		if outcome.AST == nil {
			continue
		}
		file := fs.Get(id)
		key := outcome.AST.Package.Name + "." + outcome.AST.Item.ItemName()
		project.Items[key] = projectItem(outcome.AST.Item, file.Path)
	}
	return project
}

func projectItem(item ast.Item, path string) Item {
	out := Item{
		Path: path,
		Name: item.ItemName(),
		Doc:  item.ItemDoc(),
	}

	switch it := item.(type) {
	case *ast.Interface:
		out.ItemType = ItemInterface
		out.Elements = make(map[string]Element, len(it.Members))
		for _, m := range it.Members {
			el := projectInterfaceMember(m)
			out.Elements[el.Name] = el
		}

	case *ast.Parcelable:
		out.ItemType = ItemParcelable
		out.Elements = make(map[string]Element, len(it.Fields))
		for _, f := range it.Fields {
			out.Elements[f.Name] = Element{
				ElementType: ElementField,
				Name:        f.Name,
				Type:        TypeString(f.Type),
				Doc:         f.Doc,
			}
		}

	case *ast.Enum:
		out.ItemType = ItemEnum
		out.Elements = make(map[string]Element, len(it.Elements))
		for _, e := range it.Elements {
			el := Element{
				ElementType: ElementEnumElement,
				Name:        e.Name,
				Doc:         e.Doc,
			}
			if e.Value != "" {
				el.Value = e.Value
			}
			out.Elements[e.Name] = el
		}
	}
	return out
}

func projectInterfaceMember(m ast.InterfaceMember) Element {
	switch member := m.(type) {
	case *ast.Method:
		oneway := member.Oneway
		args := make([]Arg, 0, len(member.Args))
		for _, a := range member.Args {
			args = append(args, projectArg(a))
		}
		el := Element{
			ElementType: ElementMethod,
			Name:        member.Name,
			Oneway:      &oneway,
			ReturnType:  TypeString(member.ReturnType),
			Args:        &args,
			Doc:         member.Doc,
		}
		if member.TransactionID != nil {
			el.Value = *member.TransactionID
		}
		return el

	case *ast.Const:
		return Element{
			ElementType: ElementConst,
			Name:        member.Name,
			Type:        TypeString(member.Type),
			Value:       member.Value,
			Doc:         member.Doc,
		}
	}
	return Element{}
}

func projectArg(a ast.Arg) Arg {
	out := Arg{
		Direction: DirectionOf(a.Direction),
		Type:      TypeString(a.Type),
		Doc:       a.Doc,
	}
	if a.Name != "" {
		name := a.Name
		out.Name = &name
	}
	return out
}

// TypeString renders a type reference as its canonical string. Array and List
// render their single generic argument in angle brackets, Map renders two;
// with too few arguments all three fall back to the bare base name. Resolved
// references render their fully qualified name, everything else the declared
// name. Recursion terminates because generic nesting is finite and acyclic.
func TypeString(t ast.Type) string {
	switch t.Kind {
	case ast.TypeArray, ast.TypeList:
		if len(t.Generic) == 0 {
			return t.Name
		}
		return t.Name + "<" + TypeString(t.Generic[0]) + ">"

	case ast.TypeMap:
		if len(t.Generic) < 2 {
			return t.Name
		}
		return t.Name + "<" + TypeString(t.Generic[0]) + ", " + TypeString(t.Generic[1]) + ">"

	case ast.TypeResolved:
		return t.Qualified

	default:
		return t.Name
	}
}

// DirectionOf maps an AST direction onto the model's values. Unspecified maps
// to the zero value, which the emitters omit.
func DirectionOf(d ast.Direction) Direction {
	switch d {
	case ast.DirIn:
		return DirIn
	case ast.DirOut:
		return DirOut
	case ast.DirInOut:
		return DirInOut
	default:
		return ""
	}
}
