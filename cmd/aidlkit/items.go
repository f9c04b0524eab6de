package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"aidlkit/internal/ast"
	"aidlkit/internal/driver"
	"aidlkit/internal/source"
)

type itemStyles struct {
	kind     lipgloss.Style
	name     lipgloss.Style
	location lipgloss.Style
}

func newItemStyles(color bool) itemStyles {
	if !color {
		return itemStyles{}
	}
	return itemStyles{
		kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		name:     lipgloss.NewStyle().Bold(true),
		location: lipgloss.NewStyle().Faint(true),
	}
}

// printItems lists every parsed item as "<kind> <name> (in <path>:<line>)",
// ordered by file identity.
func printItems(w io.Writer, res *driver.Result, color bool) error {
	styles := newItemStyles(color)

	ids := make([]source.FileID, 0, len(res.Outcomes))
	for id := range res.Outcomes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		out := res.Outcomes[id]
		if out.AST == nil || out.AST.Item == nil {
			continue
		}
		item := out.AST.Item

		file, err := res.FileSet.Lookup(id)
		if err != nil {
			return err
		}
		start, _ := res.FileSet.Resolve(item.NameSpan())

		line := fmt.Sprintf("%s %s %s",
			styles.kind.Render(itemKind(item)),
			styles.name.Render(item.ItemName()),
			styles.location.Render(fmt.Sprintf("(in %s:%d)", source.BaseName(file.Path), start.Line)),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}
	}
	return nil
}

func itemKind(item ast.Item) string {
	switch item.(type) {
	case *ast.Interface:
		return "interface"
	case *ast.Parcelable:
		return "parcelable"
	case *ast.Enum:
		return "enum"
	default:
		return "item"
	}
}
