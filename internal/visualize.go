package internal

import (
	"fmt"
	"io"
	"strings"
)

// Visualize prints one line per edge, indented by depth, for debugging.
//
//	<root>
//	├─ "ap" (2)
//	│  ├─ "es" = 0
func Visualize[C Component, V any](w io.Writer, root *Node[C, V], format func([]C) string) error {
	if root == nil {
		return nil
	}

	header := "<root>"
	if v, ok := root.GetValue(); ok {
		header = fmt.Sprintf("<root> = %v", v)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	return visualize(w, root, "", format)
}

func visualize[C Component, V any](w io.Writer, node *Node[C, V], indent string, format func([]C) string) error {
	for i, e := range node.edges {
		branch, nextIndent := "├─ ", "│  "
		if i == len(node.edges)-1 {
			branch, nextIndent = "└─ ", "   "
		}

		var sb strings.Builder
		sb.WriteString(indent)
		sb.WriteString(branch)
		sb.WriteString(format(e.prefix))
		if v, ok := e.child.GetValue(); ok {
			fmt.Fprintf(&sb, " = %v", v)
		}
		if n := len(e.child.edges); n > 0 {
			fmt.Fprintf(&sb, " (%d)", n)
		}

		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
		if err := visualize(w, e.child, indent+nextIndent, format); err != nil {
			return err
		}
	}

	return nil
}
