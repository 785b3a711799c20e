package prefixtree

import (
	"fmt"
	"io"
	"strings"
)

// dump writes one line per node, indented by tree level. Nodes holding a
// value are followed by the key they hold.
func (t *tree[V]) dump(w io.Writer) error {
	return t.dumpNode(w, t.root, 0)
}

func (t *tree[V]) dumpNode(w io.Writer, h Handle, level int) error {
	n := t.nodes.at(h)

	var line strings.Builder
	line.WriteString(strings.Repeat("  ", level))
	if h == t.root {
		line.WriteString("(root)")
	} else {
		line.WriteByte('"')
		for _, idx := range n.label {
			line.WriteByte(t.abc.ToSymbol(idx))
		}
		line.WriteByte('"')
	}
	if n.value != nil {
		fmt.Fprintf(&line, " = %q", n.value.key)
	}
	line.WriteByte('\n')
	if _, err := io.WriteString(w, line.String()); err != nil {
		return err
	}

	for _, c := range n.children {
		if c == nilHandle {
			continue
		}
		if err := t.dumpNode(w, c, level+1); err != nil {
			return err
		}
	}
	return nil
}
