package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/comalice/forwardlist"
)

// DefaultVisualizer renders a list's node chain.
type DefaultVisualizer[T any] struct{}

// ExportDOT generates Graphviz DOT source showing the before-begin anchor,
// each node in order and the terminal position. Elements at the 1-based
// positions in highlight are filled.
func (v *DefaultVisualizer[T]) ExportDOT(l *forwardlist.List[T], highlight ...int) string {
	marked := make(map[int]bool, len(highlight))
	for _, h := range highlight {
		marked[h] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph ForwardList {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  \"before_begin\" [label=\"before_begin\" shape=point];\n")

	prev := "before_begin"
	pos := 1
	for it := l.CBegin(); !it.Equal(l.CEnd()); it.Inc() {
		id := fmt.Sprintf("n%d", pos)
		style := ""
		if marked[pos] {
			style = " style=filled fillcolor=lightgreen"
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", id, fmt.Sprintf("%v", it.Value()), style)
		fmt.Fprintf(&buf, "  %q -> %q;\n", prev, id)
		prev = id
		pos++
	}

	buf.WriteString("  \"end\" [label=\"end\" shape=plaintext];\n")
	fmt.Fprintf(&buf, "  %q -> \"end\";\n", prev)
	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the list with its size.
func (v *DefaultVisualizer[T]) ExportJSON(l *forwardlist.List[T]) ([]byte, error) {
	return json.MarshalIndent(struct {
		Size   int                  `json:"size"`
		Values *forwardlist.List[T] `json:"values"`
	}{l.Size(), l}, "", "  ")
}
