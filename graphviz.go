package undo

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the history timeline
// for visualization. Mementos are drawn oldest first; the cursor is drawn as a
// point between the last undo-able and the first redo-able memento.
func (s *System[S]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph History {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=box, style=\"rounded,filled\", fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __begin [shape=point];\n")
	b.WriteString(
		"  __cursor [shape=invtriangle, style=filled, fillcolor=\"#90ee90\", label=\"\", width=0.2, height=0.2];\n\n",
	)

	nodes := g.SliceOf[g.String]("__begin")

	for i, m := range s.history.entries {
		if i == s.history.position {
			nodes.Push("__cursor")
		}

		id := g.Format("m{}", i)
		nodes.Push(id)

		var attrs g.Slice[g.String]

		label := g.Format("#{} {}", i, m.Tag())
		if m.composite {
			label += g.Format("\\n({} children)", len(m.children))
			attrs.Push("peripheries=2")
		}

		attrs.Push(g.Format("label=\"{}\"", label))

		if i >= s.history.position {
			attrs.Push("fillcolor=\"#d3d3d3\"", "style=\"rounded,filled,dashed\"")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", id, attrs.Join(", ")))
	}

	if s.history.position == len(s.history.entries) {
		nodes.Push("__cursor")
	}

	b.WriteByte('\n')

	for i := 1; i < len(nodes); i++ {
		b.WriteString(g.Format("  \"{}\" -> \"{}\";\n", nodes[i-1], nodes[i]))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">▭</td><td>Undo-able memento</td></tr>
        <tr><td align="right"><font color="gray">▭</font></td><td>Redo-able memento</td></tr>
        <tr><td align="right"><font color="green">▼</font></td><td>Cursor</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}
