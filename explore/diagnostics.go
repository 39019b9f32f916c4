package explore

import (
	"fmt"
	"io"
)

// Dump writes the textual diagnostics of the run: the occupancy map, the
// frontier candidates, the live target and the queued route.
func (e *Explorer) Dump(w io.Writer) error {
	st := e.state
	target := "none"
	if e.live != nil {
		target = fmt.Sprintf("%s at vertex %d", e.live.id, e.live.vertex)
	}
	_, err := fmt.Fprintf(w, "Map (done=%t):\n%s%s\nTarget: %s\n%s\n",
		e.done, st.Grid, st.Frontier, target, e.router)
	return err
}

// DumpGraph writes the vertex numbering of the map followed by every
// non-empty adjacency list.
func (e *Explorer) DumpGraph(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Vertices:\n%sGraph:\n%s", e.state.Layout.VertexNumbering(), e.state.Graph)
	return err
}
