package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/gridgraph"
)

// TestToCoreGraph checks that only open cells become vertices and that edges
// join orthogonally adjacent open cells.
//
//	S.
//	#E
func TestToCoreGraph(t *testing.T) {
	data := mustParse(t, "S.\n#E")
	cg, verts := data.Grid.ToCoreGraph()

	if cg.VertexCount() != 3 {
		t.Fatalf("VertexCount = %d; want 3", cg.VertexCount())
	}
	if cg.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d; want 2", cg.EdgeCount())
	}
	if cg.Directed() {
		t.Error("grid graph must be undirected")
	}
	if verts[2] != nil {
		t.Error("wall cell must not become a vertex")
	}
	if got := verts[3].Element(); got != (gridgraph.Position{Row: 1, Col: 1}) {
		t.Errorf("vertex 3 payload = %v", got)
	}
	e := cg.GetEdge(verts[1], verts[3])
	if e == nil || e.Element() != 1 {
		t.Errorf("edge (0,1)-(1,1) = %v; want weight 1", e)
	}
	if cg.GetEdge(verts[0], verts[3]) != nil {
		t.Error("diagonal cells must not be joined")
	}
}
