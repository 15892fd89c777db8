package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/pathfinder/bfs"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/gridgraph"
)

// build returns a graph with the given "U-V" edges and a name → vertex index.
func build(t testing.TB, directed bool, edges ...string) (*core.Graph[string, int], map[string]*core.Vertex[string]) {
	t.Helper()
	g := core.NewGraph[string, int](core.WithDirected(directed))
	vs := map[string]*core.Vertex[string]{}
	get := func(name string) *core.Vertex[string] {
		if v, ok := vs[name]; ok {
			return v
		}
		vs[name] = g.InsertVertex(name)
		return vs[name]
	}
	for _, e := range edges {
		u, v, ok := strings.Cut(e, "-")
		if !ok {
			get(e)
			continue
		}
		if _, err := g.InsertEdge(get(u), get(v), 0); err != nil {
			t.Fatalf("InsertEdge %s: %v", e, err)
		}
	}

	return g, vs
}

func elements(vs []*core.Vertex[string]) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Element()
	}

	return out
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[string, int](nil, nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g, vs := build(t, false, "A")
	if _, err := bfs.BFS(g, nil); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("nil start: want ErrStartVertexNotFound, got %v", err)
	}
	_, ovs := build(t, false, "A")
	if _, err := bfs.BFS(g, ovs["A"]); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("foreign start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, vs["A"], bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g, vs := build(t, false, "A")
	res, err := bfs.BFS(g, vs["A"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(elements(res.Order), want) {
		t.Errorf("Order = %v; want %v", elements(res.Order), want)
	}
	if d := res.Depth[vs["A"]]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if _, ok := res.Parent[vs["A"]]; ok {
		t.Error("start must have no parent")
	}
}

// TestBFS_CycleAndDepths covers a 4-cycle A–B–C–D–A.
func TestBFS_CycleAndDepths(t *testing.T) {
	g, vs := build(t, false, "A-B", "B-C", "C-D", "D-A")
	res, err := bfs.BFS(g, vs["A"])
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(elements(res.Order), want) {
		t.Errorf("Order = %v; want %v", elements(res.Order), want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	for name, d := range want {
		if got := res.Depth[vs[name]]; got != d {
			t.Errorf("Depth[%s] = %d; want %d", name, got, d)
		}
	}
	// C is discovered from B first.
	if res.Parent[vs["C"]] != vs["B"] {
		t.Errorf("Parent[C] = %v; want B", res.Parent[vs["C"]].Element())
	}
}

// TestBFS_Directed follows outgoing edges only.
func TestBFS_Directed(t *testing.T) {
	g, vs := build(t, true, "A-B", "C-A", "B-D")
	res, err := bfs.BFS(g, vs["A"])
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(elements(res.Order), want) {
		t.Errorf("Order = %v; want %v", elements(res.Order), want)
	}
	if _, ok := res.Depth[vs["C"]]; ok {
		t.Error("C must be unreachable against edge direction")
	}
}

// TestBFS_MaxDepth limits exploration to the given layer.
func TestBFS_MaxDepth(t *testing.T) {
	g, vs := build(t, false, "A-B", "B-C", "C-D")
	res, err := bfs.BFS(g, vs["A"], bfs.WithMaxDepth[string](2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(elements(res.Order), want) {
		t.Errorf("Order = %v; want %v", elements(res.Order), want)
	}

	res, err = bfs.BFS(g, vs["A"], bfs.WithMaxDepth[string](0))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 4 {
		t.Errorf("MaxDepth 0 means unlimited; visited %d", len(res.Order))
	}
}

// TestBFS_FilterNeighbor prunes a branch.
func TestBFS_FilterNeighbor(t *testing.T) {
	g, vs := build(t, false, "A-B", "A-C", "C-D")
	res, err := bfs.BFS(g, vs["A"], bfs.WithFilterNeighbor(func(_, nb *core.Vertex[string]) bool {
		return nb.Element() != "C"
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(elements(res.Order), want) {
		t.Errorf("Order = %v; want %v", elements(res.Order), want)
	}
}

// TestBFS_Hooks checks the enqueue/dequeue/visit sequence.
func TestBFS_Hooks(t *testing.T) {
	g, vs := build(t, false, "A-B", "A-C")
	var log []string
	_, err := bfs.BFS(g, vs["A"],
		bfs.WithOnEnqueue(func(v *core.Vertex[string], _ int) { log = append(log, "+"+v.Element()) }),
		bfs.WithOnDequeue(func(v *core.Vertex[string], _ int) { log = append(log, "-"+v.Element()) }),
		bfs.WithOnVisit(func(v *core.Vertex[string], _ int) error {
			log = append(log, "="+v.Element())
			return nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"+A", "-A", "=A", "+B", "+C", "-B", "=B", "-C", "=C"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hook log = %v; want %v", log, want)
	}
}

// TestBFS_OnVisitError aborts and keeps the partial result.
func TestBFS_OnVisitError(t *testing.T) {
	g, vs := build(t, false, "A-B", "B-C")
	stop := errors.New("stop")
	res, err := bfs.BFS(g, vs["A"], bfs.WithOnVisit(func(v *core.Vertex[string], _ int) error {
		if v.Element() == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(elements(res.Order), want) {
		t.Errorf("partial Order = %v; want %v", elements(res.Order), want)
	}
}

// TestBFS_ContextCancel stops before the first visit.
func TestBFS_ContextCancel(t *testing.T) {
	g, vs := build(t, false, "A-B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, vs["A"], bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo reconstructs paths and rejects unreached vertices.
func TestResult_PathTo(t *testing.T) {
	g, vs := build(t, false, "A-B", "B-C", "X")
	res, err := bfs.BFS(g, vs["A"])
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(vs["C"])
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(elements(path), want) {
		t.Errorf("PathTo(C) = %v; want %v", elements(path), want)
	}
	path, err = res.PathTo(vs["A"])
	if err != nil || len(path) != 1 {
		t.Errorf("PathTo(start) = %v, %v; want [A]", path, err)
	}
	if _, err := res.PathTo(vs["X"]); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(X): want ErrNoPath, got %v", err)
	}
}

// TestBFS_GridDepthIsManhattan checks BFS depths on an open grid against
// the Manhattan distance of each cell from the corner.
func TestBFS_GridDepthIsManhattan(t *testing.T) {
	l, err := gridgraph.ParseLayout("S...\n....\n...E")
	if err != nil {
		t.Fatal(err)
	}
	data, err := l.Build()
	if err != nil {
		t.Fatal(err)
	}
	cg, verts := data.Grid.ToCoreGraph()
	res, err := bfs.BFS(cg, verts[data.Start])
	if err != nil {
		t.Fatal(err)
	}
	origin := gridgraph.Position{}
	for _, v := range verts {
		if got, want := res.Depth[v], v.Element().Manhattan(origin); got != want {
			t.Errorf("Depth%v = %d; want %d", v.Element(), got, want)
		}
	}
}
