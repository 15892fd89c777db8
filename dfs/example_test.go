package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dfs"
)

// ExampleDFS prints the post-order of a small directed tree.
func ExampleDFS() {
	g := core.NewGraph[string, int](core.WithDirected(true))
	root := g.InsertVertex("root")
	left := g.InsertVertex("left")
	right := g.InsertVertex("right")
	leaf := g.InsertVertex("leaf")
	_, _ = g.InsertEdge(root, left, 0)
	_, _ = g.InsertEdge(root, right, 0)
	_, _ = g.InsertEdge(left, leaf, 0)

	res, err := dfs.DFS(g, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order {
		fmt.Printf("%s(%d) ", v.Element(), res.Depth[v])
	}
	fmt.Println()
	// Output:
	// leaf(2) left(1) right(1) root(0)
}

// ExampleTopologicalSort orders build steps so every dependency comes first.
func ExampleTopologicalSort() {
	g := core.NewGraph[string, int](core.WithDirected(true))
	fetch := g.InsertVertex("fetch")
	compile := g.InsertVertex("compile")
	test := g.InsertVertex("test")
	release := g.InsertVertex("release")
	_, _ = g.InsertEdge(compile, test, 0)
	_, _ = g.InsertEdge(fetch, compile, 0)
	_, _ = g.InsertEdge(test, release, 0)

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range order {
		fmt.Print(v.Element(), " ")
	}
	fmt.Println()
	// Output:
	// fetch compile test release
}
