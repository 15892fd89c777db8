package dfs_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a directed chain of 10,000 vertices.
// The graph is built once; each iteration is O(V + E).
func BenchmarkDFS_Chain10000(b *testing.B) {
	g, vs := buildChain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, vs[0]); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTopologicalSort_Tree measures TopologicalSort on a binary tree of depth 12.
func BenchmarkTopologicalSort_Tree(b *testing.B) {
	g, _ := buildBinaryTree(12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.TopologicalSort(g); err != nil {
			b.Fatal(err)
		}
	}
}
