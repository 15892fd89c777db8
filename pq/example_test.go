package pq_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/pq"
)

// ExampleAdaptableQueue_Update lowers a key the way Dijkstra relaxes an edge:
// priorities are negated distances, so a shorter distance is a higher priority.
func ExampleAdaptableQueue_Update() {
	q := pq.NewAdaptable[string]()
	q.Add(-4, "B")
	c := q.Add(-9, "C")

	// a shorter route to C was found
	_ = q.Update(c, -2, "C")

	for !q.IsEmpty() {
		p, v, _ := q.Dequeue()
		fmt.Printf("%s=%v\n", v, -p)
	}
	// Output:
	// C=2
	// B=4
}
