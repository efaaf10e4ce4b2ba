package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/prim_kruskal"
)

// ExamplePrim_triangle demonstrates Prim's algorithm on a triangle.
// Stops: A, B, C. Distances: A–B (1), B–C (2), A–C (4).
// The MST is {A–B, B–C} with total weight 3.
func ExamplePrim_triangle() {
	// 1. Build a symmetric distance table.
	tab, _ := distance.New(map[string]map[string]int64{
		"A": {"B": 1, "C": 4},
		"B": {"A": 1, "C": 2},
		"C": {"A": 4, "B": 2},
	})
	// 2. Resolve the node set; Prim grows from the first one.
	nodes, _ := tab.Resolve([]string{"A", "B", "C"})

	// 3. Run Prim's algorithm.
	tree, err := prim_kruskal.Prim(nodes, tab)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4. Print the total weight and the list of edges in the MST.
	fmt.Printf("Total: %d, Edges: ", tree.Weight)
	for i, e := range tree.Edges() {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", tab.Name(e.From), tab.Name(e.To))
	}
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleCompute_kruskal selects Kruskal through MSTOptions.
// Stops: A, B, C, D. The path A–B(1) B–C(2) C–D(1) beats every chord.
func ExampleCompute_kruskal() {
	tab, _ := distance.New(map[string]map[string]int64{
		"A": {"B": 1, "C": 4, "D": 3},
		"B": {"A": 1, "C": 2, "D": 5},
		"C": {"A": 4, "B": 2, "D": 1},
		"D": {"A": 3, "B": 5, "C": 1},
	})
	nodes, _ := tab.Resolve([]string{"A", "B", "C", "D"})

	opts := prim_kruskal.DefaultOptions()
	prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)(&opts)
	tree, err := prim_kruskal.Compute(nodes, tab, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Total:", tree.Weight, "Edges:", len(tree.Edges()))
	// Output: Total: 4 Edges: 3
}
