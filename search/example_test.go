// Package search_test provides runnable examples for the search engine.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// ExampleRun demonstrates the engine on a small weighted graph given as an
// adjacency list. The expansion policy is the only domain-specific piece.
func ExampleRun() {
	// 0→1(1), 1→2(2), 0→2(5), 2→3(1)
	g := graph{
		0: {{to: 1, w: 1}, {to: 2, w: 5}},
		1: {{to: 2, w: 2}},
		2: {{to: 3, w: 1}},
	}

	cost, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Cost: 0, Pos: 0}, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v cost=%d\n", found, cost)
	// Output: found=true cost=4
}

// ExampleExpanderFunc shows a closure used as the expansion policy, with a
// non-zero seed cost and an unreachable goal.
func ExampleExpanderFunc() {
	// Even numbers only: the odd goal can never be reached.
	evens := search.ExpanderFunc[node](func(s search.State[node]) []search.State[node] {
		if s.Pos >= 10 {
			return nil
		}
		return []search.State[node]{{Cost: s.Cost + 1, Pos: s.Pos + 2}}
	})

	cost, found, _ := search.Run[node](evens, search.NewMapCostTable[node](), search.State[node]{Cost: 1, Pos: 0}, 8)
	fmt.Printf("to 8: found=%v cost=%d\n", found, cost)

	_, found, _ = search.Run[node](evens, search.NewMapCostTable[node](), search.State[node]{Cost: 1, Pos: 0}, 7)
	fmt.Printf("to 7: found=%v\n", found)
	// Output:
	// to 8: found=true cost=5
	// to 7: found=false
}
