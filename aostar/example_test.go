package aostar_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/aostar"
)

// ExampleSolve solves a goal that can be met by B alone or by C and D together.
func ExampleSolve() {
	g, _ := aostar.FromAlternatives(map[string][][]aostar.Arc{
		"A": {{{To: "B", Cost: 1}}, {{To: "C", Cost: 1}, {To: "D", Cost: 1}}},
		"B": {{{To: "E", Cost: 1}}},
		"C": {{{To: "F", Cost: 1}}},
		"D": {{{To: "F", Cost: 1}}},
	})
	sol, err := aostar.Solve(g, "A")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Cost, sol.Plan())

	// Output:
	// 2 [A B E]
}
