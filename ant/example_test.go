package ant_test

import (
	"fmt"

	"github.com/katalvlaran/hamwalk/ant"
	"github.com/katalvlaran/hamwalk/core"
)

// ExampleWalk runs the pheromone walk on a 4-cycle.
func ExampleWalk() {
	g, _ := core.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	res, _ := ant.Walk(g)
	fmt.Println(res.Path, res.Steps, ant.MaxSteps(4))
	// Output: [0 1 2 3 0] 111 111
}
