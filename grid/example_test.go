package grid_test

import (
	"fmt"

	"github.com/safepathshield/safepath/grid"
)

// ExampleGrid_AStar routes around a small wall and prints the overlay path.
func ExampleGrid_AStar() {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	}, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path := g.AStar(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0})
	for _, c := range path {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()
	// Output:
	// (0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)
}
