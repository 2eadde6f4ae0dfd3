package polytope_test

import (
	"fmt"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
)

// Example_carveObstacleFromSafetyZone demonstrates the core convex-set
// operations a planner needs: intersect a raw footprint with a safety
// envelope, then carve out a no-go obstacle.
//
// Scenario:
//   - A rover's safety envelope is the square [0,2]x[0,2].
//   - A known obstacle occupies the square [0.5,1.5]x[0.5,1.5], entirely
//     inside the envelope.
//
// Implementation:
//   - Stage 1: build both squares via Intersection of four halfspaces.
//   - Stage 2: Remove the obstacle from the envelope; the remainder is a
//     disjoint set of convex fragments whose volumes sum to 4 - 1 = 3.
func Example_carveObstacleFromSafetyZone() {
	envelope, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1, 0), 2),
		halfspace.Normalize(numeric.NewVector(-1, 0), 0),
		halfspace.Normalize(numeric.NewVector(0, 1), 2),
		halfspace.Normalize(numeric.NewVector(0, -1), 0),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	obstacle, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1, 0), 1.5),
		halfspace.Normalize(numeric.NewVector(-1, 0), -0.5),
		halfspace.Normalize(numeric.NewVector(0, 1), 1.5),
		halfspace.Normalize(numeric.NewVector(0, -1), -0.5),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fragments, err := envelope.Remove([]polytope.Polytope{obstacle})
	if err != nil {
		fmt.Println(err)
		return
	}

	var reachable float64
	for _, f := range fragments {
		reachable += f.Volume()
	}
	fmt.Printf("fragments=%d reachable=%.1f\n", len(fragments), reachable)
	// Output: fragments=4 reachable=3.0
}
