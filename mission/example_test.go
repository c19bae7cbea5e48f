package mission_test

import (
	"context"
	"fmt"
	"os"

	"github.com/sheabunge/terrainpath/mission"
	"github.com/sheabunge/terrainpath/terrain"
)

// ExampleRun plots the cheapest climb-aware route across the sample field.
func ExampleRun() {
	plan := mission.NewPlan(mission.FloydWarshall, "climb")
	r, err := mission.Run(context.Background(), terrain.Sample(), plan, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r.Path)
	_ = r.WriteText(os.Stdout, terrain.StyleASCII)
	// Output:
	// 0 → 1 → 2 → 3 → 4 → 9 → 14 → 19 → 24
	// ()()()()()
	// ........()
	// ....----()
	// ..--....()
	// --......()
	//
	// total energy: 15
}
