package terrain_test

import (
	"os"

	"github.com/sheabunge/terrainpath/route"
	"github.com/sheabunge/terrainpath/terrain"
)

// ExampleHeightField_Traverse plots a route along the top row and down the
// right edge of the sample field.
func ExampleHeightField_Traverse() {
	hf := terrain.Sample().Clone()
	_ = hf.Traverse(route.Path{Vertices: []int{0, 1, 2, 3, 4, 9, 14, 19, 24}})
	_ = hf.RenderASCII(os.Stdout)
	// Output:
	// ()()()()()
	// ........()
	// ....----()
	// ..--....()
	// --......()
}
