package terrain

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sheabunge/terrainpath/route"
)

const (
	// MinHeight and MaxHeight bound every generated height.
	MinHeight = 0
	MaxHeight = 99

	// Traversed marks a cell that lies on a plotted path.
	Traversed = -1
)

// Sentinel errors for height field construction.
var (
	ErrInvalidSize      = errors.New("terrain: size must be 2^n + 1")
	ErrInvalidRoughness = errors.New("terrain: roughness must be at least 1")
	ErrNilRNG           = errors.New("terrain: random source is nil")
	ErrNotSquare        = errors.New("terrain: height field must be square and non-empty")
)

// HeightField is a square grid of heights indexed [row][col].
type HeightField struct {
	size  int
	cells [][]int
}

// New builds a HeightField from a deep copy of values.
func New(values [][]int) (*HeightField, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrNotSquare
	}
	for r, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
	}

	return &HeightField{size: n, cells: copyCells(values)}, nil
}

// Sample returns the fixed 5×5 field used for examples and regression tests.
func Sample() *HeightField {
	hf, _ := New([][]int{
		{12, 14, 15, 15, 16},
		{16, 18, 18, 19, 17},
		{18, 19, 21, 20, 17},
		{19, 20, 18, 18, 15},
		{20, 17, 14, 14, 13},
	})

	return hf
}

// Generate builds a size×size field by midpoint displacement.
//
// roughness is the initial jitter range; the original program used 4*size.
// Returns ErrInvalidSize unless size is 2^n + 1 (n >= 0), ErrInvalidRoughness
// for roughness < 1 and ErrNilRNG for a nil rng.
func Generate(size, roughness int, rng *rand.Rand) (*HeightField, error) {
	if size < 2 || (size-1)&(size-2) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if roughness < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRoughness, roughness)
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	// jitter in [-r/2, r - r/2)
	jitter := func(r int) int { return rng.Intn(r) - r/2 }

	r := roughness
	last := size - 1
	cells[0][0] = 50 + jitter(r)
	cells[last][0] = 50 + jitter(r)
	cells[0][last] = 50 + jitter(r)
	cells[last][last] = 50 + jitter(r)

	for step := last; step > 0; step /= 2 {
		if r > 1 {
			r /= 2
		}
		half := step / 2
		for cx := 0; cx < last/step; cx++ {
			for cy := 0; cy < last/step; cy++ {
				x, y := cx*step, cy*step
				a := cells[x][y]
				b := cells[x+step][y]
				c := cells[x][y+step]
				d := cells[x+step][y+step]

				cells[x+half][y+half] = (a+b+c+d)/4 + jitter(r)
				cells[x+half][y] = (a+b)/2 + jitter(r)
				cells[x][y+half] = (a+c)/2 + jitter(r)
				cells[x+step][y+half] = (b+d)/2 + jitter(r)
				cells[x+half][y+step] = (c+d)/2 + jitter(r)
			}
		}
	}

	for _, row := range cells {
		for i, v := range row {
			row[i] = min(max(v, MinHeight), MaxHeight)
		}
	}

	return &HeightField{size: size, cells: cells}, nil
}

// Size returns the number of rows (and columns).
func (hf *HeightField) Size() int { return hf.size }

// At returns the height at (row, col). The caller must stay in bounds.
func (hf *HeightField) At(row, col int) int { return hf.cells[row][col] }

// Values returns a deep copy of the heights.
func (hf *HeightField) Values() [][]int { return copyCells(hf.cells) }

// Clone returns an independent copy of hf.
func (hf *HeightField) Clone() *HeightField {
	return &HeightField{size: hf.size, cells: copyCells(hf.cells)}
}

// Traverse marks every cell on p as Traversed. Vertex v maps to cell
// (v / Size, v % Size). Nothing is marked if any vertex is out of range.
func (hf *HeightField) Traverse(p route.Path) error {
	n := hf.size * hf.size
	for _, v := range p.Vertices {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d on a %d×%d field", route.ErrVertexOutOfRange, v, hf.size, hf.size)
		}
	}
	for _, v := range p.Vertices {
		hf.cells[v/hf.size][v%hf.size] = Traversed
	}

	return nil
}

func copyCells(src [][]int) [][]int {
	out := make([][]int, len(src))
	for r, row := range src {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}

	return out
}
