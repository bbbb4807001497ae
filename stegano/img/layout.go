package img

import (
	"fmt"
	"strings"
)

// Layout is the order in which pixels of a grid are filled.
type Layout uint8

const (
	// outward square spiral starting at the grid center
	Spiral = Layout(0)
	// left to right, top to bottom
	RowMajor = Layout(1)
)

func (l Layout) String() string {
	switch l {
	case Spiral:
		return "spiral"
	case RowMajor:
		return "rowmajor"
	}
	return fmt.Sprintf("layout(%d)", uint8(l))
}

func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "spiral":
		return Spiral, nil
	case "rowmajor", "row-major", "rows":
		return RowMajor, nil
	}
	return Spiral, fmt.Errorf("unknown layout %q", s)
}

// Other returns the layout to try when l does not yield a container.
func (l Layout) Other() Layout {
	if l == Spiral {
		return RowMajor
	}
	return Spiral
}

// spiral position; one step at a time.
type spiralWalker struct {
	x, y, dx, dy int
}

func newSpiralWalker() *spiralWalker {
	return &spiralWalker{dx: 0, dy: -1}
}

func (s *spiralWalker) step() {
	// corner detection
	if s.x == s.y || (s.x < 0 && s.x == -s.y) || (s.x > 0 && s.x == 1-s.y) {
		s.dx, s.dy = -s.dy, s.dx
	}
	s.x += s.dx
	s.y += s.dy
}

/*
 * Walk calls fn with the coordinates (relative to the start cell) of the
 * first n cells of an outward spiral: right, then y+1, left, y-1, each leg
 * growing by one every two turns. Returning false from fn stops the walk.
 */
func Walk(n int, fn func(x, y, i int) bool) {
	s := newSpiralWalker()
	for i := 0; i < n; i++ {
		if !fn(s.x, s.y, i) {
			return
		}
		s.step()
	}
}

// Order returns the index (y*width + x) of every cell of a width x height
// grid, in visiting order.
func (l Layout) Order(width, height int) []int {
	return l.Cells(width, height, width*height)
}

/*
 * Cells returns the index (y*width + x) of the first n cells of a
 * width x height grid, in visiting order.
 *
 * The spiral starts at ((width-1)/2, (height-1)/2), which keeps a square
 * spiral of side*side cells inside a side x side grid. Cells falling
 * outside a non square grid are skipped: every leg of the walk is clipped
 * to the grid, so the cost grows with n and the longer side, never with
 * the area of the square around the grid.
 */
func (l Layout) Cells(width, height, n int) []int {
	if width <= 0 || height <= 0 || n <= 0 {
		return []int{}
	}
	if total := width * height; n > total {
		n = total
	}
	cells := make([]int, 0, n)
	if l == RowMajor {
		for i := 0; i < n; i++ {
			cells = append(cells, i)
		}
		return cells
	}

	x, y := (width-1)/2, (height-1)/2
	cells = append(cells, y*width+x)
	for leg := 0; len(cells) < n; leg++ {
		dx, dy := legDirections[leg%4][0], legDirections[leg%4][1]
		length := leg/2 + 1

		if dy == 0 && y >= 0 && y < height {
			lo, hi := clipLeg(x, dx, length, width)
			for i := lo; i <= hi && len(cells) < n; i++ {
				cells = append(cells, y*width+x+dx*i)
			}
		} else if dx == 0 && x >= 0 && x < width {
			lo, hi := clipLeg(y, dy, length, height)
			for i := lo; i <= hi && len(cells) < n; i++ {
				cells = append(cells, (y+dy*i)*width+x)
			}
		}
		x += dx * length
		y += dy * length
	}
	return cells
}

// right, y+1, left, y-1: the turns of spiralWalker.step
var legDirections = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// clipLeg returns the steps i in [1, length] for which start+d*i is in [0, size).
func clipLeg(start, d, length, size int) (int, int) {
	lo, hi := 1, length
	if d > 0 {
		lo = max(lo, -start)
		hi = min(hi, size-1-start)
	} else {
		lo = max(lo, start-size+1)
		hi = min(hi, start)
	}
	return lo, hi
}
