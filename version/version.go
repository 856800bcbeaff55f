// Package version implements QR Code symbol geometry for versions 1-5:
// square sizing, the finder/alignment/timing/format-info reserved regions,
// and the zig-zag cursor that walks the data region in encoding order.
// Versions above 5 are out of scope (spec.md's Non-goals).
package version

// Version is a QR Code symbol version, 1 through 5.
type Version int

// Valid reports whether v is a version this package has tables for.
func (v Version) Valid() bool {
	return v >= 1 && v <= 5
}

// Size returns the symbol's module width and height, 4*v+17.
func (v Version) Size() int {
	return 4*int(v) + 17
}

// alignmentPositions holds each version's alignment pattern centers.
// Index 0 and 1 are empty: version 1 has no alignment pattern. Versions
// 2-5 each have exactly one, matching original_source/src/lib.rs's
// ALIGNMENT_POSITIONS table for the versions in scope.
var alignmentPositions = [6][][2]int{
	{},
	{},
	{{18, 18}},
	{{22, 22}},
	{{26, 26}},
	{{30, 30}},
}

// AlignmentCenters returns the centers of this version's alignment
// patterns (empty for version 1).
func (v Version) AlignmentCenters() [][2]int {
	if !v.Valid() {
		panic("version: out of range")
	}
	return alignmentPositions[v]
}

// DarkModulePosition returns the position of the single always-dark
// module, (8, 4*v+9).
func (v Version) DarkModulePosition() (x, y int) {
	return 8, 4*int(v) + 9
}

// Cell is a single reserved-pattern module with a fixed color.
type Cell struct {
	X, Y int
	Dark bool
}

// FinderSquares returns the three finder-pattern concentric squares, at the
// top-left, top-right, and bottom-left corners.
func (v Version) FinderSquares() []ConcentricSquare {
	s := v.Size()
	return []ConcentricSquare{
		{CenterX: 3, CenterY: 3, Size: 4, ColorBits: 0b1011},
		{CenterX: s - 4, CenterY: 3, Size: 4, ColorBits: 0b1011},
		{CenterX: 3, CenterY: s - 4, Size: 4, ColorBits: 0b1011},
	}
}

// AlignmentSquares returns this version's alignment-pattern concentric
// squares (empty for version 1).
func (v Version) AlignmentSquares() []ConcentricSquare {
	centers := v.AlignmentCenters()
	out := make([]ConcentricSquare, len(centers))
	for i, c := range centers {
		out[i] = ConcentricSquare{CenterX: c[0], CenterY: c[1], Size: 3, ColorBits: 0b101}
	}
	return out
}

// TimingCells returns the timing-pattern modules along row 6 and column 6,
// between the finder patterns, alternating dark starting at index 8.
func (v Version) TimingCells() []Cell {
	s := v.Size()
	var cells []Cell
	for i := 8; i <= s-9; i++ {
		dark := i%2 == 0
		cells = append(cells, Cell{X: i, Y: 6, Dark: dark})
		cells = append(cells, Cell{X: 6, Y: i, Dark: dark})
	}
	return cells
}

// FormatBitPositions returns the two redundant placements for the 15-bit
// format word, each ordered from bit 0 (LSB of the format word) to bit 14
// (MSB). Matches spec.md §4.E's literal placement (grounded on
// original_source/src/qr.rs's set_format).
func (v Version) FormatBitPositions() (copy1, copy2 [15][2]int) {
	s := v.Size()
	for i := 0; i <= 5; i++ {
		copy1[i] = [2]int{8, i}
	}
	copy1[6] = [2]int{8, 7}
	copy1[7] = [2]int{8, 8}
	copy1[8] = [2]int{7, 8}
	for i := 9; i <= 14; i++ {
		copy1[i] = [2]int{14 - i, 8}
	}

	for i := 0; i <= 7; i++ {
		copy2[i] = [2]int{s - 1 - i, 8}
	}
	for i := 8; i <= 14; i++ {
		copy2[i] = [2]int{8, s - 15 + i}
	}
	return copy1, copy2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (v Version) isFinderBlock(x, y int) bool {
	s := v.Size()
	return (x < 8 && y < 8) || (x >= s-8 && y < 8) || (x < 8 && y >= s-8)
}

func (v Version) isTiming(x, y int) bool {
	s := v.Size()
	return (y == 6 && x >= 8 && x <= s-9) || (x == 6 && y >= 8 && y <= s-9)
}

func (v Version) isAlignmentBlock(x, y int) bool {
	for _, c := range v.AlignmentCenters() {
		if abs(x-c[0]) <= 2 && abs(y-c[1]) <= 2 {
			return true
		}
	}
	return false
}

func (v Version) isDarkModule(x, y int) bool {
	dx, dy := v.DarkModulePosition()
	return x == dx && y == dy
}

func (v Version) isFormatStrip(x, y int) bool {
	s := v.Size()
	if x == 8 && y <= 8 && y != 6 {
		return true
	}
	if y == 8 && x <= 8 && x != 6 {
		return true
	}
	if y == 8 && x >= s-8 {
		return true
	}
	if x == 8 && y >= s-7 {
		return true
	}
	return false
}

// IsFunctionModule reports whether (x, y) belongs to a reserved pattern
// (finder, separator, timing, alignment, dark module, or format info) as
// opposed to the data region. Grounded on
// original_source/src/lib.rs's Version::is_data_location, restated as a
// positive reserved-region predicate.
func (v Version) IsFunctionModule(x, y int) bool {
	return v.isFinderBlock(x, y) ||
		v.isTiming(x, y) ||
		v.isAlignmentBlock(x, y) ||
		v.isDarkModule(x, y) ||
		v.isFormatStrip(x, y)
}

// ConcentricSquare describes a square ring pattern (finder or alignment):
// Size concentric rings around (CenterX, CenterY), ring i (0 = the center
// module itself) dark when bit i of ColorBits is set.
type ConcentricSquare struct {
	CenterX, CenterY int
	Size             int
	ColorBits        uint8
}

// Contains reports whether (x, y) falls within this square.
func (c ConcentricSquare) Contains(x, y int) bool {
	d := abs(x - c.CenterX)
	if dy := abs(y - c.CenterY); dy > d {
		d = dy
	}
	return d < c.Size
}

// Cells returns every module this square covers, ring by ring outward from
// the center, each tagged with its color. Adapted from
// original_source/src/lib.rs's ConcentricSquare::iter_squares, which emits
// the same ring-by-ring module set via four L-shaped edges per ring; this
// version selects each ring by its Chebyshev distance from the center
// instead, which visits the identical set of modules without the
// edge-by-edge bookkeeping.
func (c ConcentricSquare) Cells() []Cell {
	cells := []Cell{{X: c.CenterX, Y: c.CenterY, Dark: c.ColorBits&1 != 0}}
	for ring := 1; ring < c.Size; ring++ {
		dark := (c.ColorBits>>uint(ring))&1 != 0
		for dx := -ring; dx <= ring; dx++ {
			for dy := -ring; dy <= ring; dy++ {
				if chebyshev(dx, dy) != ring {
					continue
				}
				cells = append(cells, Cell{X: c.CenterX + dx, Y: c.CenterY + dy, Dark: dark})
			}
		}
	}
	return cells
}

func chebyshev(dx, dy int) int {
	d := abs(dx)
	if ady := abs(dy); ady > d {
		d = ady
	}
	return d
}

// ZigzagWalker is a stateful cursor over a version's data region in the
// exact module order QR Code threads its codeword bitstream through:
// pairs of columns from the right edge to the left, skipping the timing
// column, snaking vertically and reversing direction at each column pair.
// Callers skip any position IsFunctionModule reports as reserved; the
// walker itself only emits geometry.
//
// This reproduces the traversal original_source/src/qr.rs's ZigzagIter
// performs (a Left/Up/Down state machine keyed on a traverse_up flag) but
// is restructured around the column-pair/row-sweep decomposition that
// falls out of the same traversal: advancing within a pair is the Left
// step, advancing the row cursor is the Up or Down step, and completing a
// sweep is the point ZigzagIter's traverse_up flips and the cursor shifts
// two columns left.
type ZigzagWalker struct {
	size   int
	right  int
	upward bool
	vert   int
	j      int
	done   bool
}

// NewZigzagWalker returns a walker over a size x size symbol.
func NewZigzagWalker(size int) *ZigzagWalker {
	w := &ZigzagWalker{size: size, right: size - 1, upward: true}
	if w.right == 6 {
		w.right = 5
	}
	if w.right < 0 {
		w.done = true
	}
	return w
}

// Next returns the next position in zig-zag order, or ok=false once the
// walker has covered every column but the timing column.
func (w *ZigzagWalker) Next() (x, y int, ok bool) {
	if w.done {
		return 0, 0, false
	}
	x = w.right - w.j
	if w.upward {
		y = w.size - 1 - w.vert
	} else {
		y = w.vert
	}
	w.advance()
	return x, y, true
}

// advance steps the cursor. Column 0 is the one case where a column isn't
// part of a pair (every QR Code size used in practice has an even column
// count once the timing column is excluded, so this never triggers for a
// real symbol, but the walker still handles it rather than assume it away).
func (w *ZigzagWalker) advance() {
	if w.right == 0 {
		w.vert++
		if w.vert < w.size {
			return
		}
		w.vert = 0
		w.upward = !w.upward
		w.right -= 2
		if w.right < 0 {
			w.done = true
		}
		return
	}
	w.j++
	if w.j < 2 {
		return
	}
	w.j = 0
	w.vert++
	if w.vert < w.size {
		return
	}
	w.vert = 0
	w.upward = !w.upward
	w.right -= 2
	if w.right == 6 {
		w.right = 5
	}
	if w.right < 0 {
		w.done = true
	}
}
