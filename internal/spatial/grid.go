// Package spatial provides a packed bitmap used as a coarse occupancy index.
//
// This is zxinggo's bitutil.BitMatrix, trimmed to the handful of
// operations CandidateFinder actually exercises (Get, SetRegion, Clear) and
// repurposed from a barcode module matrix into a per-scan occupancy mask:
// every accepted Codeword's bounding box is stamped into the grid so later
// candidates falling far from any accepted code can skip the exact
// circle-overlap test in candidate.go without ever touching float math.
// Rotation, XOR, string rendering and the BitArray-based row accessors the
// original barcode formats needed for matrix comparison and symbol
// orientation are dropped — nothing in this engine performs those
// operations on an occupancy mask.
package spatial

// Grid is a packed bitmap, one bit per cell, row-major with the origin at
// the top-left.
type Grid struct {
	width, height int
	rowWords      int
	words         []uint32
}

// NewGrid allocates a cleared width x height bit grid.
func NewGrid(width, height int) *Grid {
	rowWords := (width + 31) / 32
	return &Grid{
		width:    width,
		height:   height,
		rowWords: rowWords,
		words:    make([]uint32, rowWords*height),
	}
}

// Get reports whether the cell at (x, y) is set. Coordinates outside the
// grid report false rather than panicking, since callers probe candidate
// pixel coordinates that may sit on or past the last row/column.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	offset := y*g.rowWords + x/32
	return (g.words[offset]>>uint(x&31))&1 != 0
}

// SetRegion sets every cell in [left, left+w) x [top, top+h), clamped to
// the grid's bounds so callers can pass a Codeword's unchecked bounding
// box directly.
func (g *Grid) SetRegion(left, top, w, h int) {
	right := left + w
	bottom := top + h
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > g.width {
		right = g.width
	}
	if bottom > g.height {
		bottom = g.height
	}
	for y := top; y < bottom; y++ {
		offset := y * g.rowWords
		for x := left; x < right; x++ {
			g.words[offset+x/32] |= 1 << uint(x&31)
		}
	}
}

// Clear resets every cell to unset, for reuse across scans without
// reallocating.
func (g *Grid) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
}

// Width returns the grid's width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height in cells.
func (g *Grid) Height() int { return g.height }
