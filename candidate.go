package topcode

import "github.com/mhorn/topcodego/internal/spatial"

// candidateFinder walks a thresholded PixelBuffer in row-major order,
// confirming 4-neighbor candidates flagged by thresholder and handing each
// surviving one to decoder, skipping any that land inside an
// already-accepted Codeword's bullseye. It owns the occupancy grid used to
// fast-path that overlap check (see internal/spatial).
type candidateFinder struct {
	dec decoder
}

// result carries the counters CandidateFinder accumulates during a run,
// alongside the accepted Codewords themselves.
type result struct {
	codes     []*Codeword
	tested    int
	candidate int
}

// find scans buf for confirmed, non-overlapping candidates and decodes
// each, returning every Codeword the Decoder reported valid, in the order
// CandidateFinder visited them (row-major, top to bottom).
func (f *candidateFinder) find(buf *PixelBuffer, candidateCount int) *result {
	occupancy := spatial.NewGrid(buf.Width, buf.Height)
	res := &result{candidate: candidateCount}

	for j := 2; j < buf.Height-2; j++ {
		for i := 2; i < buf.Width-2; i++ {
			if !buf.IsCandidate(i, j) {
				continue
			}
			if !buf.IsCandidate(i-1, j) || !buf.IsCandidate(i+1, j) ||
				!buf.IsCandidate(i, j-1) || !buf.IsCandidate(i, j+1) {
				continue
			}

			fx, fy := float64(i), float64(j)
			if occupancy.Get(i, j) && overlapsAny(res.codes, fx, fy) {
				continue
			}

			res.tested++
			code := f.dec.decode(buf, i, j)
			if code.IsValid() {
				res.codes = append(res.codes, code)
				left := int(code.x - code.unit)
				top := int(code.y - code.unit)
				size := int(2*code.unit) + 2
				occupancy.SetRegion(left, top, size, size)
			}
		}
	}

	return res
}

// overlapsAny reports whether (x, y) falls inside any already-accepted
// code's bullseye.
func overlapsAny(codes []*Codeword, x, y float64) bool {
	for _, c := range codes {
		if c.InBullseye(x, y) {
			return true
		}
	}
	return false
}
