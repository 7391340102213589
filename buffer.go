package topcode

// Bit layout of a PixelBuffer word. Bits 0-23 hold the Wellner running
// intensity sum carried from one row into the next; bit 24 holds the
// binary threshold decision (0 black, 1 white); bit 25 is the candidate
// flag set by the horizontal run-length state machine in threshold.go and
// read back by CandidateFinder in candidate.go. Packing all three into one
// word (rather than three parallel slices) keeps the adaptive-threshold
// inner loop pointer-local, the way zxinggo packs a BitMatrix row into
// uint32 words instead of a []bool.
const (
	candidateFlag = 0x02000000
	thresholdBit  = 0x01000000
	sumMask       = 0x00FFFFFF
)

// PixelBuffer is a dense row-major buffer holding one word per pixel. It
// starts out holding raw intensity in its low bits (see NewPixelBuffer) and
// is overwritten in place by Thresholder with the packed threshold/sum/
// candidate form described above.
type PixelBuffer struct {
	Width, Height int
	words         []uint32
}

// newPixelBuffer allocates a zeroed buffer of the given dimensions.
func newPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		words:  make([]uint32, width*height),
	}
}

// At returns the raw word stored at pixel (x, y).
func (b *PixelBuffer) At(x, y int) uint32 {
	return b.words[y*b.Width+x]
}

// index converts (x, y) to a linear offset.
func (b *PixelBuffer) index(x, y int) int {
	return y*b.Width + x
}

// intensity returns the truncated-average intensity stored by
// NewPixelBuffer before Thresholder has run (only bits 0-23 are
// meaningful at that point; after Thresholder runs, the low bits hold the
// running sum instead and this accessor stops being meaningful).
func (b *PixelBuffer) intensity(x, y int) int {
	return int(b.words[b.index(x, y)] & sumMask)
}

// setWord overwrites the word at linear index k, used by Thresholder's
// serpentine sweep.
func (b *PixelBuffer) setWord(k int, w uint32) {
	b.words[k] = w
}

// wordAt returns the word at linear index k.
func (b *PixelBuffer) wordAt(k int) uint32 {
	return b.words[k]
}

// markCandidate ORs the candidate flag into the word at linear index k,
// leaving the running sum already stored there untouched.
func (b *PixelBuffer) markCandidate(k int) {
	b.words[k] |= candidateFlag
}

// IsCandidate reports whether bit 25 is set at (x, y).
func (b *PixelBuffer) IsCandidate(x, y int) bool {
	return b.words[b.index(x, y)]&candidateFlag != 0
}

// Threshold returns the binary threshold decision at (x, y): 0 for black,
// 1 for white. Out-of-range coordinates are not guarded here; callers that
// may be near the border use GetBW3x3 / GetSample3x3 instead, which define
// their own boundary behavior per spec.
func (b *PixelBuffer) Threshold(x, y int) int {
	if (b.words[b.index(x, y)] & thresholdBit) != 0 {
		return 1
	}
	return 0
}

// GetBW3x3 returns the 3x3-majority binary value around (x, y): 1 if at
// least 5 of the 9 pixels in [x-1,x+1]x[y-1,y+1] threshold to white, else
// 0. Returns 0 for any window that would reach outside the image, so
// callers near the border see it as a black boundary rather than panicking.
func (b *PixelBuffer) GetBW3x3(x, y int) int {
	if x < 1 || x > b.Width-2 || y < 1 || y > b.Height-2 {
		return 0
	}
	sum := 0
	for j := y - 1; j <= y+1; j++ {
		row := j * b.Width
		for i := x - 1; i <= x+1; i++ {
			sum += int((b.words[row+i] >> 24) & 0x01)
		}
	}
	if sum >= 5 {
		return 1
	}
	return 0
}

// GetSample3x3 returns the average thresholded intensity in [0,255] across
// the same 9-pixel window as GetBW3x3, returning 0 at the border.
func (b *PixelBuffer) GetSample3x3(x, y int) int {
	if x < 1 || x > b.Width-2 || y < 1 || y > b.Height-2 {
		return 0
	}
	sum := 0
	for j := y - 1; j <= y+1; j++ {
		row := j * b.Width
		for i := x - 1; i <= x+1; i++ {
			if (b.words[row+i] & thresholdBit) != 0 {
				sum += 0xFF
			}
		}
	}
	return sum / 9
}
