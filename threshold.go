package topcode

// Wellner adaptive thresholding parameters. See "Adaptive Thresholding for
// the DigitalDesk", EuroPARC Technical Report EPC-93-110, which the
// original Java TopCodes scanner and this port both implement.
const (
	wellnerWindow     = 30
	wellnerFactor     = 0.975
	wellnerInitialSum = 128
)

// thresholder runs a single boustrophedon (serpentine) sweep over a
// PixelBuffer, producing the binary threshold of every pixel and, in the
// same pass, flagging horizontal black-white-black bullseye-row crossings
// as candidates. It mirrors zxinggo's binarizer package in spirit (a
// single Binarizer type turning continuous intensity into a BitMatrix) but
// implements Wellner's specific running-sum algorithm rather than
// zxing's block-histogram approach, since the two use genuinely different
// math: Wellner decays a running sum along a traversal that reverses every
// row, using the row directly above for vertical coupling, where
// block-histogram thresholding looks at a fixed neighborhood of blocks.
type thresholder struct {
	maxUnit int
}

// run performs the thresholding sweep over buf, returning the number of
// candidate pixels flagged (always a multiple of 3: three cells are marked
// per accepted horizontal run).
func (t *thresholder) run(buf *PixelBuffer) int {
	width, height := buf.Width, buf.Height
	summ := wellnerInitialSum
	candidateCount := 0

	for j := 0; j < height; j++ {
		leftToRight := j%2 == 0
		var k, stride int
		if leftToRight {
			k = j * width
			stride = 1
		} else {
			k = j*width + width - 1
			stride = -1
		}

		b1, w1, b2, level := 0, 0, 0, 0

		for i := 0; i < width; i++ {
			a := int(buf.words[k] & sumMask)
			summ += a - summ/wellnerWindow

			var thresh int
			if k >= width {
				prevSum := int(buf.words[k-width] & sumMask)
				thresh = (summ + prevSum) / (2 * wellnerWindow)
			} else {
				thresh = summ / wellnerWindow
			}

			bit := 0
			if float64(a) >= float64(thresh)*wellnerFactor {
				bit = 1
			}
			buf.words[k] = uint32(summ) & sumMask
			if bit == 1 {
				buf.words[k] |= thresholdBit
			}

			switch level {
			case 0:
				if bit == 0 {
					level = 1
					b1, w1, b2 = 1, 0, 0
				}
			case 1:
				if bit == 0 {
					b1++
				} else {
					level = 2
					w1 = 1
				}
			case 2:
				if bit == 0 {
					level = 3
					b2 = 1
				} else {
					w1++
				}
			case 3:
				if bit == 0 {
					b2++
				} else {
					if t.acceptRun(b1, w1, b2) {
						offset := 1 + b1 + w1/2
						var mid int
						if leftToRight {
							mid = k - offset
						} else {
							mid = k + offset
						}
						if mid-1 >= 0 && mid+1 < len(buf.words) {
							buf.markCandidate(mid - 1)
							buf.markCandidate(mid)
							buf.markCandidate(mid + 1)
							candidateCount += 3
						}
					}
					b1, w1, b2 = b2, 1, 0
					level = 2
				}
			}

			k += stride
		}
	}

	return candidateCount
}

// acceptRun implements the shape test on a completed black-white-black run:
// both black runs non-trivial and within maxUnit, the white gap within two
// units, and the three runs roughly in 1:1:1 to 1:2:1 proportion.
func (t *thresholder) acceptRun(b1, w1, b2 int) bool {
	if b1 < 2 || b2 < 2 {
		return false
	}
	if b1 > t.maxUnit || b2 > t.maxUnit {
		return false
	}
	if w1 > 2*t.maxUnit {
		return false
	}
	sum := b1 + b2
	if absInt(sum-w1) > sum || absInt(sum-w1) > w1 {
		return false
	}
	if absInt(b1-b2) > b1 || absInt(b1-b2) > b2 {
		return false
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
