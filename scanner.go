package topcode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
)

// defaultMaxCodeDiameter is the assumed maximum code diameter, in pixels,
// until SetMaxCodeDiameter is called.
const defaultMaxCodeDiameter = 640

// Scanner orchestrates Thresholder, CandidateFinder, and Decoder, exposing
// the ScanImage, ScanRGB and ScanByFilename entry points plus read-only
// accessors for the counters a caller might want after a scan. It owns a
// PixelBuffer that is overwritten on each scan; a Scanner is not safe for concurrent
// use by multiple goroutines, but independent Scanner instances may run
// in parallel.
type Scanner struct {
	maxUnit int

	buf            *PixelBuffer
	candidateCount int
	testedCount    int

	previewCache *image.Gray
}

// NewScanner creates a Scanner configured with the default maximum code
// diameter of 640 pixels (maxUnit = 80), matching zxinggo's pattern of
// a constructor returning sane defaults rather than a package-level global
// (cf. zxinggo's DecodeOptions).
func NewScanner() *Scanner {
	return &Scanner{maxUnit: maxUnitFor(defaultMaxCodeDiameter)}
}

func maxUnitFor(diameter int) int {
	return int(math.Ceil(float64(diameter) / float64(Width)))
}

// SetMaxCodeDiameter sets the maximum allowable diameter, in pixels, for a
// TopCode this Scanner will recognize. Lower values reduce false positives
// and improve performance at the cost of rejecting genuinely larger codes.
func (s *Scanner) SetMaxCodeDiameter(diameter int) {
	s.maxUnit = maxUnitFor(diameter)
}

// CandidateCount returns the number of candidate pixels flagged by
// Thresholder during the most recent scan.
func (s *Scanner) CandidateCount() int { return s.candidateCount }

// TestedCount returns the number of confirmed, non-overlapping candidates
// passed to Decoder during the most recent scan.
func (s *Scanner) TestedCount() int { return s.testedCount }

// ScanImage scans img for TopCodes, returning every valid Codeword found,
// in row-major CandidateFinder visitation order.
func (s *Scanner) ScanImage(img image.Image) []*Codeword {
	s.buf = NewPixelBuffer(img)
	s.previewCache = nil
	return s.scan()
}

// ScanRGB scans raw interleaved RGB pixel data of the given width, height
// and row stride (in bytes), for callers that already hold decoded pixels
// rather than an image.Image.
func (s *Scanner) ScanRGB(pix []byte, width, height, stride int) []*Codeword {
	s.buf = NewPixelBufferFromRGB(pix, width, height, stride)
	s.previewCache = nil
	return s.scan()
}

// ScanByFilename opens the image file at path (PNG, JPEG and GIF are
// registered by this package's importers; cmd/topcodescan additionally
// registers BMP and TIFF via golang.org/x/image) and scans it.
func (s *Scanner) ScanByFilename(path string) ([]*Codeword, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	return s.ScanImage(img), nil
}

func (s *Scanner) scan() []*Codeword {
	th := thresholder{maxUnit: s.maxUnit}
	s.candidateCount = th.run(s.buf)

	finder := candidateFinder{}
	res := finder.find(s.buf, s.candidateCount)
	s.testedCount = res.tested

	return res.codes
}

// GetPreview renders a grayscale image where each pixel is black if its
// post-threshold bit 24 is clear, white if set, computed lazily on first
// request and cached until the next scan.
func (s *Scanner) GetPreview() *image.Gray {
	if s.previewCache != nil {
		return s.previewCache
	}
	if s.buf == nil {
		return nil
	}
	img := image.NewGray(image.Rect(0, 0, s.buf.Width, s.buf.Height))
	for y := 0; y < s.buf.Height; y++ {
		for x := 0; x < s.buf.Width; x++ {
			if s.buf.Threshold(x, y) == 1 {
				img.SetGray(x, y, color.Gray{Y: 255})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	s.previewCache = img
	return img
}
