package topcode

import "image"

// NewPixelBuffer converts a standard library image.Image into a PixelBuffer
// ready for Thresholder. Each pixel's truncated average intensity
// a = (r+g+b)/3 is stored in the buffer's low 24 bits;
// Thresholder overwrites these words with the packed threshold/sum form on
// its first pass. Fully transparent pixels are not special-cased (unlike
// zxinggo's ImageLuminanceSource, which forces them to white): TopCode
// scans operate on opaque renders or camera frames, and an alpha channel
// carries no meaning for the Wellner threshold.
//
// This mirrors zxinggo's ImageLuminanceSource constructor, but computes
// the plain average instead of the luminance-weighted formula zxing uses,
// since the Wellner threshold in threshold.go is defined on that average.
func NewPixelBuffer(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	buf := newPixelBuffer(w, h)

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r8 := int(r >> 8)
			g8 := int(g >> 8)
			b8 := int(b >> 8)
			a := (r8 + g8 + b8) / 3
			buf.words[row+x] = uint32(a) & sumMask
		}
	}
	return buf
}

// NewPixelBufferFromRGB builds a PixelBuffer from interleaved 8-bit RGB
// pixel data (3 bytes per pixel; stride is the byte length of one source
// row, so rows may carry padding), for callers that already hold raw pixels
// in memory rather than a decoded image.Image. RGBA data with 4 bytes per
// pixel is not supported. This
// is the in-memory analogue of zxinggo's NewGrayImageLuminanceSource
// fast path for already-unpacked pixel data.
func NewPixelBufferFromRGB(pix []byte, width, height, stride int) *PixelBuffer {
	buf := newPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		row := y * width
		srcRow := y * stride
		for x := 0; x < width; x++ {
			off := srcRow + x*3
			a := (int(pix[off]) + int(pix[off+1]) + int(pix[off+2])) / 3
			buf.words[row+x] = uint32(a) & sumMask
		}
	}
	return buf
}
