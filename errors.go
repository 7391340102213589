package topcode

import "errors"

// ErrDecodeImage is returned when an input image cannot be decoded into a
// pixel array of the claimed size. This is the only fatal condition a scan
// can raise; every other failure mode (a candidate that doesn't pan out, a
// sample that falls off the image edge) is local and recoverable and is
// reported through sentinel return values instead, per the geometry and
// threshold routines in buffer.go, threshold.go and decoder.go.
var ErrDecodeImage = errors.New("topcode: cannot decode image")

// ErrUnsupportedFormat is returned by ScanByFilename when the file's image
// format is not registered with the standard image package (or the
// optional golang.org/x/image decoders imported by cmd/topcodescan).
var ErrUnsupportedFormat = errors.New("topcode: unsupported image format")
