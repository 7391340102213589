package topcode

import (
	// Register the decoders image.Decode needs for ScanByFilename. PNG,
	// JPEG and GIF cost nothing to support and image.Decode dispatches on
	// the file's own header regardless. Wider format coverage (BMP, TIFF)
	// is left to callers that want it — see cmd/topcodescan, which
	// additionally imports golang.org/x/image's decoders, the way
	// zxinggo's cmd/barcodescan registers format readers via blank import
	// rather than baking every option into the library.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)
