// Command topcodescan locates and decodes TopCode fiducials in image files.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	// Register additional image formats beyond the standard library's
	// PNG/JPEG/GIF (already registered by the topcode package itself),
	// mirroring zxinggo's cmd/barcodescan blank-import-to-register
	// idiom for optional format coverage.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	topcode "github.com/mhorn/topcodego"
)

func main() {
	maxDiameter := flag.Int("max-diameter", 0, "maximum code diameter in pixels (0 keeps the 640px default)")
	previewPath := flag.String("preview", "", "write the post-threshold preview image to this PNG path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: topcodescan [flags] <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "Locate and decode TopCode fiducials in image files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		codes, err := scanFile(path, *maxDiameter, *previewPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
			exitCode = 1
			continue
		}
		if len(codes) == 0 {
			fmt.Fprintf(os.Stderr, "%s: no TopCodes found\n", path)
			exitCode = 1
			continue
		}
		for _, c := range codes {
			if flag.NArg() > 1 {
				fmt.Printf("%s: ", path)
			}
			fmt.Printf("code=%d x=%.1f y=%.1f unit=%.2f orientation=%.3f\n",
				c.Code(), c.X(), c.Y(), c.Unit(), c.Orientation())
		}
	}
	os.Exit(exitCode)
}

// scanFile recovers from panics that third-party image codecs may raise on
// malformed input, converting them to errors, the way zxinggo's
// tryDecode wraps zxinggo.Decode at the CLI boundary rather than inside
// the library.
func scanFile(path string, maxDiameter int, previewPath string) (codes []*topcode.Codeword, err error) {
	defer func() {
		if r := recover(); r != nil {
			codes = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()

	scanner := topcode.NewScanner()
	if maxDiameter > 0 {
		scanner.SetMaxCodeDiameter(maxDiameter)
	}

	codes, err = scanner.ScanByFilename(path)
	if err != nil {
		return nil, err
	}

	if previewPath != "" {
		if perr := writePreview(scanner, previewPath); perr != nil {
			return codes, perr
		}
	}

	return codes, nil
}

func writePreview(scanner *topcode.Scanner, path string) error {
	preview := scanner.GetPreview()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, preview)
}
