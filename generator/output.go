package generator

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// WriteImage encodes img to path in the given format. The parent directory
// must already exist.
func WriteImage(path string, img image.Image, format imaging.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIO, path, cerr)
		}
	}()

	if err := imaging.Encode(f, img, format); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrIO, path, err)
	}
	return nil
}
