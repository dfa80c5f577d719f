package imagefile

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports an image that could not be read. It is recoverable:
// the caller skips the file and carries on.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder loads an image with EXIF orientation already applied.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// FileDecoder decodes files from disk.
type FileDecoder struct{}

// Decode reads path and applies its EXIF orientation (rotation and flips).
// Orientation is only read from JPEG files; TIFF and WebP tags are ignored.
// Any failure is returned as a *DecodeError.
func (FileDecoder) Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())}
	}
	return img, nil
}
