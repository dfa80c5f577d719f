package imagefile

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"golang.org/x/image/draw"
)

// Thumbnail is a JPEG-encoded, size-bounded copy of a decoded image. Width
// and Height are the dimensions of the full image it was made from.
type Thumbnail struct {
	Width  int
	Height int
	JPEG   []byte
}

// MakeThumbnail shrinks img to fit within maxSize pixels on its long edge,
// flattens any transparency onto white and encodes the result as JPEG.
// Images already small enough are only re-encoded.
func MakeThumbnail(img image.Image, maxSize, quality int) (*Thumbnail, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if maxSize > 0 && (width > maxSize || height > maxSize) {
		if width > height {
			newWidth = maxSize
			newHeight = max(1, int(float64(height)*float64(maxSize)/float64(width)))
		} else {
			newHeight = maxSize
			newWidth = max(1, int(float64(width)*float64(maxSize)/float64(height)))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if newWidth == width && newHeight == height {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &Thumbnail{
		Width:  width,
		Height: height,
		JPEG:   buf.Bytes(),
	}, nil
}
