package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const thumbnailSize = 512

// DecodeUpright decodes image bytes, applying the EXIF orientation so phone
// photos don't come out rotated.
func DecodeUpright(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// FlattenToWhite composites a transparent image onto a white canvas. The
// background-removal step returns PNGs with alpha; the stored clean image is
// flattened so JPEG-only consumers render it correctly.
func FlattenToWhite(img image.Image) image.Image {
	canvas := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.OverlayCenter(canvas, img, 1.0)
}

// Thumbnail shrinks an image to fit the grid-view bounding box, preserving
// aspect ratio. Images already smaller are returned untouched.
func Thumbnail(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= thumbnailSize && b.Dy() <= thumbnailSize {
		return img
	}
	return imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
}

// EncodePNG encodes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
