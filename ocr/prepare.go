package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg" // Decoder registration for embedded JPEG images

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Decoder registration for embedded TIFF images
)

// DefaultMinWidth is the minimum image width, in pixels, fed to the
// recognizer. Embedded scans narrower than this are upscaled first;
// Tesseract's accuracy drops sharply on low-resolution input.
const DefaultMinWidth = 1200

// PrepareImage decodes an image and upscales it to at least minWidth
// pixels wide, preserving the aspect ratio. Images already wide enough
// are returned unchanged. The result is PNG-encoded when scaling was
// applied.
func PrepareImage(data []byte, minWidth int) ([]byte, error) {
	if minWidth <= 0 {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() >= minWidth || bounds.Dx() == 0 {
		return data, nil
	}

	scale := float64(minWidth) / float64(bounds.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, minWidth, int(float64(bounds.Dy())*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode scaled image: %w", err)
	}
	return buf.Bytes(), nil
}
