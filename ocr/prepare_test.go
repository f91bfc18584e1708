package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG builds an in-memory PNG of the given size.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestPrepareImageUpscalesNarrowImages(t *testing.T) {
	data := encodePNG(t, 50, 20)

	prepared, err := PrepareImage(data, 200)
	if err != nil {
		t.Fatalf("PrepareImage: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(prepared))
	if err != nil {
		t.Fatalf("decode prepared image: %v", err)
	}
	if got := img.Bounds().Dx(); got != 200 {
		t.Errorf("Expected width 200, got %d", got)
	}
	// Aspect ratio preserved: 20 * (200/50) = 80.
	if got := img.Bounds().Dy(); got != 80 {
		t.Errorf("Expected height 80, got %d", got)
	}
}

func TestPrepareImageLeavesWideImagesAlone(t *testing.T) {
	data := encodePNG(t, 300, 100)

	prepared, err := PrepareImage(data, 200)
	if err != nil {
		t.Fatalf("PrepareImage: %v", err)
	}
	if !bytes.Equal(prepared, data) {
		t.Error("Image already wide enough should be returned unchanged")
	}
}

func TestPrepareImageDisabledThreshold(t *testing.T) {
	data := []byte("not an image")

	// minWidth <= 0 disables preparation entirely; the payload must pass
	// through without being decoded.
	prepared, err := PrepareImage(data, 0)
	if err != nil {
		t.Fatalf("PrepareImage: %v", err)
	}
	if !bytes.Equal(prepared, data) {
		t.Error("Disabled preparation should return input unchanged")
	}
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	if _, err := PrepareImage([]byte("garbage"), 200); err == nil {
		t.Error("Expected decode error for non-image data")
	}
}
