package ocr

import "github.com/pdfsift/pdfsift/model"

// Word is a single recognized token with its position in image pixels.
type Word struct {
	Text string
	BBox model.BBox
	// Confidence is the engine's recognition confidence on a 0-100 scale.
	Confidence float64
}
