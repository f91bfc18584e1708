//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for extracting text from the page images of scanned PDFs.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/pdfsift/pdfsift/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client   *gosseract.Client
	minWidth int
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{
		client:   gosseract.NewClient(),
		minWidth: DefaultMinWidth,
	}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string
// (e.g., "eng+fra"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the recognized text, NFC-normalized with surrounding whitespace
// trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	prepared, err := PrepareImage(imageData, c.minWidth)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(prepared); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return norm.NFC.String(strings.TrimSpace(text)), nil
}

// RecognizeWords performs OCR on image data and returns the recognized
// words with their bounding boxes in image-pixel coordinates and their
// confidences on a 0-100 scale. No confidence filtering is applied here;
// callers decide the threshold.
func (c *Client) RecognizeWords(imageData []byte) ([]Word, error) {
	prepared, err := PrepareImage(imageData, c.minWidth)
	if err != nil {
		return nil, err
	}
	if err := c.client.SetImageFromBytes(prepared); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		text := norm.NFC.String(strings.TrimSpace(b.Word))
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text: text,
			BBox: model.NewBBox(
				float64(b.Box.Min.X),
				float64(b.Box.Min.Y),
				float64(b.Box.Max.X),
				float64(b.Box.Max.Y),
			),
			Confidence: b.Confidence,
		})
	}

	return words, nil
}
