//go:build !ocr

package pdfsift

import (
	"testing"

	"github.com/pdfsift/pdfsift/model"
	"github.com/pdfsift/pdfsift/reader"
)

// Without the ocr build tag the default recognizer cannot be created; a
// scanned page must degrade to an empty page with a warning, not an error.
func TestScannedPageWithoutOCRSupport(t *testing.T) {
	src := &fakeSource{pages: []fakePage{
		{text: "", images: []reader.PageImage{{Name: "Im1", Data: []byte("scan")}}},
	}}

	ext := &Extractor{
		src:       src,
		srcOpened: true,
		options:   defaultOptions(),
	}

	doc, warnings, err := ext.Document()
	if err != nil {
		t.Fatalf("Document should not fail when OCR is unavailable: %v", err)
	}

	page := doc.Page(1)
	if page.Text != "" {
		t.Errorf("Expected empty text, got %q", page.Text)
	}
	if page.Source != model.SourceUnknown {
		t.Errorf("Expected SourceUnknown, got %v", page.Source)
	}
	if !hasWarning(warnings, WarningOCRUnavailable) {
		t.Errorf("Expected an %s warning, got: %v", WarningOCRUnavailable, warnings)
	}
}
