package pdfsift

import (
	"fmt"
	"strings"
)

// WarningType identifies the category of a non-fatal extraction issue.
type WarningType string

const (
	// WarningOCRFallback indicates a page had no extractable structured
	// text and its content was recovered via OCR instead.
	WarningOCRFallback WarningType = "ocr_fallback"

	// WarningOCRUnavailable indicates a page needed OCR but no OCR engine
	// was available (e.g. built without the ocr tag). The page is recorded
	// with empty text.
	WarningOCRUnavailable WarningType = "ocr_unavailable"

	// WarningPageDegraded indicates a page-level failure (malformed
	// content stream, unreadable image) that was degraded to an empty
	// result rather than aborting the whole document.
	WarningPageDegraded WarningType = "page_degraded"
)

// Warning describes a non-fatal issue encountered during extraction.
// Extraction succeeded, but the result for the named page may be imperfect.
type Warning struct {
	Type    WarningType
	Page    int // 1-indexed page number, 0 if not page-specific
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Type, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Type, w.Message)
}

// FormatWarnings joins warnings into a single string, one per line.
// It returns an empty string for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
