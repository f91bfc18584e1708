package model

// Source identifies how a piece of text was obtained.
type Source int

const (
	// SourceUnknown indicates the provenance was not recorded.
	SourceUnknown Source = iota
	// SourceStructured indicates text derived from the PDF's embedded
	// character and position data.
	SourceStructured
	// SourceOCR indicates text recognized from a rendered page image.
	SourceOCR
)

func (s Source) String() string {
	switch s {
	case SourceStructured:
		return "structured"
	case SourceOCR:
		return "ocr"
	default:
		return "unknown"
	}
}

// Element is a positioned piece of text on a page, typically a single word.
type Element struct {
	Text   string
	BBox   BBox
	Source Source
}
