package pdfsift

// DefaultMinConfidence is the default confidence threshold (on Tesseract's
// 0-100 scale) below which OCR words are discarded.
const DefaultMinConfidence = 50.0

// ExtractOptions holds configuration for text extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// OCR options
	language      string  // Tesseract language(s), "+" separated
	minConfidence float64 // word confidence threshold, 0-100
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:         nil, // nil means all pages
		language:      "",  // empty means the engine default (eng)
		minConfidence: DefaultMinConfidence,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		language:      o.language,
		minConfidence: o.minConfidence,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
