// Package pdfsift provides a fluent API for extracting text from PDF files,
// with an OCR fallback for scanned pages that carry no embedded text.
//
// Basic usage:
//
//	text, warnings, err := pdfsift.Open("document.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfsift.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := pdfsift.Open("scan.pdf").
//	    Pages(1, 2, 3).
//	    Language("eng+fra").
//	    MinConfidence(60).
//	    Document()
//
// For advanced use cases, the lower-level reader and ocr packages are also
// available.
package pdfsift

import (
	"github.com/pdfsift/pdfsift/reader"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// Opening is lazy: errors (including a missing file) surface on the first
// terminal operation. The returned Extractor must be closed when done,
// either explicitly via Close() or implicitly when calling a terminal
// operation like Text().
//
// Example:
//
//	text, warnings, err := pdfsift.Open("document.pdf").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	text, warnings, err := pdfsift.FromReader(r).Text()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		src:        r,
		ownsSource: false,
		srcOpened:  true,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfsift.Must(pdfsift.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := pdfsift.MustText(pdfsift.Open("document.pdf").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
