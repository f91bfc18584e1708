package reader

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Reader provides access to the pages of an opened PDF document.
// It is not safe for concurrent use.
type Reader struct {
	path string
	file *os.File
	pdf  *pdf.Reader
}

// Open opens a PDF file for reading.
// The returned Reader must be closed when no longer needed.
func Open(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Reader{path: path, file: f, pdf: r}, nil
}

// Close releases the underlying file handle.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the total number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// page returns the page with the given 1-indexed number.
func (r *Reader) page(number int) (pdf.Page, error) {
	if number < 1 || number > r.pdf.NumPage() {
		return pdf.Page{}, fmt.Errorf("page %d out of range (1-%d)", number, r.pdf.NumPage())
	}
	p := r.pdf.Page(number)
	if p.V.IsNull() {
		return pdf.Page{}, fmt.Errorf("page %d is invalid", number)
	}
	return p, nil
}

// PageSize returns the width and height of a page in points, taken from
// the page's MediaBox (walking up to the page tree root if inherited).
func (r *Reader) PageSize(number int) (width, height float64, err error) {
	p, err := r.page(number)
	if err != nil {
		return 0, 0, err
	}

	mediaBox := p.V.Key("MediaBox")
	for v := p.V; mediaBox.IsNull(); {
		v = v.Key("Parent")
		if v.IsNull() {
			return 0, 0, fmt.Errorf("page %d has no MediaBox", number)
		}
		mediaBox = v.Key("MediaBox")
	}
	if mediaBox.Kind() != pdf.Array || mediaBox.Len() < 4 {
		return 0, 0, fmt.Errorf("page %d has malformed MediaBox", number)
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		coords[i] = numeric(mediaBox.Index(i))
	}

	return coords[2] - coords[0], coords[3] - coords[1], nil
}

// Info returns the strings from the document Info dictionary, keyed by
// their PDF names (Title, Author, Subject, Creator, Producer, ...).
func (r *Reader) Info() map[string]string {
	info := map[string]string{}
	dict := r.pdf.Trailer().Key("Info")
	if dict.IsNull() {
		return info
	}
	for _, key := range dict.Keys() {
		v := dict.Key(key)
		if v.Kind() == pdf.String {
			info[key] = v.RawString()
		}
	}
	return info
}

// numeric reads a PDF number regardless of whether it is stored as an
// integer or a real.
func numeric(v pdf.Value) float64 {
	switch v.Kind() {
	case pdf.Integer:
		return float64(v.Int64())
	case pdf.Real:
		return v.Float64()
	default:
		return 0
	}
}
