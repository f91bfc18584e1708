package model

// Document represents the per-page extraction results for a PDF document.
// Pages are ordered and keyed by their 1-indexed page number; when a page
// selection was applied, Pages holds only the selected pages.
type Document struct {
	Metadata Metadata
	Pages    []Page
}

// Metadata contains document-level information from the PDF Info dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddPage appends a page, preserving its page number.
func (d *Document) AddPage(page Page) {
	d.Pages = append(d.Pages, page)
}

// Page returns the page with the given 1-indexed number, or nil if the
// page was not extracted.
func (d *Document) Page(number int) *Page {
	for i := range d.Pages {
		if d.Pages[i].Number == number {
			return &d.Pages[i]
		}
	}
	return nil
}

// PageCount returns the number of extracted pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// IsEmpty returns true if no page produced any content.
func (d *Document) IsEmpty() bool {
	for i := range d.Pages {
		if !d.Pages[i].IsEmpty() {
			return false
		}
	}
	return true
}
