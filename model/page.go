package model

// Page holds the extraction result for a single page.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points

	// Text is the page's extracted text with layout preserved.
	Text string
	// Source records whether Text came from structured extraction or OCR.
	Source Source

	// Elements holds positioned text elements when element-level
	// extraction was requested. Each element carries its own provenance.
	Elements []Element
}

// IsEmpty returns true if the page produced neither text nor elements.
func (p *Page) IsEmpty() bool {
	return p.Text == "" && len(p.Elements) == 0
}

// Extent returns the union of all element bounding boxes.
// It returns a zero box for pages without elements.
func (p *Page) Extent() BBox {
	if len(p.Elements) == 0 {
		return BBox{}
	}
	extent := p.Elements[0].BBox
	for _, e := range p.Elements[1:] {
		extent = extent.Union(e.BBox)
	}
	return extent
}
