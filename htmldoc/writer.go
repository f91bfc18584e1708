// Package htmldoc serializes extraction results as a standalone HTML page
// that reproduces the spatial layout of the source document. Each page
// becomes a fixed-size canvas div and each text element an absolutely
// positioned block at its original coordinates.
package htmldoc

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"

	"github.com/pdfsift/pdfsift/model"
)

const documentHead = `<html><head><meta charset='utf-8'><title>PDF Extraction</title></head><body>
<style>
body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f0f0f0; }
.page { position: relative; margin: 20px auto; background-color: #fff; border: 1px solid #ccc; box-shadow: 0 0 10px rgba(0,0,0,0.1); padding: 50px; box-sizing: border-box; }
.text-element { position: absolute; font-size: 12px; white-space: pre-wrap; margin: 0; padding: 0; }
</style>
`

// CanvasSize returns the page canvas dimensions: the maximum right and
// bottom extent over the elements. A page is exactly as large as the
// content it carries.
func CanvasSize(elements []model.Element) (width, height float64) {
	for _, el := range elements {
		if el.BBox.Right > width {
			width = el.BBox.Right
		}
		if el.BBox.Bottom > height {
			height = el.BBox.Bottom
		}
	}
	return width, height
}

// Write serializes the document to w. Pages without elements are skipped.
func Write(w io.Writer, doc *model.Document) error {
	if _, err := io.WriteString(w, documentHead); err != nil {
		return err
	}

	for _, page := range doc.Pages {
		if len(page.Elements) == 0 {
			continue
		}
		if err := writePage(w, page); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body></html>\n")
	return err
}

// WriteFile serializes the document to the named file, creating or
// truncating it.
func WriteFile(filename string, doc *model.Document) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := Write(f, doc); err != nil {
		return err
	}
	return f.Close()
}

func writePage(w io.Writer, page model.Page) error {
	width, height := CanvasSize(page.Elements)
	if _, err := fmt.Fprintf(w,
		"<div class=\"page\" style=\"width: %gpx; height: %gpx;\">\n",
		width, height); err != nil {
		return err
	}

	for _, el := range page.Elements {
		style := fmt.Sprintf("left: %gpx; top: %gpx; width: %gpx; height: %gpx;",
			el.BBox.Left, el.BBox.Top, el.BBox.Width(), el.BBox.Height())
		if _, err := fmt.Fprintf(w,
			"<p class=\"text-element\" style=\"%s\">%s</p>\n",
			style, html.EscapeString(el.Text)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</div>\n")
	return err
}
