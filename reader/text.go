package reader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdfsift/pdfsift/model"
)

// wordGapFactor is the fraction of the font size that must separate two
// characters horizontally before they are treated as different words.
const wordGapFactor = 0.3

// PageText extracts the text of a page with layout preserved: characters
// are grouped into lines by baseline, with spaces and blank lines derived
// from the geometry. It returns an empty string for pages without
// embedded text.
func (r *Reader) PageText(number int) (text string, err error) {
	// Malformed content streams can panic inside the parser; degrade to
	// an error so a bad page never takes down the whole run.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: malformed content: %v", number, rec)
		}
	}()

	p, err := r.page(number)
	if err != nil {
		return "", err
	}

	return assembleText(filterTexts(p.Content().Text)), nil
}

// PageWords extracts the page's positioned characters grouped into words,
// each with a bounding box converted to top-left page coordinates.
// It returns nil for pages without embedded text.
func (r *Reader) PageWords(number int) (elements []model.Element, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: malformed content: %v", number, rec)
		}
	}()

	p, err := r.page(number)
	if err != nil {
		return nil, err
	}

	_, height, err := r.PageSize(number)
	if err != nil {
		return nil, err
	}

	return groupWords(filterTexts(p.Content().Text), height), nil
}

// filterTexts drops characters that carry no visible content.
func filterTexts(texts []pdf.Text) []pdf.Text {
	kept := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// sortByPosition orders characters top to bottom, left to right. PDF Y
// coordinates grow upward, so a higher Y means higher on the page.
// Characters on the same baseline (within half the font size) keep their
// stream order unless their X positions clearly differ.
func sortByPosition(texts []pdf.Text) []pdf.Text {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)

	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].Y - sorted[j].Y
		if abs(yDiff) > rowTolerance(sorted[i].FontSize) {
			return yDiff > 0
		}
		return sorted[i].X < sorted[j].X
	})

	return sorted
}

func rowTolerance(fontSize float64) float64 {
	if fontSize <= 0 {
		return 2.0
	}
	return fontSize * 0.5
}

// assembleText combines characters into text with line breaks and spacing
// derived from their positions.
func assembleText(texts []pdf.Text) string {
	if len(texts) == 0 {
		return ""
	}

	sorted := sortByPosition(texts)

	var result strings.Builder
	prev := sorted[0]
	result.WriteString(prev.S)

	for _, t := range sorted[1:] {
		yDiff := abs(t.Y - prev.Y)
		switch {
		case yDiff > rowTolerance(t.FontSize):
			// New line; a large vertical jump is a paragraph break.
			if yDiff > t.FontSize*1.5 {
				result.WriteString("\n\n")
			} else {
				result.WriteString("\n")
			}
		case t.X-(prev.X+prev.W) > t.FontSize*wordGapFactor:
			result.WriteString(" ")
		}
		result.WriteString(t.S)
		prev = t
	}

	return result.String()
}

// groupWords merges adjacent characters into words and converts their
// extents into top-left page coordinates. The glyph box is approximated
// from the baseline and font size.
func groupWords(texts []pdf.Text, pageHeight float64) []model.Element {
	if len(texts) == 0 {
		return nil
	}

	sorted := sortByPosition(texts)

	var elements []model.Element
	var word strings.Builder
	var left, right, baseline, fontSize float64

	flush := func() {
		if word.Len() == 0 {
			return
		}
		elements = append(elements, model.Element{
			Text: word.String(),
			BBox: model.NewBBox(
				left,
				pageHeight-(baseline+fontSize),
				right,
				pageHeight-baseline,
			),
			Source: model.SourceStructured,
		})
		word.Reset()
	}

	for i, t := range sorted {
		sameRow := i > 0 && abs(t.Y-baseline) <= rowTolerance(t.FontSize)
		adjacent := sameRow && t.X-right <= t.FontSize*wordGapFactor

		if !adjacent {
			flush()
			left = t.X
			baseline = t.Y
			fontSize = t.FontSize
		}
		word.WriteString(t.S)
		right = t.X + t.W
		if t.FontSize > fontSize {
			fontSize = t.FontSize
		}
	}
	flush()

	return elements
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
