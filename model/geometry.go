package model

import "math"

// BBox represents a bounding box in page-pixel coordinates with the origin
// in the upper-left corner of the page.
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewBBox creates a bounding box from edge coordinates.
func NewBBox(left, top, right, bottom float64) BBox {
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// IsEmpty returns true if the box has no positive area.
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   math.Min(b.Left, other.Left),
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Intersects checks if two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}
