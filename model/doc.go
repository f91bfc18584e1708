// Package model defines the data structures shared across the pdfsift
// library: bounding boxes in page-pixel coordinates, positioned text
// elements with provenance, and the per-page document result.
package model
