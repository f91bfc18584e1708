// Package format provides input validation and output format selection
// for the pdfsift tool.
package format

import "strings"

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates flat plain-text output.
	Text
	// DOCX indicates Microsoft Word (.docx) output.
	DOCX
	// HTML indicates absolutely-positioned HTML output.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "txt"
	case DOCX:
		return "docx"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case DOCX:
		return ".docx"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Parse maps a user-supplied format name to a Format.
// It returns Unknown for unsupported names.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "txt", "text":
		return Text
	case "docx":
		return DOCX
	case "html", "htm":
		return HTML
	default:
		return Unknown
	}
}

// IsPDF checks the magic bytes of a file header for the PDF signature.
func IsPDF(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F'
}
