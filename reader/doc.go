// Package reader provides page-level access to PDF documents.
//
// Structured content (positioned characters, page geometry, document
// metadata) comes from github.com/ledongthuc/pdf. Embedded page images,
// which the OCR fallback recognizes for scanned documents, are extracted
// with github.com/pdfcpu/pdfcpu.
package reader
