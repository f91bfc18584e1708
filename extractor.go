package pdfsift

import (
	"bytes"
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/pdfsift/pdfsift/model"
	"github.com/pdfsift/pdfsift/ocr"
	"github.com/pdfsift/pdfsift/reader"
)

// pageSource is the per-page view of an opened PDF that the extraction
// policy runs against. reader.Reader is the production implementation.
type pageSource interface {
	Close() error
	PageCount() int
	PageSize(number int) (width, height float64, err error)
	PageText(number int) (string, error)
	PageWords(number int) ([]model.Element, error)
	PageImages(number int) ([]reader.PageImage, error)
	Info() map[string]string
}

// Recognizer turns page images into text. The default implementation is the
// Tesseract-backed ocr.Client, created lazily on first use; WithRecognizer
// substitutes another engine.
type Recognizer interface {
	Close() error
	SetLanguage(lang string) error
	RecognizeImage(imageData []byte) (string, error)
	RecognizeWords(imageData []byte) ([]ocr.Word, error)
}

// Extractor provides a fluent interface for extracting content from PDFs.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	src      pageSource

	// Lifecycle
	ownsSource bool // true if we opened the source and should close it
	srcOpened  bool // true if the source has been opened

	// OCR engine (lazily created unless injected via WithRecognizer)
	recognizer     Recognizer
	ownsRecognizer bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability: each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:       e.filename,
		src:            e.src,
		ownsSource:     e.ownsSource,
		srcOpened:      e.srcOpened,
		recognizer:     e.recognizer,
		ownsRecognizer: e.ownsRecognizer,
		options:        e.options.clone(),
		err:            e.err,
		warnings:       append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the PDF if not already open.
func (e *Extractor) ensureSource() error {
	if e.srcOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return err
	}
	e.src = r
	e.ownsSource = true
	e.srcOpened = true
	return nil
}

// ensureRecognizer returns the configured OCR engine, creating the default
// Tesseract client on first use.
func (e *Extractor) ensureRecognizer() (Recognizer, error) {
	if e.recognizer != nil {
		return e.recognizer, nil
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	if e.options.language != "" {
		if err := client.SetLanguage(e.options.language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set OCR language: %w", err)
		}
	}
	e.recognizer = client
	e.ownsRecognizer = true
	return e.recognizer, nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	var firstErr error
	if e.ownsSource && e.src != nil {
		firstErr = e.src.Close()
		e.src = nil
		e.ownsSource = false
	}
	if e.ownsRecognizer && e.recognizer != nil {
		if err := e.recognizer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		e.recognizer = nil
		e.ownsRecognizer = false
	}
	return firstErr
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	text, _, err := pdfsift.Open("doc.pdf").Pages(1, 3, 5).Text()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	text, _, err := pdfsift.Open("doc.pdf").PageRange(5, 10).Text()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Language sets the language(s) used for OCR recognition. Multiple
// languages can be specified as a "+" separated string (e.g., "eng+fra").
// The default is "eng" (English).
//
// Example:
//
//	text, _, err := pdfsift.Open("scan.pdf").Language("eng+deu").Text()
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// MinConfidence sets the confidence threshold (0-100) for OCR word
// recognition. Words recognized with a confidence below the threshold are
// discarded. The default is 50.
//
// Example:
//
//	doc, _, err := pdfsift.Open("scan.pdf").MinConfidence(70).Elements()
func (e *Extractor) MinConfidence(confidence float64) *Extractor {
	newExt := e.clone()
	newExt.options.minConfidence = confidence
	return newExt
}

// WithRecognizer substitutes a custom OCR engine for the default
// Tesseract-backed client. The caller retains ownership and is responsible
// for closing the recognizer.
func (e *Extractor) WithRecognizer(r Recognizer) *Extractor {
	newExt := e.clone()
	newExt.recognizer = r
	newExt.ownsRecognizer = false
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Document extracts the configured pages and returns them as a
// model.Document. For each page, structured text extraction is attempted
// first; pages whose structured text is empty fall back to OCR of the
// page's embedded image. The OCR result is recorded even when it is empty.
// This is a terminal operation that closes the underlying reader.
//
// Returns the document, any warnings encountered during processing, and an
// error if extraction failed. Warnings indicate non-fatal issues (e.g., a
// page fell back to OCR) where extraction succeeded but results may be
// imperfect.
//
// Example:
//
//	doc, warnings, err := pdfsift.Open("document.pdf").Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfsift.FormatWarnings(warnings))
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pageNumbers, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	doc := model.NewDocument()
	e.fillMetadata(doc)

	for _, num := range pageNumbers {
		doc.AddPage(e.extractPage(num))
	}

	return doc, e.warnings, nil
}

// Text extracts and returns the text content from the configured pages,
// joined with blank lines. Pages follow the same structured-first,
// OCR-fallback policy as Document.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	text, warnings, err := pdfsift.Open("document.pdf").Text()
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}

	var result strings.Builder
	for _, page := range doc.Pages {
		if result.Len() > 0 && page.Text != "" {
			result.WriteString("\n\n")
		}
		result.WriteString(page.Text)
	}
	return result.String(), warnings, nil
}

// Elements extracts positioned text elements from the configured pages and
// returns them as a model.Document whose pages carry word-level elements
// with bounding boxes. For each page, structured word extraction is
// attempted first; pages without structured words fall back to OCR word
// recognition, filtered by MinConfidence.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, warnings, err := pdfsift.Open("document.pdf").Elements()
//	for _, page := range doc.Pages {
//	    for _, el := range page.Elements {
//	        fmt.Printf("%q at (%.0f, %.0f)\n", el.Text, el.BBox.Left, el.BBox.Top)
//	    }
//	}
func (e *Extractor) Elements() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pageNumbers, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	doc := model.NewDocument()
	e.fillMetadata(doc)

	for _, num := range pageNumbers {
		doc.AddPage(e.extractPageElements(num))
	}

	return doc, e.warnings, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := pdfsift.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureSource(); err != nil {
		return 0, err
	}

	return e.src.PageCount(), nil
}

// ============================================================================
// Extraction policy
// ============================================================================

// extractPage applies the per-page text policy: structured extraction
// first, OCR of the page's embedded image only when the structured result
// is empty. Page-level failures degrade to an empty page with a warning.
func (e *Extractor) extractPage(number int) model.Page {
	page := model.Page{Number: number}
	if w, h, err := e.src.PageSize(number); err == nil {
		page.Width = w
		page.Height = h
	}

	text, err := e.src.PageText(number)
	if err != nil {
		e.warn(WarningPageDegraded, number, err.Error())
	}
	if strings.TrimSpace(text) != "" {
		page.Text = text
		page.Source = model.SourceStructured
		return page
	}

	// No structured text on this page; treat it as scanned.
	recognized, ok := e.ocrPage(number)
	if !ok {
		return page
	}

	// The OCR result counts even when empty: a blank scan is a blank page.
	page.Text = recognized
	page.Source = model.SourceOCR
	return page
}

// extractPageElements applies the per-page element policy: structured word
// extraction first, OCR word recognition (filtered by MinConfidence) only
// when the page has no structured words.
func (e *Extractor) extractPageElements(number int) model.Page {
	page := model.Page{Number: number}
	if w, h, err := e.src.PageSize(number); err == nil {
		page.Width = w
		page.Height = h
	}

	words, err := e.src.PageWords(number)
	if err != nil {
		e.warn(WarningPageDegraded, number, err.Error())
	}
	if len(words) > 0 {
		page.Elements = words
		page.Source = model.SourceStructured
		return page
	}

	imageData, ok := e.pageImage(number)
	if !ok {
		return page
	}

	rec, err := e.ensureRecognizer()
	if err != nil {
		e.warn(WarningOCRUnavailable, number, err.Error())
		return page
	}

	ocrWords, err := rec.RecognizeWords(imageData)
	if err != nil {
		e.warn(WarningPageDegraded, number, fmt.Sprintf("OCR failed: %v", err))
		return page
	}
	e.warn(WarningOCRFallback, number, "no structured words; used OCR word recognition")

	for _, w := range ocrWords {
		if w.Confidence < e.options.minConfidence {
			continue
		}
		page.Elements = append(page.Elements, model.Element{
			Text:   w.Text,
			BBox:   w.BBox,
			Source: model.SourceOCR,
		})
	}
	page.Source = model.SourceOCR
	return page
}

// ocrPage recognizes the text of a scanned page from its embedded page
// image. The second return value reports whether OCR ran at all; when it
// did, the recognized text is valid even if empty.
func (e *Extractor) ocrPage(number int) (string, bool) {
	imageData, ok := e.pageImage(number)
	if !ok {
		return "", false
	}

	rec, err := e.ensureRecognizer()
	if err != nil {
		e.warn(WarningOCRUnavailable, number, err.Error())
		return "", false
	}

	text, err := rec.RecognizeImage(imageData)
	if err != nil {
		e.warn(WarningPageDegraded, number, fmt.Sprintf("OCR failed: %v", err))
		return "", false
	}

	e.warn(WarningOCRFallback, number, "no structured text; used OCR")
	return text, true
}

// pageImage returns the page's bitmap for OCR. Scanned pages carry their
// content as a single full-page image XObject; when a page has several
// images, the largest one is the page bitmap.
func (e *Extractor) pageImage(number int) ([]byte, bool) {
	images, err := e.src.PageImages(number)
	if err != nil {
		e.warn(WarningPageDegraded, number, err.Error())
		return nil, false
	}
	if len(images) == 0 {
		e.warn(WarningPageDegraded, number, "no structured text and no page image")
		return nil, false
	}

	best := largestImage(images)
	return best.Data, true
}

// largestImage picks the image with the largest pixel area, falling back
// to byte length for images that cannot be decoded.
func largestImage(images []reader.PageImage) reader.PageImage {
	best := images[0]
	bestArea := imageArea(best.Data)
	for _, img := range images[1:] {
		area := imageArea(img.Data)
		if area > bestArea || (area == bestArea && len(img.Data) > len(best.Data)) {
			best = img
			bestArea = area
		}
	}
	return best
}

// imageArea returns the pixel area of an encoded image, or 0 if the
// dimensions cannot be read.
func imageArea(data []byte) int {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0
	}
	return cfg.Width * cfg.Height
}

// ============================================================================
// Internal helpers
// ============================================================================

// warn records a non-fatal extraction issue.
func (e *Extractor) warn(t WarningType, page int, message string) {
	e.warnings = append(e.warnings, Warning{Type: t, Page: page, Message: message})
}

// fillMetadata populates document metadata from the PDF Info dictionary.
func (e *Extractor) fillMetadata(doc *model.Document) {
	info := e.src.Info()
	doc.Metadata.Title = info["Title"]
	doc.Metadata.Author = info["Author"]
	doc.Metadata.Subject = info["Subject"]
	doc.Metadata.Creator = info["Creator"]
	doc.Metadata.Producer = info["Producer"]
}

// resolvePages validates the selected 1-indexed page numbers, removes
// duplicates and sorts them. If no pages were specified, all pages are
// returned.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.src.PageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		pageNumbers := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageNumbers[i] = i + 1
		}
		return pageNumbers, nil
	}

	seen := make(map[int]bool)
	var pageNumbers []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pageNumbers = append(pageNumbers, p)
		}
	}

	sort.Ints(pageNumbers)
	return pageNumbers, nil
}
