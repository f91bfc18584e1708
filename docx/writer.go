package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdfsift/pdfsift/model"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>
`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>
`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:outlineLvl w:val="0"/>
    </w:pPr>
    <w:rPr>
      <w:b/>
      <w:sz w:val="32"/>
      <w:szCs w:val="32"/>
    </w:rPr>
  </w:style>
</w:styles>
`

// Write serializes the document to w as a .docx archive. Each page becomes
// a "Page N" heading followed by the page text and a hard page break.
func Write(w io.Writer, doc *model.Document) error {
	archive := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
	}
	for _, part := range parts {
		f, err := archive.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.content); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	body, err := xml.Marshal(buildDocument(doc))
	if err != nil {
		return fmt.Errorf("failed to marshal document body: %w", err)
	}

	f, err := archive.Create("word/document.xml")
	if err != nil {
		return fmt.Errorf("failed to create word/document.xml: %w", err)
	}
	if _, err := io.WriteString(f, xml.Header); err != nil {
		return err
	}
	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("failed to write word/document.xml: %w", err)
	}

	return archive.Close()
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

// buildDocument converts extraction results into the document part.
func buildDocument(doc *model.Document) documentXML {
	var paragraphs []paragraphXML
	for _, page := range doc.Pages {
		paragraphs = append(paragraphs, headingParagraph(fmt.Sprintf("Page %d", page.Number)))
		paragraphs = append(paragraphs, bodyParagraph(strings.Split(page.Text, "\n")))
		paragraphs = append(paragraphs, pageBreakParagraph())
	}

	return documentXML{
		XMLNSW: wordprocessingML,
		Body:   bodyXML{Paragraphs: paragraphs},
	}
}
