// Package docx serializes extraction results as Microsoft Word (.docx)
// documents. A .docx file is a ZIP archive of XML parts (Office Open XML);
// this package writes the minimal set of parts Word and LibreOffice need:
// content types, package relationships, a style sheet, and the document
// body itself.
package docx

import "encoding/xml"

// wordprocessingML is the main namespace of the document part.
const wordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentXML is the root of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	XMLNSW  string   `xml:"xmlns:w,attr"`
	Body    bodyXML  `xml:"w:body"`
}

type bodyXML struct {
	Paragraphs []paragraphXML `xml:"w:p"`
}

type paragraphXML struct {
	Properties *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Runs       []runXML           `xml:"w:r"`
}

type paragraphPropsXML struct {
	Style *styleRefXML `xml:"w:pStyle,omitempty"`
}

type styleRefXML struct {
	Val string `xml:"w:val,attr"`
}

type runXML struct {
	Text   *textXML `xml:"w:t,omitempty"`
	Breaks []brXML  `xml:"w:br,omitempty"`
}

type textXML struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type brXML struct {
	Type string `xml:"w:type,attr,omitempty"`
}

// headingParagraph builds a Heading1-styled paragraph.
func headingParagraph(text string) paragraphXML {
	return paragraphXML{
		Properties: &paragraphPropsXML{Style: &styleRefXML{Val: "Heading1"}},
		Runs: []runXML{
			{Text: &textXML{Space: "preserve", Value: text}},
		},
	}
}

// bodyParagraph builds a plain paragraph. Newlines in the text become
// soft line breaks (w:br) so multi-line page text keeps its shape.
func bodyParagraph(lines []string) paragraphXML {
	var runs []runXML
	for i, line := range lines {
		if i > 0 {
			runs = append(runs, runXML{Breaks: []brXML{{}}})
		}
		if line != "" {
			runs = append(runs, runXML{Text: &textXML{Space: "preserve", Value: line}})
		}
	}
	return paragraphXML{Runs: runs}
}

// pageBreakParagraph builds a paragraph holding a single hard page break.
func pageBreakParagraph() paragraphXML {
	return paragraphXML{
		Runs: []runXML{
			{Breaks: []brXML{{Type: "page"}}},
		},
	}
}
