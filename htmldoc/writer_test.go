package htmldoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdfsift/pdfsift/model"
)

func TestCanvasSizeEqualsMaxExtent(t *testing.T) {
	elements := []model.Element{
		{Text: "a", BBox: model.NewBBox(10, 20, 100, 40)},
		{Text: "b", BBox: model.NewBBox(50, 300, 250, 320)},
		{Text: "c", BBox: model.NewBBox(5, 5, 80, 15)},
	}

	width, height := CanvasSize(elements)
	if width != 250 {
		t.Errorf("Expected canvas width 250, got %g", width)
	}
	if height != 320 {
		t.Errorf("Expected canvas height 320, got %g", height)
	}
}

func TestCanvasSizeEmpty(t *testing.T) {
	width, height := CanvasSize(nil)
	if width != 0 || height != 0 {
		t.Errorf("Expected zero canvas for no elements, got %gx%g", width, height)
	}
}

func TestWritePositionsElements(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.Page{
		Number: 1,
		Elements: []model.Element{
			{Text: "Hello", BBox: model.NewBBox(10, 20, 60, 32)},
		},
	})

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<div class="page" style="width: 60px; height: 32px;">`) {
		t.Errorf("Expected page canvas sized to element extent, got:\n%s", out)
	}
	if !strings.Contains(out, `left: 10px; top: 20px; width: 50px; height: 12px;`) {
		t.Errorf("Expected element positioned from its bounding box, got:\n%s", out)
	}
	if !strings.Contains(out, ">Hello</p>") {
		t.Errorf("Expected element text, got:\n%s", out)
	}
	if !strings.Contains(out, ".text-element { position: absolute;") {
		t.Error("Expected stylesheet in output")
	}
}

func TestWriteSkipsPagesWithoutElements(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.Page{Number: 1})
	doc.AddPage(model.Page{
		Number: 2,
		Elements: []model.Element{
			{Text: "only page", BBox: model.NewBBox(0, 0, 10, 10)},
		},
	})

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got := strings.Count(buf.String(), `<div class="page"`); got != 1 {
		t.Errorf("Expected 1 page div, got %d", got)
	}
}

func TestWriteEscapesText(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.Page{
		Number: 1,
		Elements: []model.Element{
			{Text: `<script>alert("x")</script>`, BBox: model.NewBBox(0, 0, 10, 10)},
		},
	})

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "<script>") {
		t.Error("Element text must be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("Expected escaped markup, got:\n%s", out)
	}
}

func TestWriteEmptyDocumentIsStillValid(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, model.NewDocument()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<html>") || !strings.Contains(out, "</body></html>") {
		t.Errorf("Expected a complete HTML document, got:\n%s", out)
	}
}
