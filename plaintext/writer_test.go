package plaintext

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfsift/pdfsift/model"
)

func TestWrite(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.Page{Number: 1, Text: "First page content."})
	doc.AddPage(model.Page{Number: 2, Text: "Second page\nwith two lines."})

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	expected := "--- Page 1 ---\nFirst page content.\n\n" +
		"--- Page 2 ---\nSecond page\nwith two lines.\n\n"
	if got := buf.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestWriteEmptyPage(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.Page{Number: 3, Text: ""})

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Empty pages still get their header so gaps in the scan are visible.
	if got := buf.String(); got != "--- Page 3 ---\n\n\n" {
		t.Errorf("Expected header for empty page, got %q", got)
	}
}

func TestWriteSelectedPagesKeepNumbers(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.Page{Number: 5, Text: "only page five"})

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("--- Page 5 ---")) {
		t.Errorf("Expected original page number in header, got %q", buf.String())
	}
}

func TestWriteFile(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.Page{Number: 1, Text: "hello"})

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "--- Page 1 ---\nhello\n\n" {
		t.Errorf("Unexpected file contents: %q", data)
	}
}
