// Package plaintext serializes extraction results as flat text files with
// per-page separators.
package plaintext

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfsift/pdfsift/model"
)

// Write serializes the document to w. Each page is preceded by a
// "--- Page N ---" header and followed by a blank line.
func Write(w io.Writer, doc *model.Document) error {
	for _, page := range doc.Pages {
		if _, err := fmt.Fprintf(w, "--- Page %d ---\n", page.Number); err != nil {
			return err
		}
		if _, err := io.WriteString(w, page.Text); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
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
