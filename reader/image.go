package reader

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageImage is an image XObject extracted from a PDF page. For scanned
// documents each page typically carries a single full-page image.
type PageImage struct {
	Name     string // XObject resource name (e.g. "Im1")
	FileType string // png, jpg, tiff, ...
	Data     []byte // Encoded image bytes
}

// PageImages extracts the embedded images of a page. It returns nil for
// pages without image XObjects.
func (r *Reader) PageImages(number int) ([]PageImage, error) {
	if number < 1 || number > r.PageCount() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", number, r.PageCount())
	}

	// pdfcpu needs its own seekable handle over the same file.
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen PDF for image extraction: %w", err)
	}
	defer f.Close()

	pages := []string{strconv.Itoa(number)}
	extracted, err := api.ExtractImagesRaw(f, pages, pdfcpumodel.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("page %d: image extraction failed: %w", number, err)
	}

	var images []PageImage
	for _, byObj := range extracted {
		for _, img := range byObj {
			data, err := io.ReadAll(img)
			if err != nil {
				continue // Skip images whose streams cannot be decoded
			}
			if len(data) == 0 {
				continue
			}
			images = append(images, PageImage{
				Name:     img.Name,
				FileType: img.FileType,
				Data:     data,
			})
		}
	}

	return images, nil
}
