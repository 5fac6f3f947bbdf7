// Package pdftext reads text and page counts out of PDF bytes.
// Page text is read with ledongthuc/pdf; the page count is read with pdfcpu
// and never decodes content streams.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrUnreadable is returned when the document cannot be parsed.
var ErrUnreadable = errors.New("pdf unreadable")

// ExtractPages returns the plain text of every page in order.
// Pages without a content dictionary yield "". Parser panics on malformed
// input are recovered and reported as ErrUnreadable.
func ExtractPages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: parser panic: %v", ErrUnreadable, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	n := reader.NumPage()
	pages = make([]string, 0, n)

	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrUnreadable, i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// PageCount returns the number of pages, or 0 when the document cannot be parsed.
func PageCount(data []byte) (count int) {
	defer func() {
		if r := recover(); r != nil {
			count = 0
		}
	}()

	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0
	}
	return count
}

// Extractor adapts ExtractPages to callers that pass a context.
type Extractor struct{}

// ExtractPages honors ctx cancellation before parsing.
func (Extractor) ExtractPages(ctx context.Context, data []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ExtractPages(data)
}
