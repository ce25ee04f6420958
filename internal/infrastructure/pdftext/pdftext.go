package pdftext

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract returns the concatenated page text of the PDF at path. Any
// failure (missing file, corrupt document, unreadable page) degrades to an
// empty string so analysis can continue on empty input.
func Extract(path string) (text string) {
	// The parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String()
}
