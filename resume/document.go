package resume

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextExtractor decodes a document into plain text
type TextExtractor interface {
	ExtractText(content []byte) (string, error)
}

// PDFExtractor extracts the text layer of a PDF, page by page
type PDFExtractor struct{}

// ExtractText concatenates the plain text of every page.
func (PDFExtractor) ExtractText(content []byte) (text string, err error) {
	// the pdf reader panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

// DOCXExtractor extracts paragraph text from a Word document, one paragraph per line
type DOCXExtractor struct{}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	lineBreak    = regexp.MustCompile(`<w:(?:br|cr)\s*/>`)
	tabStop      = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// ExtractText reads word/document.xml and strips its markup.
func (DOCXExtractor) ExtractText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return documentXMLText(doc.Editable().GetContent()), nil
}

func documentXMLText(documentXML string) string {
	text := paragraphEnd.ReplaceAllString(documentXML, "\n")
	text = lineBreak.ReplaceAllString(text, "\n")
	text = tabStop.ReplaceAllString(text, "\t")
	text = xmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.TrimSuffix(text, "\n")
}
