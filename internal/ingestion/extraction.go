// Package ingestion turns uploaded resume files into normalized plain text.
package ingestion

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported resume file format
type Format string

// Supported file formats
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
	FormatHTML Format = "html"
)

// DefaultMaxFileSize is the upload cap used when none is configured (10 MB)
const DefaultMaxFileSize int64 = 10 << 20

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:cr[^>]*/>`)
	docxTab          = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// Document is an uploaded file after text extraction
type Document struct {
	Filename    string `json:"filename"`
	Format      Format `json:"format"`
	Size        int64  `json:"size"`
	Hash        string `json:"hash"` // SHA256 hex digest of the raw bytes
	ExtractedAt string `json:"extracted_at"`
	Text        string `json:"-"`
}

// DetectFormat returns the file format implied by the filename extension
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt", ".text":
		return FormatTXT, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", &UnsupportedFormatError{Extension: strings.TrimPrefix(ext, ".")}
	}
}

// ExtractText detects the format of an uploaded file, extracts its text and normalizes it.
// maxSize <= 0 applies DefaultMaxFileSize.
func ExtractText(filename string, data []byte, maxSize int64) (*Document, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if int64(len(data)) > maxSize {
		return nil, &FileTooLargeError{Size: int64(len(data)), Limit: maxSize}
	}

	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	var raw string
	switch format {
	case FormatPDF:
		raw, err = extractPDFText(data)
	case FormatDOCX:
		raw, err = extractDocxText(data)
	case FormatHTML:
		raw, err = extractHTMLText(data)
	default:
		raw, err = extractPlainText(data)
	}
	if err != nil {
		return nil, err
	}

	text := Normalize(raw)
	if text == "" {
		return nil, &EmptyDocumentError{Filename: filename}
	}

	return &Document{
		Filename:    filename,
		Format:      format,
		Size:        int64(len(data)),
		Hash:        computeHash(data),
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
		Text:        text,
	}, nil
}

// extractPDFText reads text page by page. The pdf reader panics on malformed
// cross-reference data, so a panic is reported as an ExtractionError.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Format: FormatPDF, Message: "failed to read pdf", Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to read pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: FormatPDF, Message: "failed to read page text", Cause: err}
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocxText reads paragraph text from the document body
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText keeps paragraph and line breaks from WordprocessingML and drops markup
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

// extractHTMLText returns visible body text with block elements on their own lines
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Format: FormatHTML, Message: "failed to parse html", Cause: err}
	}

	doc.Find("script, style, noscript, head").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, h1, h2, h3, h4, h5, h6, div, tr, section, article, header, footer").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Text(), nil
}

func extractPlainText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", &ExtractionError{Format: FormatTXT, Message: "file is not valid UTF-8"}
	}
	return string(data), nil
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
