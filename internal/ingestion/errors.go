package ingestion

import "fmt"

// UnsupportedFormatError is returned for files whose extension has no extractor
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file format: file has no extension (supported: pdf, docx, txt, html)"
	}
	return fmt.Sprintf("unsupported file format: %s (supported: pdf, docx, txt, html)", e.Extension)
}

// FileTooLargeError is returned when an upload exceeds the configured size cap
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes (max %d MB)", e.Size, e.Limit/(1<<20))
}

// EmptyDocumentError is returned when no text could be extracted from a file
type EmptyDocumentError struct {
	Filename string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("could not extract text from file %q", e.Filename)
}

// ExtractionError represents a failure inside a format-specific extractor
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
