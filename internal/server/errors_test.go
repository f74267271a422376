package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "job_description", Message: "is required"}
	assert.Equal(t, "job_description is required", err.Error())

	err = &ErrValidation{Message: "Invalid request body: EOF"}
	assert.Equal(t, "Invalid request body: EOF", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"handler validation", &ErrValidation{Field: "resume_file", Message: "is required"}, http.StatusBadRequest},
		{"field validation", &types.ValidationError{Field: "resume_text", Message: "is required"}, http.StatusUnprocessableEntity},
		{"unsupported format", &ingestion.UnsupportedFormatError{Extension: "rtf"}, http.StatusUnsupportedMediaType},
		{"too large", &ingestion.FileTooLargeError{Size: 11 << 20, Limit: 10 << 20}, http.StatusRequestEntityTooLarge},
		{"empty document", &ingestion.EmptyDocumentError{Filename: "resume.pdf"}, http.StatusBadRequest},
		{"extraction", &ingestion.ExtractionError{Format: ingestion.FormatPDF, Message: "failed to read pdf"}, http.StatusUnprocessableEntity},
		{"wrapped", fmt.Errorf("analyze file: %w", &ingestion.UnsupportedFormatError{}), http.StatusUnsupportedMediaType},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Keyword extraction failed: boom", errorMessage("Keyword extraction failed", errors.New("boom")))
	assert.Equal(t, "resume_text is required",
		errorMessage("Analysis failed", &types.ValidationError{Field: "resume_text", Message: "is required"}))
}
