// Package server provides the HTTP REST API for the resume tailor.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ErrValidation indicates a malformed request the handler rejected before analysis
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation   *ErrValidation
		invalidField *types.ValidationError
		unsupported  *ingestion.UnsupportedFormatError
		tooLarge     *ingestion.FileTooLargeError
		empty        *ingestion.EmptyDocumentError
		extraction   *ingestion.ExtractionError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &empty):
		return http.StatusBadRequest
	case errors.As(err, &invalidField), errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage renders err for a response body. Internal failures get the
// operation prefix; input errors are reported as they are.
func errorMessage(prefix string, err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return fmt.Sprintf("%s: %s", prefix, err.Error())
	}
	return err.Error()
}
