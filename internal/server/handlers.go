package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Error prefixes for unexpected failures, per endpoint
const (
	analysisFailed         = "Analysis failed"
	fileProcessingFailed   = "File processing failed"
	detailedAnalysisFailed = "Detailed analysis failed"
	keywordsFailed         = "Keyword extraction failed"
)

// multipartOverhead is the room left for form fields next to the uploaded file
const multipartOverhead = 1 << 20

// handleRoot describes the service and its endpoints
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]any{
		"message": "Welcome to " + ServiceName,
		"version": s.version,
		"endpoints": map[string]string{
			"health":            "/health",
			"resume_analysis":   "/resume/analyze",
			"analysis_stream":   "/resume/analyze/stream",
			"file_analysis":     "/resume/analyze-file",
			"detailed_analysis": "/resume/detailed-analysis",
			"keywords":          "/resume/keywords",
			"backend_status":    "/backend/status",
			"metrics":           "/metrics",
		},
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok", "service": ServiceName})
}

// handleBackendStatus reports whether model-backed answers are being served
func (s *Server) handleBackendStatus(w http.ResponseWriter, r *http.Request) {
	status := llm.Status{Provider: llm.ProviderNone}
	if s.backend != nil {
		status = s.backend.Status(r.Context())
	}
	s.jsonResponse(w, r, http.StatusOK, status)
}

// handleAnalyze tailors a resume given as JSON
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalysisRequest(r)
	if err != nil {
		s.failed(w, r, analysisFailed, err)
		return
	}

	resp, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		s.failed(w, r, analysisFailed, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, resp)
}

// handleAnalyzeStream runs an analysis and streams its progress via SSE
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalysisRequest(r)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		s.failed(w, r, analysisFailed, err)
		return
	}

	stream, err := newEventStream(w)
	if err != nil {
		s.errorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	log := s.requestLogger(r)

	resp, err := s.analyzer.AnalyzeWithProgress(r.Context(), req, func(event pipeline.ProgressEvent) {
		if err := stream.step(event); err != nil {
			log.Warn("error writing stream event", zap.String("step", event.Step), zap.Error(err))
		}
	})
	if err != nil {
		log.Error("streaming analysis failed", zap.Error(err))
		if err := stream.fail(HTTPStatus(err), errorMessage(analysisFailed, err)); err != nil {
			log.Warn("error writing stream error", zap.Error(err))
		}
		return
	}

	if err := stream.complete(resp); err != nil {
		log.Warn("error writing stream result", zap.Error(err))
	}
}

// handleAnalyzeFile tailors a resume uploaded as a multipart file
func (s *Server) handleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	maxFileSize := s.analyzer.MaxFileSize()
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			s.failed(w, r, fileProcessingFailed, &ingestion.FileTooLargeError{Size: r.ContentLength, Limit: maxFileSize})
			return
		}
		s.failed(w, r, fileProcessingFailed, &ErrValidation{Message: "Invalid multipart form: " + err.Error()})
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("resume_file")
	if err != nil {
		s.failed(w, r, fileProcessingFailed, &ErrValidation{Field: "resume_file", Message: "is required"})
		return
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize+1))
	if err != nil {
		s.failed(w, r, fileProcessingFailed, err)
		return
	}

	fields := types.AnalysisRequest{
		JobDescription:  r.FormValue("job_description"),
		TargetRole:      r.FormValue("target_role"),
		Industry:        r.FormValue("industry"),
		ExperienceLevel: r.FormValue("experience_level"),
	}

	resp, err := s.analyzer.AnalyzeFile(r.Context(), header.Filename, data, fields)
	if err != nil {
		s.failed(w, r, fileProcessingFailed, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, resp)
}

// handleDetailedAnalysis returns the section-by-section analysis
func (s *Server) handleDetailedAnalysis(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalysisRequest(r)
	if err != nil {
		s.failed(w, r, detailedAnalysisFailed, err)
		return
	}

	resp, err := s.analyzer.AnalyzeDetailed(r.Context(), req)
	if err != nil {
		s.failed(w, r, detailedAnalysisFailed, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, resp)
}

// handleKeywords extracts keywords from the job_description query parameter
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	jobDescription := r.URL.Query().Get("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		s.failed(w, r, keywordsFailed, &ErrValidation{Field: "job_description", Message: "is required"})
		return
	}

	keywords, err := s.analyzer.ExtractKeywords(r.Context(), jobDescription)
	if err != nil {
		s.failed(w, r, keywordsFailed, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, types.KeywordsResponse{Keywords: keywords})
}

// decodeAnalysisRequest reads a JSON AnalysisRequest body
func decodeAnalysisRequest(r *http.Request) (types.AnalysisRequest, error) {
	var req types.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, &ErrValidation{Message: "Invalid request body: " + err.Error()}
	}
	return req, nil
}
