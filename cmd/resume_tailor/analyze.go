package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/types"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var (
		resumePath string
		jobPath    string
		targetRole string
		detailed   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a resume against a job description",
		Long:  "Tailor a resume file (pdf, docx, txt or html) to a job description and print the analysis as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts, "stderr")
			if err != nil {
				return err
			}
			defer a.Close()

			jobDescription, err := readJobDescription(jobPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(resumePath)
			if err != nil {
				return fmt.Errorf("failed to read resume file: %w", err)
			}
			doc, err := ingestion.ExtractText(filepath.Base(resumePath), data, a.cfg.MaxUploadBytes())
			if err != nil {
				return err
			}

			req := types.AnalysisRequest{
				ResumeText:     doc.Text,
				JobDescription: jobDescription,
				TargetRole:     targetRole,
			}

			var result any
			if detailed {
				result, err = a.analyzer.AnalyzeDetailed(cmd.Context(), req)
			} else {
				result, err = a.analyzer.Analyze(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to the resume file")
	cmd.Flags().StringVar(&jobPath, "job", "", "Path to the job description text file")
	cmd.Flags().StringVar(&targetRole, "role", "", "Target role")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Run the section-by-section analysis")
	_ = cmd.MarkFlagRequired("resume")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func newKeywordsCmd(opts *rootOptions) *cobra.Command {
	var jobPath string

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Extract keywords from a job description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts, "stderr")
			if err != nil {
				return err
			}
			defer a.Close()

			jobDescription, err := readJobDescription(jobPath)
			if err != nil {
				return err
			}

			keywords, err := a.analyzer.ExtractKeywords(cmd.Context(), jobDescription)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), types.KeywordsResponse{Keywords: keywords})
		},
	}

	cmd.Flags().StringVar(&jobPath, "job", "", "Path to the job description text file")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

// readJobDescription reads a plain text job description; "-" reads stdin
func readJobDescription(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return ingestion.Normalize(string(data)), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
