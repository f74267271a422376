//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request AnalysisRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: AnalysisRequest{
				ResumeText:     "I use Python daily",
				JobDescription: "Python developer",
			},
		},
		{
			name: "valid request with optional fields",
			request: AnalysisRequest{
				ResumeText:      "I use Python daily",
				JobDescription:  "Python developer",
				TargetRole:      "Backend Engineer",
				Industry:        "Fintech",
				ExperienceLevel: "senior",
			},
		},
		{
			name: "missing resume text",
			request: AnalysisRequest{
				JobDescription: "Python developer",
			},
			wantErr: true,
			errMsg:  "resume_text is required",
		},
		{
			name: "blank job description",
			request: AnalysisRequest{
				ResumeText:     "I use Python daily",
				JobDescription: "   \n\t",
			},
			wantErr: true,
			errMsg:  "job_description is required",
		},
		{
			name: "capitalised experience level",
			request: AnalysisRequest{
				ResumeText:      "I use Python daily",
				JobDescription:  "Python developer",
				ExperienceLevel: "Senior",
			},
		},
		{
			name: "free-form experience level",
			request: AnalysisRequest{
				ResumeText:      "I use Python daily",
				JobDescription:  "Python developer",
				ExperienceLevel: "mid-level",
			},
		},
		{
			name: "experience level too long",
			request: AnalysisRequest{
				ResumeText:      "I use Python daily",
				JobDescription:  "Python developer",
				ExperienceLevel: strings.Repeat("x", 101),
			},
			wantErr: true,
			errMsg:  "experience_level must be at most 100 characters",
		},
		{
			name: "target role too long",
			request: AnalysisRequest{
				ResumeText:     "I use Python daily",
				JobDescription: "Python developer",
				TargetRole:     strings.Repeat("x", 201),
			},
			wantErr: true,
			errMsg:  "target_role must be at most 200 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
