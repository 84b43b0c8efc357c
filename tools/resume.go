package tools

import (
	"context"
	"encoding/json"

	"github.com/hiringplatform/backend/resume"
)

// ResumeParser extracts resume fields from decoded text
type ResumeParser interface {
	ParseText(text string) (*resume.ParsedResume, error)
}

// ResumeTool extracts structured fields from resume text
type ResumeTool struct {
	parser ResumeParser
}

// NewResumeTool creates a new resume tool
func NewResumeTool(parser ResumeParser) *ResumeTool {
	return &ResumeTool{
		parser: parser,
	}
}

func (t *ResumeTool) Name() string {
	return "parse_resume_text"
}

func (t *ResumeTool) Description() string {
	return `Extract structured fields from plain resume text.
Returns name, email, phone, known technical skills, years of experience and education lines.
The text must contain at least 50 characters.`
}

func (t *ResumeTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resume_text": map[string]any{
				"type":        "string",
				"description": "The resume text content to parse",
			},
		},
		"required": []string{"resume_text"},
	}
}

// ResumeInput represents the input for resume parsing
type ResumeInput struct {
	ResumeText string `json:"resume_text"`
}

func (t *ResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ResumeInput
	if err := json.Unmarshal(input, &in); err != nil {
		return failure("invalid input: %v", err)
	}

	parsed, err := t.parser.ParseText(in.ResumeText)
	if err != nil {
		return failure("resume parsing failed: %v", err)
	}

	return success(parsed)
}
