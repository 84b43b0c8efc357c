package tools

import (
	"context"
	"encoding/json"

	"github.com/hiringplatform/backend/matching"
)

// MatchScoreTool scores a candidate profile against job requirements
type MatchScoreTool struct{}

// NewMatchScoreTool creates a new match score tool
func NewMatchScoreTool() *MatchScoreTool {
	return &MatchScoreTool{}
}

func (t *MatchScoreTool) Name() string {
	return "compute_match_score"
}

func (t *MatchScoreTool) Description() string {
	return `Compute how well a candidate fits a job (0-100).
Skills are comma-separated and compared case-insensitively by exact name.
Weights: skills 60%, experience 25%, location 15%.
Returns the overall score with matched and missing skills and the experience and location breakdowns.`
}

func (t *MatchScoreTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"candidate": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"skills_text":      map[string]any{"type": "string", "description": "Comma-separated skills"},
					"experience_years": map[string]any{"type": "integer", "minimum": 0},
					"location":         map[string]any{"type": "string"},
				},
			},
			"job": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"skills_required": map[string]any{"type": "string", "description": "Comma-separated skills"},
					"experience_min":  map[string]any{"type": "integer", "minimum": 0},
					"experience_max":  map[string]any{"type": "integer", "description": "Omit for no ceiling"},
					"location":        map[string]any{"type": "string"},
					"remote_type":     map[string]any{"type": "string", "enum": []string{"on-site", "remote", "hybrid"}},
				},
			},
		},
		"required": []string{"candidate", "job"},
	}
}

// MatchScoreInput represents the input for match scoring
type MatchScoreInput struct {
	Candidate struct {
		SkillsText      string `json:"skills_text"`
		ExperienceYears int    `json:"experience_years"`
		Location        string `json:"location"`
	} `json:"candidate"`
	Job struct {
		SkillsRequired string              `json:"skills_required"`
		ExperienceMin  int                 `json:"experience_min"`
		ExperienceMax  *int                `json:"experience_max"`
		Location       string              `json:"location"`
		RemoteType     matching.RemoteType `json:"remote_type"`
	} `json:"job"`
}

func (t *MatchScoreTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in MatchScoreInput
	if err := json.Unmarshal(input, &in); err != nil {
		return failure("invalid input: %v", err)
	}

	remoteType := in.Job.RemoteType
	if remoteType == "" {
		remoteType = matching.RemoteTypeOnSite
	}

	result := matching.MatchDetails(
		matching.CandidateProfile{
			SkillsText:      in.Candidate.SkillsText,
			ExperienceYears: in.Candidate.ExperienceYears,
			Location:        in.Candidate.Location,
		},
		matching.JobRequirements{
			SkillsRequired: in.Job.SkillsRequired,
			ExperienceMin:  in.Job.ExperienceMin,
			ExperienceMax:  in.Job.ExperienceMax,
			Location:       in.Job.Location,
			RemoteType:     remoteType,
		},
	)

	return success(result)
}
