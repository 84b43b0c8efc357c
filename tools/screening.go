package tools

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/hiringplatform/backend/screening"
)

// ScreeningTool scores screening answers by keyword coverage
type ScreeningTool struct{}

// NewScreeningTool creates a new screening tool
func NewScreeningTool() *ScreeningTool {
	return &ScreeningTool{}
}

func (t *ScreeningTool) Name() string {
	return "score_screening_answers"
}

func (t *ScreeningTool) Description() string {
	return `Score screening question answers from 0 to 10 by keyword coverage and length.
The question category (technical, problem_solving, communication, experience) is detected from the question.
Returns per-answer scores with matched keywords and an overall 0-100 score.
An answer that cannot be scored counts as 0 and carries an error.`
}

func (t *ScreeningTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
					"required": []string{"question", "answer"},
				},
			},
		},
		"required": []string{"answers"},
	}
}

// ScreeningInput represents the input for screening scoring
type ScreeningInput struct {
	Answers []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"answers"`
}

// ScreeningItem is the scored form of one answer
type ScreeningItem struct {
	Question        string             `json:"question"`
	Score           float64            `json:"score"`
	MatchedKeywords []string           `json:"matched_keywords"`
	Category        screening.Category `json:"category,omitempty"`
	Error           string             `json:"error,omitempty"`
}

// ScreeningOutput is the tool result
type ScreeningOutput struct {
	OverallScore float64         `json:"overall_score"`
	Answers      []ScreeningItem `json:"answers"`
}

func (t *ScreeningTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ScreeningInput
	if err := json.Unmarshal(input, &in); err != nil {
		return failure("invalid input: %v", err)
	}
	if len(in.Answers) == 0 {
		return failure("at least one answer is required")
	}

	batch := make([]screening.Answer, len(in.Answers))
	for i, a := range in.Answers {
		batch[i] = screening.Answer{ID: strconv.Itoa(i), Question: a.Question, Answer: a.Answer}
	}
	outcomes := screening.ScoreBatch(batch)

	out := ScreeningOutput{
		OverallScore: screening.OverallOutcomeScore(outcomes),
		Answers:      make([]ScreeningItem, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		item := ScreeningItem{Question: o.Question, Score: o.Score(), MatchedKeywords: []string{}}
		if o.Failed() {
			item.Error = o.Err.Error()
		} else {
			item.MatchedKeywords = o.Result.MatchedKeywords
			item.Category = o.Result.Category
		}
		out.Answers = append(out.Answers, item)
	}

	return success(out)
}
