package screening

import (
	"fmt"

	"github.com/hiringplatform/backend/matching"
)

// Answer is one question/answer pair submitted for scoring. ID is opaque to the
// scorer and is echoed back on the outcome.
type Answer struct {
	ID       string
	Question string
	Answer   string
}

// Outcome is the per-answer result of a batch: exactly one of Result or Err is set.
type Outcome struct {
	ID       string
	Question string
	Answer   string
	Result   *AnswerScore
	Err      error
}

// Score returns the answer score, or 0 for a failed answer.
func (o Outcome) Score() float64 {
	if o.Result == nil {
		return 0.0
	}
	return o.Result.Score
}

// Failed reports whether scoring this answer failed
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// ScoreBatch scores every answer. A failure on one answer is recorded on its
// outcome and never stops the remaining answers from being scored.
func ScoreBatch(answers []Answer) []Outcome {
	outcomes := make([]Outcome, 0, len(answers))
	for _, answer := range answers {
		outcomes = append(outcomes, scoreOne(answer))
	}
	return outcomes
}

func scoreOne(answer Answer) (outcome Outcome) {
	outcome = Outcome{ID: answer.ID, Question: answer.Question, Answer: answer.Answer}

	defer func() {
		if r := recover(); r != nil {
			outcome.Result = nil
			outcome.Err = fmt.Errorf("scoring panicked: %v", r)
		}
	}()

	result, err := ScoreAnswerAuto(answer.Answer, answer.Question)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Result = &result
	return outcome
}

// OverallScore averages answer scores (0-10) and rescales the mean to 0-100.
// It returns 0 for no scores.
func OverallScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}
	avg := total / float64(len(scores))

	return matching.Round2(avg / MaxAnswerScore * 100)
}

// OverallOutcomeScore is OverallScore over a batch; failed answers count as 0.
func OverallOutcomeScore(outcomes []Outcome) float64 {
	scores := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		scores = append(scores, o.Score())
	}
	return OverallScore(scores)
}
