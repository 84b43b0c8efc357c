// Package screening scores free-text answers to screening questions by keyword
// coverage and answer length, and aggregates them into an application score.
package screening

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hiringplatform/backend/matching"
)

const (
	// MaxAnswerScore is the upper bound of a single answer score
	MaxAnswerScore = 10.0
	// FullCreditWords is the answer length that earns the full length factor
	FullCreditWords = 50
	// NeutralMatchRatio is used when no keywords are expected
	NeutralMatchRatio = 0.5
)

// ErrMalformedText is returned when question or answer text is not valid UTF-8
var ErrMalformedText = errors.New("malformed text")

// AnswerScore is the result of scoring one answer
type AnswerScore struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	TotalKeywords   int      `json:"total_keywords"`
	MatchRatio      float64  `json:"match_ratio"`
	WordCount       int      `json:"word_count"`
	Category        Category `json:"category"`
}

// ScoreAnswerByKeywords scores an answer against an explicit list of expected keywords.
// The returned category is general; ScoreAnswerAuto sets the detected one.
func ScoreAnswerByKeywords(answerText string, expectedKeywords []string) AnswerScore {
	answer := strings.ToLower(answerText)

	matched := make([]string, 0)
	for _, keyword := range expectedKeywords {
		if strings.Contains(answer, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}

	matchRatio := NeutralMatchRatio
	if len(expectedKeywords) > 0 {
		matchRatio = float64(len(matched)) / float64(len(expectedKeywords))
	}

	wordCount := len(strings.Fields(answerText))
	lengthFactor := math.Min(1.0, float64(wordCount)/FullCreditWords)

	score := matchRatio * MaxAnswerScore * (0.7 + 0.3*lengthFactor)

	return AnswerScore{
		Score:           matching.Round2(math.Min(MaxAnswerScore, math.Max(0.0, score))),
		MatchedKeywords: matched,
		TotalKeywords:   len(expectedKeywords),
		MatchRatio:      matching.Round2(matchRatio),
		WordCount:       wordCount,
		Category:        CategoryGeneral,
	}
}

// ExpectedKeywords builds the keyword set an answer to questionText is scored
// against: the detected category's keywords followed by the question's own keywords.
func ExpectedKeywords(questionText string) (Category, []string) {
	category := DetectCategory(questionText)

	expected := newOrderedSet()
	expected.add(KeywordsFor(category)...)
	expected.add(ExtractKeywords(questionText, DefaultMinWordLength)...)

	return category, expected.items()
}

// ScoreAnswerAuto scores an answer without predefined keywords.
func ScoreAnswerAuto(answerText, questionText string) (AnswerScore, error) {
	if !utf8.ValidString(answerText) {
		return AnswerScore{}, fmt.Errorf("answer: %w", ErrMalformedText)
	}
	if !utf8.ValidString(questionText) {
		return AnswerScore{}, fmt.Errorf("question: %w", ErrMalformedText)
	}

	category, expected := ExpectedKeywords(questionText)
	result := ScoreAnswerByKeywords(answerText, expected)
	result.Category = category
	return result, nil
}
