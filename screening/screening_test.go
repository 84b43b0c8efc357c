package screening

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Category
	}{
		{name: "technical", question: "How would you improve database performance?", want: CategoryTechnical},
		{name: "experience", question: "Tell me about a project you led", want: CategoryExperience},
		{name: "communication", question: "How do you give feedback to a stakeholder?", want: CategoryCommunication},
		{name: "problem solving", question: "Walk us through your methodology and strategy", want: CategoryProblemSolving},
		{name: "no keywords", question: "What is your favorite color?", want: CategoryGeneral},
		{name: "tie goes to earlier category", question: "Describe your team testing", want: CategoryTechnical},
		{name: "case insensitive", question: "GIT OR SVN", want: CategoryTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCategory(tt.question))
		})
	}
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryTechnical, CategoryProblemSolving, CategoryCommunication, CategoryExperience,
	}, Categories())
}

func TestKeywordsFor(t *testing.T) {
	assert.Nil(t, KeywordsFor(CategoryGeneral))

	kw := KeywordsFor(CategoryTechnical)
	require.NotEmpty(t, kw)
	assert.Equal(t, "algorithm", kw[0])

	kw[0] = "mutated"
	assert.Equal(t, "algorithm", KeywordsFor(CategoryTechnical)[0])
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("How would you optimize the database? Explain your approach.", DefaultMinWordLength)
	assert.Equal(t, []string{"optimize", "database", "explain", "approach"}, got)
}

func TestExtractKeywords_Dedupes(t *testing.T) {
	got := ExtractKeywords("Testing, testing and more TESTING", DefaultMinWordLength)
	assert.Equal(t, []string{"testing", "more"}, got)
}

func TestExtractKeywords_Empty(t *testing.T) {
	got := ExtractKeywords("", DefaultMinWordLength)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractKeywords_MinLength(t *testing.T) {
	got := ExtractKeywords("go api rust kotlin", 3)
	assert.Equal(t, []string{"api", "rust", "kotlin"}, got)
}

func TestScoreAnswerByKeywords_NoExpectedKeywords(t *testing.T) {
	res := ScoreAnswerByKeywords("", nil)

	assert.Equal(t, 0.5, res.MatchRatio)
	assert.Equal(t, 3.5, res.Score)
	assert.Equal(t, 0, res.WordCount)
	assert.Equal(t, 0, res.TotalKeywords)
	assert.Empty(t, res.MatchedKeywords)
}

func TestScoreAnswerByKeywords_PartialMatch(t *testing.T) {
	res := ScoreAnswerByKeywords("I use Go daily", []string{"go", "rust"})

	assert.Equal(t, []string{"go"}, res.MatchedKeywords)
	assert.Equal(t, 2, res.TotalKeywords)
	assert.Equal(t, 0.5, res.MatchRatio)
	assert.Equal(t, 4, res.WordCount)
	assert.Equal(t, 3.62, res.Score)
}

func TestScoreAnswerByKeywords_FullCredit(t *testing.T) {
	answer := "docker kubernetes " + strings.Repeat("word ", 48)
	res := ScoreAnswerByKeywords(answer, []string{"Docker", "Kubernetes"})

	assert.Equal(t, 50, res.WordCount)
	assert.Equal(t, 1.0, res.MatchRatio)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, res.MatchedKeywords)
}

func TestScoreAnswerByKeywords_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		keywords  []string
		wantScore float64
		wantRatio float64
	}{
		// 0.25 * 10 * (0.7 + 0.3/50) = 1.765
		{name: "quarter coverage", answer: "a", keywords: []string{"a", "x", "y", "z"}, wantScore: 1.76, wantRatio: 0.25},
		// 0.125 * 10 * 0.706 = 0.8825
		{name: "one of eight", answer: "a", keywords: []string{"a", "b", "c", "d", "e", "f", "g", "h"}, wantScore: 0.88, wantRatio: 0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ScoreAnswerByKeywords(tt.answer, tt.keywords)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantRatio, res.MatchRatio)
		})
	}
}

func TestScoreAnswerByKeywords_NoMatch(t *testing.T) {
	res := ScoreAnswerByKeywords("something unrelated", []string{"python"})

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, 0.0, res.MatchRatio)
}

func TestScoreAnswerByKeywords_Bounds(t *testing.T) {
	answers := []string{"", "a", strings.Repeat("api testing git ", 100)}
	keywordSets := [][]string{nil, {"api"}, {"api", "git", "missing"}}

	for _, a := range answers {
		for _, kw := range keywordSets {
			res := ScoreAnswerByKeywords(a, kw)
			assert.GreaterOrEqual(t, res.Score, 0.0)
			assert.LessOrEqual(t, res.Score, 10.0)
		}
	}
}

func TestScoreAnswerAuto(t *testing.T) {
	res, err := ScoreAnswerAuto(
		"I profiled the slow database query, added an index and verified performance with load testing.",
		"How would you improve database performance?",
	)
	require.NoError(t, err)

	assert.Equal(t, CategoryTechnical, res.Category)
	assert.Contains(t, res.MatchedKeywords, "database")
	assert.Contains(t, res.MatchedKeywords, "performance")
	assert.Contains(t, res.MatchedKeywords, "testing")
	assert.Greater(t, res.Score, 0.0)
}

func TestExpectedKeywords_CategoryFirst(t *testing.T) {
	category, expected := ExpectedKeywords("Which database framework?")

	require.Equal(t, CategoryTechnical, category)
	technical := KeywordsFor(CategoryTechnical)
	assert.Equal(t, technical, expected[:len(technical)])
	// "database" and "framework" are already present; only "which" is new
	assert.Equal(t, []string{"which"}, expected[len(technical):])
}

func TestExpectedKeywords_General(t *testing.T) {
	category, expected := ExpectedKeywords("What is your favorite color?")

	assert.Equal(t, CategoryGeneral, category)
	assert.Equal(t, []string{"what", "favorite", "color"}, expected)
}

func TestScoreAnswerAuto_MalformedText(t *testing.T) {
	_, err := ScoreAnswerAuto("bad \xff bytes", "Tell me about a project")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedText))

	_, err = ScoreAnswerAuto("fine", "bad \xfe question")
	assert.ErrorIs(t, err, ErrMalformedText)
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 0.0, OverallScore(nil))
	assert.Equal(t, 0.0, OverallScore([]float64{}))
	assert.Equal(t, 50.0, OverallScore([]float64{10, 0}))
	assert.Equal(t, 72.5, OverallScore([]float64{7.5, 8.0, 6.25}))
	assert.Equal(t, 100.0, OverallScore([]float64{10, 10}))
}

func TestScoreBatch_IsolatesFailures(t *testing.T) {
	answers := []Answer{
		{ID: "1", Question: "Tell me about a project you led", Answer: "I led a project and delivered it"},
		{ID: "2", Question: "Describe your testing approach", Answer: "broken \xff"},
		{ID: "3", Question: "What is your favorite color?", Answer: "Blue, my favorite color"},
	}

	outcomes := ScoreBatch(answers)
	require.Len(t, outcomes, 3)

	assert.False(t, outcomes[0].Failed())
	require.NotNil(t, outcomes[0].Result)
	assert.Equal(t, CategoryExperience, outcomes[0].Result.Category)

	assert.True(t, outcomes[1].Failed())
	assert.Nil(t, outcomes[1].Result)
	assert.Equal(t, 0.0, outcomes[1].Score())
	assert.Equal(t, "2", outcomes[1].ID)

	assert.False(t, outcomes[2].Failed())
	require.NotNil(t, outcomes[2].Result)

	want := OverallScore([]float64{outcomes[0].Score(), 0, outcomes[2].Score()})
	assert.Equal(t, want, OverallOutcomeScore(outcomes))
}

func TestScoreBatch_Empty(t *testing.T) {
	outcomes := ScoreBatch(nil)
	assert.Empty(t, outcomes)
	assert.Equal(t, 0.0, OverallOutcomeScore(outcomes))
}
