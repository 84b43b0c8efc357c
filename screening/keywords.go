package screening

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Category is the topic classification of a screening question
type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryProblemSolving Category = "problem_solving"
	CategoryCommunication  Category = "communication"
	CategoryExperience     Category = "experience"
	CategoryGeneral        Category = "general"
)

// DefaultMinWordLength is the shortest word ExtractKeywords keeps
const DefaultMinWordLength = 4

// categoryKeywords is ordered: on equal counts the earlier category wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryTechnical, []string{
		"algorithm", "data structure", "optimization", "performance", "scalability",
		"architecture", "design pattern", "testing", "debugging", "api", "database",
		"framework", "library", "version control", "git",
	}},
	{CategoryProblemSolving, []string{
		"analyze", "solution", "approach", "strategy", "methodology", "process",
		"steps", "plan", "evaluate", "consider", "alternative", "trade-off",
	}},
	{CategoryCommunication, []string{
		"collaborate", "team", "communicate", "explain", "present", "document",
		"feedback", "stakeholder", "meeting", "discussion", "clear", "concise",
	}},
	{CategoryExperience, []string{
		"project", "experience", "worked", "developed", "implemented", "built",
		"created", "managed", "led", "contributed", "delivered", "achieved",
	}},
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "was": {},
	"are": {}, "were": {}, "been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "my": {}, "your": {}, "his": {}, "her": {}, "its": {}, "our": {}, "their": {},
}

var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Categories returns the classifiable categories in tie-break order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryKeywords))
	for _, entry := range categoryKeywords {
		out = append(out, entry.category)
	}
	return out
}

// KeywordsFor returns a copy of the fixed keyword list of a category.
// The general category has no keywords.
func KeywordsFor(category Category) []string {
	for _, entry := range categoryKeywords {
		if entry.category == category {
			return append([]string(nil), entry.keywords...)
		}
	}
	return nil
}

// DetectCategory classifies a question by counting category keywords that occur in
// it as plain substrings.
func DetectCategory(questionText string) Category {
	question := strings.ToLower(questionText)

	best := CategoryGeneral
	bestCount := 0
	for _, entry := range categoryKeywords {
		count := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(question, keyword) {
				count++
			}
		}
		if count > bestCount {
			best = entry.category
			bestCount = count
		}
	}
	return best
}

// ExtractKeywords returns the distinct meaningful words of text in first-occurrence
// order. Punctuation is treated as whitespace; stop-words and words shorter than
// minWordLength runes are dropped.
func ExtractKeywords(text string, minWordLength int) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	keywords := newOrderedSet()
	for _, word := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(word) < minWordLength {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords.add(word)
	}
	return keywords.items()
}

// orderedSet keeps unique strings in insertion order
type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(items ...string) {
	for _, item := range items {
		if _, ok := s.seen[item]; ok {
			continue
		}
		s.seen[item] = struct{}{}
		s.order = append(s.order, item)
	}
}

func (s *orderedSet) items() []string {
	if s.order == nil {
		return []string{}
	}
	return s.order
}
