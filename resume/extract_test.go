package resume

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Backend Engineer
jane.doe@example.com | +1-415-555-0123
San Francisco

Summary
8+ years of experience building Python and Go services on AWS with Docker and Kubernetes.

Education
B.S. Computer Science
Stanford University`

func TestExtractEmail(t *testing.T) {
	email := ExtractEmail("contact: jane.doe@example.com today")
	require.NotNil(t, email)
	assert.Equal(t, "jane.doe@example.com", *email)

	assert.Nil(t, ExtractEmail("no address here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "international", text: "Phone: +1-415-555-0123", want: "+1-415-555-0123"},
		{name: "area code", text: "Call (415) 555-0123 now", want: "(415) 555-0123"},
		{name: "bare digits", text: "call 4155550123", want: "4155550123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone := ExtractPhone(tt.text)
			require.NotNil(t, phone)
			assert.Equal(t, tt.want, *phone)
		})
	}

	assert.Nil(t, ExtractPhone("reach me by email"))
}

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "vocabulary order and title case", text: "Expert in JavaScript, React and Node.js", want: []string{"Javascript", "React", "Node.Js"}},
		{name: "deduplicated", text: "python PYTHON Python", want: []string{"Python"}},
		{name: "whole words only", text: "I am going to golang meetups", want: []string{}},
		{name: "multi word terms", text: "machine learning and ci/cd", want: []string{"Ci/Cd", "Machine Learning"}},
		{name: "empty", text: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSkills(tt.text))
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "years experience", text: "5 years experience", want: 5},
		{name: "experience label", text: "Experience: 7 years", want: 7},
		{name: "yrs", text: "3 yrs of experience", want: 3},
		{name: "first pattern wins", text: "Experience: 2 years. 10 years of experience overall", want: 10},
		{name: "none", text: "fresh graduate", want: 0},
		{name: "overflow is capped", text: "99999999999999999999 years experience", want: math.MaxInt32},
		{name: "above column range is capped", text: "3000000000 years of experience", want: math.MaxInt32},
		{name: "overflow in first pattern wins", text: "Experience: 2 years. 99999999999999999999 years experience", want: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExperienceYears(tt.text))
		})
	}
}

func TestExtractName(t *testing.T) {
	name := ExtractName("\n\n  John A. Smith  \nEngineer")
	require.NotNil(t, name)
	assert.Equal(t, "John A. Smith", *name)

	name = ExtractName("Resume 2024\nJane Doe")
	require.NotNil(t, name)
	assert.Equal(t, "Jane Doe", *name)

	assert.Nil(t, ExtractName("1\n2\n3\n4\n5\nJane Doe"))
	assert.Nil(t, ExtractName("x1\n\n\n\n\nJane Doe"), "blank lines count toward the scanned lines")
	assert.Nil(t, ExtractName(strings.Repeat("a", 50)))
	assert.Nil(t, ExtractName(""))
}

func TestExtractEducation(t *testing.T) {
	education := ExtractEducation("Skills\nMBA, Harvard\nClass of 2010\nOther")
	require.NotNil(t, education)
	assert.Equal(t, "MBA, Harvard Class of 2010", *education)

	assert.Nil(t, ExtractEducation("Hello there\nNothing here"))
}

func TestExtractEducation_FirstFiveChunks(t *testing.T) {
	education := ExtractEducation("college a\ncollege b\ncollege c\ncollege d")
	require.NotNil(t, education)
	assert.Equal(t, "college a college b college b college c college c", *education)
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"node.js":      "Node.Js",
		"c++":          "C++",
		"scikit-learn": "Scikit-Learn",
		"rest api":     "Rest Api",
		"asp.net":      "Asp.Net",
		"ci/cd":        "Ci/Cd",
		"":             "",
	}

	for in, want := range tests {
		assert.Equal(t, want, titleCase(in), in)
	}
}

func TestSkillVocabulary(t *testing.T) {
	seen := make(map[string]bool, len(techSkills))
	for _, skill := range techSkills {
		assert.False(t, seen[skill], "duplicate skill %q", skill)
		seen[skill] = true
		assert.Equal(t, strings.ToLower(skill), skill)
	}
	assert.Len(t, skillPatterns, len(techSkills))
}
