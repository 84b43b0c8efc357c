package resume

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// techSkills is the vocabulary ExtractSkills matches against, in output order.
var techSkills = []string{
	// languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"go", "rust", "scala", "r", "matlab", "perl", "shell", "bash",

	// web
	"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask", "fastapi",
	"spring", "asp.net", "laravel", "rails", "jquery", "bootstrap", "tailwind",

	// databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra", "oracle",
	"sqlite", "dynamodb", "firebase",

	// cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github", "terraform",
	"ansible", "ci/cd", "devops",

	// data science
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras", "scikit-learn",
	"pandas", "numpy", "data analysis", "nlp", "computer vision", "ai",

	// practices and tooling
	"git", "linux", "agile", "scrum", "rest api", "graphql", "microservices", "testing",
	"unit testing", "integration testing", "jira", "confluence",
}

type skillPattern struct {
	title   string
	pattern *regexp.Regexp
}

var skillPatterns = compileSkillPatterns(techSkills)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// phonePatterns are tried in order: international prefix, area code, bare digits.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{10}`),
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\s+(?:of\s+)?experience`),
}

var namePattern = regexp.MustCompile(`^[A-Za-z\s.]+$`)

var educationPatterns = []string{
	`bachelor`, `master`, `phd`, `doctorate`, `b\.?s\.?`, `m\.?s\.?`,
	`b\.?tech`, `m\.?tech`, `mba`, `university`, `college`, `degree`,
}

var educationPattern = regexp.MustCompile(strings.Join(educationPatterns, "|"))

const (
	nameMaxLength      = 50
	nameScanLines      = 5
	educationMaxChunks = 5
)

func compileSkillPatterns(skills []string) []skillPattern {
	out := make([]skillPattern, 0, len(skills))
	for _, skill := range skills {
		out = append(out, skillPattern{
			title:   titleCase(skill),
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`),
		})
	}
	return out
}

// ExtractEmail returns the first email address in text, or nil.
func ExtractEmail(text string) *string {
	if match := emailPattern.FindString(text); match != "" {
		return &match
	}
	return nil
}

// ExtractPhone returns the first phone number in text, or nil.
func ExtractPhone(text string) *string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return &match
		}
	}
	return nil
}

// ExtractSkills returns the known skills mentioned in text as whole words, title-cased,
// in vocabulary order.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	found := make([]string, 0)
	for _, skill := range skillPatterns {
		if !skill.pattern.MatchString(lower) {
			continue
		}
		if _, ok := seen[skill.title]; ok {
			continue
		}
		seen[skill.title] = struct{}{}
		found = append(found, skill.title)
	}
	return found
}

// maxExperienceYears caps parsed years to what the experience_years column holds
const maxExperienceYears = math.MaxInt32

// ExtractExperienceYears returns the years from the first "N years experience"
// style phrase, or 0. Numbers too large to store are capped at maxExperienceYears.
func ExtractExperienceYears(text string) int {
	lower := strings.ToLower(text)
	for _, pattern := range experiencePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		// the group is all digits, so the only possible error is ErrRange
		years, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil || years > maxExperienceYears {
			return maxExperienceYears
		}
		return int(years)
	}
	return 0
}

// ExtractName guesses the candidate name: the first short line made only of
// letters, spaces and periods among the first lines of the document.
func ExtractName(text string) *string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= nameMaxLength {
			continue
		}
		if namePattern.MatchString(line) {
			return &line
		}
	}
	return nil
}

// ExtractEducation collects every line mentioning a degree or institution together
// with the line after it, and joins the first few of them.
func ExtractEducation(text string) *string {
	lines := strings.Split(text, "\n")

	chunks := make([]string, 0)
	for i, line := range lines {
		if !educationPattern.MatchString(strings.ToLower(line)) {
			continue
		}
		chunks = append(chunks, strings.TrimSpace(line))
		if i+1 < len(lines) {
			chunks = append(chunks, strings.TrimSpace(lines[i+1]))
		}
	}

	if len(chunks) == 0 {
		return nil
	}
	if len(chunks) > educationMaxChunks {
		chunks = chunks[:educationMaxChunks]
	}
	education := strings.Join(chunks, " ")
	return &education
}

// titleCase upper-cases the first letter of every run of letters and lower-cases
// the rest, so "node.js" becomes "Node.Js" and "ci/cd" becomes "Ci/Cd".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
			continue
		}
		b.WriteRune(r)
		inWord = false
	}
	return b.String()
}
