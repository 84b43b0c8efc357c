package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "trims and lowercases", in: " Python , SQL,Docker ", want: []string{"python", "sql", "docker"}},
		{name: "drops empty tokens", in: "go,, ,rust,", want: []string{"go", "rust"}},
		{name: "only separators", in: ", ,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.in))
		})
	}
}

func TestComputeSkillsMatch_NoJobSkills(t *testing.T) {
	pct, matched, missing := ComputeSkillsMatch([]string{"Python"}, nil)

	assert.Equal(t, 100.0, pct)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestComputeSkillsMatch_NoCandidateSkills(t *testing.T) {
	pct, matched, missing := ComputeSkillsMatch(nil, []string{"Python"})

	assert.Equal(t, 0.0, pct)
	assert.Empty(t, matched)
	assert.ElementsMatch(t, []string{"python"}, missing)
}

func TestComputeSkillsMatch_CaseInsensitive(t *testing.T) {
	pct, matched, missing := ComputeSkillsMatch(
		[]string{"PYTHON", "sql"},
		[]string{"python", "Docker", "SQL", "kubernetes"},
	)

	assert.Equal(t, 50.0, pct)
	assert.ElementsMatch(t, []string{"python", "sql"}, matched)
	assert.ElementsMatch(t, []string{"docker", "kubernetes"}, missing)
}

func TestComputeSkillsMatch_DuplicateJobSkills(t *testing.T) {
	pct, matched, missing := ComputeSkillsMatch([]string{"go"}, []string{"Go", "go", "Rust"})

	assert.Equal(t, 50.0, pct)
	assert.ElementsMatch(t, []string{"go"}, matched)
	assert.ElementsMatch(t, []string{"rust"}, missing)
}

func TestComputeSkillsMatch_PartitionsJobSkills(t *testing.T) {
	cases := []struct {
		candidate []string
		job       []string
	}{
		{[]string{"a", "b"}, []string{"b", "c", "d"}},
		{[]string{"x"}, []string{"X", "y", "Y", "z"}},
		{[]string{"python", "sql", "go"}, []string{"go", "python"}},
		{[]string{"none"}, []string{"one", "two"}},
	}

	for _, c := range cases {
		_, matched, missing := ComputeSkillsMatch(c.candidate, c.job)

		union := append(append([]string{}, matched...), missing...)
		assert.ElementsMatch(t, uniqueLower(c.job), union)
		for _, m := range matched {
			assert.NotContains(t, missing, m)
		}
	}
}

func TestComputeExperienceMatch(t *testing.T) {
	tests := []struct {
		name      string
		years     int
		min       int
		max       *int
		wantMeets bool
		wantPen   float64
	}{
		{name: "exact minimum", years: 5, min: 5, max: nil, wantMeets: true, wantPen: 1.0},
		{name: "within range", years: 4, min: 2, max: intPtr(6), wantMeets: true, wantPen: 1.0},
		{name: "at ceiling", years: 6, min: 2, max: intPtr(6), wantMeets: true, wantPen: 1.0},
		{name: "overqualified", years: 10, min: 2, max: intPtr(6), wantMeets: true, wantPen: 0.95},
		{name: "zero ceiling means none", years: 10, min: 0, max: intPtr(0), wantMeets: true, wantPen: 1.0},
		{name: "gap of one", years: 4, min: 5, max: nil, wantMeets: false, wantPen: 0.9},
		{name: "gap of two", years: 3, min: 5, max: nil, wantMeets: false, wantPen: 0.7},
		{name: "gap of three", years: 2, min: 5, max: nil, wantMeets: false, wantPen: 0.5},
		{name: "large gap", years: 0, min: 10, max: intPtr(12), wantMeets: false, wantPen: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meets, pen := ComputeExperienceMatch(tt.years, tt.min, tt.max)
			assert.Equal(t, tt.wantMeets, meets)
			assert.Equal(t, tt.wantPen, pen)
		})
	}
}

func TestComputeLocationMatch(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		job        string
		remoteType RemoteType
		wantMatch  bool
		wantPen    float64
	}{
		{name: "remote ignores locations", candidate: "NYC", job: "SF", remoteType: RemoteTypeRemote, wantMatch: true, wantPen: 1.0},
		{name: "missing candidate location", candidate: "", job: "NYC", remoteType: RemoteTypeOnSite, wantMatch: true, wantPen: 0.9},
		{name: "missing job location", candidate: "NYC", job: "", remoteType: RemoteTypeHybrid, wantMatch: true, wantPen: 0.9},
		{name: "job contains candidate", candidate: "berlin", job: "Berlin, Germany", remoteType: RemoteTypeOnSite, wantMatch: true, wantPen: 1.0},
		{name: "candidate contains job", candidate: "San Francisco, CA", job: "san francisco", remoteType: RemoteTypeHybrid, wantMatch: true, wantPen: 1.0},
		{name: "hybrid mismatch", candidate: "Austin", job: "Boston", remoteType: RemoteTypeHybrid, wantMatch: false, wantPen: 0.85},
		{name: "on-site mismatch", candidate: "Austin", job: "Boston", remoteType: RemoteTypeOnSite, wantMatch: false, wantPen: 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, pen := ComputeLocationMatch(tt.candidate, tt.job, tt.remoteType)
			assert.Equal(t, tt.wantMatch, match)
			assert.Equal(t, tt.wantPen, pen)
		})
	}
}

func TestComputeMatchScore_RemotePartialSkills(t *testing.T) {
	candidate := CandidateProfile{SkillsText: "Python, SQL", ExperienceYears: 3, Location: "Remote City"}
	job := JobRequirements{SkillsRequired: "Python, Docker", ExperienceMin: 2, RemoteType: RemoteTypeRemote}

	assert.Equal(t, 70.0, ComputeMatchScore(candidate, job))
}

func TestComputeMatchScore_PerfectMatch(t *testing.T) {
	candidate := CandidateProfile{SkillsText: "go, postgres", ExperienceYears: 5, Location: "Berlin"}
	job := JobRequirements{SkillsRequired: "Go,Postgres", ExperienceMin: 3, ExperienceMax: intPtr(8), Location: "Berlin", RemoteType: RemoteTypeOnSite}

	assert.Equal(t, 100.0, ComputeMatchScore(candidate, job))
}

func TestComputeMatchScore_WorstCase(t *testing.T) {
	candidate := CandidateProfile{SkillsText: "cobol", ExperienceYears: 0, Location: "Oslo"}
	job := JobRequirements{SkillsRequired: "go", ExperienceMin: 10, Location: "Lima", RemoteType: RemoteTypeOnSite}

	// 0 + 50*0.5*0.25 + 50*0.6*0.15
	assert.Equal(t, 10.75, ComputeMatchScore(candidate, job))
}

func TestComputeMatchScore_MonotonicInSkills(t *testing.T) {
	job := JobRequirements{SkillsRequired: "a, b, c, d, e", ExperienceMin: 2, Location: "Paris", RemoteType: RemoteTypeHybrid}
	skillSets := []string{"", "a", "a, b", "a, b, c", "a, b, c, d", "a, b, c, d, e"}

	prev := -1.0
	for _, skills := range skillSets {
		score := ComputeMatchScore(CandidateProfile{SkillsText: skills, ExperienceYears: 1, Location: "Lyon"}, job)
		assert.GreaterOrEqual(t, score, prev)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
		prev = score
	}
}

func TestMatchDetails(t *testing.T) {
	candidate := CandidateProfile{SkillsText: "Python, SQL, Go", ExperienceYears: 1, Location: "Austin"}
	job := JobRequirements{SkillsRequired: "python, go, rust", ExperienceMin: 3, Location: "Boston", RemoteType: RemoteTypeHybrid}

	details := MatchDetails(candidate, job)

	assert.Equal(t, ComputeMatchScore(candidate, job), details.OverallScore)
	assert.Equal(t, 66.67, details.Skills.MatchPercentage)
	assert.ElementsMatch(t, []string{"python", "go"}, details.Skills.Matched)
	assert.ElementsMatch(t, []string{"rust"}, details.Skills.Missing)

	assert.False(t, details.Experience.MeetsRequirement)
	assert.Equal(t, 0.7, details.Experience.PenaltyFactor)
	assert.Equal(t, 1, details.Experience.CandidateYears)
	assert.Equal(t, 3, details.Experience.RequiredMin)
	assert.Nil(t, details.Experience.RequiredMax)

	assert.False(t, details.Location.IsMatch)
	assert.Equal(t, 0.85, details.Location.PenaltyFactor)
	assert.Equal(t, RemoteTypeHybrid, details.Location.RemoteType)
}

func TestMatchDetails_IsPure(t *testing.T) {
	candidate := CandidateProfile{SkillsText: "go", ExperienceYears: 4, Location: "Rome"}
	job := JobRequirements{SkillsRequired: "go, rust", ExperienceMin: 2, RemoteType: RemoteTypeRemote}

	first := MatchDetails(candidate, job)
	second := MatchDetails(candidate, job)
	require.Equal(t, first, second)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 200.0 / 3, want: 66.67},
		{in: 1.5, want: 1.5},
		{in: 0, want: 0},
		{in: 1.765, want: 1.76},
		{in: 0.125, want: 0.12},
		{in: 0.625, want: 0.62},
		{in: 0.8825, want: 0.88},
		{in: 0.375, want: 0.38},
		{in: 99.995, want: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}
