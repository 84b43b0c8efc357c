// Package matching scores how well a candidate profile fits a job posting.
//
// The score is a fixed weighted blend of three sub-scores: skills overlap (60%),
// experience fit (25%) and location fit (15%). All functions are pure.
package matching

import (
	"math"
	"strconv"
	"strings"
)

// RemoteType is the work arrangement of a job
type RemoteType string

const (
	RemoteTypeOnSite RemoteType = "on-site"
	RemoteTypeRemote RemoteType = "remote"
	RemoteTypeHybrid RemoteType = "hybrid"
)

// Score weights
const (
	SkillsWeight     = 0.6
	ExperienceWeight = 0.25
	LocationWeight   = 0.15
)

// CandidateProfile holds the candidate attributes used for matching.
// An empty Location means the candidate did not provide one.
type CandidateProfile struct {
	SkillsText      string
	ExperienceYears int
	Location        string
}

// JobRequirements holds the job attributes used for matching.
// A nil ExperienceMax means there is no ceiling.
type JobRequirements struct {
	SkillsRequired string
	ExperienceMin  int
	ExperienceMax  *int
	Location       string
	RemoteType     RemoteType
}

// SkillsBreakdown describes the skills sub-score
type SkillsBreakdown struct {
	MatchPercentage float64  `json:"match_percentage"`
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
}

// ExperienceBreakdown describes the experience sub-score
type ExperienceBreakdown struct {
	CandidateYears   int     `json:"candidate_years"`
	RequiredMin      int     `json:"required_min"`
	RequiredMax      *int    `json:"required_max"`
	MeetsRequirement bool    `json:"meets_requirement"`
	PenaltyFactor    float64 `json:"penalty_factor"`
}

// LocationBreakdown describes the location sub-score
type LocationBreakdown struct {
	CandidateLocation string     `json:"candidate_location"`
	JobLocation       string     `json:"job_location"`
	RemoteType        RemoteType `json:"remote_type"`
	IsMatch           bool       `json:"is_match"`
	PenaltyFactor     float64    `json:"penalty_factor"`
}

// MatchResult is the overall score together with its breakdowns
type MatchResult struct {
	OverallScore float64             `json:"overall_score"`
	Skills       SkillsBreakdown     `json:"skills"`
	Experience   ExperienceBreakdown `json:"experience"`
	Location     LocationBreakdown   `json:"location"`
}

// ParseSkills splits a comma-separated skills string into lower-cased, trimmed tokens.
func ParseSkills(skillsText string) []string {
	if skillsText == "" {
		return []string{}
	}

	skills := make([]string, 0)
	for _, part := range strings.Split(skillsText, ",") {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

// ComputeSkillsMatch compares candidate skills against required job skills.
// Comparison is case-insensitive and set based: matched and missing partition the
// de-duplicated job skills and are returned in the order the job lists them.
func ComputeSkillsMatch(candidateSkills, jobSkills []string) (float64, []string, []string) {
	jobSet := uniqueLower(jobSkills)
	if len(jobSet) == 0 {
		return 100.0, []string{}, []string{}
	}

	if len(candidateSkills) == 0 {
		return 0.0, []string{}, jobSet
	}

	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[strings.ToLower(skill)] = struct{}{}
	}

	matched := make([]string, 0, len(jobSet))
	missing := make([]string, 0, len(jobSet))
	for _, skill := range jobSet {
		if _, ok := candidateSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	percentage := float64(len(matched)) / float64(len(jobSet)) * 100
	return percentage, matched, missing
}

// ComputeExperienceMatch reports whether the candidate meets the minimum and the
// penalty factor applied to the experience sub-score. A zero maxYears is treated
// the same as nil.
func ComputeExperienceMatch(candidateYears, minYears int, maxYears *int) (bool, float64) {
	if candidateYears >= minYears {
		if maxYears != nil && *maxYears > 0 && candidateYears > *maxYears {
			// overqualified
			return true, 0.95
		}
		return true, 1.0
	}

	gap := minYears - candidateYears
	switch {
	case gap <= 1:
		return false, 0.9
	case gap <= 2:
		return false, 0.7
	default:
		return false, 0.5
	}
}

// ComputeLocationMatch reports whether the locations are compatible and the penalty
// factor applied to the location sub-score.
func ComputeLocationMatch(candidateLocation, jobLocation string, remoteType RemoteType) (bool, float64) {
	if remoteType == RemoteTypeRemote {
		return true, 1.0
	}

	if candidateLocation == "" || jobLocation == "" {
		return true, 0.9
	}

	candidateLower := strings.ToLower(candidateLocation)
	jobLower := strings.ToLower(jobLocation)
	if strings.Contains(candidateLower, jobLower) || strings.Contains(jobLower, candidateLower) {
		return true, 1.0
	}

	if remoteType == RemoteTypeHybrid {
		return false, 0.85
	}
	return false, 0.6
}

// ComputeMatchScore returns the weighted match score in [0, 100], rounded to 2 decimals.
func ComputeMatchScore(candidate CandidateProfile, job JobRequirements) float64 {
	skillsPct, _, _ := ComputeSkillsMatch(ParseSkills(candidate.SkillsText), ParseSkills(job.SkillsRequired))
	expMatch, expPenalty := ComputeExperienceMatch(candidate.ExperienceYears, job.ExperienceMin, job.ExperienceMax)
	locMatch, locPenalty := ComputeLocationMatch(candidate.Location, job.Location, job.RemoteType)

	return combine(skillsPct, expMatch, expPenalty, locMatch, locPenalty)
}

// MatchDetails recomputes the match score and returns it with every breakdown.
func MatchDetails(candidate CandidateProfile, job JobRequirements) MatchResult {
	skillsPct, matched, missing := ComputeSkillsMatch(ParseSkills(candidate.SkillsText), ParseSkills(job.SkillsRequired))
	expMatch, expPenalty := ComputeExperienceMatch(candidate.ExperienceYears, job.ExperienceMin, job.ExperienceMax)
	locMatch, locPenalty := ComputeLocationMatch(candidate.Location, job.Location, job.RemoteType)

	return MatchResult{
		OverallScore: combine(skillsPct, expMatch, expPenalty, locMatch, locPenalty),
		Skills: SkillsBreakdown{
			MatchPercentage: Round2(skillsPct),
			Matched:         matched,
			Missing:         missing,
		},
		Experience: ExperienceBreakdown{
			CandidateYears:   candidate.ExperienceYears,
			RequiredMin:      job.ExperienceMin,
			RequiredMax:      job.ExperienceMax,
			MeetsRequirement: expMatch,
			PenaltyFactor:    expPenalty,
		},
		Location: LocationBreakdown{
			CandidateLocation: candidate.Location,
			JobLocation:       job.Location,
			RemoteType:        job.RemoteType,
			IsMatch:           locMatch,
			PenaltyFactor:     locPenalty,
		},
	}
}

func combine(skillsPct float64, expMatch bool, expPenalty float64, locMatch bool, locPenalty float64) float64 {
	expBase := 50.0
	if expMatch {
		expBase = 100.0
	}
	locBase := 50.0
	if locMatch {
		locBase = 100.0
	}

	total := skillsPct*SkillsWeight +
		expBase*expPenalty*ExperienceWeight +
		locBase*locPenalty*LocationWeight

	return Round2(math.Min(100.0, math.Max(0.0, total)))
}

// Round2 rounds to 2 decimal places. It rounds the exact binary value half to
// even, so 1.765 (stored as 1.76499...) gives 1.76 and 0.125 gives 0.12.
func Round2(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return rounded
}

func uniqueLower(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	return out
}
