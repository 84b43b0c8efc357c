package models

// Changes methods turn partial update requests into column->value sets.
// Fields left out of the request body are not included.

func setIf[T any](changes map[string]any, column string, value *T) {
	if value != nil {
		changes[column] = *value
	}
}

// Changes returns the columns to update
func (r *CandidateUpdateRequest) Changes() map[string]any {
	changes := make(map[string]any)
	setIf(changes, "headline", r.Headline)
	setIf(changes, "experience_years", r.ExperienceYears)
	setIf(changes, "location", r.Location)
	setIf(changes, "skills_text", r.SkillsText)
	setIf(changes, "phone", r.Phone)
	setIf(changes, "linkedin_url", r.LinkedinURL)
	setIf(changes, "github_url", r.GithubURL)
	setIf(changes, "resume_url", r.ResumeURL)
	return changes
}

// Changes returns the columns to update
func (r *CompanyUpdateRequest) Changes() map[string]any {
	changes := make(map[string]any)
	setIf(changes, "name", r.Name)
	setIf(changes, "description", r.Description)
	setIf(changes, "website", r.Website)
	setIf(changes, "logo_url", r.LogoURL)
	setIf(changes, "industry", r.Industry)
	setIf(changes, "size", r.Size)
	setIf(changes, "location", r.Location)
	return changes
}

// Changes returns the columns to update
func (r *JobUpdateRequest) Changes() map[string]any {
	changes := make(map[string]any)
	setIf(changes, "title", r.Title)
	setIf(changes, "description", r.Description)
	setIf(changes, "location", r.Location)
	if r.RemoteType != nil {
		changes["remote_type"] = string(*r.RemoteType)
	}
	setIf(changes, "employment_type", r.EmploymentType)
	setIf(changes, "skills_required", r.SkillsRequired)
	setIf(changes, "salary_min", r.SalaryMin)
	setIf(changes, "salary_max", r.SalaryMax)
	setIf(changes, "currency", r.Currency)
	setIf(changes, "experience_min", r.ExperienceMin)
	setIf(changes, "experience_max", r.ExperienceMax)
	setIf(changes, "status", r.Status)
	return changes
}

// Changes returns the columns to update
func (r *ApplicationUpdateRequest) Changes() map[string]any {
	changes := make(map[string]any)
	setIf(changes, "status", r.Status)
	setIf(changes, "notes", r.Notes)
	return changes
}

// Changes returns the columns to update
func (r *InterviewUpdateRequest) Changes() map[string]any {
	changes := make(map[string]any)
	setIf(changes, "scheduled_at", r.ScheduledAt)
	setIf(changes, "duration_minutes", r.DurationMinutes)
	setIf(changes, "meeting_link", r.MeetingLink)
	setIf(changes, "status", r.Status)
	setIf(changes, "notes", r.Notes)
	setIf(changes, "feedback", r.Feedback)
	setIf(changes, "rating", r.Rating)
	return changes
}
