package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/storage"
)

// memStore is an in-memory storage.Repository for handler tests
type memStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*models.User
	candidates   map[uuid.UUID]*models.Candidate
	companies    map[uuid.UUID]*models.Company
	jobs         map[uuid.UUID]*models.Job
	applications map[uuid.UUID]*models.Application
	answers      []*models.ScreeningAnswer
	interviews   map[uuid.UUID]*models.Interview
	pingErr      error
	savedOverall *float64
}

var _ storage.Repository = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[uuid.UUID]*models.User),
		candidates:   make(map[uuid.UUID]*models.Candidate),
		companies:    make(map[uuid.UUID]*models.Company),
		jobs:         make(map[uuid.UUID]*models.Job),
		applications: make(map[uuid.UUID]*models.Application),
		interviews:   make(map[uuid.UUID]*models.Interview),
	}
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
}

// merge applies a column->value change set through the JSON field names
func merge[T any](dst *T, changes map[string]any) error {
	raw, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	for k, v := range changes {
		fields[k] = v
	}
	raw, err = json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (s *memStore) Ping(ctx context.Context) error { return s.pingErr }
func (s *memStore) Close() error                   { return nil }

func (s *memStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("create user: %w", storage.ErrAlreadyExists)
		}
	}
	if user.Provider == "" {
		user.Provider = models.ProviderEmail
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	s.users[user.ID] = &stored

	if user.Role == models.RoleCandidate {
		id := uuid.New()
		s.candidates[id] = &models.Candidate{ID: id, UserID: user.ID, CreatedAt: time.Now()}
	}
	return nil
}

func (s *memStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, notFound("get user")
}

func (s *memStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, notFound("get user")
}

func (s *memStore) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			out := *u
			return &out, nil
		}
	}
	return nil, notFound("get user")
}

func (s *memStore) LinkGoogleAccount(ctx context.Context, userID uuid.UUID, googleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return notFound("link google account")
	}
	u.GoogleID = &googleID
	return nil
}

func (s *memStore) CreateCandidate(ctx context.Context, candidate *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.candidates {
		if c.UserID == candidate.UserID {
			return fmt.Errorf("create candidate: %w", storage.ErrAlreadyExists)
		}
	}
	candidate.ID = uuid.New()
	candidate.CreatedAt = time.Now()
	stored := *candidate
	s.candidates[candidate.ID] = &stored
	return nil
}

func (s *memStore) GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.candidates[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, notFound("get candidate")
}

func (s *memStore) GetCandidateByUserID(ctx context.Context, userID uuid.UUID) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.candidates {
		if c.UserID == userID {
			out := *c
			return &out, nil
		}
	}
	return nil, notFound("get candidate")
}

func (s *memStore) UpdateCandidate(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.candidates[id]
	if !ok {
		return nil, notFound("update candidate")
	}
	if err := merge(c, changes); err != nil {
		return nil, err
	}
	out := *c
	return &out, nil
}

func (s *memStore) CreateCompany(ctx context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.Name == company.Name {
			return fmt.Errorf("create company: %w", storage.ErrAlreadyExists)
		}
	}
	company.ID = uuid.New()
	company.CreatedAt = time.Now()
	stored := *company
	s.companies[company.ID] = &stored
	return nil
}

func (s *memStore) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.companies[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, notFound("get company")
}

func (s *memStore) ListCompanies(ctx context.Context, query models.CompanyListQuery) ([]models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Company, 0, len(s.companies))
	for _, c := range s.companies {
		if query.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(query.Name)) {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) UpdateCompany(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, notFound("update company")
	}
	if err := merge(c, changes); err != nil {
		return nil, err
	}
	out := *c
	return &out, nil
}

func (s *memStore) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; !ok {
		return notFound("delete company")
	}
	delete(s.companies, id)
	for jobID, j := range s.jobs {
		if j.CompanyID == id {
			s.deleteJobLocked(jobID)
		}
	}
	return nil
}

func (s *memStore) CreateJob(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[job.CompanyID]; !ok {
		return notFound("create job")
	}
	job.ID = uuid.New()
	job.CreatedAt = time.Now()
	stored := *job
	s.jobs[job.ID] = &stored
	return nil
}

func (s *memStore) jobLocked(id uuid.UUID) (*models.Job, bool) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, false
	}
	out := *j
	if c, ok := s.companies[j.CompanyID]; ok {
		company := *c
		out.Company = &company
	}
	return &out, true
}

func (s *memStore) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobLocked(id); ok {
		return j, nil
	}
	return nil, notFound("get job")
}

func (s *memStore) ListJobs(ctx context.Context, filter storage.JobFilter) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Job, 0)
	for id, j := range s.jobs {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		if filter.CompanyID != nil && j.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.RemoteType != "" && string(j.RemoteType) != filter.RemoteType {
			continue
		}
		if filter.Title != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(filter.Title)) {
			continue
		}
		job, _ := s.jobLocked(id)
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) UpdateJob(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, notFound("update job")
	}
	if err := merge(j, changes); err != nil {
		return nil, err
	}
	out := *j
	return &out, nil
}

func (s *memStore) DeleteJob(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return notFound("delete job")
	}
	s.deleteJobLocked(id)
	return nil
}

func (s *memStore) deleteJobLocked(id uuid.UUID) {
	delete(s.jobs, id)
	for appID, a := range s.applications {
		if a.JobID == id {
			delete(s.applications, appID)
		}
	}
}

func (s *memStore) CreateApplication(ctx context.Context, application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.applications {
		if a.JobID == application.JobID && a.CandidateID == application.CandidateID {
			return fmt.Errorf("create application: %w", storage.ErrAlreadyExists)
		}
	}
	if application.Status == "" {
		application.Status = models.ApplicationStatusApplied
	}
	application.ID = uuid.New()
	application.CreatedAt = time.Now()
	stored := *application
	s.applications[application.ID] = &stored
	return nil
}

func (s *memStore) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[id]
	if !ok {
		return nil, notFound("get application")
	}
	out := *a
	if j, ok := s.jobLocked(a.JobID); ok {
		out.Job = j
	}
	if c, ok := s.candidates[a.CandidateID]; ok {
		candidate := *c
		out.Candidate = &candidate
	}
	return &out, nil
}

func (s *memStore) listApplications(match func(*models.Application) bool, query models.ApplicationListQuery) []models.Application {
	out := make([]models.Application, 0)
	for _, a := range s.applications {
		if !match(a) || (query.Status != "" && a.Status != query.Status) {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out
}

func (s *memStore) ListApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID, query models.ApplicationListQuery) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listApplications(func(a *models.Application) bool { return a.CandidateID == candidateID }, query), nil
}

func (s *memStore) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID, query models.ApplicationListQuery) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listApplications(func(a *models.Application) bool { return a.JobID == jobID }, query), nil
}

func (s *memStore) UpdateApplication(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[id]
	if !ok {
		return nil, notFound("update application")
	}
	if err := merge(a, changes); err != nil {
		return nil, err
	}
	out := *a
	return &out, nil
}

func (s *memStore) CreateScreeningAnswers(ctx context.Context, applicationID uuid.UUID, answers []models.ScreeningAnswerInput) ([]models.ScreeningAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[applicationID]; !ok {
		return nil, notFound("create screening answers")
	}
	out := make([]models.ScreeningAnswer, 0, len(answers))
	for _, in := range answers {
		answer := &models.ScreeningAnswer{
			ID:              uuid.New(),
			ApplicationID:   applicationID,
			QuestionText:    in.QuestionText,
			AnswerText:      in.AnswerText,
			KeywordsMatched: []string{},
			CreatedAt:       time.Now(),
		}
		s.answers = append(s.answers, answer)
		out = append(out, *answer)
	}
	return out, nil
}

func (s *memStore) ListScreeningAnswers(ctx context.Context, applicationID uuid.UUID) ([]models.ScreeningAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScreeningAnswer, 0)
	for _, a := range s.answers {
		if a.ApplicationID == applicationID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *memStore) SaveScreeningScores(ctx context.Context, applicationID uuid.UUID, overall float64, scores []storage.AnswerScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	application, ok := s.applications[applicationID]
	if !ok {
		return notFound("save screening scores")
	}
	for _, score := range scores {
		for _, a := range s.answers {
			if a.ID == score.AnswerID {
				v := score.Score
				a.AIScore = &v
				a.KeywordsMatched = score.KeywordsMatched
			}
		}
	}
	application.ScreeningScore = &overall
	s.savedOverall = &overall
	return nil
}

func (s *memStore) CreateInterview(ctx context.Context, interview *models.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[interview.ApplicationID]; !ok {
		return notFound("create interview")
	}
	if interview.DurationMinutes == 0 {
		interview.DurationMinutes = 60
	}
	if interview.InterviewType == "" {
		interview.InterviewType = "technical"
	}
	interview.ID = uuid.New()
	interview.CreatedAt = time.Now()
	stored := *interview
	s.interviews[interview.ID] = &stored
	return nil
}

func (s *memStore) GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.interviews[id]; ok {
		out := *i
		return &out, nil
	}
	return nil, notFound("get interview")
}

func (s *memStore) ListInterviews(ctx context.Context, applicationID uuid.UUID) ([]models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Interview, 0)
	for _, i := range s.interviews {
		if i.ApplicationID == applicationID {
			out = append(out, *i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (s *memStore) UpdateInterview(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.interviews[id]
	if !ok {
		return nil, notFound("update interview")
	}
	if err := merge(i, changes); err != nil {
		return nil, err
	}
	out := *i
	return &out, nil
}
