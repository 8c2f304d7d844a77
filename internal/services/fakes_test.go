package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"joblink_backend/internal/email"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
)

// In-memory repository fakes. The db argument is ignored; the real
// implementations are thin GORM calls whose behavior these fakes mirror,
// including the duplicate-key signal on the (candidate, job) pair.

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[string]*models.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[string]*models.Candidate)}
}

func (r *fakeCandidateRepo) FindByID(db *gorm.DB, id string) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return nil, repositories.ErrCandidateNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCandidateRepo) FindByEmail(db *gorm.DB, email string) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrCandidateNotFound
}

func (r *fakeCandidateRepo) Create(db *gorm.DB, candidate *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.Email == candidate.Email {
			return repositories.ErrDuplicateRecord
		}
	}
	candidate.ID = uuid.NewString()
	candidate.CreatedAt = time.Now()
	cp := *candidate
	r.candidates[candidate.ID] = &cp
	return nil
}

func (r *fakeCandidateRepo) Update(db *gorm.DB, candidate *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[candidate.ID]; !ok {
		return repositories.ErrCandidateNotFound
	}
	cp := *candidate
	r.candidates[candidate.ID] = &cp
	return nil
}

func (r *fakeCandidateRepo) SetOtp(db *gorm.DB, id string, code string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return repositories.ErrCandidateNotFound
	}
	c.Otp = code
	c.OtpExpiresAt = &expiresAt
	return nil
}

func (r *fakeCandidateRepo) ClearOtp(db *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return repositories.ErrCandidateNotFound
	}
	c.Otp = ""
	c.OtpExpiresAt = nil
	return nil
}

// expireOtp backdates the code so expiry paths can be tested.
func (r *fakeCandidateRepo) expireOtp(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.Email == email {
			past := time.Now().Add(-time.Minute)
			c.OtpExpiresAt = &past
		}
	}
}

// storedOtp reads the live code for assertions.
func (r *fakeCandidateRepo) storedOtp(email string) (string, *time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.Email == email {
			return c.Otp, c.OtpExpiresAt
		}
	}
	return "", nil
}

type fakeOrganizationRepo struct {
	mu   sync.Mutex
	orgs map[string]*models.Organization
}

func newFakeOrganizationRepo() *fakeOrganizationRepo {
	return &fakeOrganizationRepo{orgs: make(map[string]*models.Organization)}
}

func (r *fakeOrganizationRepo) FindByID(db *gorm.DB, id string) (*models.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orgs[id]
	if !ok {
		return nil, repositories.ErrOrganizationNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrganizationRepo) FindByEmail(db *gorm.DB, email string) (*models.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orgs {
		if o.Email == email {
			cp := *o
			return &cp, nil
		}
	}
	return nil, repositories.ErrOrganizationNotFound
}

func (r *fakeOrganizationRepo) Create(db *gorm.DB, org *models.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orgs {
		if o.Email == org.Email {
			return repositories.ErrOrganizationAlreadyExists
		}
	}
	org.ID = uuid.NewString()
	org.CreatedAt = time.Now()
	cp := *org
	r.orgs[org.ID] = &cp
	return nil
}

func (r *fakeOrganizationRepo) Update(db *gorm.DB, org *models.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orgs[org.ID]; !ok {
		return repositories.ErrOrganizationNotFound
	}
	cp := *org
	r.orgs[org.ID] = &cp
	return nil
}

func (r *fakeOrganizationRepo) UpdateStatus(db *gorm.DB, id string, status models.OrganizationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orgs[id]
	if !ok {
		return repositories.ErrOrganizationNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrganizationRepo) UpdatePassword(db *gorm.DB, id string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orgs[id]
	if !ok {
		return repositories.ErrOrganizationNotFound
	}
	o.PasswordHash = passwordHash
	return nil
}

func (r *fakeOrganizationRepo) SetOtp(db *gorm.DB, id string, code string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orgs[id]
	if !ok {
		return repositories.ErrOrganizationNotFound
	}
	o.Otp = code
	o.OtpExpiresAt = &expiresAt
	return nil
}

func (r *fakeOrganizationRepo) ClearOtp(db *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orgs[id]
	if !ok {
		return repositories.ErrOrganizationNotFound
	}
	o.Otp = ""
	o.OtpExpiresAt = nil
	return nil
}

func (r *fakeOrganizationRepo) FindWithFilter(db *gorm.DB, filter repositories.OrganizationFilter) ([]models.Organization, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Organization
	for _, o := range r.orgs {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Kind != "" && o.Kind != filter.Kind {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

// storedOtp reads the live reset code for assertions.
func (r *fakeOrganizationRepo) storedOtp(email string) (string, *time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orgs {
		if o.Email == email {
			return o.Otp, o.OtpExpiresAt
		}
	}
	return "", nil
}

// expireOtp backdates the code so expiry paths can be tested.
func (r *fakeOrganizationRepo) expireOtp(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orgs {
		if o.Email == email {
			past := time.Now().Add(-time.Minute)
			o.OtpExpiresAt = &past
		}
	}
}

type fakeRecruiterRepo struct {
	mu         sync.Mutex
	recruiters map[string]*models.Recruiter
}

func newFakeRecruiterRepo() *fakeRecruiterRepo {
	return &fakeRecruiterRepo{recruiters: make(map[string]*models.Recruiter)}
}

func (r *fakeRecruiterRepo) FindByID(db *gorm.DB, id string) (*models.Recruiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recruiters[id]
	if !ok {
		return nil, repositories.ErrRecruiterNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRecruiterRepo) FindByEmail(db *gorm.DB, email string) (*models.Recruiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recruiters {
		if rec.Email == email {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, repositories.ErrRecruiterNotFound
}

func (r *fakeRecruiterRepo) Create(db *gorm.DB, recruiter *models.Recruiter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recruiters {
		if rec.Email == recruiter.Email {
			return repositories.ErrDuplicateRecord
		}
	}
	recruiter.ID = uuid.NewString()
	recruiter.CreatedAt = time.Now()
	cp := *recruiter
	r.recruiters[recruiter.ID] = &cp
	return nil
}

func (r *fakeRecruiterRepo) Update(db *gorm.DB, recruiter *models.Recruiter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recruiters[recruiter.ID]; !ok {
		return repositories.ErrRecruiterNotFound
	}
	cp := *recruiter
	r.recruiters[recruiter.ID] = &cp
	return nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (r *fakeAdminRepo) FindByID(db *gorm.DB, id string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) FindByUsername(db *gorm.DB, username string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (r *fakeAdminRepo) Create(db *gorm.DB, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == admin.Username {
			return repositories.ErrDuplicateRecord
		}
	}
	admin.ID = uuid.NewString()
	cp := *admin
	r.admins[admin.ID] = &cp
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
	orgs map[string]*models.Organization
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs: make(map[string]*models.Job),
		orgs: make(map[string]*models.Organization),
	}
}

func (r *fakeJobRepo) addOrganization(org *models.Organization) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orgs[org.ID] = org
}

func (r *fakeJobRepo) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) FindByIDWithOrganization(db *gorm.DB, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	if org, ok := r.orgs[j.OrganizationID]; ok {
		orgCp := *org
		cp.Organization = &orgCp
	}
	return &cp, nil
}

func (r *fakeJobRepo) Create(db *gorm.DB, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(db *gorm.DB, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) UpdateStatus(db *gorm.DB, id string, status models.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Status = status
	return nil
}

func (r *fakeJobRepo) FindWithFilter(db *gorm.DB, filter repositories.JobFilter) ([]models.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if filter.OrganizationID != "" && j.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		cp := *j
		if org, ok := r.orgs[j.OrganizationID]; ok {
			orgCp := *org
			cp.Organization = &orgCp
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

type fakeApplicationRepo struct {
	mu      sync.Mutex
	records map[string]*models.JobApplication // key: candidateID|jobID
	jobs    *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		records: make(map[string]*models.JobApplication),
		jobs:    jobs,
	}
}

func pairKey(candidateID, jobID string) string {
	return candidateID + "|" + jobID
}

func (r *fakeApplicationRepo) FindByPair(db *gorm.DB, candidateID, jobID string) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[pairKey(candidateID, jobID)]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeApplicationRepo) Create(db *gorm.DB, record *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(record.CandidateID, record.JobID)
	if _, ok := r.records[key]; ok {
		return repositories.ErrApplicationExists
	}
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	cp := *record
	r.records[key] = &cp
	return nil
}

func (r *fakeApplicationRepo) Update(db *gorm.DB, record *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(record.CandidateID, record.JobID)
	if _, ok := r.records[key]; !ok {
		return repositories.ErrApplicationNotFound
	}
	cp := *record
	r.records[key] = &cp
	return nil
}

// racingApplicationRepo lets a competing record win the pair between the
// service's advisory read and its insert, so the caller's Create comes
// back with ErrApplicationExists.
type racingApplicationRepo struct {
	*fakeApplicationRepo
	raceMu    sync.Mutex
	competing *models.JobApplication
}

func (r *racingApplicationRepo) Create(db *gorm.DB, record *models.JobApplication) error {
	r.raceMu.Lock()
	competing := r.competing
	r.competing = nil
	r.raceMu.Unlock()
	if competing != nil {
		if err := r.fakeApplicationRepo.Create(db, competing); err != nil {
			return err
		}
	}
	return r.fakeApplicationRepo.Create(db, record)
}

func (r *fakeApplicationRepo) ListByCandidate(db *gorm.DB, candidateID string) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobApplication
	for _, rec := range r.records {
		if rec.CandidateID != candidateID {
			continue
		}
		cp := *rec
		if r.jobs != nil {
			if j, err := r.jobs.FindByIDWithOrganization(nil, rec.JobID); err == nil {
				cp.Job = j
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// recordingEmailProvider captures sent messages for assertions. Sends
// happen on goroutines, so reads go through the mutex too.
type recordingEmailProvider struct {
	mu            sync.Mutex
	loginCodes    []string
	resetCodes    []string
	confirmations []string
}

func (p *recordingEmailProvider) Send(msg *email.Email) error { return nil }
func (p *recordingEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	return nil
}

func (p *recordingEmailProvider) SendLoginCode(to, code string, ttlMinutes int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loginCodes = append(p.loginCodes, code)
	return nil
}

func (p *recordingEmailProvider) SendPasswordResetCode(to, code string, ttlMinutes int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetCodes = append(p.resetCodes, code)
	return nil
}

func (p *recordingEmailProvider) SendApplicationConfirmation(to, jobTitle, organizationName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirmations = append(p.confirmations, fmt.Sprintf("%s|%s|%s", to, jobTitle, organizationName))
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }

// fakeStorage presigns deterministically and never touches disk.
type fakeStorage struct{}

func (s *fakeStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	return nil
}
func (s *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not found: %s", key)
}
func (s *fakeStorage) Delete(ctx context.Context, key string) error         { return nil }
func (s *fakeStorage) Exists(ctx context.Context, key string) (bool, error) { return false, nil }
func (s *fakeStorage) GetURL(ctx context.Context, key string) (string, error) {
	return "http://fake/" + key, nil
}
func (s *fakeStorage) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "http://fake/signed/" + key, nil
}
func (s *fakeStorage) GetSize(ctx context.Context, key string) (int64, error) { return 0, nil }
