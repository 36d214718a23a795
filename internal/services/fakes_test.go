package services

import (
	"errors"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"dataquad/recruitops/internal/models"
	"dataquad/recruitops/internal/repositories"
)

// memReqRepo is an in-memory RequirementRepository for service tests.
type memReqRepo struct {
	byID    map[string]*models.Requirement
	created []string
	saved   []string
	deleted []string
	failAll bool
}

func newMemReqRepo(reqs ...*models.Requirement) *memReqRepo {
	repo := &memReqRepo{byID: make(map[string]*models.Requirement)}
	for _, req := range reqs {
		clone := *req
		repo.byID[req.JobID] = &clone
	}
	return repo
}

func (r *memReqRepo) Create(req *models.Requirement) error {
	if r.failAll {
		return errors.New("create failed")
	}
	clone := *req
	r.byID[req.JobID] = &clone
	r.created = append(r.created, req.JobID)
	return nil
}

func (r *memReqRepo) Save(req *models.Requirement) error {
	if r.failAll {
		return errors.New("save failed")
	}
	clone := *req
	r.byID[req.JobID] = &clone
	r.saved = append(r.saved, req.JobID)
	return nil
}

func (r *memReqRepo) Delete(req *models.Requirement) error {
	if r.failAll {
		return errors.New("delete failed")
	}
	delete(r.byID, req.JobID)
	r.deleted = append(r.deleted, req.JobID)
	return nil
}

func (r *memReqRepo) ExistsByID(jobID string) (bool, error) {
	_, ok := r.byID[jobID]
	return ok, nil
}

func (r *memReqRepo) FindByID(jobID string) (*models.Requirement, error) {
	req, ok := r.byID[jobID]
	if !ok {
		return nil, models.ErrRequirementNotFound(jobID)
	}
	clone := *req
	return &clone, nil
}

func (r *memReqRepo) FindActive() ([]models.Requirement, error) {
	var out []models.Requirement
	for _, req := range r.byID {
		if req.Status != "Closed" {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *memReqRepo) FindByDateRange(start, end time.Time) ([]models.Requirement, error) {
	var out []models.Requirement
	for _, req := range r.byID {
		ts := req.RequirementAddedTimeStamp
		if !ts.Before(start) && !ts.After(end) {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *memReqRepo) FindByRecruiterID(recruiterID string) ([]models.Requirement, error) {
	var out []models.Requirement
	for _, req := range r.byID {
		for _, id := range req.RecruiterIDs {
			if id == recruiterID {
				out = append(out, *req)
				break
			}
		}
	}
	return out, nil
}

func (r *memReqRepo) FindByRecruiterIDAndDateRange(recruiterID string, start, end time.Time) ([]models.Requirement, error) {
	reqs, _ := r.FindByRecruiterID(recruiterID)
	var out []models.Requirement
	for _, req := range reqs {
		ts := req.RequirementAddedTimeStamp
		if !ts.Before(start) && !ts.After(end) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memReqRepo) FindByAssignedBy(assignedBy string) ([]models.Requirement, error) {
	var out []models.Requirement
	for _, req := range r.byID {
		if req.AssignedBy == assignedBy {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *memReqRepo) FindByAssignedByAndDateRange(assignedBy string, start, end time.Time) ([]models.Requirement, error) {
	reqs, _ := r.FindByAssignedBy(assignedBy)
	var out []models.Requirement
	for _, req := range reqs {
		ts := req.RequirementAddedTimeStamp
		if !ts.Before(start) && !ts.After(end) {
			out = append(out, req)
		}
	}
	return out, nil
}

var _ repositories.RequirementRepository = (*memReqRepo)(nil)

// memUserRepo resolves users from fixed maps.
type memUserRepo struct {
	contacts map[string]*repositories.UserContact
	names    map[string]string
	roles    map[string]string
	failFor  map[string]bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		contacts: make(map[string]*repositories.UserContact),
		names:    make(map[string]string),
		roles:    make(map[string]string),
		failFor:  make(map[string]bool),
	}
}

func (r *memUserRepo) addUser(userID, userName, email, role string) {
	r.contacts[userID] = &repositories.UserContact{Email: email, UserName: userName}
	r.names[userID] = userName
	r.roles[userID] = role
}

func (r *memUserRepo) FindContactByUserID(userID string) (*repositories.UserContact, error) {
	if r.failFor[userID] {
		return nil, errors.New("user lookup failed")
	}
	return r.contacts[userID], nil
}

func (r *memUserRepo) FindUserNameByUserID(userID string) (string, error) {
	if r.failFor[userID] {
		return "", errors.New("user lookup failed")
	}
	return r.names[userID], nil
}

func (r *memUserRepo) FindRoleAndUserName(userID string) (string, string, error) {
	if r.failFor[userID] {
		return "", "", errors.New("user lookup failed")
	}
	return r.roles[userID], r.names[userID], nil
}

var _ repositories.UserRepository = (*memUserRepo)(nil)

// memReportRepo serves canned row batches and records which variant was hit.
type memReportRepo struct {
	submissionRows []repositories.Row
	interviewRows  []repositories.Row
	placementRows  []repositories.Row
	jobRows        []repositories.Row
	clientRows     []repositories.Row
	employeeRows   []repositories.Row

	employeeStats []repositories.Row
	teamleadStats []repositories.Row

	candidatesByJob map[string][]repositories.Row
	interviewsByJob map[string][]repositories.Row

	submissionCounts map[string]int
	interviewCounts  map[string]int

	byAssignedByCalls []string
	byUserIDCalls     []string
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{
		candidatesByJob:  make(map[string][]repositories.Row),
		interviewsByJob:  make(map[string][]repositories.Row),
		submissionCounts: make(map[string]int),
		interviewCounts:  make(map[string]int),
	}
}

func (r *memReportRepo) SubmittedCandidateRows(userID string) ([]repositories.Row, error) {
	r.byUserIDCalls = append(r.byUserIDCalls, userID)
	return r.submissionRows, nil
}

func (r *memReportRepo) SubmittedCandidateRowsByAssignedBy(userName string) ([]repositories.Row, error) {
	r.byAssignedByCalls = append(r.byAssignedByCalls, userName)
	return r.submissionRows, nil
}

func (r *memReportRepo) ScheduledInterviewRows(string) ([]repositories.Row, error) {
	return r.interviewRows, nil
}

func (r *memReportRepo) ScheduledInterviewRowsByAssignedBy(string) ([]repositories.Row, error) {
	return r.interviewRows, nil
}

func (r *memReportRepo) PlacementRows(string) ([]repositories.Row, error) {
	return r.placementRows, nil
}

func (r *memReportRepo) PlacementRowsByAssignedBy(string) ([]repositories.Row, error) {
	return r.placementRows, nil
}

func (r *memReportRepo) JobDetailRows(string) ([]repositories.Row, error) {
	return r.jobRows, nil
}

func (r *memReportRepo) JobDetailRowsByAssignedBy(string) ([]repositories.Row, error) {
	return r.jobRows, nil
}

func (r *memReportRepo) ClientDetailRows(string) ([]repositories.Row, error) {
	return r.clientRows, nil
}

func (r *memReportRepo) ClientDetailRowsByAssignedBy(string) ([]repositories.Row, error) {
	return r.clientRows, nil
}

func (r *memReportRepo) EmployeeDetailRows(string) ([]repositories.Row, error) {
	return r.employeeRows, nil
}

func (r *memReportRepo) CandidateRowsByJobAndRecruiter(jobID, recruiterID string) ([]repositories.Row, error) {
	return r.candidatesByJob[jobID+"/"+recruiterID], nil
}

func (r *memReportRepo) InterviewRowsByJobAndRecruiter(jobID, recruiterID string) ([]repositories.Row, error) {
	return r.interviewsByJob[jobID+"/"+recruiterID], nil
}

func (r *memReportRepo) EmployeeStatsRows() ([]repositories.Row, error) {
	return r.employeeStats, nil
}

func (r *memReportRepo) TeamleadStatsRows() ([]repositories.Row, error) {
	return r.teamleadStats, nil
}

func (r *memReportRepo) CountSubmissionsByJobID(jobID string) (int, error) {
	return r.submissionCounts[jobID], nil
}

func (r *memReportRepo) CountInterviewsByJobID(jobID string) (int, error) {
	return r.interviewCounts[jobID], nil
}

var _ repositories.ReportRepository = (*memReportRepo)(nil)

// captureQueue records enqueued job ids instead of sending mail.
type captureQueue struct {
	jobIDs []string
}

func (q *captureQueue) Enqueue(jobID string) {
	q.jobIDs = append(q.jobIDs, jobID)
}

// stubExtractor returns a fixed extraction result.
type stubExtractor struct {
	result *ExtractedDescription
	err    error
}

func (e *stubExtractor) ExtractUpload(*multipart.FileHeader) (*ExtractedDescription, error) {
	return e.result, e.err
}

// captureTransport records every mail send and can fail selected recipients.
// Safe for concurrent use so worker tests can assert on it.
type captureTransport struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]bool
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (t *captureTransport) Send(to, subject, body string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failFor[to] {
		return errors.New("smtp unavailable")
	}
	t.sent = append(t.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (t *captureTransport) sentMails() []sentMail {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]sentMail(nil), t.sent...)
}

func statusJSON(statuses ...string) string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range statuses {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"status":"` + s + `"}`)
	}
	b.WriteString("]")
	return b.String()
}
