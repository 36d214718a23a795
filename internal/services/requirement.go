package services

import (
	"log"
	"mime/multipart"
	"time"

	"dataquad/recruitops/internal/models"
	"dataquad/recruitops/internal/repositories"
)

// notifyQueue is the slice of NotifyWorker mutations depend on.
type notifyQueue interface {
	Enqueue(jobID string)
}

type RequirementService interface {
	Create(req *models.CreateRequirementRequest, jdFile *multipart.FileHeader) (*models.CreateRequirementResponse, error)
	GetByID(jobID string) (*models.Requirement, error)
	ListActive() ([]models.RequirementListing, error)
	ListByDateRange(start, end time.Time) ([]models.RequirementListing, error)
	AssignRecruiters(jobID string, recruiterIDs []string) (*models.AssignRecruitersResponse, error)
	UpdateStatus(jobID, status string) error
	Update(jobID string, patch *models.RequirementPatch, jdFile *multipart.FileHeader) error
	Delete(jobID string) error
	JobsForRecruiter(recruiterID string) ([]models.RecruiterRequirement, error)
	JobsForRecruiterByDate(recruiterID string, start, end time.Time) ([]models.RecruiterRequirement, error)
	RequirementsByAssigner(userID string) ([]models.Requirement, error)
	RequirementsByAssignerAndDateRange(userID string, start, end time.Time) ([]models.Requirement, error)
}

type requirementService struct {
	reqRepo    repositories.RequirementRepository
	userRepo   repositories.UserRepository
	reportRepo repositories.ReportRepository
	extractor  TextExtractor
	notifier   notifyQueue
}

func NewRequirementService(
	reqRepo repositories.RequirementRepository,
	userRepo repositories.UserRepository,
	reportRepo repositories.ReportRepository,
	extractor TextExtractor,
	notifier notifyQueue,
) RequirementService {
	return &requirementService{
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		reportRepo: reportRepo,
		extractor:  extractor,
		notifier:   notifier,
	}
}

// CleanRecruiterID strips quotes, brackets and whitespace from a recruiter
// identifier. Cleaning is idempotent, so two raw spellings of the same id
// always normalize to the same value.
func CleanRecruiterID(raw string) string {
	var b []rune
	for _, r := range raw {
		switch {
		case r == '"' || r == '[' || r == ']':
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v':
		default:
			b = append(b, r)
		}
	}
	return string(b)
}

func cleanRecruiterIDs(raw []string) models.StringSet {
	cleaned := make([]string, 0, len(raw))
	for _, id := range raw {
		cleaned = append(cleaned, CleanRecruiterID(id))
	}
	return models.NewStringSet(cleaned)
}

func (s *requirementService) Create(in *models.CreateRequirementRequest, jdFile *multipart.FileHeader) (*models.CreateRequirementResponse, error) {
	if in.JobDescription != "" && jdFile != nil {
		return nil, models.NewDomainError(models.ErrKindInvalidInput,
			"You can either provide a job description text or upload a job description file, but not both.")
	}

	req := &models.Requirement{
		JobID:              in.JobID,
		JobTitle:           in.JobTitle,
		ClientName:         in.ClientName,
		JobType:            in.JobType,
		Location:           in.Location,
		JobMode:            in.JobMode,
		ExperienceRequired: in.ExperienceRequired,
		NoticePeriod:       in.NoticePeriod,
		RelevantExperience: in.RelevantExperience,
		Qualification:      in.Qualification,
		SalaryPackage:      in.SalaryPackage,
		NoOfPositions:      in.NoOfPositions,
		RecruiterIDs:       cleanRecruiterIDs(in.RecruiterIDs),
		RecruiterName:      in.RecruiterName,
		AssignedBy:         in.AssignedBy,
	}

	if in.JobDescription != "" {
		req.SetDescriptionText(in.JobDescription)
	}
	if jdFile != nil {
		extracted, err := s.extractor.ExtractUpload(jdFile)
		if err != nil {
			return nil, err
		}
		if extracted.IsImage {
			req.SetDescriptionBlob(extracted.ImageData)
		} else {
			req.SetDescriptionText(extracted.Text)
		}
	}

	if req.JobID == "" {
		req.JobID = models.GenerateJobID()
	} else {
		exists, err := s.reqRepo.ExistsByID(req.JobID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrAlreadyExists(req.JobID)
		}
	}

	req.Status = models.StatusInProgress
	req.RequirementAddedTimeStamp = time.Now()

	if err := s.reqRepo.Create(req); err != nil {
		return nil, err
	}

	s.notifier.Enqueue(req.JobID)

	return &models.CreateRequirementResponse{
		JobID:    req.JobID,
		JobTitle: req.JobTitle,
		Message:  "Requirement Added Successfully",
	}, nil
}

func (s *requirementService) GetByID(jobID string) (*models.Requirement, error) {
	return s.reqRepo.FindByID(jobID)
}

func (s *requirementService) ListActive() ([]models.RequirementListing, error) {
	reqs, err := s.reqRepo.FindActive()
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, models.NewDomainError(models.ErrKindNotFound, "Requirements Not Found")
	}
	return s.withCounts(reqs)
}

func (s *requirementService) ListByDateRange(start, end time.Time) ([]models.RequirementListing, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}
	if start.Before(time.Now().AddDate(0, -1, 0)) {
		return nil, models.ErrDateRangeInvalid("Start date must be within the last 1 month.")
	}

	reqs, err := s.reqRepo.FindByDateRange(startOfDay(start), endOfDay(end))
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, models.NewDomainError(models.ErrKindNotFound,
			"No requirements found between %s and %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	log.Printf("✅ Fetched %d requirements between %s and %s",
		len(reqs), start.Format("2006-01-02"), end.Format("2006-01-02"))
	return s.withCounts(reqs)
}

func (s *requirementService) withCounts(reqs []models.Requirement) ([]models.RequirementListing, error) {
	listings := make([]models.RequirementListing, 0, len(reqs))
	for _, req := range reqs {
		submissions, err := s.reportRepo.CountSubmissionsByJobID(req.JobID)
		if err != nil {
			return nil, err
		}
		interviews, err := s.reportRepo.CountInterviewsByJobID(req.JobID)
		if err != nil {
			return nil, err
		}
		listings = append(listings, models.RequirementListing{
			Requirement:         req,
			NumberOfSubmissions: submissions,
			NumberOfInterviews:  interviews,
		})
	}
	return listings, nil
}

func (s *requirementService) AssignRecruiters(jobID string, recruiterIDs []string) (*models.AssignRecruitersResponse, error) {
	req, err := s.reqRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	cleaned := cleanRecruiterIDs(recruiterIDs)
	if cleaned.Equal(req.RecruiterIDs) {
		return nil, models.ErrAlreadyAssigned(jobID)
	}

	// Replace, not merge.
	req.RecruiterIDs = cleaned
	if err := s.reqRepo.Save(req); err != nil {
		return nil, err
	}

	s.notifier.Enqueue(jobID)

	return &models.AssignRecruitersResponse{JobID: jobID, RecruiterIDs: cleaned}, nil
}

func (s *requirementService) UpdateStatus(jobID, status string) error {
	req, err := s.reqRepo.FindByID(jobID)
	if err != nil {
		return err
	}
	req.Status = status
	return s.reqRepo.Save(req)
}

func (s *requirementService) Update(jobID string, patch *models.RequirementPatch, jdFile *multipart.FileHeader) error {
	req, err := s.reqRepo.FindByID(jobID)
	if err != nil {
		return err
	}

	if patch.JobTitle != nil {
		req.JobTitle = *patch.JobTitle
	}
	if patch.ClientName != nil {
		req.ClientName = *patch.ClientName
	}
	if patch.JobDescription != nil && *patch.JobDescription != "" {
		req.SetDescriptionText(*patch.JobDescription)
	}
	if jdFile != nil {
		extracted, err := s.extractor.ExtractUpload(jdFile)
		if err != nil {
			return err
		}
		if extracted.IsImage {
			req.SetDescriptionBlob(extracted.ImageData)
		} else {
			req.SetDescriptionText(extracted.Text)
		}
	} else if len(patch.JobDescriptionBlob) > 0 {
		req.SetDescriptionBlob(patch.JobDescriptionBlob)
	}
	if patch.JobType != nil {
		req.JobType = *patch.JobType
	}
	if patch.Location != nil {
		req.Location = *patch.Location
	}
	if patch.JobMode != nil {
		req.JobMode = *patch.JobMode
	}
	if patch.ExperienceRequired != nil {
		req.ExperienceRequired = *patch.ExperienceRequired
	}
	if patch.NoticePeriod != nil {
		req.NoticePeriod = *patch.NoticePeriod
	}
	if patch.RelevantExperience != nil {
		req.RelevantExperience = *patch.RelevantExperience
	}
	if patch.Qualification != nil {
		req.Qualification = *patch.Qualification
	}
	if patch.SalaryPackage != nil {
		req.SalaryPackage = *patch.SalaryPackage
	}
	if patch.NoOfPositions != nil {
		req.NoOfPositions = *patch.NoOfPositions
	}
	if patch.RecruiterIDs != nil {
		req.RecruiterIDs = cleanRecruiterIDs(*patch.RecruiterIDs)
	}
	if patch.RecruiterName != nil {
		req.RecruiterName = *patch.RecruiterName
	}
	if patch.AssignedBy != nil {
		req.AssignedBy = *patch.AssignedBy
	}
	if patch.Status != nil {
		req.Status = *patch.Status
	}

	if err := s.reqRepo.Save(req); err != nil {
		return err
	}

	s.notifier.Enqueue(jobID)
	return nil
}

func (s *requirementService) Delete(jobID string) error {
	req, err := s.reqRepo.FindByID(jobID)
	if err != nil {
		return err
	}
	return s.reqRepo.Delete(req)
}

func (s *requirementService) JobsForRecruiter(recruiterID string) ([]models.RecruiterRequirement, error) {
	reqs, err := s.reqRepo.FindByRecruiterID(recruiterID)
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, models.ErrNoJobsAssigned("No Jobs Assigned To Recruiter : " + recruiterID)
	}
	return toRecruiterRequirements(reqs), nil
}

func (s *requirementService) JobsForRecruiterByDate(recruiterID string, start, end time.Time) ([]models.RecruiterRequirement, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	reqs, err := s.reqRepo.FindByRecruiterIDAndDateRange(recruiterID, startOfDay(start), endOfDay(end))
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, models.ErrNoJobsAssigned(
			"No Jobs Assigned To Recruiter: " + recruiterID +
				" between " + start.Format("2006-01-02") + " and " + end.Format("2006-01-02"))
	}
	log.Printf("✅ Fetched %d jobs assigned to recruiter %s", len(reqs), recruiterID)
	return toRecruiterRequirements(reqs), nil
}

func (s *requirementService) RequirementsByAssigner(userID string) ([]models.Requirement, error) {
	assignedBy, err := s.userRepo.FindUserNameByUserID(userID)
	if err != nil {
		return nil, err
	}
	if assignedBy == "" {
		return nil, models.ErrUnresolvedAssignee(userID)
	}

	reqs, err := s.reqRepo.FindByAssignedBy(assignedBy)
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, models.NewDomainError(models.ErrKindNotFound,
			"No requirements found for user ID: '%s'", userID)
	}
	return reqs, nil
}

func (s *requirementService) RequirementsByAssignerAndDateRange(userID string, start, end time.Time) ([]models.Requirement, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	assignedBy, err := s.userRepo.FindUserNameByUserID(userID)
	if err != nil {
		return nil, err
	}
	if assignedBy == "" {
		return nil, models.ErrUnresolvedAssignee(userID)
	}

	reqs, err := s.reqRepo.FindByAssignedByAndDateRange(assignedBy, startOfDay(start), endOfDay(end))
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, models.ErrNoJobsAssigned(
			"No requirements found for userId '" + userID +
				"' between " + start.Format("2006-01-02") + " and " + end.Format("2006-01-02"))
	}
	log.Printf("✅ Fetched %d requirements assigned by '%s' (userId: %s)", len(reqs), assignedBy, userID)
	return reqs, nil
}

// validateDateRange enforces the bound ordering rules before any row source
// is touched.
func validateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return models.ErrDateRangeInvalid("Start date and End date must not be null.")
	}
	if end.Before(start) {
		return models.ErrDateRangeInvalid("End date cannot be before start date.")
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func toRecruiterRequirements(reqs []models.Requirement) []models.RecruiterRequirement {
	out := make([]models.RecruiterRequirement, 0, len(reqs))
	for i := range reqs {
		req := &reqs[i]
		out = append(out, models.RecruiterRequirement{
			JobID:                     req.JobID,
			JobTitle:                  req.JobTitle,
			ClientName:                req.ClientName,
			JobDescription:            req.JobDescription,
			JobType:                   req.JobType,
			Location:                  req.Location,
			JobMode:                   req.JobMode,
			ExperienceRequired:        req.ExperienceRequired,
			NoticePeriod:              req.NoticePeriod,
			RelevantExperience:        req.RelevantExperience,
			Qualification:             req.Qualification,
			SalaryPackage:             req.SalaryPackage,
			NoOfPositions:             req.NoOfPositions,
			RequirementAddedTimeStamp: req.RequirementAddedTimeStamp,
			Status:                    req.Status,
			AssignedBy:                req.AssignedBy,
			Age:                       req.Age(),
		})
	}
	return out
}
