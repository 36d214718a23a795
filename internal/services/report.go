package services

import (
	"log"
	"strings"

	"dataquad/recruitops/internal/models"
	"dataquad/recruitops/internal/repositories"
)

type ReportService interface {
	CandidateReport(userID string) (*models.CandidateReport, error)
	CandidateStats() (*models.CandidateStatsResponse, error)
	RecruitersForJob(jobID string) ([]models.RecruiterInfo, error)
	RecruiterDetails(jobID string) (*models.RecruiterDetails, error)
}

type reportService struct {
	reqRepo    repositories.RequirementRepository
	userRepo   repositories.UserRepository
	reportRepo repositories.ReportRepository
}

func NewReportService(
	reqRepo repositories.RequirementRepository,
	userRepo repositories.UserRepository,
	reportRepo repositories.ReportRepository,
) ReportService {
	return &reportService{
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

// CandidateReport assembles the per-user dashboard: submissions, interviews,
// placements, jobs and clients grouped by normalized client name, plus the
// user's employee details. Teamleads see everything assigned by them;
// everyone else sees their own pipeline.
func (s *reportService) CandidateReport(userID string) (*models.CandidateReport, error) {
	role, userName, err := s.userRepo.FindRoleAndUserName(userID)
	if err != nil {
		return nil, err
	}
	if role == "" && userName == "" {
		return nil, models.ErrUnresolvedAssignee(userID)
	}

	var (
		submissionRows, interviewRows, placementRows []repositories.Row
		jobRows, clientRows                          []repositories.Row
	)

	if strings.EqualFold(role, models.RoleTeamlead) {
		if submissionRows, err = s.reportRepo.SubmittedCandidateRowsByAssignedBy(userName); err != nil {
			return nil, err
		}
		if interviewRows, err = s.reportRepo.ScheduledInterviewRowsByAssignedBy(userName); err != nil {
			return nil, err
		}
		if placementRows, err = s.reportRepo.PlacementRowsByAssignedBy(userName); err != nil {
			return nil, err
		}
		if jobRows, err = s.reportRepo.JobDetailRowsByAssignedBy(userName); err != nil {
			return nil, err
		}
		if clientRows, err = s.reportRepo.ClientDetailRowsByAssignedBy(userName); err != nil {
			return nil, err
		}
	} else {
		if submissionRows, err = s.reportRepo.SubmittedCandidateRows(userID); err != nil {
			return nil, err
		}
		if interviewRows, err = s.reportRepo.ScheduledInterviewRows(userID); err != nil {
			return nil, err
		}
		if placementRows, err = s.reportRepo.PlacementRows(userID); err != nil {
			return nil, err
		}
		if jobRows, err = s.reportRepo.JobDetailRows(userID); err != nil {
			return nil, err
		}
		if clientRows, err = s.reportRepo.ClientDetailRows(userID); err != nil {
			return nil, err
		}
	}

	employeeRows, err := s.reportRepo.EmployeeDetailRows(userID)
	if err != nil {
		return nil, err
	}

	submissions, dropped := MapSubmittedCandidateRows(submissionRows)
	interviews, d := MapInterviewScheduledRows(interviewRows)
	dropped += d
	placements, d := MapPlacementRows(placementRows)
	dropped += d
	jobs, d := MapJobDetailRows(jobRows)
	dropped += d
	clients, d := MapClientDetailRows(clientRows)
	dropped += d
	if dropped > 0 {
		log.Printf("⚠️  Candidate report for %s dropped %d unmappable rows", userID, dropped)
	}

	return &models.CandidateReport{
		Submissions:     GroupByClientName(submissions),
		Interviews:      GroupByClientName(interviews),
		Placements:      GroupByClientName(placements),
		Jobs:            GroupByClientName(jobs),
		Clients:         GroupByClientName(clients),
		EmployeeDetails: MapEmployeeDetailRows(employeeRows),
	}, nil
}

func (s *reportService) CandidateStats() (*models.CandidateStatsResponse, error) {
	employeeRows, err := s.reportRepo.EmployeeStatsRows()
	if err != nil {
		return nil, err
	}
	teamleadRows, err := s.reportRepo.TeamleadStatsRows()
	if err != nil {
		return nil, err
	}
	return &models.CandidateStatsResponse{
		UserStats: BuildUserStats(employeeRows, teamleadRows),
	}, nil
}

func (s *reportService) RecruitersForJob(jobID string) ([]models.RecruiterInfo, error) {
	req, err := s.reqRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	var recruiters []models.RecruiterInfo
	for _, recruiterID := range req.RecruiterIDs {
		id := strings.TrimSpace(recruiterID)
		if id == "" {
			continue
		}
		contact, err := s.userRepo.FindContactByUserID(id)
		if err != nil {
			log.Printf("❌ Failed to resolve recruiter %s for job %s: %v", id, jobID, err)
			continue
		}
		if contact == nil {
			log.Printf("⚠️  Recruiter not found for ID %s on job %s", id, jobID)
			continue
		}
		recruiters = append(recruiters, models.RecruiterInfo{
			RecruiterID:   id,
			RecruiterName: contact.UserName,
		})
	}
	return recruiters, nil
}

// RecruiterDetails groups submitted and interview-scheduled candidates by the
// recruiter working a requirement.
func (s *reportService) RecruiterDetails(jobID string) (*models.RecruiterDetails, error) {
	recruiters, err := s.RecruitersForJob(jobID)
	if err != nil {
		return nil, err
	}

	submitted := make(map[string][]models.SubmittedCandidate)
	scheduled := make(map[string][]models.InterviewScheduled)

	for _, recruiter := range recruiters {
		rows, err := s.reportRepo.CandidateRowsByJobAndRecruiter(jobID, recruiter.RecruiterID)
		if err != nil {
			return nil, err
		}
		candidates, _ := MapSubmittedCandidateRows(rows)
		submitted[recruiter.RecruiterName] = candidates

		rows, err = s.reportRepo.InterviewRowsByJobAndRecruiter(jobID, recruiter.RecruiterID)
		if err != nil {
			return nil, err
		}
		interviews, _ := MapInterviewScheduledRows(rows)
		scheduled[recruiter.RecruiterName] = interviews
	}

	return &models.RecruiterDetails{
		Recruiters:          recruiters,
		SubmittedCandidates: submitted,
		ScheduledInterviews: scheduled,
	}, nil
}
