package models

import "time"

type CreateRequirementRequest struct {
	JobID              string   `json:"jobId"`
	JobTitle           string   `json:"jobTitle"`
	ClientName         string   `json:"clientName"`
	JobDescription     string   `json:"jobDescription"`
	JobType            string   `json:"jobType"`
	Location           string   `json:"location"`
	JobMode            string   `json:"jobMode"`
	ExperienceRequired string   `json:"experienceRequired"`
	NoticePeriod       string   `json:"noticePeriod"`
	RelevantExperience string   `json:"relevantExperience"`
	Qualification      string   `json:"qualification"`
	SalaryPackage      string   `json:"salaryPackage"`
	NoOfPositions      int      `json:"noOfPositions"`
	RecruiterIDs       []string `json:"recruiterIds"`
	RecruiterName      string   `json:"recruiterName"`
	AssignedBy         string   `json:"assignedBy"`
}

type CreateRequirementResponse struct {
	JobID    string `json:"jobId"`
	JobTitle string `json:"jobTitle"`
	Message  string `json:"message"`
}

// RequirementPatch is a partial update: nil fields stay untouched. The
// description pair keeps its text-xor-blob invariant when either side is set.
type RequirementPatch struct {
	JobTitle           *string   `json:"jobTitle"`
	ClientName         *string   `json:"clientName"`
	JobDescription     *string   `json:"jobDescription"`
	JobDescriptionBlob []byte    `json:"jobDescriptionBlob"`
	JobType            *string   `json:"jobType"`
	Location           *string   `json:"location"`
	JobMode            *string   `json:"jobMode"`
	ExperienceRequired *string   `json:"experienceRequired"`
	NoticePeriod       *string   `json:"noticePeriod"`
	RelevantExperience *string   `json:"relevantExperience"`
	Qualification      *string   `json:"qualification"`
	SalaryPackage      *string   `json:"salaryPackage"`
	NoOfPositions      *int      `json:"noOfPositions"`
	RecruiterIDs       *[]string `json:"recruiterIds"`
	RecruiterName      *string   `json:"recruiterName"`
	AssignedBy         *string   `json:"assignedBy"`
	Status             *string   `json:"status"`
}

type AssignRecruitersRequest struct {
	RecruiterIDs []string `json:"recruiterIds"`
}

type AssignRecruitersResponse struct {
	JobID        string   `json:"jobId"`
	RecruiterIDs []string `json:"recruiterIds"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// RequirementListing is a requirement enriched with pipeline counts for the
// active-requirements listing.
type RequirementListing struct {
	Requirement
	NumberOfSubmissions int `json:"numberOfSubmissions"`
	NumberOfInterviews  int `json:"numberOfInterviews"`
}

// RecruiterRequirement is the recruiter-facing view of an assigned job.
type RecruiterRequirement struct {
	JobID                     string    `json:"jobId"`
	JobTitle                  string    `json:"jobTitle"`
	ClientName                string    `json:"clientName"`
	JobDescription            string    `json:"jobDescription,omitempty"`
	JobType                   string    `json:"jobType"`
	Location                  string    `json:"location"`
	JobMode                   string    `json:"jobMode"`
	ExperienceRequired        string    `json:"experienceRequired"`
	NoticePeriod              string    `json:"noticePeriod"`
	RelevantExperience        string    `json:"relevantExperience"`
	Qualification             string    `json:"qualification"`
	SalaryPackage             string    `json:"salaryPackage"`
	NoOfPositions             int       `json:"noOfPositions"`
	RequirementAddedTimeStamp time.Time `json:"requirementAddedTimeStamp"`
	Status                    string    `json:"status"`
	AssignedBy                string    `json:"assignedBy"`
	Age                       string    `json:"age"`
}

type RecruiterInfo struct {
	RecruiterID   string `json:"recruiterId"`
	RecruiterName string `json:"recruiterName"`
}

// RecruiterDetails groups candidates per recruiter for one requirement.
type RecruiterDetails struct {
	Recruiters          []RecruiterInfo                 `json:"recruiters"`
	SubmittedCandidates map[string][]SubmittedCandidate `json:"submittedCandidates"`
	ScheduledInterviews map[string][]InterviewScheduled `json:"interviewScheduledCandidates"`
}

// CandidateReport is the per-user dashboard: every section keyed by normalized
// client name, plus the flat employee details list.
type CandidateReport struct {
	Submissions     *ClientGroups[SubmittedCandidate] `json:"submissions"`
	Interviews      *ClientGroups[InterviewScheduled] `json:"interviews"`
	Placements      *ClientGroups[PlacementDetails]   `json:"placements"`
	Jobs            *ClientGroups[JobDetails]         `json:"jobs"`
	Clients         *ClientGroups[ClientDetails]      `json:"clients"`
	EmployeeDetails []EmployeeDetails                 `json:"employeeDetails"`
}

type CandidateStatsResponse struct {
	UserStats []UserStats `json:"userStats"`
}

type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}
