package models

import "encoding/json"

// ClientNamed is implemented by every report record that carries a client name,
// so the grouping engine does not need to inspect concrete types.
type ClientNamed interface {
	GetClientName() string
}

type SubmittedCandidate struct {
	CandidateID      string `json:"candidateId"`
	FullName         string `json:"fullName"`
	CandidateEmailID string `json:"candidateEmailId"`
	ContactNumber    string `json:"contactNumber"`
	Qualification    string `json:"qualification"`
	Skills           string `json:"skills"`
	OverallFeedback  string `json:"overallFeedback,omitempty"`
	JobID            string `json:"jobId"`
	JobTitle         string `json:"jobTitle"`
	ClientName       string `json:"clientName"`
}

func (c SubmittedCandidate) GetClientName() string { return c.ClientName }

type InterviewScheduled struct {
	CandidateID       string `json:"candidateId"`
	FullName          string `json:"fullName"`
	CandidateEmailID  string `json:"candidateEmailId"`
	ContactNumber     string `json:"contactNumber"`
	Qualification     string `json:"qualification"`
	Skills            string `json:"skills"`
	InterviewStatus   string `json:"interviewStatus"`
	InterviewLevel    string `json:"interviewLevel"`
	InterviewDateTime string `json:"interviewDateTime,omitempty"`
	JobID             string `json:"jobId"`
	JobTitle          string `json:"jobTitle"`
	ClientName        string `json:"clientName"`
}

func (c InterviewScheduled) GetClientName() string { return c.ClientName }

type PlacementDetails struct {
	CandidateID      string `json:"candidateId"`
	FullName         string `json:"fullName"`
	CandidateEmailID string `json:"candidateEmailId"`
	ContactNumber    string `json:"contactNumber,omitempty"`
	Qualification    string `json:"qualification,omitempty"`
	Skills           string `json:"skills,omitempty"`
	InterviewStatus  string `json:"interviewStatus,omitempty"`
	JobID            string `json:"jobId"`
	JobTitle         string `json:"jobTitle"`
	ClientName       string `json:"clientName"`
}

func (p PlacementDetails) GetClientName() string { return p.ClientName }

type JobDetails struct {
	JobID         string `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	ClientName    string `json:"clientName"`
	AssignedBy    string `json:"assignedBy"`
	Status        string `json:"status"`
	NoOfPositions int    `json:"noOfPositions"`
	Qualification string `json:"qualification"`
	JobType       string `json:"jobType"`
	JobMode       string `json:"jobMode"`
	PostedDate    string `json:"postedDate,omitempty"`
}

func (j JobDetails) GetClientName() string { return j.ClientName }

type ClientDetails struct {
	ClientID               string `json:"clientId"`
	ClientName             string `json:"clientName"`
	ClientAddress          string `json:"clientAddress"`
	OnBoardedBy            string `json:"onBoardedBy"`
	ClientSpocName         string `json:"clientSpocName"`
	ClientSpocMobileNumber string `json:"clientSpocMobileNumber"`
}

func (c ClientDetails) GetClientName() string { return c.ClientName }

type EmployeeDetails struct {
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	Role          string `json:"role"`
	EmployeeEmail string `json:"employeeEmail"`
	Designation   string `json:"designation"`
	JoiningDate   string `json:"joiningDate,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DOB           string `json:"dob,omitempty"`
	PhoneNumber   string `json:"phoneNumber"`
	PersonalEmail string `json:"personalEmail,omitempty"`
	Status        string `json:"status"`
}

const (
	RoleEmployee = "Employee"
	RoleTeamlead = "Teamlead"
)

// UserStats carries role-specific aggregate counters. Employee rows fill the
// plain counters, teamlead rows fill the self/team split; the unused side stays
// nil and is omitted from JSON.
type UserStats struct {
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	EmployeeEmail string `json:"employeeEmail"`
	Role          string `json:"role"`

	NumberOfClients      int `json:"numberOfClients"`
	NumberOfRequirements int `json:"numberOfRequirements"`

	NumberOfSubmissions *int `json:"numberOfSubmissions,omitempty"`
	NumberOfInterviews  *int `json:"numberOfInterviews,omitempty"`
	NumberOfPlacements  *int `json:"numberOfPlacements,omitempty"`

	SelfSubmissions *int `json:"selfSubmissions,omitempty"`
	SelfInterviews  *int `json:"selfInterviews,omitempty"`
	SelfPlacements  *int `json:"selfPlacements,omitempty"`
	TeamSubmissions *int `json:"teamSubmissions,omitempty"`
	TeamInterviews  *int `json:"teamInterviews,omitempty"`
	TeamPlacements  *int `json:"teamPlacements,omitempty"`
}

// ClientGroups is an ordered client-name-keyed grouping. Keys keep the order of
// first appearance in the source list, which MarshalJSON preserves.
type ClientGroups[T ClientNamed] struct {
	keys   []string
	groups map[string][]T
}

func NewClientGroups[T ClientNamed]() *ClientGroups[T] {
	return &ClientGroups[T]{groups: make(map[string][]T)}
}

func (g *ClientGroups[T]) Add(key string, item T) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], item)
}

func (g *ClientGroups[T]) Keys() []string {
	return g.keys
}

func (g *ClientGroups[T]) Get(key string) []T {
	return g.groups[key]
}

func (g *ClientGroups[T]) Len() int {
	return len(g.keys)
}

func (g *ClientGroups[T]) MarshalJSON() ([]byte, error) {
	var buf []byte
	buf = append(buf, '{')
	for i, key := range g.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(g.groups[key])
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	buf = append(buf, '}')
	return buf, nil
}
