package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringSet is a set of identifiers stored as a JSON array column.
// Elements are unique and kept sorted so two sets compare deterministically.
type StringSet []string

func NewStringSet(ids []string) StringSet {
	seen := make(map[string]struct{}, len(ids))
	var set StringSet
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	sort.Strings(set)
	return set
}

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		s = StringSet{}
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringSet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for StringSet: %T", value)
	}
}

func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

const StatusInProgress = "In Progress"

type Requirement struct {
	JobID                     string    `gorm:"primaryKey;type:text" json:"jobId"`
	JobTitle                  string    `gorm:"type:text" json:"jobTitle"`
	ClientName                string    `gorm:"type:text" json:"clientName"`
	JobDescription            string    `gorm:"type:text" json:"jobDescription,omitempty"`
	JobDescriptionBlob        []byte    `gorm:"type:bytea" json:"jobDescriptionBlob,omitempty"`
	JobType                   string    `gorm:"type:text" json:"jobType"`
	Location                  string    `gorm:"type:text" json:"location"`
	JobMode                   string    `gorm:"type:text" json:"jobMode"`
	ExperienceRequired        string    `gorm:"type:text" json:"experienceRequired"`
	NoticePeriod              string    `gorm:"type:text" json:"noticePeriod"`
	RelevantExperience        string    `gorm:"type:text" json:"relevantExperience"`
	Qualification             string    `gorm:"type:text" json:"qualification"`
	SalaryPackage             string    `gorm:"type:text" json:"salaryPackage"`
	NoOfPositions             int       `gorm:"not null;default:0" json:"noOfPositions"`
	RequirementAddedTimeStamp time.Time `gorm:"type:timestamp" json:"requirementAddedTimeStamp"`
	RecruiterIDs              StringSet `gorm:"type:jsonb;column:recruiter_ids" json:"recruiterIds"`
	RecruiterName             string    `gorm:"type:text" json:"recruiterName,omitempty"`
	Status                    string    `gorm:"type:text" json:"status"`
	AssignedBy                string    `gorm:"type:text" json:"assignedBy"`
}

func (Requirement) TableName() string {
	return "requirements"
}

// SetDescriptionText stores a text description and clears the binary one.
func (r *Requirement) SetDescriptionText(text string) {
	r.JobDescription = text
	r.JobDescriptionBlob = nil
}

// SetDescriptionBlob stores a binary description and clears the text one.
func (r *Requirement) SetDescriptionBlob(blob []byte) {
	r.JobDescriptionBlob = blob
	r.JobDescription = ""
}

// Age formats how long ago the requirement was posted, e.g. "3 days 4 hours".
func (r *Requirement) Age() string {
	if r.RequirementAddedTimeStamp.IsZero() {
		return "N/A"
	}
	d := time.Since(r.RequirementAddedTimeStamp)
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%d days %d hours", days, hours)
}

// GenerateJobID produces a new requirement identifier.
func GenerateJobID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "JOB-" + raw[:8]
}
