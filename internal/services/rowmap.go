package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"dataquad/recruitops/internal/models"
	"dataquad/recruitops/internal/repositories"
)

const timestampLayout = "2006-01-02 15:04:05"

// rowString reads a column as a string. NULL and missing columns become "".
func rowString(row repositories.Row, column string) string {
	v, ok := row[column]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// rowInt normalizes the numeric representations drivers hand back into an
// int. Decimals truncate toward zero; NULL and unknown types become 0.
func rowInt(v interface{}) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		return parseInt(n.String())
	case []byte:
		return parseInt(string(n))
	case string:
		return parseInt(n)
	default:
		return 0
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// rowTimestamp formats a timestamp column as "yyyy-MM-dd HH:mm:ss" in the
// local zone, or "" when NULL or unreadable.
func rowTimestamp(row repositories.Row, column string) string {
	v, ok := row[column]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case time.Time:
		return t.Local().Format(timestampLayout)
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

type statusEntry struct {
	Status string `json:"status"`
}

// currentInterviewStatus resolves a raw interview-status value. Status
// histories are stored as JSON arrays; the first element is the current one.
// Anything that does not parse as a JSON array is taken verbatim.
func currentInterviewStatus(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return raw
	}
	var entries []statusEntry
	if err := json.Unmarshal([]byte(trimmed), &entries); err != nil || len(entries) == 0 {
		return raw
	}
	return entries[0].Status
}

// The Map*Rows functions convert raw row batches into typed records. A row
// that cannot be mapped is logged and dropped; the batch never fails. The
// second return value is how many rows were dropped.

func MapSubmittedCandidateRows(rows []repositories.Row) ([]models.SubmittedCandidate, int) {
	var out []models.SubmittedCandidate
	dropped := 0
	for _, row := range rows {
		rec, err := mapSubmittedCandidate(row)
		if err != nil {
			log.Printf("⚠️  Dropping submitted-candidate row: %v", err)
			dropped++
			continue
		}
		out = append(out, rec)
	}
	return out, dropped
}

func mapSubmittedCandidate(row repositories.Row) (models.SubmittedCandidate, error) {
	candidateID := rowString(row, "candidateId")
	if candidateID == "" {
		return models.SubmittedCandidate{}, fmt.Errorf("row has no candidateId")
	}
	return models.SubmittedCandidate{
		CandidateID:      candidateID,
		FullName:         rowString(row, "fullName"),
		CandidateEmailID: rowString(row, "candidateEmailId"),
		ContactNumber:    rowString(row, "contactNumber"),
		Qualification:    rowString(row, "qualification"),
		Skills:           rowString(row, "skills"),
		OverallFeedback:  rowString(row, "overallFeedback"),
		JobID:            rowString(row, "jobId"),
		JobTitle:         rowString(row, "jobTitle"),
		ClientName:       rowString(row, "clientName"),
	}, nil
}

func MapInterviewScheduledRows(rows []repositories.Row) ([]models.InterviewScheduled, int) {
	var out []models.InterviewScheduled
	dropped := 0
	for _, row := range rows {
		rec, err := mapInterviewScheduled(row)
		if err != nil {
			log.Printf("⚠️  Dropping interview row: %v", err)
			dropped++
			continue
		}
		out = append(out, rec)
	}
	return out, dropped
}

func mapInterviewScheduled(row repositories.Row) (models.InterviewScheduled, error) {
	candidateID := rowString(row, "candidateId")
	if candidateID == "" {
		return models.InterviewScheduled{}, fmt.Errorf("row has no candidateId")
	}
	return models.InterviewScheduled{
		CandidateID:       candidateID,
		FullName:          rowString(row, "fullName"),
		CandidateEmailID:  rowString(row, "candidateEmailId"),
		ContactNumber:     rowString(row, "contactNumber"),
		Qualification:     rowString(row, "qualification"),
		Skills:            rowString(row, "skills"),
		InterviewStatus:   currentInterviewStatus(rowString(row, "interviewStatus")),
		InterviewLevel:    rowString(row, "interviewLevel"),
		InterviewDateTime: rowTimestamp(row, "interviewDateTime"),
		JobID:             rowString(row, "jobId"),
		JobTitle:          rowString(row, "jobTitle"),
		ClientName:        rowString(row, "clientName"),
	}, nil
}

func MapPlacementRows(rows []repositories.Row) ([]models.PlacementDetails, int) {
	var out []models.PlacementDetails
	dropped := 0
	for _, row := range rows {
		candidateID := rowString(row, "candidateId")
		if candidateID == "" {
			log.Printf("⚠️  Dropping placement row: no candidateId")
			dropped++
			continue
		}
		out = append(out, models.PlacementDetails{
			CandidateID:      candidateID,
			FullName:         rowString(row, "fullName"),
			CandidateEmailID: rowString(row, "candidateEmailId"),
			ContactNumber:    rowString(row, "contactNumber"),
			Qualification:    rowString(row, "qualification"),
			Skills:           rowString(row, "skills"),
			InterviewStatus:  currentInterviewStatus(rowString(row, "interviewStatus")),
			JobID:            rowString(row, "jobId"),
			JobTitle:         rowString(row, "jobTitle"),
			ClientName:       rowString(row, "clientName"),
		})
	}
	return out, dropped
}

func MapJobDetailRows(rows []repositories.Row) ([]models.JobDetails, int) {
	var out []models.JobDetails
	dropped := 0
	for _, row := range rows {
		jobID := rowString(row, "jobId")
		if jobID == "" {
			log.Printf("⚠️  Dropping job-detail row: no jobId")
			dropped++
			continue
		}
		out = append(out, models.JobDetails{
			JobID:         jobID,
			JobTitle:      rowString(row, "jobTitle"),
			ClientName:    rowString(row, "clientName"),
			AssignedBy:    rowString(row, "assignedBy"),
			Status:        rowString(row, "status"),
			NoOfPositions: rowInt(row["noOfPositions"]),
			Qualification: rowString(row, "qualification"),
			JobType:       rowString(row, "jobType"),
			JobMode:       rowString(row, "jobMode"),
			PostedDate:    rowTimestamp(row, "postedDate"),
		})
	}
	return out, dropped
}

func MapClientDetailRows(rows []repositories.Row) ([]models.ClientDetails, int) {
	var out []models.ClientDetails
	dropped := 0
	for _, row := range rows {
		clientName := rowString(row, "clientName")
		if clientName == "" {
			log.Printf("⚠️  Dropping client-detail row: no clientName")
			dropped++
			continue
		}
		out = append(out, models.ClientDetails{
			ClientID:               rowString(row, "clientId"),
			ClientName:             clientName,
			ClientAddress:          rowString(row, "clientAddress"),
			OnBoardedBy:            rowString(row, "onBoardedBy"),
			ClientSpocName:         rowString(row, "clientSpocName"),
			ClientSpocMobileNumber: rowString(row, "clientSpocMobileNumber"),
		})
	}
	return out, dropped
}

func MapEmployeeDetailRows(rows []repositories.Row) []models.EmployeeDetails {
	var out []models.EmployeeDetails
	for _, row := range rows {
		out = append(out, models.EmployeeDetails{
			EmployeeID:    rowString(row, "employeeId"),
			EmployeeName:  rowString(row, "employeeName"),
			Role:          rowString(row, "role"),
			EmployeeEmail: rowString(row, "employeeEmail"),
			Designation:   rowString(row, "designation"),
			JoiningDate:   rowString(row, "joiningDate"),
			Gender:        rowString(row, "gender"),
			DOB:           rowString(row, "dob"),
			PhoneNumber:   rowString(row, "phoneNumber"),
			PersonalEmail: rowString(row, "personalEmail"),
			Status:        rowString(row, "status"),
		})
	}
	return out
}
