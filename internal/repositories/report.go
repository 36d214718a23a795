package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// Row is a single result tuple of named columns; any column may be NULL.
type Row = map[string]interface{}

// ReportRepository is the row source behind the reporting pipeline. All
// queries are hand-written native SQL; mapping and grouping happen in the
// service layer.
type ReportRepository interface {
	SubmittedCandidateRows(userID string) ([]Row, error)
	SubmittedCandidateRowsByAssignedBy(userName string) ([]Row, error)
	ScheduledInterviewRows(userID string) ([]Row, error)
	ScheduledInterviewRowsByAssignedBy(userName string) ([]Row, error)
	PlacementRows(userID string) ([]Row, error)
	PlacementRowsByAssignedBy(userName string) ([]Row, error)
	JobDetailRows(userID string) ([]Row, error)
	JobDetailRowsByAssignedBy(userName string) ([]Row, error)
	ClientDetailRows(userID string) ([]Row, error)
	ClientDetailRowsByAssignedBy(userName string) ([]Row, error)
	EmployeeDetailRows(userID string) ([]Row, error)
	CandidateRowsByJobAndRecruiter(jobID, recruiterID string) ([]Row, error)
	InterviewRowsByJobAndRecruiter(jobID, recruiterID string) ([]Row, error)
	EmployeeStatsRows() ([]Row, error)
	TeamleadStatsRows() ([]Row, error)
	CountSubmissionsByJobID(jobID string) (int, error)
	CountInterviewsByJobID(jobID string) (int, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) rows(query string, args ...interface{}) ([]Row, error) {
	var rows []Row
	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report query failed: %w", err)
	}
	return rows, nil
}

const submittedCandidateSelect = `
SELECT c.candidate_id   AS "candidateId",
       c.full_name      AS "fullName",
       c.candidate_email_id AS "candidateEmailId",
       c.contact_number AS "contactNumber",
       c.qualification  AS "qualification",
       c.skills         AS "skills",
       c.overall_feedback AS "overallFeedback",
       r.job_id         AS "jobId",
       r.job_title      AS "jobTitle",
       r.client_name    AS "clientName"
FROM candidates c
JOIN user_details u ON c.user_id = u.user_id
JOIN requirements r ON c.job_id = r.job_id
`

func (r *reportRepository) SubmittedCandidateRows(userID string) ([]Row, error) {
	return r.rows(submittedCandidateSelect+`WHERE u.user_id = ?`, userID)
}

func (r *reportRepository) SubmittedCandidateRowsByAssignedBy(userName string) ([]Row, error) {
	return r.rows(submittedCandidateSelect+`WHERE r.assigned_by = ?`, userName)
}

// Interview rows are deduplicated per candidate: only the latest row by
// interview_date_time survives. The raw interview_status column is returned
// as-is; the mapper resolves JSON status histories.
const scheduledInterviewSelect = `
SELECT c.candidate_id   AS "candidateId",
       c.full_name      AS "fullName",
       c.candidate_email_id AS "candidateEmailId",
       c.contact_number AS "contactNumber",
       c.qualification  AS "qualification",
       c.skills         AS "skills",
       c.interview_status AS "interviewStatus",
       c.interview_level  AS "interviewLevel",
       c.interview_date_time AS "interviewDateTime",
       r.job_id         AS "jobId",
       r.job_title      AS "jobTitle",
       r.client_name    AS "clientName"
FROM (
    SELECT *,
           ROW_NUMBER() OVER (PARTITION BY candidate_id ORDER BY interview_date_time DESC) AS rn
    FROM candidates
) c
JOIN user_details u ON c.user_id = u.user_id
JOIN requirements r ON c.job_id = r.job_id
WHERE c.rn = 1
  AND c.interview_date_time IS NOT NULL
`

func (r *reportRepository) ScheduledInterviewRows(userID string) ([]Row, error) {
	return r.rows(scheduledInterviewSelect+`  AND u.user_id = ?`, userID)
}

func (r *reportRepository) ScheduledInterviewRowsByAssignedBy(userName string) ([]Row, error) {
	return r.rows(scheduledInterviewSelect+`  AND r.assigned_by = ?`, userName)
}

const placementSelect = `
SELECT c.candidate_id   AS "candidateId",
       c.full_name      AS "fullName",
       c.candidate_email_id AS "candidateEmailId",
       c.contact_number AS "contactNumber",
       c.qualification  AS "qualification",
       c.skills         AS "skills",
       c.interview_status AS "interviewStatus",
       r.job_id         AS "jobId",
       r.job_title      AS "jobTitle",
       r.client_name    AS "clientName"
FROM candidates c
JOIN user_details u ON c.user_id = u.user_id
JOIN requirements r ON c.job_id = r.job_id
WHERE (
    (c.interview_status LIKE '[%' AND c.interview_status::jsonb -> 0 ->> 'status' = 'Placed')
    OR UPPER(c.interview_status) = 'PLACED'
)
`

func (r *reportRepository) PlacementRows(userID string) ([]Row, error) {
	return r.rows(placementSelect+`  AND u.user_id = ?`, userID)
}

func (r *reportRepository) PlacementRowsByAssignedBy(userName string) ([]Row, error) {
	return r.rows(placementSelect+`  AND r.assigned_by = ?`, userName)
}

const jobDetailSelect = `
SELECT r.job_id        AS "jobId",
       TRIM(r.job_title)   AS "jobTitle",
       TRIM(r.client_name) AS "clientName",
       TRIM(BOTH '"' FROM r.assigned_by) AS "assignedBy",
       r.status        AS "status",
       r.no_of_positions AS "noOfPositions",
       r.qualification AS "qualification",
       r.job_type      AS "jobType",
       r.job_mode      AS "jobMode",
       r.requirement_added_time_stamp AS "postedDate"
FROM requirements r
`

func (r *reportRepository) JobDetailRows(userID string) ([]Row, error) {
	return r.rows(jobDetailSelect+`WHERE r.recruiter_ids @> to_jsonb(?::text)`, userID)
}

func (r *reportRepository) JobDetailRowsByAssignedBy(userName string) ([]Row, error) {
	return r.rows(jobDetailSelect+`WHERE r.assigned_by = ?`, userName)
}

// SPOC columns are stored as JSON arrays; they are flattened into plain
// comma-separated strings here so the mapper sees clean scalars.
const clientDetailSelect = `
SELECT DISTINCT
       b.id             AS "clientId",
       b.client_name    AS "clientName",
       b.client_address AS "clientAddress",
       b.on_boarded_by  AS "onBoardedBy",
       TRANSLATE(b.client_spoc_name::text, '["]', '')          AS "clientSpocName",
       TRANSLATE(b.client_spoc_mobile_number::text, '["]', '') AS "clientSpocMobileNumber"
FROM bdm_client b
JOIN requirements r ON LOWER(b.client_name) = LOWER(r.client_name)
`

func (r *reportRepository) ClientDetailRows(userID string) ([]Row, error) {
	return r.rows(clientDetailSelect+`WHERE r.recruiter_ids @> to_jsonb(?::text)`, userID)
}

func (r *reportRepository) ClientDetailRowsByAssignedBy(userName string) ([]Row, error) {
	return r.rows(clientDetailSelect+`WHERE r.assigned_by = ?`, userName)
}

func (r *reportRepository) EmployeeDetailRows(userID string) ([]Row, error) {
	return r.rows(`
SELECT u.user_id      AS "employeeId",
       u.user_name    AS "employeeName",
       r.name         AS "role",
       u.email        AS "employeeEmail",
       u.designation  AS "designation",
       u.joining_date AS "joiningDate",
       u.gender       AS "gender",
       u.dob          AS "dob",
       u.phone_number AS "phoneNumber",
       u.personalemail AS "personalEmail",
       u.status       AS "status"
FROM user_details u
LEFT JOIN user_roles ur ON u.user_id = ur.user_id
LEFT JOIN roles r ON ur.role_id = r.id
WHERE u.user_id = ?`, userID)
}

const candidateByJobSelect = `
SELECT c.candidate_id   AS "candidateId",
       c.full_name      AS "fullName",
       c.candidate_email_id AS "candidateEmailId",
       c.contact_number AS "contactNumber",
       c.qualification  AS "qualification",
       c.skills         AS "skills",
       c.overall_feedback AS "overallFeedback",
       c.interview_status AS "interviewStatus",
       c.interview_level  AS "interviewLevel",
       c.interview_date_time AS "interviewDateTime",
       c.job_id         AS "jobId"
FROM candidates c
WHERE c.job_id = ? AND c.user_id = ?
`

func (r *reportRepository) CandidateRowsByJobAndRecruiter(jobID, recruiterID string) ([]Row, error) {
	return r.rows(candidateByJobSelect, jobID, recruiterID)
}

func (r *reportRepository) InterviewRowsByJobAndRecruiter(jobID, recruiterID string) ([]Row, error) {
	return r.rows(candidateByJobSelect+`  AND c.interview_date_time IS NOT NULL`, jobID, recruiterID)
}

func (r *reportRepository) EmployeeStatsRows() ([]Row, error) {
	return r.rows(`
SELECT u.user_id   AS "employeeId",
       u.user_name AS "employeeName",
       u.email     AS "employeeEmail",

       COALESCE(COUNT(DISTINCT c.candidate_id), 0) AS "numberOfSubmissions",
       COALESCE(SUM(CASE
           WHEN c.interview_status = 'Scheduled' OR c.interview_date_time IS NOT NULL
           THEN 1 ELSE 0
       END), 0) AS "numberOfInterviews",
       COALESCE(SUM(CASE
           WHEN UPPER(c.interview_status) = 'PLACED'
             OR (c.interview_status LIKE '[%' AND c.interview_status::jsonb -> 0 ->> 'status' = 'Placed')
           THEN 1 ELSE 0
       END), 0) AS "numberOfPlacements",

       (SELECT COUNT(DISTINCT rm.client_name)
        FROM requirements rm
        WHERE rm.recruiter_ids @> to_jsonb(u.user_id::text)) AS "numberOfClients",
       (SELECT COUNT(DISTINCT rm.job_id)
        FROM requirements rm
        WHERE rm.recruiter_ids @> to_jsonb(u.user_id::text)) AS "numberOfRequirements"

FROM user_details u
JOIN user_roles ur ON u.user_id = ur.user_id
JOIN roles r ON ur.role_id = r.id
LEFT JOIN candidates c ON c.user_id = u.user_id
WHERE r.name = 'Employee'
GROUP BY u.user_id, u.user_name, u.email`)
}

func (r *reportRepository) TeamleadStatsRows() ([]Row, error) {
	return r.rows(`
SELECT u.user_id   AS "employeeId",
       u.user_name AS "employeeName",
       u.email     AS "employeeEmail",

       (SELECT COUNT(DISTINCT rm.client_name)
        FROM requirements rm
        WHERE rm.recruiter_ids @> to_jsonb(u.user_id::text)) AS "numberOfClients",
       (SELECT COUNT(DISTINCT rm.job_id)
        FROM requirements rm
        WHERE rm.recruiter_ids @> to_jsonb(u.user_id::text)) AS "numberOfRequirements",

       COALESCE(COUNT(DISTINCT c.candidate_id), 0) AS "selfSubmissions",
       COALESCE(SUM(CASE
           WHEN c.interview_status = 'Scheduled' OR c.interview_date_time IS NOT NULL
           THEN 1 ELSE 0
       END), 0) AS "selfInterviews",
       COALESCE(SUM(CASE
           WHEN UPPER(c.interview_status) = 'PLACED'
             OR (c.interview_status LIKE '[%' AND c.interview_status::jsonb -> 0 ->> 'status' = 'Placed')
           THEN 1 ELSE 0
       END), 0) AS "selfPlacements",

       (SELECT COUNT(DISTINCT tc.candidate_id)
        FROM candidates tc
        JOIN requirements tr ON tc.job_id = tr.job_id
        WHERE tr.assigned_by = u.user_name AND tc.user_id != u.user_id) AS "teamSubmissions",
       (SELECT COUNT(DISTINCT tc.candidate_id)
        FROM candidates tc
        JOIN requirements tr ON tc.job_id = tr.job_id
        WHERE tr.assigned_by = u.user_name AND tc.user_id != u.user_id
          AND tc.interview_date_time IS NOT NULL) AS "teamInterviews",
       (SELECT COUNT(DISTINCT tc.candidate_id)
        FROM candidates tc
        JOIN requirements tr ON tc.job_id = tr.job_id
        WHERE tr.assigned_by = u.user_name AND tc.user_id != u.user_id
          AND (UPPER(tc.interview_status) = 'PLACED'
               OR (tc.interview_status LIKE '[%' AND tc.interview_status::jsonb -> 0 ->> 'status' = 'Placed'))) AS "teamPlacements"

FROM user_details u
JOIN user_roles ur ON u.user_id = ur.user_id
JOIN roles r ON ur.role_id = r.id
LEFT JOIN candidates c ON c.user_id = u.user_id
WHERE r.name = 'Teamlead'
GROUP BY u.user_id, u.user_name, u.email`)
}

func (r *reportRepository) CountSubmissionsByJobID(jobID string) (int, error) {
	var count int
	err := r.db.Raw(`SELECT COUNT(*) FROM candidates WHERE job_id = ?`, jobID).Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

func (r *reportRepository) CountInterviewsByJobID(jobID string) (int, error) {
	var count int
	err := r.db.Raw(
		`SELECT COUNT(*) FROM candidates WHERE job_id = ? AND interview_date_time IS NOT NULL`,
		jobID,
	).Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count interviews: %w", err)
	}
	return count, nil
}
