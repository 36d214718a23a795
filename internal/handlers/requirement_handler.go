package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"dataquad/recruitops/internal/models"
	"dataquad/recruitops/internal/services"
)

const dateLayout = "2006-01-02"

type RequirementHandler struct {
	reqService services.RequirementService
}

func NewRequirementHandler(reqService services.RequirementService) *RequirementHandler {
	return &RequirementHandler{reqService: reqService}
}

// HandleCreate handles POST /requirements. Accepts a JSON body, or a
// multipart form when a job-description file is attached.
func (h *RequirementHandler) HandleCreate(c *fiber.Ctx) error {
	req, jdFile, err := parseCreateRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.reqService.Create(req, jdFile)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func parseCreateRequest(c *fiber.Ctx) (*models.CreateRequirementRequest, *multipart.FileHeader, error) {
	contentType := c.Get(fiber.HeaderContentType)
	if !strings.Contains(contentType, "multipart/form-data") {
		var req models.CreateRequirementRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, nil, models.NewDomainError(models.ErrKindInvalidInput, "Invalid request payload")
		}
		return &req, nil, nil
	}

	req := &models.CreateRequirementRequest{
		JobID:              c.FormValue("jobId"),
		JobTitle:           c.FormValue("jobTitle"),
		ClientName:         c.FormValue("clientName"),
		JobDescription:     c.FormValue("jobDescription"),
		JobType:            c.FormValue("jobType"),
		Location:           c.FormValue("location"),
		JobMode:            c.FormValue("jobMode"),
		ExperienceRequired: c.FormValue("experienceRequired"),
		NoticePeriod:       c.FormValue("noticePeriod"),
		RelevantExperience: c.FormValue("relevantExperience"),
		Qualification:      c.FormValue("qualification"),
		SalaryPackage:      c.FormValue("salaryPackage"),
		RecruiterIDs:       parseIDList(c.FormValue("recruiterIds")),
		RecruiterName:      c.FormValue("recruiterName"),
		AssignedBy:         c.FormValue("assignedBy"),
	}
	if positions := c.FormValue("noOfPositions"); positions != "" {
		n, err := strconv.Atoi(positions)
		if err != nil {
			return nil, nil, models.NewDomainError(models.ErrKindInvalidInput, "noOfPositions must be a number")
		}
		req.NoOfPositions = n
	}

	jdFile, err := c.FormFile("jobDescriptionFile")
	if err != nil {
		jdFile = nil
	}
	return req, jdFile, nil
}

// parseIDList accepts either a JSON array or a comma-separated list.
func parseIDList(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err == nil {
		return ids
	}
	for _, id := range strings.Split(raw, ",") {
		ids = append(ids, strings.TrimSpace(id))
	}
	return ids
}

func (h *RequirementHandler) HandleGet(c *fiber.Ctx) error {
	req, err := h.reqService.GetByID(c.Params("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(req)
}

func (h *RequirementHandler) HandleList(c *fiber.Ctx) error {
	listings, err := h.reqService.ListActive()
	if err != nil {
		return err
	}
	return c.JSON(listings)
}

func (h *RequirementHandler) HandleListByDateRange(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return err
	}
	listings, err := h.reqService.ListByDateRange(start, end)
	if err != nil {
		return err
	}
	return c.JSON(listings)
}

func (h *RequirementHandler) HandleAssignRecruiters(c *fiber.Ctx) error {
	var req models.AssignRecruitersRequest
	if err := c.BodyParser(&req); err != nil {
		return models.NewDomainError(models.ErrKindInvalidInput, "Invalid request payload")
	}

	resp, err := h.reqService.AssignRecruiters(c.Params("jobId"), req.RecruiterIDs)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *RequirementHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.NewDomainError(models.ErrKindInvalidInput, "Invalid request payload")
	}
	if req.Status == "" {
		return models.NewDomainError(models.ErrKindInvalidInput, "status is required")
	}

	if err := h.reqService.UpdateStatus(c.Params("jobId"), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Status Updated Successfully"})
}

func (h *RequirementHandler) HandleUpdate(c *fiber.Ctx) error {
	contentType := c.Get(fiber.HeaderContentType)

	var patch models.RequirementPatch
	var jdFile *multipart.FileHeader

	if strings.Contains(contentType, "multipart/form-data") {
		patch = patchFromForm(c)
		if f, err := c.FormFile("jobDescriptionFile"); err == nil {
			jdFile = f
		}
	} else if err := c.BodyParser(&patch); err != nil {
		return models.NewDomainError(models.ErrKindInvalidInput, "Invalid request payload")
	}

	if err := h.reqService.Update(c.Params("jobId"), &patch, jdFile); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Updated Successfully"})
}

func patchFromForm(c *fiber.Ctx) models.RequirementPatch {
	var patch models.RequirementPatch
	set := func(field string, target **string) {
		if v := c.FormValue(field); v != "" {
			*target = &v
		}
	}
	set("jobTitle", &patch.JobTitle)
	set("clientName", &patch.ClientName)
	set("jobDescription", &patch.JobDescription)
	set("jobType", &patch.JobType)
	set("location", &patch.Location)
	set("jobMode", &patch.JobMode)
	set("experienceRequired", &patch.ExperienceRequired)
	set("noticePeriod", &patch.NoticePeriod)
	set("relevantExperience", &patch.RelevantExperience)
	set("qualification", &patch.Qualification)
	set("salaryPackage", &patch.SalaryPackage)
	set("recruiterName", &patch.RecruiterName)
	set("assignedBy", &patch.AssignedBy)
	set("status", &patch.Status)
	if positions := c.FormValue("noOfPositions"); positions != "" {
		if n, err := strconv.Atoi(positions); err == nil {
			patch.NoOfPositions = &n
		}
	}
	if raw := c.FormValue("recruiterIds"); raw != "" {
		ids := parseIDList(raw)
		patch.RecruiterIDs = &ids
	}
	return patch
}

func (h *RequirementHandler) HandleDelete(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if err := h.reqService.Delete(jobID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Deleted Successfully", "jobId": jobID})
}

func (h *RequirementHandler) HandleJobsForRecruiter(c *fiber.Ctx) error {
	recruiterID := c.Params("recruiterId")

	if c.Query("startDate") != "" || c.Query("endDate") != "" {
		start, end, err := parseDateRange(c)
		if err != nil {
			return err
		}
		jobs, err := h.reqService.JobsForRecruiterByDate(recruiterID, start, end)
		if err != nil {
			return err
		}
		return c.JSON(jobs)
	}

	jobs, err := h.reqService.JobsForRecruiter(recruiterID)
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

func (h *RequirementHandler) HandleRequirementsByAssigner(c *fiber.Ctx) error {
	userID := c.Params("userId")

	if c.Query("startDate") != "" || c.Query("endDate") != "" {
		start, end, err := parseDateRange(c)
		if err != nil {
			return err
		}
		reqs, err := h.reqService.RequirementsByAssignerAndDateRange(userID, start, end)
		if err != nil {
			return err
		}
		return c.JSON(reqs)
	}

	reqs, err := h.reqService.RequirementsByAssigner(userID)
	if err != nil {
		return err
	}
	return c.JSON(reqs)
}

// parseDateRange reads startDate/endDate query params. Missing params come
// back as zero times; the service decides whether that is acceptable.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if raw := c.Query("startDate"); raw != "" {
		start, err = time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, models.ErrDateRangeInvalid("Invalid date format. Use yyyy-MM-dd (e.g., 2025-04-30).")
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err = time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, models.ErrDateRangeInvalid("Invalid date format. Use yyyy-MM-dd (e.g., 2025-04-30).")
		}
	}
	return start, end, nil
}
