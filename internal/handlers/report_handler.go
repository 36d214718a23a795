package handlers

import (
	"github.com/gofiber/fiber/v2"

	"dataquad/recruitops/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// HandleCandidateReport handles GET /users/:userId/dashboard. Teamleads get a
// report over the requirements they assigned, everyone else over their own.
func (h *ReportHandler) HandleCandidateReport(c *fiber.Ctx) error {
	report, err := h.reportService.CandidateReport(c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

func (h *ReportHandler) HandleCandidateStats(c *fiber.Ctx) error {
	stats, err := h.reportService.CandidateStats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// HandleRecruiterDetails handles GET /requirements/:jobId/recruiters.
func (h *ReportHandler) HandleRecruiterDetails(c *fiber.Ctx) error {
	details, err := h.reportService.RecruiterDetails(c.Params("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(details)
}
