package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"dataquad/recruitops/internal/models"
)

// ErrorHandler turns domain errors into {statusCode, message, timestamp}
// payloads. Anything outside the taxonomy is reported as a 500 without
// leaking internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "An unexpected error occurred. Please try again later."

	switch models.KindOf(err) {
	case models.ErrKindAlreadyExists, models.ErrKindAlreadyAssigned:
		code = fiber.StatusConflict
		message = err.Error()
	case models.ErrKindNotFound, models.ErrKindNoJobsAssigned, models.ErrKindUnresolvedAssignee:
		code = fiber.StatusNotFound
		message = err.Error()
	case models.ErrKindDateRangeInvalid, models.ErrKindUnsupportedFileType,
		models.ErrKindEmptyFile, models.ErrKindInvalidInput:
		code = fiber.StatusBadRequest
		message = err.Error()
	default:
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		} else {
			log.Printf("❌ Unhandled error: %v", err)
		}
	}

	return c.Status(code).JSON(models.ErrorResponse{
		StatusCode: code,
		Message:    message,
		Timestamp:  time.Now(),
	})
}
