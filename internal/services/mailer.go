package services

import (
	"fmt"
	"log"

	"github.com/go-gomail/gomail"

	"dataquad/recruitops/internal/models"
	"dataquad/recruitops/internal/repositories"
)

// MailTransport sends one message. Failures are reported to the caller and
// never retried here.
type MailTransport interface {
	Send(to, subject, body string) error
}

type gomailTransport struct {
	dialer *gomail.Dialer
}

func NewGomailTransport(dialer *gomail.Dialer) MailTransport {
	return &gomailTransport{dialer: dialer}
}

func (t *gomailTransport) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", t.dialer.Username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return t.dialer.DialAndSend(m)
}

// MailerService notifies every recruiter assigned to a requirement. One
// recruiter failing to resolve or receive never stops the rest; everything is
// logged and swallowed.
type MailerService interface {
	NotifyRecruiters(req *models.Requirement)
}

type mailerService struct {
	userRepo  repositories.UserRepository
	transport MailTransport
}

func NewMailerService(userRepo repositories.UserRepository, transport MailTransport) MailerService {
	return &mailerService{userRepo: userRepo, transport: transport}
}

func (m *mailerService) NotifyRecruiters(req *models.Requirement) {
	if len(req.RecruiterIDs) == 0 {
		log.Printf("⚠️  No recruiter IDs found for job ID: %s", req.JobID)
		return
	}

	log.Printf("📧 Sending assignment emails to %d recruiters for job ID: %s", len(req.RecruiterIDs), req.JobID)

	for _, recruiterID := range req.RecruiterIDs {
		contact, err := m.userRepo.FindContactByUserID(recruiterID)
		if err != nil {
			log.Printf("❌ Failed to resolve recruiter %s for job ID %s: %v", recruiterID, req.JobID, err)
			continue
		}
		if contact == nil || contact.Email == "" {
			log.Printf("❌ Empty or missing email for recruiter ID %s for job ID %s", recruiterID, req.JobID)
			continue
		}

		subject := "New Job Assignment: " + req.JobTitle
		body := assignmentEmailBody(req, contact.UserName)

		if err := m.transport.Send(contact.Email, subject, body); err != nil {
			log.Printf("❌ Failed to send email to %s <%s> for job ID %s: %v",
				contact.UserName, contact.Email, req.JobID, err)
			continue
		}
		log.Printf("✅ Email sent to %s <%s> for job ID %s", contact.UserName, contact.Email, req.JobID)
	}
}

func assignmentEmailBody(req *models.Requirement, recruiterName string) string {
	return fmt.Sprintf(`Dear %s,

I hope you are doing well.

You have been assigned a new job requirement. Please find the details below:

- Job Title: %s
- Client: %s
- Location: %s
- Job Type: %s
- Experience Required: %s years
- Assigned By: %s

Please review the details and proceed with the necessary actions. Additional information is available on your dashboard.

If you have any questions or need further clarification, feel free to reach out.

Best regards,
Dataquad`,
		recruiterName,
		req.JobTitle,
		req.ClientName,
		req.Location,
		req.JobType,
		req.ExperienceRequired,
		req.AssignedBy,
	)
}
