package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/altamirahr/hris-service/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendApprovalOutcome notifies an employee that their request reached a
// terminal approval status.
func (s *Sender) SendApprovalOutcome(to, firstName, requestKind, status string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your %s request has been %s", requestKind, status)

	body := fmt.Sprintf(
		"Dear %s,\n\n", firstName,
	)
	if status == "Approved" {
		body += fmt.Sprintf(
			"Your %s request has been fully approved.\n"+
				"You may view the details on the HR dashboard.\n",
			requestKind,
		)
	} else {
		body += fmt.Sprintf(
			"Your %s request has been rejected.\n"+
				"Please contact the HR department if you have questions.\n",
			requestKind,
		)
	}
	body += "\nBest regards,\nHR Administration"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
