package mailer

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/skillforge/marketplace-backend/internal/config"
	"github.com/skillforge/marketplace-backend/internal/models"
)

// Sender is the outbound transport. The production implementation is a
// go-mail SMTP client; tests substitute a fake.
type Sender interface {
	DialAndSend(msgs ...*mail.Msg) error
}

// Service builds and sends the bid decision emails. Sends are synchronous and
// best-effort: no retry, no queueing, no delivery tracking.
type Service struct {
	sender  Sender
	from    string
	formURL string
}

func New(cfg *config.Config) (*Service, error) {
	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPassword),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build smtp client: %w", err)
	}
	return NewWithSender(client, cfg.MailFrom, cfg.AcceptFormURL), nil
}

func NewWithSender(sender Sender, from, formURL string) *Service {
	return &Service{sender: sender, from: from, formURL: formURL}
}

const acceptedBody = `<p>Dear Freelancer,</p>
<p>Your bid has been <strong>accepted</strong>.</p>
<p>Please fill out this form:
<a href="%s" target="_blank">%s</a></p>
<p>Regards,<br/>Freelance Marketplace Team</p>`

const rejectedBody = "Dear Freelancer,\n\nYour bid has been rejected. Thank you for your interest.\n\nBest regards,\nFreelance Marketplace Team"

// Notify sends the templated decision email for the outcome. A send failure
// is returned to the caller as-is so it can be reported separately from the
// already committed status update.
func (s *Service) Notify(toEmail string, outcome models.BidStatus) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(toEmail); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	switch outcome {
	case models.BidAccepted:
		m.Subject("Your Bid Has Been Accepted")
		m.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(acceptedBody, s.formURL, s.formURL))
	case models.BidRejected:
		m.Subject("Your Bid Has Been Rejected")
		m.SetBodyString(mail.TypeTextPlain, rejectedBody)
	default:
		return fmt.Errorf("no template for bid outcome %q", outcome)
	}

	return s.sender.DialAndSend(m)
}
