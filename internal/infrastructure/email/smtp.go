package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8081")
	AppName     string
}

// TicketMailer sends staff-facing ticket notifications over SMTP.
type TicketMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewTicketMailer(config SMTPConfig) *TicketMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &TicketMailer{
		config: config,
		dialer: dialer,
	}
}

func (s *TicketMailer) SendTicketOpened(to string, ticketID uint, title string) error {
	ticketURL := fmt.Sprintf("%s/admin/ticket/%d/view", s.config.BaseURL, ticketID)

	subject := fmt.Sprintf("%s - a new ticket was opened", s.config.AppName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Ticket</h2>
			<p>A user opened a new ticket: <strong>%s</strong></p>
			<p><a href="%s">View the ticket</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, title, ticketURL, ticketURL)

	plainBody := fmt.Sprintf(`
New Ticket

A user opened a new ticket: %s

View it at:
%s
	`, title, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *TicketMailer) SendTicketReplied(to string, ticketID uint, title string) error {
	ticketURL := fmt.Sprintf("%s/admin/ticket/%d/view", s.config.BaseURL, ticketID)

	subject := fmt.Sprintf("%s - a ticket got a new reply", s.config.AppName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Replied</h2>
			<p>A user replied to the ticket: <strong>%s</strong></p>
			<p><a href="%s">View the ticket</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, title, ticketURL, ticketURL)

	plainBody := fmt.Sprintf(`
Ticket Replied

A user replied to the ticket: %s

View it at:
%s
	`, title, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *TicketMailer) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
