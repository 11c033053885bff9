package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"strings"

	"satyaphoto/internal/config"
	"satyaphoto/internal/domain"
)

// EmailService sends inquiry notifications. When disabled (development) it
// logs the message instead of speaking SMTP.
type EmailService struct {
	cfg config.EmailConfig
}

func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOwnerNotification tells the studio owner about a new inquiry.
func (s *EmailService) SendOwnerNotification(q domain.InquiryRecord) error {
	to := s.cfg.OwnerTo
	if to == "" {
		to = s.cfg.FromEmail
	}
	subject := fmt.Sprintf("New %s Inquiry from %s", q.EventType, q.Name)
	text := fmt.Sprintf(`New photography inquiry received.

Name: %s
Email: %s
Phone: %s
Event type: %s
Event date: %s

Message:
%s
`, q.Name, q.Email, q.Phone, q.EventType, q.EventDate, q.Message)
	return s.sendHTMLEmail(to, subject, ownerTemplate(q), text)
}

// SendUserConfirmation thanks the visitor and restates their request.
func (s *EmailService) SendUserConfirmation(q domain.InquiryRecord) error {
	subject := "Thank you for your inquiry - " + s.cfg.FromName
	text := fmt.Sprintf(`Hi %s,

Thank you for reaching out about your %s on %s. We have received your
inquiry and will get back to you within 24 hours.

%s
`, q.Name, q.EventType, q.EventDate, s.cfg.FromName)
	return s.sendHTMLEmail(q.Email, subject, userTemplate(q, s.cfg.FromName), text)
}

func (s *EmailService) sendHTMLEmail(to, subject, htmlBody, textBody string) error {
	if !s.cfg.Enabled {
		log.Printf("[email] would send to %s: %s", to, subject)
		return nil
	}
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	// The message is assembled by hand, so nothing caller-supplied may carry
	// CR/LF into a header line.
	to = headerSafe(to)
	subject = headerSafe(subject)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", headerSafe(s.cfg.FromName), s.cfg.FromEmail)
	}

	boundary := "----=_Part_satyaphoto"
	msg := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary) +
		fmt.Sprintf("--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, textBody) +
		fmt.Sprintf("--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, htmlBody) +
		fmt.Sprintf("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	return smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(msg))
}

func headerSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

func ownerTemplate(q domain.InquiryRecord) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #000; color: #FFD700; padding: 20px; text-align: center;">
      <h1>New Photography Inquiry</h1>
    </div>
    <div style="background: #f9f9f9; padding: 20px;">
      <p><strong>Name:</strong> %s</p>
      <p><strong>Email:</strong> %s</p>
      <p><strong>Phone:</strong> %s</p>
      <p><strong>Event type:</strong> %s</p>
      <p><strong>Event date:</strong> %s</p>
      <p><strong>Message:</strong><br>%s</p>
    </div>
  </div>
</body>
</html>`, html.EscapeString(q.Name), html.EscapeString(q.Email), html.EscapeString(q.Phone),
		html.EscapeString(q.EventType), html.EscapeString(q.EventDate), html.EscapeString(q.Message))
}

func userTemplate(q domain.InquiryRecord, studio string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #000; color: #FFD700; padding: 20px; text-align: center;">
      <h1>Thank You for Your Inquiry</h1>
    </div>
    <div style="background: #f9f9f9; padding: 20px;">
      <p>Hi %s,</p>
      <p>Thank you for reaching out about your <strong>%s</strong> on
      <strong>%s</strong>. We have received your inquiry and will get back to
      you within 24 hours.</p>
      <p>%s</p>
    </div>
  </div>
</body>
</html>`, html.EscapeString(q.Name), html.EscapeString(q.EventType), html.EscapeString(q.EventDate),
		html.EscapeString(studio))
}
