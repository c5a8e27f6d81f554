// services/mailer.go
package services

import (
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"dealerpro-backend/models"

	"github.com/sirupsen/logrus"
)

// SMTPMailer sends reminder emails over plain SMTP. Delivery failures are
// reported as a false result, not an error; only a missing transport
// configuration produces an error.
type SMTPMailer struct {
	host     string
	port     string
	sender   string
	password string

	dealershipName  string
	dealershipPhone string

	log *logrus.Logger
}

func NewSMTPMailer() *SMTPMailer {
	name := os.Getenv("DEALERSHIP_NAME")
	if name == "" {
		name = "DealerPro"
	}
	return &SMTPMailer{
		host:            os.Getenv("SMTP_HOST"),
		port:            os.Getenv("SMTP_PORT"),
		sender:          os.Getenv("SMTP_SENDER"),
		password:        os.Getenv("SMTP_PASSWORD"),
		dealershipName:  name,
		dealershipPhone: os.Getenv("DEALERSHIP_PHONE"),
		log:             logrus.StandardLogger(),
	}
}

func (m *SMTPMailer) SendReminderEmail(r models.Reminder, to string) (bool, error) {
	if m.host == "" || m.port == "" || m.sender == "" {
		return false, errors.New("smtp transport not configured")
	}

	subject := m.Subject(r)
	plain := m.PlainBody(r)
	html := m.HTMLBody(r)

	msg := buildAlternativeMessage(m.sender, to, subject, plain, html)

	auth := smtp.PlainAuth("", m.sender, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.sender, []string{to}, msg); err != nil {
		m.log.WithError(err).WithField("to", to).Error("smtp send failed")
		return false, nil
	}
	return true, nil
}

// Subject combines the reminder category with the formatted due date,
// e.g. "Maintenance Reminder - Mar 14, 2026".
func (m *SMTPMailer) Subject(r models.Reminder) string {
	return fmt.Sprintf("%s Reminder - %s", reminderTypeLabel(r.ReminderType), r.DueDate.Format("Jan 2, 2006"))
}

func (m *SMTPMailer) PlainBody(r models.Reminder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear customer,\n\n")
	fmt.Fprintf(&b, "This is a friendly reminder from %s.\n\n", m.dealershipName)
	fmt.Fprintf(&b, "Due date: %s\n", r.DueDate.Format("Monday, January 2, 2006"))
	if r.Description != "" {
		fmt.Fprintf(&b, "Details: %s\n", r.Description)
	}
	fmt.Fprintf(&b, "\nIf you have any questions, give us a call")
	if m.dealershipPhone != "" {
		fmt.Fprintf(&b, " at %s", m.dealershipPhone)
	}
	fmt.Fprintf(&b, ".\n\nBest regards,\n%s\n", m.dealershipName)
	return b.String()
}

func (m *SMTPMailer) HTMLBody(r models.Reminder) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">`)
	fmt.Fprintf(&b, `<h2 style="color:#1a3c6e">%s</h2>`, m.Subject(r))
	b.WriteString("<p>Dear customer,</p>")
	fmt.Fprintf(&b, "<p>This is a friendly reminder from <strong>%s</strong>.</p>", m.dealershipName)
	fmt.Fprintf(&b, "<p><strong>Due date:</strong> %s</p>", r.DueDate.Format("Monday, January 2, 2006"))
	if r.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>", r.Description)
	}
	b.WriteString("<p>If you have any questions, give us a call")
	if m.dealershipPhone != "" {
		fmt.Fprintf(&b, " at %s", m.dealershipPhone)
	}
	b.WriteString(".</p>")
	fmt.Fprintf(&b, "<p>Best regards,<br>%s</p>", m.dealershipName)
	b.WriteString("</div>")
	return b.String()
}

func reminderTypeLabel(t string) string {
	switch t {
	case "maintenance":
		return "Maintenance"
	case "inspection":
		return "Inspection"
	case "road_tax":
		return "Road Tax"
	case "insurance":
		return "Insurance"
	case "appointment":
		return "Appointment"
	default:
		return "Service"
	}
}

func buildAlternativeMessage(from, to, subject, plain, html string) []byte {
	boundary := "dealerpro-alt-boundary"
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(plain)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(html)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
