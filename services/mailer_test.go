package services

import (
	"testing"
	"time"

	"dealerpro-backend/models"

	"github.com/stretchr/testify/assert"
)

func testMailer() *SMTPMailer {
	return &SMTPMailer{
		dealershipName:  "Lakeside Motors",
		dealershipPhone: "+1 555 010 2030",
	}
}

func TestMailerSubject(t *testing.T) {
	m := testMailer()
	r := models.Reminder{
		ReminderType: "road_tax",
		DueDate:      time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "Road Tax Reminder - Apr 5, 2026", m.Subject(r))
}

func TestMailerBodies(t *testing.T) {
	m := testMailer()
	r := models.Reminder{
		ReminderType: "maintenance",
		DueDate:      time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:  "Annual service for your sedan",
	}

	plain := m.PlainBody(r)
	assert.Contains(t, plain, "Lakeside Motors")
	assert.Contains(t, plain, "Sunday, April 5, 2026")
	assert.Contains(t, plain, "Annual service for your sedan")
	assert.Contains(t, plain, "+1 555 010 2030")

	html := m.HTMLBody(r)
	assert.Contains(t, html, "<strong>Lakeside Motors</strong>")
	assert.Contains(t, html, "Annual service for your sedan")
}

func TestMailerUnconfiguredTransportErrors(t *testing.T) {
	m := &SMTPMailer{}
	sent, err := m.SendReminderEmail(models.Reminder{DueDate: time.Now()}, "a@b.com")
	assert.False(t, sent)
	assert.Error(t, err)
}

func TestBuildAlternativeMessage(t *testing.T) {
	msg := string(buildAlternativeMessage("noreply@lakeside.example", "a@b.com", "Hello", "plain part", "<p>html part</p>"))
	assert.Contains(t, msg, "Subject: Hello\r\n")
	assert.Contains(t, msg, "multipart/alternative")
	assert.Contains(t, msg, "plain part")
	assert.Contains(t, msg, "<p>html part</p>")
}
