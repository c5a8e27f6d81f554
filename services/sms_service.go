// services/sms_service.go
package services

import (
	"fmt"
	"os"

	"dealerpro-backend/models"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSService sends appointment confirmation texts via Twilio. Sends are
// best-effort; callers log failures and move on.
type SMSService struct {
	client *twilio.RestClient
	from   string
	log    *logrus.Logger
}

func NewSMSService() *SMSService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &SMSService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
		log:  logrus.StandardLogger(),
	}
}

func (s *SMSService) SendAppointmentConfirmation(customer models.Customer, appt models.Appointment) error {
	if customer.Phone == "" {
		return fmt.Errorf("customer %d has no phone number", customer.ID)
	}

	message := fmt.Sprintf("Hi %s, your %s appointment is confirmed for %s. See you then!",
		customer.Name,
		appointmentPurposeLabel(appt.Purpose),
		appt.ScheduledAt.Format("Mon, Jan 2 at 3:04 PM"))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send confirmation to %s: %w", customer.Phone, err)
	}

	if resp.Sid != nil {
		s.log.WithFields(logrus.Fields{
			"to":  customer.Phone,
			"sid": *resp.Sid,
		}).Info("appointment confirmation sent")
	} else {
		s.log.WithField("to", customer.Phone).Info("appointment confirmation sent, no SID returned")
	}
	return nil
}

func appointmentPurposeLabel(purpose string) string {
	switch purpose {
	case "test_drive":
		return "test drive"
	case "service":
		return "service"
	case "delivery":
		return "vehicle delivery"
	case "consultation":
		return "consultation"
	default:
		return purpose
	}
}
