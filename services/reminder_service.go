// services/reminder_service.go
package services

import (
	"fmt"
	"sync"
	"time"

	"dealerpro-backend/models"
	"dealerpro-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// NotificationOffsets are the fixed day-counts before a reminder's due date
// at which a customer notification fires. The check is exact membership:
// a reminder due in 59 days gets nothing until the scan that sees 30.
var NotificationOffsets = []int{60, 30, 10, 3}

// DefaultIntervalMinutes is the scan cadence used when Start is given a
// non-positive interval.
const DefaultIntervalMinutes = 60

// ReminderStore is the slice of persistence the notification service needs.
type ReminderStore interface {
	GetPendingReminders() ([]models.Reminder, error)
	GetCustomer(id uint) (*models.Customer, error)
	UpdateReminderNotification(id uint, notificationsSent int, lastSent time.Time) error
}

// ReminderMailer delivers a reminder email. The boolean reports delivery
// success; an error means the transport itself is unusable (misconfigured),
// which callers treat the same as a failed send.
type ReminderMailer interface {
	SendReminderEmail(r models.Reminder, to string) (bool, error)
}

// ReminderService owns the repeating scan timer and the per-reminder
// notification decision. A single instance is constructed by main and
// handed to the controller that exposes start/stop/status.
//
// Known limitations, accepted for the current single-instance deployment:
// nothing serializes overlapping scans if the interval is shorter than a
// scan's duration, Stop does not interrupt an in-flight scan, and a second
// process instance can double-send.
type ReminderService struct {
	store  ReminderStore
	mailer ReminderMailer
	log    *logrus.Logger
	now    func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func NewReminderService(store ReminderStore, mailer ReminderMailer) *ReminderService {
	return &ReminderService{
		store:  store,
		mailer: mailer,
		log:    logrus.StandardLogger(),
		now:    time.Now,
	}
}

// Start begins periodic reminder scans every intervalMinutes, running one
// scan immediately in the background. Calling Start while already running
// replaces the previous timer rather than stacking a second one. Scan
// failures are logged and never surface to the caller.
func (s *ReminderService) Start(intervalMinutes int) {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultIntervalMinutes
	}

	s.mu.Lock()
	if s.cron != nil {
		s.cron.Stop()
	}
	c := cron.New()
	c.AddFunc(fmt.Sprintf("@every %dm", intervalMinutes), s.runScan)
	c.Start()
	s.cron = c
	s.running = true
	s.mu.Unlock()

	go s.runScan()

	s.log.WithField("intervalMinutes", intervalMinutes).Info("reminder scheduler started")
}

// Stop cancels the repeating timer. Idempotent; an in-flight scan runs to
// completion.
func (s *ReminderService) Stop() {
	s.mu.Lock()
	wasRunning := s.running
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
	s.running = false
	s.mu.Unlock()

	if wasRunning {
		s.log.Info("reminder scheduler stopped")
	}
}

// IsRunning reports whether a scan timer is currently scheduled.
func (s *ReminderService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// runScan is the timer callback. Nothing may escape it: a panic or error
// here must not kill the process or de-schedule future ticks.
func (s *ReminderService) runScan() {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("reminder scan panicked")
		}
	}()

	if err := s.CheckReminders(); err != nil {
		s.log.WithError(err).Error("reminder scan failed")
	}
}

// CheckReminders performs one full pass over all pending reminders. Only a
// failure of the initial fetch aborts the scan; each reminder is otherwise
// processed independently.
func (s *ReminderService) CheckReminders() error {
	reminders, err := s.store.GetPendingReminders()
	if err != nil {
		return fmt.Errorf("failed to fetch pending reminders: %w", err)
	}

	s.log.WithField("count", len(reminders)).Info("checking pending reminders")

	for _, reminder := range reminders {
		s.processReminder(reminder)
	}

	s.log.Info("reminder check completed")
	return nil
}

// processReminder decides whether one reminder is due for a notification
// now, and if so sends it and records the outcome. Errors stay inside this
// method so one bad reminder cannot abort its siblings.
func (s *ReminderService) processReminder(reminder models.Reminder) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"reminderId": reminder.ID,
				"panic":      r,
			}).Error("reminder processing panicked")
		}
	}()

	if reminder.IsCompleted {
		return
	}

	now := s.now()

	daysRemaining := utils.DaysUntil(now, reminder.DueDate)
	if daysRemaining < 0 {
		// Past due. Overdue reminders are left alone until completed or
		// edited by a staff member.
		return
	}

	if !isNotificationDay(daysRemaining) {
		return
	}

	if notifiedWithinLastDay(reminder, now) {
		return
	}

	customer, err := s.store.GetCustomer(reminder.CustomerID)
	if err != nil || customer == nil {
		s.log.WithFields(logrus.Fields{
			"reminderId": reminder.ID,
			"customerId": reminder.CustomerID,
		}).Warn("customer not found, skipping reminder")
		return
	}
	if customer.Email == "" {
		s.log.WithFields(logrus.Fields{
			"reminderId": reminder.ID,
			"customerId": customer.ID,
		}).Warn("customer has no email, skipping reminder")
		return
	}

	sent, err := s.mailer.SendReminderEmail(reminder, customer.Email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"reminderId": reminder.ID,
		}).WithError(err).Error("reminder email transport error")
		return
	}
	if !sent {
		// Counters stay untouched so a later tick within the same offset
		// day retries.
		s.log.WithFields(logrus.Fields{
			"reminderId": reminder.ID,
			"email":      customer.Email,
		}).Warn("reminder email send failed")
		return
	}

	if err := s.store.UpdateReminderNotification(reminder.ID, reminder.NotificationsSent+1, now); err != nil {
		s.log.WithFields(logrus.Fields{
			"reminderId": reminder.ID,
		}).WithError(err).Error("failed to record reminder notification")
		return
	}

	s.log.WithFields(logrus.Fields{
		"reminderId":    reminder.ID,
		"customerId":    customer.ID,
		"daysRemaining": daysRemaining,
	}).Info("reminder notification sent")
}

func isNotificationDay(daysRemaining int) bool {
	for _, offset := range NotificationOffsets {
		if daysRemaining == offset {
			return true
		}
	}
	return false
}

// notifiedWithinLastDay is the dedup guard: a reminder already notified in
// the last 24 hours is treated as notified for the current offset window.
// The guard does not track which offset was notified; under the hourly-or-
// coarser polling this service is run with, the day-granularity check is
// equivalent.
func notifiedWithinLastDay(reminder models.Reminder, now time.Time) bool {
	if reminder.LastNotificationSent == nil || reminder.NotificationsSent == 0 {
		return false
	}
	daysElapsed := int(now.Sub(*reminder.LastNotificationSent).Hours() / 24)
	return daysElapsed < 1
}
