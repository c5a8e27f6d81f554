// services/reminder_store.go
package services

import (
	"time"

	"dealerpro-backend/models"

	"gorm.io/gorm"
)

// GormReminderStore is the database-backed ReminderStore used in production.
type GormReminderStore struct {
	db *gorm.DB
}

func NewGormReminderStore(db *gorm.DB) *GormReminderStore {
	return &GormReminderStore{db: db}
}

func (s *GormReminderStore) GetPendingReminders() ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.Where("is_completed = ?", false).Find(&reminders).Error
	return reminders, err
}

func (s *GormReminderStore) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *GormReminderStore) UpdateReminderNotification(id uint, notificationsSent int, lastSent time.Time) error {
	return s.db.Model(&models.Reminder{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"notifications_sent":     notificationsSent,
			"last_notification_sent": lastSent,
		}).Error
}
