package models

import (
	"time"

	"gorm.io/gorm"
)

// Reminder is a scheduled follow-up obligation for a customer, optionally
// tied to a vehicle (e.g. maintenance on a specific car vs an insurance
// renewal). The notification service reads DueDate and writes only
// NotificationsSent and LastNotificationSent.
type Reminder struct {
	CustomerID uint  `gorm:"index;not null"`
	VehicleID  *uint `gorm:"index"`

	ReminderType string    `gorm:"type:varchar(30);not null"` // maintenance, inspection, road_tax, insurance, appointment, other
	DueDate      time.Time `gorm:"not null"`
	Description  string    `gorm:"type:text"`

	IsCompleted          bool `gorm:"default:false;index"`
	NotificationsSent    int  `gorm:"default:0"`
	LastNotificationSent *time.Time

	gorm.Model
}
