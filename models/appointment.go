package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	CustomerID uint  `gorm:"index;not null"`
	VehicleID  *uint `gorm:"index"`

	ScheduledAt time.Time `gorm:"not null"`
	Purpose     string    `gorm:"type:varchar(30);not null"` // test_drive, service, delivery, consultation
	Status      string    `gorm:"type:varchar(20);default:'scheduled'"` // scheduled, completed, cancelled, no_show
	Notes       string    `gorm:"type:text"`

	gorm.Model
}
