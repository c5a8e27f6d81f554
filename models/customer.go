package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	Name    string `gorm:"not null"`
	Phone   string `gorm:"uniqueIndex"`
	Email   string
	Address string
	Notes   string `gorm:"type:text"`

	IsActive bool `gorm:"default:true"`

	Sales        []Sale        `gorm:"foreignKey:CustomerID"`
	Appointments []Appointment `gorm:"foreignKey:CustomerID"`
	Reminders    []Reminder    `gorm:"foreignKey:CustomerID"`

	gorm.Model
}
