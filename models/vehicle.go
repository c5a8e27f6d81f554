package models

import (
	"time"

	"gorm.io/gorm"
)

type Vehicle struct {
	VIN   string `gorm:"uniqueIndex;size:17;not null"`
	Make  string `gorm:"not null"`
	Model string `gorm:"not null"`
	Year  int    `gorm:"not null"`

	Color       string
	Mileage     int
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Cost        float64 `gorm:"type:decimal(10,2);default:0.0"`
	Status      string  `gorm:"type:varchar(20);default:'available'"` // available, reserved, sold, in_service
	Description string  `gorm:"type:text"`

	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
