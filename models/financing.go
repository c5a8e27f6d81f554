package models

import (
	"gorm.io/gorm"
)

type Financing struct {
	SaleID     uint `gorm:"uniqueIndex;not null"`
	CustomerID uint `gorm:"index;not null"`

	Provider       string  `gorm:"not null"`
	Amount         float64 `gorm:"type:decimal(10,2);not null"`
	DownPayment    float64 `gorm:"type:decimal(10,2);default:0.0"`
	TermMonths     int     `gorm:"not null"`
	InterestRate   float64 `gorm:"type:decimal(5,2);not null"` // annual percentage
	MonthlyPayment float64 `gorm:"type:decimal(10,2);not null"`

	Status string `gorm:"type:varchar(20);default:'pending'"` // pending, approved, rejected, closed

	gorm.Model
}
