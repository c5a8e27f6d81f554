package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sale struct {
	ReferenceNo string `gorm:"uniqueIndex;not null"`

	VehicleID    uint `gorm:"index;not null"`
	CustomerID   uint `gorm:"index;not null"`
	SoldByUserID uint `gorm:"index;not null"`

	SalePrice float64   `gorm:"type:decimal(10,2);not null"`
	SaleDate  time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	PaymentStatus string `gorm:"type:varchar(20);default:'unpaid'"` // unpaid, partial, paid, financed
	Notes         string `gorm:"type:text"`

	Financing *Financing `gorm:"foreignKey:SaleID"`

	gorm.Model
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ReferenceNo == "" {
		s.ReferenceNo = "SALE-" + uuid.New().String()[:8]
	}
	return
}
