package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Transaction struct {
	ReferenceNo string `gorm:"uniqueIndex;not null"`

	Type   string  `gorm:"type:varchar(20);not null"` // sale, service, parts, refund
	Amount float64 `gorm:"type:decimal(10,2);not null"`
	Method string  `gorm:"type:varchar(20)"` // cash, card, transfer, financing

	CustomerID  *uint  `gorm:"index"`
	Description string `gorm:"type:text"`

	TransactionDate time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	gorm.Model
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ReferenceNo == "" {
		t.ReferenceNo = "TXN-" + uuid.New().String()[:8]
	}
	return
}
