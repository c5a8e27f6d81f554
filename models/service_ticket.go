package models

import (
	"time"

	"gorm.io/gorm"
)

type ServiceTicket struct {
	CustomerID uint `gorm:"index;not null"`
	VehicleID  uint `gorm:"index;not null"`

	Description string  `gorm:"type:text;not null"`
	Status      string  `gorm:"type:varchar(20);default:'open'"` // open, in_progress, completed, cancelled
	LaborCost   float64 `gorm:"type:decimal(10,2);default:0.0"`

	OpenedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	ClosedAt *time.Time

	Parts []ServiceTicketPart `gorm:"foreignKey:ServiceTicketID"`

	gorm.Model
}

// ServiceTicketPart records a part consumed by a workshop job at the price
// it was charged, so later part price changes do not rewrite old tickets.
type ServiceTicketPart struct {
	ServiceTicketID uint `gorm:"index;not null"`
	PartID          uint `gorm:"index;not null"`

	PartName  string  `gorm:"not null"`
	Quantity  int     `gorm:"default:1"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null"`

	gorm.Model
}

// Total is labor plus all recorded parts.
func (t *ServiceTicket) Total() float64 {
	total := t.LaborCost
	for _, p := range t.Parts {
		total += p.UnitPrice * float64(p.Quantity)
	}
	return total
}
