package models

import (
	"gorm.io/gorm"
)

type Part struct {
	SKU  string `gorm:"uniqueIndex;not null"`
	Name string `gorm:"not null"`

	Quantity     int     `gorm:"default:0"`
	ReorderLevel int     `gorm:"default:5"`
	UnitPrice    float64 `gorm:"type:decimal(10,2);not null"`
	Supplier     string

	gorm.Model
}

// LowStock reports whether the part has dropped to its reorder level.
func (p *Part) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}
