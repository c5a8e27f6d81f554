package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceTicketTotal(t *testing.T) {
	ticket := ServiceTicket{
		LaborCost: 120,
		Parts: []ServiceTicketPart{
			{PartName: "Oil filter", Quantity: 1, UnitPrice: 15.50},
			{PartName: "Brake pads", Quantity: 2, UnitPrice: 42.00},
		},
	}

	assert.InDelta(t, 219.50, ticket.Total(), 0.001)
}

func TestPartLowStock(t *testing.T) {
	assert.True(t, (&Part{Quantity: 3, ReorderLevel: 5}).LowStock())
	assert.True(t, (&Part{Quantity: 5, ReorderLevel: 5}).LowStock())
	assert.False(t, (&Part{Quantity: 6, ReorderLevel: 5}).LowStock())
}
