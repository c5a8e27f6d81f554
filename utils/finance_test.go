package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	// Zero-interest loan is straight division
	assert.InDelta(t, 833.33, MonthlyPayment(10000, 0, 12), 0.01)

	// 30k over 60 months at 6% APR
	assert.InDelta(t, 579.98, MonthlyPayment(30000, 6, 60), 0.01)

	// Degenerate inputs
	assert.Zero(t, MonthlyPayment(10000, 5, 0))
	assert.Zero(t, MonthlyPayment(0, 5, 36))
	assert.Zero(t, MonthlyPayment(-100, 5, 36))
}
