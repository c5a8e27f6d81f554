// utils/finance.go
package utils

import "math"

// MonthlyPayment computes the amortized monthly installment for a loan of
// principal at an annual interest rate (percent) over termMonths. A zero
// rate degrades to straight division. Result is rounded to cents.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if termMonths <= 0 || principal <= 0 {
		return 0
	}
	if annualRate == 0 {
		return roundCents(principal / float64(termMonths))
	}
	r := annualRate / 100 / 12
	factor := math.Pow(1+r, float64(termMonths))
	return roundCents(principal * r * factor / (factor - 1))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
