// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateVIN checks the 17-character vehicle identification number format.
// I, O and Q are excluded from the alphabet per ISO 3779.
func ValidateVIN(vin string) bool {
	cleaned := strings.ToUpper(strings.TrimSpace(vin))
	regex := `^[A-HJ-NPR-Z0-9]{17}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
