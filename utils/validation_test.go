package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+15551234567", "15551234567", "+44 20 7946 0958", "(555) 123-4567"}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), p)
	}

	invalid := []string{"", "abc", "0123", "+"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), p)
	}
}

func TestValidateVIN(t *testing.T) {
	assert.True(t, ValidateVIN("1HGBH41JXMN109186"))
	assert.True(t, ValidateVIN("  5yj3e1ea7kf317000  ")) // trimmed and upcased

	invalid := []string{
		"",
		"1HGBH41JXMN10918",    // too short
		"1HGBH41JXMN1091866",  // too long
		"IHGBH41JXMN109186",   // contains I
		"1HGBH41JXMN10918O",   // contains O
	}
	for _, v := range invalid {
		assert.False(t, ValidateVIN(v), v)
	}
}
