package utils

import (
	"regexp"
	"strings"
)

// FormatPhoneNumber formats a phone number to a standard format
// Removes all non-digit characters and ensures it starts with country code
func FormatPhoneNumber(phoneNumber string) string {
	// Remove all non-digit characters
	re := regexp.MustCompile(`\D`)
	digits := re.ReplaceAllString(phoneNumber, "")

	// If it doesn't start with country code, assume India (+91)
	if len(digits) > 0 && !strings.HasPrefix(digits, "91") {
		// Remove leading zeros
		digits = strings.TrimLeft(digits, "0")
		// Add India country code
		digits = "91" + digits
	}

	return digits
}

// ValidatePhoneNumber validates if a phone number is in correct format
func ValidatePhoneNumber(phoneNumber string) bool {
	// Remove all non-digit characters
	re := regexp.MustCompile(`\D`)
	cleaned := re.ReplaceAllString(phoneNumber, "")

	// Strip the country code if present
	cleaned = strings.TrimPrefix(cleaned, "91")

	// Indian mobile numbers are 10 digits
	if len(cleaned) != 10 {
		return false
	}

	// Check if it starts with a valid mobile prefix (6, 7, 8 or 9)
	firstDigit := string(cleaned[0])
	validPrefixes := []string{"6", "7", "8", "9"}
	for _, prefix := range validPrefixes {
		if firstDigit == prefix {
			return true
		}
	}

	return false
}

// NormalizePhoneNumber normalizes phone number for database storage
func NormalizePhoneNumber(phoneNumber string) string {
	return FormatPhoneNumber(phoneNumber)
}

// DisplayPhoneNumber formats phone number for display
func DisplayPhoneNumber(phoneNumber string) string {
	formatted := FormatPhoneNumber(phoneNumber)
	if len(formatted) == 12 && strings.HasPrefix(formatted, "91") {
		// Format as +91 XXXXX XXXXX
		return "+" + formatted[:2] + " " + formatted[2:7] + " " + formatted[7:]
	}
	return phoneNumber
}
