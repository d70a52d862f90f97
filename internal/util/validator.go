package util

import (
	"fmt"
	"regexp"
	"time"
)

var pincodeRe = regexp.MustCompile(`^[0-9]{4,10}$`)

// ValidatePincode verifies a postal pincode (4-10 digits).
func ValidatePincode(pincode string) error {
	if pincode == "" {
		return fmt.Errorf("pincode is empty")
	}
	if !pincodeRe.MatchString(pincode) {
		return fmt.Errorf("invalid pincode: %q", pincode)
	}
	return nil
}

// ValidateCoordinates verifies latitude/longitude ranges.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude out of range: %f", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude out of range: %f", lng)
	}
	return nil
}

// ValidateDate verifies a date string (must be YYYY-MM-DD).
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateRole verifies a role name.
func ValidateRole(role string) error {
	switch role {
	case "user", "volunteer", "admin":
		return nil
	}
	return fmt.Errorf("unknown role: %q", role)
}
