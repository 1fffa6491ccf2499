package utils

import (
	"math"
	"regexp"
)

var (
	reUUID        = regexp.MustCompile(`^([0-9a-f]{8})-([0-9a-f]{4})-([0-9a-f]{4})-([0-9a-f]{4})-([0-9a-f]{12})$`)
	rePhoneNumber = regexp.MustCompile(`^0\d{1,4}-?\d{1,4}-?\d{3,4}$`)
	reZipCode     = regexp.MustCompile(`^\d{7}$`)
)

// ConvertCelsiusToFahrenheit converts celsius to fahrenheit.
// The second decimal place is rounded down, not rounded.
func ConvertCelsiusToFahrenheit(tempC float64) float64 {
	return FloatFloor(tempC*1.8+32, 2)
}

// FloatFloor floors a float to n decimal places.
func FloatFloor(num float64, n int) float64 {
	shift := math.Pow10(n)
	return math.Floor(num*shift) / shift
}

// IsUUID reports whether s is a lowercase hyphenated UUID.
func IsUUID(s string) bool { return reUUID.MatchString(s) }

// IsPhoneNumber reports whether s looks like a landline or mobile number.
func IsPhoneNumber(s string) bool { return rePhoneNumber.MatchString(s) }

// IsZipCode reports whether s is a 7-digit zip code without hyphen.
func IsZipCode(s string) bool { return reZipCode.MatchString(s) }
