package dateutil

import (
	"time"
)

// Age calculates the whole-year age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeYears calculates the fractional age in years at a given date
func AgeYears(birthDate, atDate time.Time) float64 {
	if atDate.Before(birthDate) {
		return 0
	}
	return atDate.Sub(birthDate).Hours() / 24 / 365.25
}

// MonthsBetween returns the number of whole calendar months from a to b.
// Returns 0 when b is before a.
func MonthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
