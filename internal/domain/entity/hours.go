package entity

import (
	"math"
	"strconv"
	"time"
)

// DateLayout is the calendar-day format stored on every entry
const DateLayout = "2006-01-02"

// HoursDecimalPlaces defines how many decimals worked hours are rounded to
const HoursDecimalPlaces = 2

var hoursScale = math.Pow10(HoursDecimalPlaces)

// CalendarDate returns the calendar day of t in t's own location
func CalendarDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RoundHours rounds an hour value to HoursDecimalPlaces, half away from zero
func RoundHours(hours float64) float64 {
	return math.Round(hours*hoursScale) / hoursScale
}

// HoursBetween returns the elapsed hours from start to end, rounded.
// A negative span (clock moved backwards) yields 0.
func HoursBetween(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return RoundHours(hours)
}

// FormatHours renders hours with exactly HoursDecimalPlaces decimals
// Example: 8.5 becomes "8.50", 0 becomes "0.00"
func FormatHours(hours float64) string {
	return strconv.FormatFloat(RoundHours(hours), 'f', HoursDecimalPlaces, 64)
}
