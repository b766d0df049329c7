// Package dates holds the calendar rules shared by the booking,
// availability, and records services: stay-range validation, the interval
// overlap predicate, and ISO day parsing/formatting.
package dates

import (
	"errors"
	"lodge/shared/constant"
	"time"
)

// MaxStayNights is the default stay-length ceiling.
const MaxStayNights = 30

var (
	ErrMissingDates            = errors.New("check-in and check-out dates are required")
	ErrCheckinInPast           = errors.New("check-in date cannot be in the past")
	ErrCheckoutNotAfterCheckin = errors.New("check-out date must be after check-in date")
	ErrStayTooLong             = errors.New("maximum stay length exceeded")
)

// Day truncates a timestamp to its calendar day, preserving the location.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ValidateRange checks a check-in/check-out pair against the booking rules,
// short-circuiting on the first violation. Today is caller-supplied so the
// rules stay a pure function of their inputs.
func ValidateRange(checkin, checkout, today time.Time) error {
	return ValidateRangeMax(checkin, checkout, today, MaxStayNights)
}

// ValidateRangeMax is ValidateRange with a configurable stay ceiling.
func ValidateRangeMax(checkin, checkout, today time.Time, maxNights int) error {
	if checkin.IsZero() || checkout.IsZero() {
		return ErrMissingDates
	}

	checkinDay := Day(checkin)
	checkoutDay := Day(checkout)

	if checkinDay.Before(Day(today)) {
		return ErrCheckinInPast
	}

	if !checkoutDay.After(checkinDay) {
		return ErrCheckoutNotAfterCheckin
	}

	if checkoutDay.Sub(checkinDay) > time.Duration(maxNights)*24*time.Hour {
		return ErrStayTooLong
	}

	return nil
}

// Overlaps reports whether an existing booking range collides with a
// requested one. A booking that checks out on the requested check-in day
// (or checks in on the requested check-out day) does not collide; the
// remaining boundaries are inclusive.
func Overlaps(existingIn, existingOut, reqIn, reqOut time.Time) bool {
	eIn, eOut := Day(existingIn), Day(existingOut)
	rIn, rOut := Day(reqIn), Day(reqOut)

	if !eIn.After(rIn) && eOut.After(rIn) {
		return true
	}

	if eIn.Before(rOut) && !eOut.Before(rOut) {
		return true
	}

	if !eIn.Before(rIn) && !eOut.After(rOut) {
		return true
	}

	return false
}

// Nights returns the stay length in days, fractional when the inputs carry
// sub-day precision.
func Nights(checkin, checkout time.Time) float64 {
	return checkout.Sub(checkin).Hours() / 24
}

// Parse reads an ISO YYYY-MM-DD day string.
func Parse(value string) (time.Time, error) {
	return time.Parse(constant.DayFormat, value)
}

// Format writes a timestamp as an ISO YYYY-MM-DD day string.
func Format(t time.Time) string {
	return t.Format(constant.DayFormat)
}
