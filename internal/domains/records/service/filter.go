package service

import (
	"lodge/shared/constant"
	"lodge/shared/dates"
	"lodge/shared/failure"
	"time"
)

// Kind selects which bookings the records view shows. Every kind except
// KindAll reads only stored-active rows and derives its label; KindAll
// shows everything under its stored status.
type Kind string

const (
	KindAll       Kind = "all"
	KindActive    Kind = "active"
	KindUpcoming  Kind = "upcoming"
	KindCompleted Kind = "completed"
)

func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindAll, KindActive, KindUpcoming, KindCompleted:
		return Kind(value), nil
	default:
		return KindAll, failure.BadRequestFromString("unknown records filter: " + value) // nolint:wrapcheck
	}
}

// Matches reports whether a booking belongs to the kind as of today. Both
// interval ends are inclusive for the active kind.
func (k Kind) Matches(today, checkin, checkout time.Time, storedStatus string) bool {
	day := dates.Day(today)
	in := dates.Day(checkin)
	out := dates.Day(checkout)

	switch k {
	case KindActive:
		return storedStatus == constant.BookingStatusActive && !day.Before(in) && !day.After(out)
	case KindUpcoming:
		return storedStatus == constant.BookingStatusActive && day.Before(in)
	case KindCompleted:
		return storedStatus == constant.BookingStatusActive && day.After(out)
	default:
		return true
	}
}

// Label is the status column shown for a matching row.
func (k Kind) Label(storedStatus string) string {
	switch k {
	case KindActive:
		return "Active"
	case KindUpcoming:
		return "Upcoming"
	case KindCompleted:
		return "Completed"
	default:
		return storedStatus
	}
}
