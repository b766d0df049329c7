package dto

import (
	billingDto "lodge/internal/domains/billing/model/dto"
	"lodge/shared/dates"
	"time"
)

type SubmitBookingRequest struct {
	Name          string `json:"name"           validate:"omitempty,max=100"`
	Phone         string `json:"phone"          validate:"omitempty,max=20"`
	Address       string `json:"address"        validate:"omitempty,max=255"`
	RoomType      string `json:"room_type"      validate:"omitempty,max=50"`
	CheckinDate   string `json:"checkin_date"`
	CheckoutDate  string `json:"checkout_date"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=20"`
}

// Dates parses the requested range; zero times signal a missing date.
func (r SubmitBookingRequest) Dates() (checkin, checkout time.Time) {
	if r.CheckinDate != "" {
		checkin, _ = dates.Parse(r.CheckinDate)
	}

	if r.CheckoutDate != "" {
		checkout, _ = dates.Parse(r.CheckoutDate)
	}

	return checkin, checkout
}

type AvailabilityRequest struct {
	RoomType     string `json:"room_type"     validate:"required"`
	CheckinDate  string `json:"checkin_date"  validate:"required"`
	CheckoutDate string `json:"checkout_date" validate:"required"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// BookingConfirmation is the payload handed to observers and returned to the
// caller after a successful submission.
type BookingConfirmation struct {
	BookingID     string                   `json:"booking_id"`
	CustomerID    string                   `json:"customer_id"`
	Name          string                   `json:"name"`
	RoomType      string                   `json:"room_type"`
	CheckinDate   string                   `json:"checkin_date"`
	CheckoutDate  string                   `json:"checkout_date"`
	PaymentMethod string                   `json:"payment_method"`
	Bill          billingDto.BillBreakdown `json:"bill"`
}
