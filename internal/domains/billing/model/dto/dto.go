package dto

import (
	"lodge/shared/dates"
	"time"
)

const (
	TaxRate           = 0.18
	ServiceChargeRate = 0.10
)

type QuoteRequest struct {
	RoomType     string `json:"room_type"     validate:"required"`
	CheckinDate  string `json:"checkin_date"  validate:"required"`
	CheckoutDate string `json:"checkout_date" validate:"required"`
}

// BillBreakdown itemizes a stay: the nightly room charge plus tax and
// service charge on top of it.
type BillBreakdown struct {
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Nights        float64 `json:"nights"`
	RoomCharge    float64 `json:"room_charge"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	Total         float64 `json:"total"`
}

// NewBillBreakdown prices a stay from the nightly rate and the date range.
func NewBillBreakdown(roomType string, pricePerNight float64, checkin, checkout time.Time) BillBreakdown {
	nights := dates.Nights(checkin, checkout)
	roomCharge := pricePerNight * nights
	tax := roomCharge * TaxRate
	serviceCharge := roomCharge * ServiceChargeRate

	return BillBreakdown{
		RoomType:      roomType,
		PricePerNight: pricePerNight,
		Nights:        nights,
		RoomCharge:    roomCharge,
		Tax:           tax,
		ServiceCharge: serviceCharge,
		Total:         roomCharge + tax + serviceCharge,
	}
}
