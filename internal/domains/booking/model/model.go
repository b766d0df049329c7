package model

import (
	"lodge/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldRoomType     = "room_type"
	FieldCheckinDate  = "checkin_date"
	FieldCheckoutDate = "checkout_date"
	FieldStatus       = "status"
)

type Booking struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	RoomType     string    `db:"room_type"`
	CheckinDate  time.Time `db:"checkin_date"`
	CheckoutDate time.Time `db:"checkout_date"`
	Status       string    `db:"status"`
	model.Metadata
}
