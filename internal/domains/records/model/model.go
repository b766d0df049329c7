package model

import (
	"lodge/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "record"

	FieldID           = "id"
	FieldCheckinDate  = "checkin_date"
	FieldCheckoutDate = "checkout_date"
	FieldStatus       = "status"
)

// Record is a booking row joined with its guest and the room-type rate, the
// raw material for the records view.
type Record struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	RoomType     string    `db:"room_type"`
	CheckinDate  time.Time `db:"checkin_date"`
	CheckoutDate time.Time `db:"checkout_date"`
	Status       string    `db:"status"`
	CustomerName string    `db:"customer_name" table:"customers"  column:"name"`
	Price        float64   `db:"price"         table:"room_types"`
	model.Metadata
}

func (Record) GetJoinQuery() string {
	return "JOIN customers ON customers.id = bookings.customer_id JOIN room_types ON room_types.room_type = bookings.room_type"
}
