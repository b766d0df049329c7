package model

import "lodge/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldMethod    = "payment_method"
	FieldAmount    = "amount"
	FieldStatus    = "status"
)

type Payment struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Method    string  `db:"payment_method"`
	Amount    float64 `db:"amount"`
	Status    string  `db:"status"`
	model.Metadata
}
