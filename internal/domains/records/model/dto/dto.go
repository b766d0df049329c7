package dto

import (
	billingDto "lodge/internal/domains/billing/model/dto"
	"lodge/internal/domains/records/model"
	"lodge/shared/dates"
)

// RecordResponse is one row of the records view: the booking joined with
// its guest, labeled by the active filter, and priced with the same
// formulas billing uses.
type RecordResponse struct {
	BookingID    string                   `json:"booking_id"`
	CustomerName string                   `json:"customer_name"`
	RoomType     string                   `json:"room_type"`
	CheckinDate  string                   `json:"checkin_date"`
	CheckoutDate string                   `json:"checkout_date"`
	Status       string                   `json:"status"`
	Bill         billingDto.BillBreakdown `json:"bill"`
}

func (r *RecordResponse) FromModel(mod model.Record, label string) {
	r.BookingID = mod.ID
	r.CustomerName = mod.CustomerName
	r.RoomType = mod.RoomType
	r.CheckinDate = dates.Format(mod.CheckinDate)
	r.CheckoutDate = dates.Format(mod.CheckoutDate)
	r.Status = label
	r.Bill = billingDto.NewBillBreakdown(mod.RoomType, mod.Price, mod.CheckinDate, mod.CheckoutDate)
}

type GetRecordsResponse struct {
	Records   []RecordResponse `json:"records"`
	TotalData int              `json:"total_data"`
}
