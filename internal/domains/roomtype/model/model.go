package model

import "lodge/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "id"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
)

type RoomType struct {
	ID          string  `db:"id"`
	RoomType    string  `db:"room_type"`
	Price       float64 `db:"price"`
	Capacity    int     `db:"capacity"`
	Description string  `db:"description"`
	model.Metadata
}
