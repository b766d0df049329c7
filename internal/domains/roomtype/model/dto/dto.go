package dto

import (
	"lodge/internal/domains/roomtype/model"
	gDto "lodge/shared/dto"
)

type UpdateRoomTypeRequest struct {
	Price       float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Capacity    int     `db:"capacity"    json:"capacity"    validate:"omitempty,gt=0"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=255"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	RoomType    string  `json:"room_type"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType) {
	r.TotalData = len(models)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
