package model

import "lodge/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID      = "id"
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

type Customer struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Phone   string `db:"phone"`
	Address string `db:"address"`
	model.Metadata
}
