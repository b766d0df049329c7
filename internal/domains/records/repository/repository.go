package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/records/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

// Records reads bookings joined with guests and rates, newest check-in
// first.
type Records interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Record, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Record]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Records {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Record](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
