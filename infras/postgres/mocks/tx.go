package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/postgres"
)

type transactorImpl struct {
}

// InTransaction implements postgres.Transactor. The callback runs with a nil
// transaction handle; repository calls must be mocked alongside.
func (t *transactorImpl) InTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
