package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Booking=MockBookingRepository

import (
	"context"

	"alora/infras/otel"
	"alora/infras/postgres"
	"alora/internal/domains/booking/model"
	gDto "alora/shared/dto"
	gRepo "alora/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
