package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Contact=MockContactRepository

import (
	"context"

	"alora/infras/otel"
	"alora/infras/postgres"
	"alora/internal/domains/contact/model"
	gDto "alora/shared/dto"
	gRepo "alora/shared/repository"
)

type Contact interface {
	Insert(ctx context.Context, model model.ContactSubmission) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContactSubmission, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactSubmission]
}

func New(db *postgres.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactSubmission](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
