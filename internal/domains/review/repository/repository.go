package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"gipnoze/infras/otel"
	"gipnoze/infras/postgres"
	"gipnoze/internal/domains/review/model"
	gRepo "gipnoze/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, review model.Review) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, review model.Review) (string, error) {
	return repo.InsertReturningID(ctx, review)
}
