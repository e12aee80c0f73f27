package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gipnoze/infras/otel"
	"gipnoze/infras/postgres"
	"gipnoze/internal/domains/profile/model"
	"gipnoze/shared/constant"
	gDto "gipnoze/shared/dto"
	"gipnoze/shared/failure"
	"gipnoze/shared/logger"
	gRepo "gipnoze/shared/repository"
)

// ContactProfile stores the last-used contact details per guest, keyed by
// their messenger user id. Upsert overwrites the previous record.
type ContactProfile interface {
	Upsert(ctx context.Context, profile model.ContactProfile) error
	GetByUserID(ctx context.Context, userID int64) (model.ContactProfile, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactProfile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ContactProfile {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactProfile](model.EntityName, model.TableName, model.FieldUserID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Upsert(ctx context.Context, profile model.ContactProfile) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, contact)
		VALUES (:user_id, :name, :contact)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, contact = EXCLUDED.contact, modified_at = now()`,
		model.TableName)

	if _, err = repo.db.Write.NamedExecContext(ctx, query, profile); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetByUserID(ctx context.Context, userID int64) (model.ContactProfile, error) {
	profile, err := repo.Get(ctx, gDto.Eq(model.TableName, model.FieldUserID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ContactProfile{}, failure.NotFound("contact profile not found")
	}

	if err != nil {
		return model.ContactProfile{}, err
	}

	return profile, nil
}
