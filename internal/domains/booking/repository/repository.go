package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"gipnoze/infras/otel"
	"gipnoze/infras/postgres"
	"gipnoze/internal/domains/booking/model"
	"gipnoze/shared/constant"
	gDto "gipnoze/shared/dto"
	"gipnoze/shared/failure"
	gRepo "gipnoze/shared/repository"
	"gipnoze/shared/timezone"
)

// Filter narrows queries over the booking collection. Zero-valued fields are
// not applied.
type Filter struct {
	UserID   *int64
	Statuses []model.Status
	Date     string
	Slot     string
	Zone     string
}

// Booking is the store consumed by the core. Insert must refuse a booking
// whose (date, slot, zone) collides with an active one, atomically, and
// reports that as a conflict failure. UpdateStatus with a non-empty from set
// transitions only when the current status is in that set and reports whether
// a row changed. Records are never deleted.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (string, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context, filter Filter) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id string, to model.Status, from ...model.Status) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (string, error) {
	id, err := repo.InsertReturningID(ctx, booking)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return "", failure.Conflict("zone already booked for this date and time")
		}

		return "", err
	}

	return id, nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	booking, err := repo.Get(ctx, gDto.Eq(model.TableName, model.FieldID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, failure.NotFound("booking not found")
	}

	if err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context, filter Filter) ([]model.Booking, error) {
	return (&repo.Repository).GetAll(ctx, buildFilterGroup(filter), model.FieldCreatedAt)
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id string, to model.Status, from ...model.Status) (bool, error) {
	filter := gDto.Eq(model.TableName, model.FieldID, id)
	if len(from) > 0 {
		filter = gDto.And(filter, gDto.In(model.TableName, model.FieldStatus, from))
	}

	affected, err := repo.Update(ctx, map[string]any{
		model.FieldStatus:     to,
		model.FieldModifiedAt: timezone.Now(),
	}, filter)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func buildFilterGroup(filter Filter) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if filter.UserID != nil {
		group = gDto.And(group, gDto.Eq(model.TableName, model.FieldUserID, *filter.UserID))
	}

	if len(filter.Statuses) > 0 {
		group = gDto.And(group, gDto.In(model.TableName, model.FieldStatus, filter.Statuses))
	}

	if filter.Date != "" {
		group = gDto.And(group, gDto.Eq(model.TableName, model.FieldDate, filter.Date))
	}

	if filter.Slot != "" {
		group = gDto.And(group, gDto.Eq(model.TableName, model.FieldSlot, filter.Slot))
	}

	if filter.Zone != "" {
		group = gDto.And(group, gDto.Eq(model.TableName, model.FieldZone, filter.Zone))
	}

	return group
}
