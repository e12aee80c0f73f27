package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gipnoze/config"
	"gipnoze/infras/otel"
	"gipnoze/internal/domains/booking/model"
	"gipnoze/internal/domains/booking/model/dto"
	"gipnoze/internal/domains/booking/repository"
	"gipnoze/internal/venue"
	"gipnoze/shared/constant"
	"gipnoze/shared/failure"
	"gipnoze/shared/validator"
)

// AlreadyFinalized reports a transition attempted on a booking no longer in
// an eligible source status. It is informational, not fatal: the actor is
// told the current status and nothing changes.
type AlreadyFinalized struct {
	Status model.Status
}

func (e *AlreadyFinalized) Error() string {
	return fmt.Sprintf("booking already %s", e.Status)
}

// Booking drives the reservation lifecycle: availability, creation, and the
// moderation transitions with their authorization and idempotency rules.
type Booking interface {
	AvailableZones(ctx context.Context, date, slot string) ([]string, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	ListActiveByUser(ctx context.Context, userID int64) ([]model.Booking, error)
	ListActiveByDate(ctx context.Context, date string) ([]model.Booking, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	Confirm(ctx context.Context, actorID int64, id string) (model.Booking, error)
	Reject(ctx context.Context, actorID int64, id string) (model.Booking, error)
	ForceCancel(ctx context.Context, actorID int64, id string) (model.Booking, error)
	CancelByGuest(ctx context.Context, actorID int64, id string) (model.Booking, error)
}

type serviceImpl struct {
	repo repository.Booking
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// AvailableZones queries the store fresh every time: the catalog minus zones
// held by an active booking for (date, slot). Never cached, the store state
// moves between calls.
func (s *serviceImpl) AvailableZones(ctx context.Context, date, slot string) (zones []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableZones")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.repo.GetAll(ctx, repository.Filter{
		Date:     date,
		Slot:     slot,
		Statuses: model.ActiveStatuses,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to query active bookings for availability")

		return nil, fmt.Errorf("failed to query active bookings: %w", err)
	}

	busy := make(map[string]struct{}, len(taken))
	for _, booking := range taken {
		busy[booking.Zone] = struct{}{}
	}

	for _, zone := range venue.Zones {
		if _, ok := busy[zone]; !ok {
			zones = append(zones, zone)
		}
	}

	return zones, nil
}

// Create persists a completed draft as a pending booking. The insert itself
// is conditional on the zone still being free; a lost race surfaces as a
// conflict failure, never as a second active booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking.user_id", req.UserID)

	if err = validator.Struct(req); err != nil {
		log.Warn().Err(err).Int64("userID", req.UserID).Msg("incomplete booking request")

		return res, err
	}

	if !venue.ValidSlot(req.Slot) {
		return res, failure.BadRequestFromString("unknown time slot")
	}

	if !venue.ValidZone(req.Zone) {
		return res, failure.BadRequestFromString("unknown seating zone")
	}

	booking := req.ToModel()

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		if failure.IsConflict(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id

	log.Info().
		Str("bookingID", id).
		Str("date", booking.Date).
		Str("slot", booking.Slot).
		Str("zone", booking.Zone).
		Msg("booking created")

	return booking, nil
}

func (s *serviceImpl) ListActiveByUser(ctx context.Context, userID int64) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListActiveByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx, repository.Filter{
		UserID:   &userID,
		Statuses: model.ActiveStatuses,
	})
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ListActiveByDate(ctx context.Context, date string) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListActiveByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx, repository.Filter{
		Date:     date,
		Statuses: model.ActiveStatuses,
	})
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()

	if err := validBookingID(id); err != nil {
		return model.Booking{}, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *serviceImpl) Confirm(ctx context.Context, actorID int64, id string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()

	if err := s.requireAdmin(actorID); err != nil {
		return model.Booking{}, err
	}

	return s.transition(ctx, id, model.StatusConfirmed, model.StatusPending)
}

func (s *serviceImpl) Reject(ctx context.Context, actorID int64, id string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()

	if err := s.requireAdmin(actorID); err != nil {
		return model.Booking{}, err
	}

	return s.transition(ctx, id, model.StatusRejected, model.StatusPending)
}

func (s *serviceImpl) ForceCancel(ctx context.Context, actorID int64, id string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForceCancel")
	defer scope.End()

	if err := s.requireAdmin(actorID); err != nil {
		return model.Booking{}, err
	}

	return s.transition(ctx, id, model.StatusCancelledByAdmin, model.StatusPending, model.StatusConfirmed)
}

// CancelByGuest is the self-service cancellation: only the requester of the
// booking may invoke it, and only while the booking is still active.
func (s *serviceImpl) CancelByGuest(ctx context.Context, actorID int64, id string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByGuest")
	defer scope.End()

	if err := validBookingID(id); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}

	if booking.UserID != actorID {
		log.Warn().
			Int64("actorID", actorID).
			Str("bookingID", id).
			Msg("cancel attempt on someone else's booking")

		return model.Booking{}, failure.Forbidden("booking belongs to another guest")
	}

	return s.transition(ctx, id, model.StatusCancelledByGuest, model.StatusPending, model.StatusConfirmed)
}

func (s *serviceImpl) requireAdmin(actorID int64) error {
	if actorID != s.cfg.Telegram.AdminUserID {
		log.Warn().Int64("actorID", actorID).Msg("unauthorized moderation attempt")

		return failure.Unauthorized("admin only")
	}

	return nil
}

// validBookingID rejects ids that are not UUIDs before they reach the store,
// where a malformed value would surface as a cast error instead of a miss.
func validBookingID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return failure.NotFound("booking not found")
	}

	return nil
}

// transition performs a conditional status update. The store applies it only
// when the current status is in the eligible set, so a duplicate tap loses
// the race cleanly and is answered with the status it found instead.
func (s *serviceImpl) transition(ctx context.Context, id string, to model.Status, from ...model.Status) (model.Booking, error) {
	if err := validBookingID(id); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}

	ok, err := s.repo.UpdateStatus(ctx, id, to, from...)
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to update booking status")

		return model.Booking{}, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !ok {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return model.Booking{}, err
		}

		return model.Booking{}, &AlreadyFinalized{Status: current.Status}
	}

	booking.Status = to

	log.Info().
		Str("bookingID", id).
		Str("status", string(to)).
		Msg("booking status updated")

	return booking, nil
}
