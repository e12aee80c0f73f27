package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gipnoze/infras/otel"
	"gipnoze/internal/domains/review/model"
	"gipnoze/internal/domains/review/model/dto"
	"gipnoze/internal/domains/review/repository"
	"gipnoze/shared/constant"
	"gipnoze/shared/validator"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (model.Review, error)
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, otel otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.Struct(req); err != nil {
		return res, err
	}

	review := req.ToModel()

	id, err := s.repo.Insert(ctx, review)
	if err != nil {
		log.Error().Err(err).Int64("userID", req.UserID).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	review.ID = id

	log.Info().Str("reviewID", id).Int("rating", review.Rating).Msg("review created")

	return review, nil
}
