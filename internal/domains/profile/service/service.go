package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gipnoze/config"
	"gipnoze/infras/otel"
	"gipnoze/internal/domains/profile/model"
	"gipnoze/internal/domains/profile/model/dto"
	"gipnoze/internal/domains/profile/repository"
	"gipnoze/shared"
	"gipnoze/shared/cache"
	"gipnoze/shared/constant"
	"gipnoze/shared/validator"
)

const (
	cacheGetProfile = "contact_profile:get"
)

// ContactProfile offers the remembered contact details for returning guests.
type ContactProfile interface {
	Save(ctx context.Context, req dto.SaveContactRequest) error
	Get(ctx context.Context, userID int64) (model.ContactProfile, error)
}

type serviceImpl struct {
	repo  repository.ContactProfile
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.ContactProfile, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) ContactProfile {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.Struct(req); err != nil {
		return err
	}

	profile := req.ToModel()

	if err = s.repo.Upsert(ctx, profile); err != nil {
		log.Error().Err(err).Int64("userID", req.UserID).Msg("failed to save contact profile")

		return fmt.Errorf("failed to save contact profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		cacheKey := shared.BuildCacheKey(cacheGetProfile, req.UserID)
		if err := s.cache.Save(c, cacheKey, profile, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact profile to cache")
		}
	}()

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, userID int64) (res model.ContactProfile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheGetProfile, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contact profile")

		return res, nil
	}

	res, err = s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact profile to cache")
		}
	}()

	return res, nil
}
