package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gipnoze/config"
	"gipnoze/infras/otel/mocks"
	profileMocks "gipnoze/internal/domains/profile/mocks"
	"gipnoze/internal/domains/profile/model"
	"gipnoze/internal/domains/profile/model/dto"
	"gipnoze/internal/domains/profile/service"
	cacheMocks "gipnoze/shared/cache/mocks"
	"gipnoze/shared/failure"
)

func newService(t *testing.T) (service.ContactProfile, *profileMocks.MockContactProfile, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := profileMocks.NewMockContactProfile(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestContactProfileService_Save(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SaveContactRequest
		setupMock func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful save",
			req: dto.SaveContactRequest{
				UserID:  777,
				Name:    "Олена",
				Contact: "+380501234567",
			},
			setupMock: func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "incomplete request",
			req: dto.SaveContactRequest{
				UserID: 777,
			},
			setupMock: func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.SaveContactRequest{
				UserID:  777,
				Name:    "Олена",
				Contact: "+380501234567",
			},
			setupMock: func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Save(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactProfileService_Get(t *testing.T) {
	stored := model.ContactProfile{
		UserID:  777,
		Name:    "Олена",
		Contact: "+380501234567",
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), "contact_profile:get:777", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, profile loaded from db",
			setupMock: func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetByUserID(gomock.Any(), int64(777)).
					Return(stored, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "no remembered contact",
			setupMock: func(mockRepo *profileMocks.MockContactProfile, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetByUserID(gomock.Any(), int64(777)).
					Return(model.ContactProfile{}, failure.NotFound("contact profile not found"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			_, err := svc.Get(context.Background(), int64(777))

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsNotFound(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
