package usecase_test

import (
	"context"
	"testing"

	"creatorflow/domain/model"
	"creatorflow/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validProfile() model.BrandProfile {
	return model.BrandProfile{
		BusinessName:     "Chai Co",
		Industry:         "Food",
		TargetAudience:   "Students",
		BrandTone:        "fun",
		PrimaryGoal:      "growth",
		PostingFrequency: "daily",
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *model.BrandProfile)
		wantErr string
	}{
		{"valid", func(p *model.BrandProfile) {}, ""},
		{"missing name", func(p *model.BrandProfile) { p.BusinessName = "" }, "Missing field: business_name"},
		{"first missing wins", func(p *model.BrandProfile) { p.Industry = ""; p.PostingFrequency = "" }, "Missing field: industry"},
		{"bad tone", func(p *model.BrandProfile) { p.BrandTone = "sarcastic" }, "brand_tone must be one of professional, fun, educational, bold"},
		{"bad frequency", func(p *model.BrandProfile) { p.PostingFrequency = "hourly" }, "posting_frequency must be one of daily, 3x/week, weekly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := usecase.ValidateProfile(p)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestProfileUsecase_UpsertNormalizes(t *testing.T) {
	service := new(MockProfileService)
	profiles := usecase.NewProfileUsecase(service, &fakeSession{token: true})

	input := validProfile()
	input.BusinessName = "  Chai Co "
	input.BrandTone = "FUN"
	want := validProfile()
	service.On("UpsertProfile", mock.Anything, want).Return(&want, nil).Once()

	saved, err := profiles.Upsert(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, &want, saved)
	service.AssertExpectations(t)
}

func TestProfileUsecase_InvalidProfileIsNotSent(t *testing.T) {
	service := new(MockProfileService)
	profiles := usecase.NewProfileUsecase(service, &fakeSession{token: true})
	p := validProfile()
	p.TargetAudience = " "

	_, err := profiles.Upsert(context.Background(), p)

	assert.EqualError(t, err, "Missing field: target_audience")
	service.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
}

func TestProfileUsecase_GetWithoutSession(t *testing.T) {
	service := new(MockProfileService)
	profiles := usecase.NewProfileUsecase(service, &fakeSession{})

	_, err := profiles.Get(context.Background())

	assert.ErrorIs(t, err, model.ErrNoSession)
	service.AssertNotCalled(t, "GetProfile", mock.Anything)
}

func TestProfileUsecase_GetUnauthorizedDropsSession(t *testing.T) {
	service := new(MockProfileService)
	session := &fakeSession{token: true}
	profiles := usecase.NewProfileUsecase(service, session)
	service.On("GetProfile", mock.Anything).Return(nil, model.ErrUnauthorized).Once()

	_, err := profiles.Get(context.Background())

	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.Equal(t, 1, session.unauthorized)
}
