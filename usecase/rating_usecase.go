package usecase

import (
	"context"
	"errors"
	"strings"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"
	"creatorflow/domain/repository"
)

type IRatingUsecase interface {
	Rate(ctx context.Context, req model.RateRequest) (dto.RatingResponse, error)
}

type RatingUsecase struct {
	service repository.IRatingService
	session ISessionGate
}

func NewRatingUsecase(service repository.IRatingService, session ISessionGate) IRatingUsecase {
	return &RatingUsecase{service: service, session: session}
}

// Rate scores a post. At least one of caption, url or image is required.
func (u *RatingUsecase) Rate(ctx context.Context, req model.RateRequest) (dto.RatingResponse, error) {
	req.Caption = strings.TrimSpace(req.Caption)
	req.URL = strings.TrimSpace(req.URL)
	if req.Caption == "" && req.URL == "" && !req.HasImage {
		return dto.RatingResponse{}, &model.ValidationError{
			Field:   "caption",
			Message: "Please add a caption, URL, or image to rate",
		}
	}
	if req.Platform == "" {
		req.Platform = model.PlatformInstagram
	}
	if !req.Platform.Valid() {
		return dto.RatingResponse{}, model.ErrUnknownPlatform
	}
	if !u.session.HasToken() {
		return dto.RatingResponse{}, model.ErrNoSession
	}

	rating, err := u.service.RatePost(ctx, req)
	if err != nil {
		if isUnauthorized(err) {
			u.session.HandleUnauthorized(ctx)
		}
		return dto.RatingResponse{}, err
	}
	rating.Score = clampScore(rating.Score)
	return dto.RatingResponse{Rating: rating, Ring: ScoreRing(rating.Score)}, nil
}

func isUnauthorized(err error) bool {
	return errors.Is(err, model.ErrUnauthorized)
}
