package repository

import (
	"context"

	"creatorflow/domain/model"
)

// IIdentity resolves the user behind the current session token.
type IIdentity interface {
	Me(ctx context.Context) (model.User, error)
}

// IContentService is the calendar half of the CreatorFlow backend.
type IContentService interface {
	FetchCalendar(ctx context.Context) ([]model.ContentItem, error)
	GenerateCalendar(ctx context.Context) ([]model.ContentItem, error)
	SaveContent(ctx context.Context, id int64, patch model.ContentPatch) (model.ContentItem, error)
	ApplyAction(ctx context.Context, id int64, action model.ContentAction) (model.ContentItem, error)
	ConfirmPlan(ctx context.Context) ([]model.ImageSuggestion, error)
}

// IProfileService reads and writes the brand profile.
type IProfileService interface {
	GetProfile(ctx context.Context) (*model.BrandProfile, error)
	UpsertProfile(ctx context.Context, profile model.BrandProfile) (*model.BrandProfile, error)
}

// IRatingService scores a post.
type IRatingService interface {
	RatePost(ctx context.Context, req model.RateRequest) (model.Rating, error)
}
