package usecase

import (
	"context"
	"fmt"
	"strings"

	"creatorflow/domain/model"
	"creatorflow/domain/repository"
)

type IProfileUsecase interface {
	Get(ctx context.Context) (*model.BrandProfile, error)
	Upsert(ctx context.Context, profile model.BrandProfile) (*model.BrandProfile, error)
}

type ProfileUsecase struct {
	service repository.IProfileService
	session ISessionGate
}

func NewProfileUsecase(service repository.IProfileService, session ISessionGate) IProfileUsecase {
	return &ProfileUsecase{service: service, session: session}
}

// Get returns the saved profile, or nil when none exists yet.
func (u *ProfileUsecase) Get(ctx context.Context) (*model.BrandProfile, error) {
	if !u.session.HasToken() {
		return nil, model.ErrNoSession
	}
	profile, err := u.service.GetProfile(ctx)
	if err != nil {
		u.observe(ctx, err)
		return nil, err
	}
	return profile, nil
}

func (u *ProfileUsecase) Upsert(ctx context.Context, profile model.BrandProfile) (*model.BrandProfile, error) {
	profile = normalizeProfile(profile)
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	if !u.session.HasToken() {
		return nil, model.ErrNoSession
	}
	saved, err := u.service.UpsertProfile(ctx, profile)
	if err != nil {
		u.observe(ctx, err)
		return nil, err
	}
	return saved, nil
}

func (u *ProfileUsecase) observe(ctx context.Context, err error) {
	if isUnauthorized(err) {
		u.session.HandleUnauthorized(ctx)
	}
}

func normalizeProfile(p model.BrandProfile) model.BrandProfile {
	p.BusinessName = strings.TrimSpace(p.BusinessName)
	p.Industry = strings.TrimSpace(p.Industry)
	p.TargetAudience = strings.TrimSpace(p.TargetAudience)
	p.BrandTone = strings.ToLower(strings.TrimSpace(p.BrandTone))
	p.PrimaryGoal = strings.ToLower(strings.TrimSpace(p.PrimaryGoal))
	p.PostingFrequency = strings.ToLower(strings.TrimSpace(p.PostingFrequency))
	return p
}

// ValidateProfile checks required fields in form order, then the enums.
func ValidateProfile(p model.BrandProfile) error {
	required := []struct {
		field string
		value string
	}{
		{"business_name", p.BusinessName},
		{"industry", p.Industry},
		{"target_audience", p.TargetAudience},
		{"brand_tone", p.BrandTone},
		{"primary_goal", p.PrimaryGoal},
		{"posting_frequency", p.PostingFrequency},
	}
	for _, r := range required {
		if r.value == "" {
			return &model.ValidationError{Field: r.field}
		}
	}
	if !contains(model.BrandTones, p.BrandTone) {
		return oneOf("brand_tone", model.BrandTones)
	}
	if !contains(model.PrimaryGoals, p.PrimaryGoal) {
		return oneOf("primary_goal", model.PrimaryGoals)
	}
	if !contains(model.PostingFrequencies, p.PostingFrequency) {
		return oneOf("posting_frequency", model.PostingFrequencies)
	}
	return nil
}

func oneOf(field string, allowed []string) error {
	return &model.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of %s", field, strings.Join(allowed, ", ")),
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
