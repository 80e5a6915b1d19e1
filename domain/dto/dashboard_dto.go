package dto

import "creatorflow/domain/model"

// PlatformShare is one bar of the platform distribution chart.
type PlatformShare struct {
	Platform model.Platform `json:"platform"`
	Label    string         `json:"label"`
	Count    int            `json:"count"`
	Percent  float64        `json:"percent"`
}

// PublishedSplit counts published and pending items.
type PublishedSplit struct {
	Published   int `json:"published"`
	Unpublished int `json:"unpublished"`
}

// DashboardSummary aggregates everything the overview page shows.
type DashboardSummary struct {
	FirstName         string              `json:"first_name"`
	TotalPosts        int                 `json:"total_posts"`
	Published         int                 `json:"published"`
	Remaining         int                 `json:"remaining"`
	ConnectedAccounts int                 `json:"connected_accounts"`
	Distribution      []PlatformShare     `json:"distribution"`
	Upcoming          []model.ContentItem `json:"upcoming"`
	HasProfile        bool                `json:"has_profile"`
}

// ClipProgressView describes the edit-video player position.
type ClipProgressView struct {
	Elapsed  float64 `json:"elapsed"`
	Window   float64 `json:"window"`
	Progress float64 `json:"progress"`
	Ended    bool    `json:"ended"`
}

// CaptionSuggestion is the caption and hashtags offered next to a clip.
type CaptionSuggestion struct {
	Seed     int      `json:"seed"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// SubscribeRequest selects a plan in the simulated checkout.
type SubscribeRequest struct {
	PlanID string              `json:"plan_id" binding:"required"`
	Method model.PaymentMethod `json:"method"`
}
