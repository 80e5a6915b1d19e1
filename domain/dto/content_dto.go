package dto

import "creatorflow/domain/model"

// ConfirmPlanResponse is the backend answer to POST /content/confirm-plan.
type ConfirmPlanResponse struct {
	Confirmed   bool                    `json:"confirmed"`
	Suggestions []model.ImageSuggestion `json:"suggestions"`
}

// CalendarView is what the dashboard serves for the calendar tab.
type CalendarView struct {
	Platform model.Platform      `json:"platform"`
	Items    []model.ContentItem `json:"items"`
	Counts   map[string]int      `json:"counts"`
}

// ScoreRingView is the presentation of a post score.
type ScoreRingView struct {
	Score         int     `json:"score"`
	Percentage    float64 `json:"percentage"`
	Tier          string  `json:"tier"`
	Label         string  `json:"label"`
	Radius        float64 `json:"radius"`
	Circumference float64 `json:"circumference"`
	DashLength    float64 `json:"dash_length"`
	Segments      []bool  `json:"segments"`
}

// RatingResponse pairs a rating with its ring presentation.
type RatingResponse struct {
	model.Rating
	Ring ScoreRingView `json:"ring"`
}
