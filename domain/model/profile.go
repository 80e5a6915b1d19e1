package model

// BrandProfile describes the business the calendar is generated for.
type BrandProfile struct {
	BusinessName     string `json:"business_name"`
	Industry         string `json:"industry"`
	TargetAudience   string `json:"target_audience"`
	BrandTone        string `json:"brand_tone"`
	PrimaryGoal      string `json:"primary_goal"`
	PostingFrequency string `json:"posting_frequency"`
}

var (
	BrandTones         = []string{"professional", "fun", "educational", "bold"}
	PrimaryGoals       = []string{"growth", "sales", "engagement"}
	PostingFrequencies = []string{"daily", "3x/week", "weekly"}
)
