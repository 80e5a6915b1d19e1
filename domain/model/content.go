package model

// ContentItem is one planned post in the generated calendar. Field names on the
// wire follow the backend's snake_case schema.
type ContentItem struct {
	ID             int64    `json:"id"`
	Day            int      `json:"day"`
	Platform       Platform `json:"platform"`
	ContentIdea    string   `json:"content_idea"`
	Hook           string   `json:"hook"`
	Caption        string   `json:"caption"`
	Hashtags       *string  `json:"hashtags,omitempty"`
	CTA            string   `json:"cta"`
	Script         *string  `json:"script,omitempty"`
	SEOTitle       *string  `json:"seo_title,omitempty"`
	SEODescription *string  `json:"seo_description,omitempty"`
	SEOTags        *string  `json:"seo_tags,omitempty"`
	IsPublished    bool     `json:"is_published"`
}

// ContentPatch carries the editable subset of a ContentItem. Nil fields are
// left untouched by the backend.
type ContentPatch struct {
	ContentIdea    *string `json:"content_idea,omitempty"`
	Hook           *string `json:"hook,omitempty"`
	Caption        *string `json:"caption,omitempty"`
	Hashtags       *string `json:"hashtags,omitempty"`
	CTA            *string `json:"cta,omitempty"`
	Script         *string `json:"script,omitempty"`
	SEOTitle       *string `json:"seo_title,omitempty"`
	SEODescription *string `json:"seo_description,omitempty"`
	SEOTags        *string `json:"seo_tags,omitempty"`
}

// ForPlatform drops the fields that do not apply to the given platform.
// YouTube items have no hashtags; only YouTube items have a script and SEO data.
func (p ContentPatch) ForPlatform(platform Platform) ContentPatch {
	out := p
	if platform == PlatformYouTube {
		out.Hashtags = nil
		return out
	}
	out.Script = nil
	out.SEOTitle = nil
	out.SEODescription = nil
	out.SEOTags = nil
	return out
}

// Empty reports whether the patch changes nothing.
func (p ContentPatch) Empty() bool {
	return p.ContentIdea == nil && p.Hook == nil && p.Caption == nil &&
		p.Hashtags == nil && p.CTA == nil && p.Script == nil &&
		p.SEOTitle == nil && p.SEODescription == nil && p.SEOTags == nil
}

// ContentAction is an AI rewrite applied to a single item.
type ContentAction string

const (
	ActionRegenerate ContentAction = "regenerate"
	ActionImprove    ContentAction = "improve"
	ActionEngaging   ContentAction = "engaging"
)

func (a ContentAction) Valid() bool {
	switch a {
	case ActionRegenerate, ActionImprove, ActionEngaging:
		return true
	}
	return false
}

// ImageSuggestion is returned by confirm-plan. Only one of the three image
// sources is normally set.
type ImageSuggestion struct {
	Day         int      `json:"day"`
	Platform    Platform `json:"platform"`
	ContentIdea string   `json:"content_idea"`
	Caption     string   `json:"caption,omitempty"`
	CTA         string   `json:"cta,omitempty"`
	ImageData   string   `json:"image_data,omitempty"`
	FallbackURL string   `json:"fallback_url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Source picks the image to display: inline data, then fallback, then url.
func (s ImageSuggestion) Source() string {
	switch {
	case s.ImageData != "":
		return s.ImageData
	case s.FallbackURL != "":
		return s.FallbackURL
	default:
		return s.ImageURL
	}
}

// Rating is the AI score for a post. It is never persisted.
type Rating struct {
	Score       int      `json:"score"`
	Reason      string   `json:"reason"`
	Suggestions []string `json:"suggestions"`
}

// RateRequest is the input to the post rater.
type RateRequest struct {
	Caption  string   `json:"caption"`
	URL      string   `json:"url"`
	HasImage bool     `json:"has_image"`
	Platform Platform `json:"platform"`
}
