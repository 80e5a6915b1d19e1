package model

import "strings"

// Platform identifies a social network a content item targets.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformYouTube   Platform = "youtube"

	// PlatformAll is a filter value only; no item carries it.
	PlatformAll Platform = "all"
)

var platformLabels = map[Platform]string{
	PlatformInstagram: "Instagram",
	PlatformFacebook:  "Facebook",
	PlatformYouTube:   "YouTube",
}

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformFacebook, PlatformYouTube}
}

func (p Platform) Valid() bool {
	_, ok := platformLabels[p]
	return ok
}

func (p Platform) Label() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return string(p)
}

// ParsePlatform normalizes user input into a Platform. "all" and the empty
// string both resolve to PlatformAll.
func ParsePlatform(raw string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" || p == PlatformAll {
		return PlatformAll, nil
	}
	if !p.Valid() {
		return "", ErrUnknownPlatform
	}
	return p, nil
}
