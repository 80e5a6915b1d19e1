package usecase

import (
	"math"
	"sync"
)

// DefaultClipWindow is the playback window of an edited clip, in seconds.
const DefaultClipWindow = 20.0

var clipCaptions = []string{
	"🎬 Behind the scenes of our latest creation! Every second counts, and this 20-sec cut says it all. Drop a 🔥 if you want more!",
	"✂️ We trimmed it down to the best 20 seconds, because your time is valuable. This is what we've been working on! 👇",
	"🚀 Short, sharp, and straight to the point. Our story in 20 seconds. Watch till the end!",
	"💡 Sometimes 20 seconds is all you need to make an impact. Here's ours. What do you think?",
	"🎯 Quality over quantity. 20 seconds. Full story. Swipe up to learn more!",
}

var hashtagSets = map[string][]string{
	"default":   {"#ContentCreator", "#VideoMarketing", "#SocialMedia", "#DigitalMarketing", "#Trending", "#Viral", "#CreatorEconomy", "#VideoEditing", "#Reels", "#ShortVideo"},
	"business":  {"#Business", "#Entrepreneur", "#Marketing", "#BrandGrowth", "#SmallBusiness", "#StartupLife", "#ContentStrategy", "#GrowthHacking"},
	"lifestyle": {"#Lifestyle", "#DailyVlog", "#BehindTheScenes", "#Authentic", "#LifeStyle", "#GRWM"},
	"food":      {"#FoodVideo", "#Foodie", "#CafeLife", "#FoodBlogger", "#FoodPhotography", "#RestaurantLife"},
}

const suggestedHashtagCount = 12

// PickCaption deterministically chooses one of the fixed clip captions.
func PickCaption(seed int) string {
	idx := seed % len(clipCaptions)
	if idx < 0 {
		idx += len(clipCaptions)
	}
	return clipCaptions[idx]
}

// SuggestedHashtags returns the default and business sets, first 12.
func SuggestedHashtags() []string {
	tags := make([]string, 0, len(hashtagSets["default"])+len(hashtagSets["business"]))
	tags = append(tags, hashtagSets["default"]...)
	tags = append(tags, hashtagSets["business"]...)
	return tags[:suggestedHashtagCount]
}

// HashtagSet returns a named hashtag set, or nil.
func HashtagSet(name string) []string {
	set, ok := hashtagSets[name]
	if !ok {
		return nil
	}
	return append([]string(nil), set...)
}

// ClipPlayer models playback of a clip clamped to a fixed window.
type ClipPlayer struct {
	mu       sync.Mutex
	window   float64
	position float64
	playing  bool
}

func NewClipPlayer(window float64) *ClipPlayer {
	if window <= 0 {
		window = DefaultClipWindow
	}
	return &ClipPlayer{window: window}
}

// Play resumes playback, restarting from zero once the window was reached.
func (p *ClipPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.position >= p.window {
		p.position = 0
	}
	p.playing = true
}

func (p *ClipPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// Advance reports a new playhead time. Reaching the window pauses exactly at
// the window. It returns true when the window end was hit by this call.
func (p *ClipPlayer) Advance(t float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t >= p.window {
		ended := p.playing
		p.position = p.window
		p.playing = false
		return ended
	}
	p.position = t
	return false
}

func (p *ClipPlayer) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

func (p *ClipPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *ClipPlayer) Window() float64 {
	return p.window
}

func (p *ClipPlayer) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ClipProgress(p.position, p.window)
}
