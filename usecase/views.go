package usecase

import (
	"math"
	"sort"

	"creatorflow/domain/dto"
	"creatorflow/domain/model"
)

const (
	TierPositive = "positive"
	TierNeutral  = "neutral"
	TierWarning  = "warning"

	maxScore        = 10
	scoreRingRadius = 52.0
	// UpcomingLimit is how many pending posts the dashboard lists.
	UpcomingLimit = 3
)

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// ScoreTier maps a 0..10 score to its tier and headline.
func ScoreTier(score int) (string, string) {
	switch score = clampScore(score); {
	case score >= 8:
		return TierPositive, "Great Post!"
	case score >= 6:
		return TierNeutral, "Good, Room to Improve"
	default:
		return TierWarning, "Needs Work"
	}
}

// ScoreRing computes the circular gauge and the 10-segment bar for a score.
func ScoreRing(score int) dto.ScoreRingView {
	score = clampScore(score)
	pct := float64(score) / maxScore * 100
	circumference := 2 * math.Pi * scoreRingRadius
	tier, label := ScoreTier(score)

	segments := make([]bool, maxScore)
	for i := range segments {
		segments[i] = i < score
	}

	return dto.ScoreRingView{
		Score:         score,
		Percentage:    pct,
		Tier:          tier,
		Label:         label,
		Radius:        scoreRingRadius,
		Circumference: circumference,
		DashLength:    pct / 100 * circumference,
		Segments:      segments,
	}
}

// ClipProgress is the elapsed share of the playback window, in [0, 100].
func ClipProgress(elapsed float64, window float64) float64 {
	if window <= 0 || elapsed <= 0 || math.IsNaN(elapsed) {
		return 0
	}
	return math.Min(elapsed, window) / window * 100
}

func SortByDay(items []model.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Day < items[j].Day })
}

// FilterByPlatform keeps items of one platform in their existing order.
// PlatformAll returns every item.
func FilterByPlatform(items []model.ContentItem, p model.Platform) []model.ContentItem {
	out := make([]model.ContentItem, 0, len(items))
	for _, item := range items {
		if p == model.PlatformAll || item.Platform == p {
			out = append(out, item)
		}
	}
	return out
}

// PlatformCounts gives the tab badges: one count per platform plus "all".
func PlatformCounts(items []model.ContentItem) map[string]int {
	counts := map[string]int{string(model.PlatformAll): len(items)}
	for _, p := range model.Platforms() {
		counts[string(p)] = 0
	}
	for _, item := range items {
		counts[string(item.Platform)]++
	}
	return counts
}

func PlatformDistribution(items []model.ContentItem) map[model.Platform]int {
	dist := make(map[model.Platform]int)
	for _, item := range items {
		dist[item.Platform]++
	}
	return dist
}

// PlatformShares is the distribution as chart bars. An empty calendar yields
// no bars rather than dividing by zero.
func PlatformShares(items []model.ContentItem) []dto.PlatformShare {
	total := len(items)
	if total == 0 {
		return nil
	}
	dist := PlatformDistribution(items)
	shares := make([]dto.PlatformShare, 0, len(dist))
	for _, p := range model.Platforms() {
		count := dist[p]
		if count == 0 {
			continue
		}
		shares = append(shares, dto.PlatformShare{
			Platform: p,
			Label:    p.Label(),
			Count:    count,
			Percent:  float64(count) / float64(total) * 100,
		})
	}
	return shares
}

func SplitPublished(items []model.ContentItem) dto.PublishedSplit {
	var split dto.PublishedSplit
	for _, item := range items {
		if item.IsPublished {
			split.Published++
		} else {
			split.Unpublished++
		}
	}
	return split
}

// Upcoming returns the first n unpublished items in existing order.
func Upcoming(items []model.ContentItem, n int) []model.ContentItem {
	if n < 0 {
		n = 0
	}
	out := make([]model.ContentItem, 0, n)
	for _, item := range items {
		if len(out) >= n {
			break
		}
		if !item.IsPublished {
			out = append(out, item)
		}
	}
	return out
}
