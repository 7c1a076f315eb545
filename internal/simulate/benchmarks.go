// Package simulate ages testing creatives through synthetic performance
// data and applies the phased analysis policy to flag winners and losers.
package simulate

import "github.com/alexanderramin/admind/internal/domain"

// Benchmark is the baseline click and conversion profile of a format.
type Benchmark struct {
	CTR float64
	CVR float64
}

// defaultBenchmark is used for any format without a tuned profile.
var defaultBenchmark = Benchmark{CTR: 1.0, CVR: 1.0}

// formatBenchmarks encodes where each format sits on the funnel: meme-like
// formats click well but convert poorly, logical formats the reverse.
var formatBenchmarks = map[domain.CreativeFormat]Benchmark{
	// High engagement, low sales (top of funnel)
	domain.Meme:          {CTR: 2.5, CVR: 0.5},
	domain.TwitterRepost: {CTR: 2.0, CVR: 0.8},
	domain.RedditThread:  {CTR: 2.2, CVR: 0.7},

	// Balanced (middle of funnel)
	domain.UGCMirror:         {CTR: 1.5, CVR: 1.2},
	domain.StoryQNA:          {CTR: 1.4, CVR: 1.0},
	domain.CarouselRealStory: {CTR: 1.8, CVR: 1.3},

	// High sales, low engagement (bottom of funnel / logic)
	domain.UsVsThem:          {CTR: 0.9, CVR: 2.5},
	domain.BenefitPointers:   {CTR: 1.0, CVR: 2.2},
	domain.StickyNoteRealism: {CTR: 1.3, CVR: 1.8},
	domain.GraphChart:        {CTR: 0.7, CVR: 2.0},
}

// BenchmarkFor returns the benchmark profile for a format.
func BenchmarkFor(format domain.CreativeFormat) Benchmark {
	if b, ok := formatBenchmarks[format]; ok {
		return b
	}
	return defaultBenchmark
}
