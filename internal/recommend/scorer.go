package recommend

import (
	"math/rand"
	"sort"
	"time"

	"github.com/aureapp/aure-backend/internal/models"
)

// Context is the situational input a recommendation is ranked against.
type Context struct {
	ScentDirections []models.ScentFamily
	Mood            string
	Occasion        string
	OutfitStyles    []string
	// WeatherBucket is empty when no weather context is available.
	WeatherBucket models.TemperatureCategory
}

// Candidate joins a collection entry with its catalog perfume.
type Candidate struct {
	Entry   models.UserPerfume
	Perfume models.Perfume
}

// Recommendation is the winning candidate of a ranking pass.
type Recommendation struct {
	Candidate Candidate
	Score     float64
}

// Score computes the additive match score for a single candidate. The rng, if
// non-nil, contributes a jitter in [0, JitterSpan) that breaks ties and adds
// variety across repeated identical requests; pass nil for deterministic
// results. The final score never goes below zero.
func (c Config) Score(ctx Context, cand Candidate, now time.Time, rng *rand.Rand) float64 {
	var score float64

	if containsFamily(ctx.ScentDirections, cand.Perfume.ScentFamily) {
		score += c.ScentFamilyWeight
	} else if cand.Perfume.SecondaryScentFamily != "" &&
		containsFamily(ctx.ScentDirections, cand.Perfume.SecondaryScentFamily) {
		score += c.SecondaryFamilyWeight
	}

	if containsString(cand.Perfume.Moods, ctx.Mood) {
		score += c.MoodWeight
	}

	if containsString(cand.Perfume.Occasions, ctx.Occasion) {
		score += c.OccasionWeight
	}

	if ctx.WeatherBucket != "" && containsTemp(cand.Perfume.WeatherProfile.IdealTemperature, ctx.WeatherBucket) {
		score += c.WeatherWeight
		if boost := cand.Perfume.WeatherProfile.TemperatureBoost; boost != 0 {
			score += boost * c.WeatherBoostFactor
		}
	}

	if len(ctx.OutfitStyles) > 0 {
		matches := 0
		for _, s := range ctx.OutfitStyles {
			if containsString(cand.Perfume.OutfitStyles, s) {
				matches++
			}
		}
		score += float64(matches) / float64(len(ctx.OutfitStyles)) * c.OutfitStyleWeight
	}

	if cand.Entry.IsFavorite {
		score += c.FavoriteBonus
	}

	if cand.Entry.LastWornAt != nil {
		days := now.Sub(*cand.Entry.LastWornAt).Hours() / 24
		switch {
		case days < 1:
			score -= c.WornTodayPenalty
		case days < 3:
			score -= c.WornThisRunPenalty
		case days < 7:
			score -= c.WornThisWeekPenalty
		}
	} else {
		score += c.NeverWornBonus
	}

	if rng != nil {
		score += rng.Float64() * c.JitterSpan
	}

	if score < 0 {
		return 0
	}
	return score
}

// Rank scores every candidate and returns the top match, or nil when the list
// is empty. An empty collection is a valid outcome, not an error.
func (c Config) Rank(ctx Context, candidates []Candidate, now time.Time, rng *rand.Rand) *Recommendation {
	if len(candidates) == 0 {
		return nil
	}

	type scored struct {
		cand  Candidate
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		ranked = append(ranked, scored{cand: cand, score: c.Score(ctx, cand, now, rng)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	return &Recommendation{
		Candidate: ranked[0].cand,
		Score:     ranked[0].score,
	}
}

func containsFamily(list []models.ScentFamily, f models.ScentFamily) bool {
	for _, v := range list {
		if v == f {
			return true
		}
	}
	return false
}

func containsTemp(list []models.TemperatureCategory, t models.TemperatureCategory) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
