package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aureapp/aure-backend/internal/models"
)

// FamilyShare is one slice of the per-family wear breakdown. Percentages are
// rounded to the nearest integer and may not sum to exactly 100.
type FamilyShare struct {
	Family     models.ScentFamily `json:"family"`
	Count      int                `json:"count"`
	Percentage int                `json:"percentage"`
}

// PerfumeWearCount is a most-worn ranking entry, carrying the denormalized
// display fields from the log.
type PerfumeWearCount struct {
	PerfumeID uuid.UUID `json:"perfume_id"`
	Name      string    `json:"name"`
	House     string    `json:"house,omitempty"`
	Count     int       `json:"count"`
}

// WearStats aggregates a user's full wear history.
type WearStats struct {
	TotalWears      int                `json:"total_wears"`
	UniquePerfumes  int                `json:"unique_perfumes"`
	CurrentStreak   int                `json:"current_streak"`
	FavoriteFamily  models.ScentFamily `json:"favorite_family,omitempty"`
	FavoritePerfume *PerfumeWearCount  `json:"favorite_perfume,omitempty"`
	FamilyBreakdown []FamilyShare      `json:"family_breakdown"`
	MostWorn        []PerfumeWearCount `json:"most_worn"`
	FirstWear       *time.Time         `json:"first_wear,omitempty"`
	LastWear        *time.Time         `json:"last_wear,omitempty"`
}

// SummarizeWear computes aggregate wear statistics. Zero entries yield a
// fully-populated zero result so callers can render an empty state without a
// separate nil-check path.
func SummarizeWear(entries []models.WearLogEntry, now time.Time) WearStats {
	stats := WearStats{
		FamilyBreakdown: []FamilyShare{},
		MostWorn:        []PerfumeWearCount{},
	}
	if len(entries) == 0 {
		return stats
	}

	stats.TotalWears = len(entries)

	familyCounts := map[models.ScentFamily]int{}
	for _, e := range entries {
		if e.ScentFamily != "" {
			familyCounts[e.ScentFamily]++
		}
	}
	totalFamilyWears := 0
	for _, n := range familyCounts {
		totalFamilyWears += n
	}
	for family, n := range familyCounts {
		stats.FamilyBreakdown = append(stats.FamilyBreakdown, FamilyShare{
			Family:     family,
			Count:      n,
			Percentage: int(math.Round(float64(n) / float64(totalFamilyWears) * 100)),
		})
	}
	sort.Slice(stats.FamilyBreakdown, func(i, j int) bool {
		a, b := stats.FamilyBreakdown[i], stats.FamilyBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Family < b.Family
	})

	perfumeCounts := map[uuid.UUID]*PerfumeWearCount{}
	for _, e := range entries {
		pc, ok := perfumeCounts[e.PerfumeID]
		if !ok {
			pc = &PerfumeWearCount{PerfumeID: e.PerfumeID, Name: e.PerfumeName, House: e.PerfumeHouse}
			perfumeCounts[e.PerfumeID] = pc
		}
		pc.Count++
	}
	stats.UniquePerfumes = len(perfumeCounts)
	mostWorn := make([]PerfumeWearCount, 0, len(perfumeCounts))
	for _, pc := range perfumeCounts {
		mostWorn = append(mostWorn, *pc)
	}
	sort.Slice(mostWorn, func(i, j int) bool {
		if mostWorn[i].Count != mostWorn[j].Count {
			return mostWorn[i].Count > mostWorn[j].Count
		}
		return mostWorn[i].Name < mostWorn[j].Name
	})
	if len(mostWorn) > 5 {
		mostWorn = mostWorn[:5]
	}
	stats.MostWorn = mostWorn

	first, last := entries[0].WornAt, entries[0].WornAt
	for _, e := range entries[1:] {
		if e.WornAt.Before(first) {
			first = e.WornAt
		}
		if e.WornAt.After(last) {
			last = e.WornAt
		}
	}
	stats.FirstWear = &first
	stats.LastWear = &last

	stats.CurrentStreak = currentStreak(entries, now)

	if len(stats.FamilyBreakdown) > 0 {
		stats.FavoriteFamily = stats.FamilyBreakdown[0].Family
	}
	if len(stats.MostWorn) > 0 {
		fav := stats.MostWorn[0]
		stats.FavoritePerfume = &fav
	}

	return stats
}

// currentStreak counts consecutive calendar days of wear, in the location of
// now, ending at today or yesterday. A most recent wear-date older than
// yesterday means the streak is broken.
func currentStreak(entries []models.WearLogEntry, now time.Time) int {
	loc := now.Location()

	seen := map[time.Time]bool{}
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d := dateOf(e.WornAt.In(loc))
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		if days[i].AddDate(0, 0, -1).Equal(days[i+1]) {
			streak++
		} else {
			break
		}
	}
	return streak
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
