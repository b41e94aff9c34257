package recommend

// MatchType is the coarse label attached to a recommendation score.
type MatchType string

const (
	PerfectMatch MatchType = "perfect-match"
	StrongMatch  MatchType = "strong-match"
	GoodMatch    MatchType = "good-match"
	Suggested    MatchType = "suggested"
)

// Classify maps a score to its match band. Monotonic, total over all scores.
func (c Config) Classify(score float64) MatchType {
	switch {
	case score >= c.PerfectMatchThreshold:
		return PerfectMatch
	case score >= c.StrongMatchThreshold:
		return StrongMatch
	case score >= c.GoodMatchThreshold:
		return GoodMatch
	default:
		return Suggested
	}
}
