package recommend

// Config centralizes every weight and threshold used by the scorer,
// classifier and weather categorizer so they can be tuned and pinned in tests
// without touching algorithm code.
type Config struct {
	// Additive scoring weights.
	ScentFamilyWeight     float64
	SecondaryFamilyWeight float64
	MoodWeight            float64
	OccasionWeight        float64
	WeatherWeight         float64
	OutfitStyleWeight     float64
	FavoriteBonus         float64
	NeverWornBonus        float64

	// Penalties for recently worn perfumes, keyed by days since last worn.
	WornTodayPenalty    float64 // < 1 day
	WornThisRunPenalty  float64 // < 3 days
	WornThisWeekPenalty float64 // < 7 days

	// Multiplier applied to a perfume's temperature boost (-2..+2).
	WeatherBoostFactor float64

	// Upper bound of the random tie-breaking jitter.
	JitterSpan float64

	// Classification bands.
	PerfectMatchThreshold float64
	StrongMatchThreshold  float64
	GoodMatchThreshold    float64

	// Temperature bucket lower bounds in Celsius.
	HotAbove  float64
	WarmAbove float64
	MildAbove float64
	CoolAbove float64

	// Humidity bucket boundaries in percent.
	DryBelow      float64
	ModerateUpTo  float64
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		ScentFamilyWeight:     30,
		SecondaryFamilyWeight: 15,
		MoodWeight:            25,
		OccasionWeight:        20,
		WeatherWeight:         15,
		OutfitStyleWeight:     10,
		FavoriteBonus:         5,
		NeverWornBonus:        5,

		WornTodayPenalty:    50,
		WornThisRunPenalty:  25,
		WornThisWeekPenalty: 10,

		WeatherBoostFactor: 5,
		JitterSpan:         3,

		PerfectMatchThreshold: 80,
		StrongMatchThreshold:  60,
		GoodMatchThreshold:    40,

		HotAbove:  30,
		WarmAbove: 23,
		MildAbove: 15,
		CoolAbove: 5,

		DryBelow:     40,
		ModerateUpTo: 65,
	}
}
