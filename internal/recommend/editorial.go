package recommend

import (
	"fmt"
	"strings"

	"github.com/aureapp/aure-backend/internal/models"
)

// Copy is a short editorial explanation plus an affirmation line.
type Copy struct {
	Explanation string `json:"explanation"`
	Affirmation string `json:"affirmation"`
}

var scentDescriptions = map[models.ScentFamily]string{
	models.FamilyFresh:    "crisp and invigorating notes",
	models.FamilyFloral:   "soft, romantic florals",
	models.FamilyWoody:    "grounding, earthy woods",
	models.FamilyAmber:    "warm, resinous depth",
	models.FamilyGourmand: "comforting, delicious warmth",
	models.FamilyMusky:    "subtle, skin-like sensuality",
}

var occasionPhrases = map[string]string{
	"work":   "professional yet memorable",
	"date":   "captivating and intimate",
	"casual": "effortlessly chic",
	"event":  "statement-making",
	"home":   "comforting and personal",
}

var moodPhrases = map[string]string{
	"confident":  "projects assured presence",
	"soft":       "wraps you in gentle warmth",
	"playful":    "sparks joy and spontaneity",
	"mysterious": "leaves an intriguing trail",
}

var weatherPhrases = map[models.TemperatureCategory]string{
	models.TempHot:  ", and performs wonderfully in the heat",
	models.TempWarm: ", enhanced by the warm weather",
	models.TempMild: ", perfect for today's comfortable weather",
	models.TempCool: ", adding warmth to the cool air",
	models.TempCold: ", providing cozy comfort against the cold",
}

var affirmations = map[string]string{
	"confident":  "You carry your own warmth today.",
	"soft":       "Your gentleness is your strength.",
	"playful":    "Joy radiates from you effortlessly.",
	"mysterious": "Let them wonder what your secret is.",
}

var auraWords = map[string][]string{
	"confident":  {"Grounded", "Bold", "Assured"},
	"soft":       {"Gentle", "Approachable", "Serene"},
	"playful":    {"Spirited", "Light", "Joyful"},
	"mysterious": {"Intriguing", "Subtle", "Deep"},
}

// Compose builds the fallback editorial copy for a recommendation. It always
// produces output: unknown families, occasions and moods get generic phrases,
// so this is a safe substitute whenever the AI copy service is unavailable.
func Compose(perfumeName string, family models.ScentFamily, mood, occasion string, weather models.TemperatureCategory) Copy {
	scentDesc, ok := scentDescriptions[family]
	if !ok {
		scentDesc = "beautifully balanced notes"
	}
	occasionPhrase, ok := occasionPhrases[strings.ToLower(occasion)]
	if !ok {
		occasionPhrase = "perfect for the moment"
	}
	moodPhrase, ok := moodPhrases[strings.ToLower(mood)]
	if !ok {
		moodPhrase = "matches your energy beautifully"
	}

	explanation := fmt.Sprintf("%s's %s feel %s today. This scent %s",
		perfumeName, scentDesc, occasionPhrase, moodPhrase)
	if weather != "" {
		explanation += weatherPhrases[weather]
	}
	explanation += "."

	return Copy{
		Explanation: explanation,
		Affirmation: Affirmation(mood),
	}
}

// Affirmation returns the short affirmation line for a mood.
func Affirmation(mood string) string {
	if a, ok := affirmations[strings.ToLower(mood)]; ok {
		return a
	}
	return "You are exactly where you need to be."
}

// AuraWords returns the three aura words associated with a mood.
func AuraWords(mood string) []string {
	if w, ok := auraWords[strings.ToLower(mood)]; ok {
		return w
	}
	return []string{"Balanced", "Present", "Authentic"}
}
