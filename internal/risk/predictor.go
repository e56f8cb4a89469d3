package risk

import (
	"strings"

	"github.com/vcscsvcscs/dosewise/pkg/model"
)

// Level is a coarse missed-dose risk tier
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// HistorySize is how many of the most recent logs feed a prediction
const HistorySize = 50

// nightPrefixes are the hour prefixes of the 20:00-23:59 bucket
var nightPrefixes = []string{"20", "21", "22", "23"}

// Prediction is the outcome of PredictMissedDoses
type Prediction struct {
	Risk             Level `json:"risk"`
	MissedNightCount int   `json:"missed_night_count"`
}

// PredictMissedDoses classifies recent logs by the number of Missed doses
// scheduled in the evening hours. The hour is matched on the string prefix of
// the dose time.
func PredictMissedDoses(recentLogs []model.DoseLog) Prediction {
	count := 0
	for _, l := range recentLogs {
		if l.Status == model.DoseStatusMissed && isNight(l.Time) {
			count++
		}
	}

	return Prediction{Risk: classify(count), MissedNightCount: count}
}

func isNight(t string) bool {
	for _, p := range nightPrefixes {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}

func classify(missedNight int) Level {
	switch {
	case missedNight > 5:
		return LevelHigh
	case missedNight > 2:
		return LevelMedium
	default:
		return LevelLow
	}
}
