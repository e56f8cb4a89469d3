package adherence

import "github.com/vcscsvcscs/dosewise/pkg/model"

// Metrics are the inputs of achievement rules
type Metrics struct {
	CurrentStreak   int
	AdherenceWeekly int
	RecentActivity  int
}

type rule struct {
	achievement model.Achievement
	reached     func(Metrics) bool
}

// rules are evaluated in order; the output keeps that order
var rules = []rule{
	{
		achievement: model.Achievement{Key: "streak-7", Title: "7-day streak", Emoji: "🔥", Description: "You kept a 7-day streak! Keep going."},
		reached:     func(m Metrics) bool { return m.CurrentStreak >= 7 },
	},
	{
		achievement: model.Achievement{Key: "streak-30", Title: "30-day streak", Emoji: "🏆", Description: "Amazing, 30 days of consistency!"},
		reached:     func(m Metrics) bool { return m.CurrentStreak >= 30 },
	},
	{
		achievement: model.Achievement{Key: "consistency-star", Title: "Consistency Star", Emoji: "⭐", Description: "90%+ adherence for the last 7 days."},
		reached:     func(m Metrics) bool { return m.AdherenceWeekly >= 90 },
	},
	{
		achievement: model.Achievement{Key: "active-week", Title: "Active Week", Emoji: "📈", Description: "You have recent consistent activity."},
		reached:     func(m Metrics) bool { return m.RecentActivity >= 5 },
	},
}

// Evaluate returns the achievements reached under m, each key at most once
func Evaluate(m Metrics) []model.Achievement {
	out := make([]model.Achievement, 0, len(rules))
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if !r.reached(m) || seen[r.achievement.Key] {
			continue
		}
		seen[r.achievement.Key] = true
		out = append(out, r.achievement)
	}
	return out
}

// Unseen filters achievements whose key is not in seen
func Unseen(achievements []model.Achievement, seen []string) []model.Achievement {
	known := make(map[string]bool, len(seen))
	for _, k := range seen {
		known[k] = true
	}

	out := make([]model.Achievement, 0)
	for _, a := range achievements {
		if !known[a.Key] {
			out = append(out, a)
		}
	}
	return out
}
