package adherence

import (
	"math"
	"sort"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/timeutil"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// Config holds the tunables of the aggregation
type Config struct {
	// StreakCap bounds the backward day walk of the streak computation
	StreakCap int
	// AdherenceWindow is the trailing window used for the adherence percentage
	AdherenceWindow time.Duration
	// RecentActivityLimit caps the recent activity list
	RecentActivityLimit int
}

// DefaultConfig returns the production aggregation settings
func DefaultConfig() Config {
	return Config{
		StreakCap:           365,
		AdherenceWindow:     7 * 24 * time.Hour,
		RecentActivityLimit: 5,
	}
}

// KPIs are the headline dashboard numbers
type KPIs struct {
	AdherenceWeekly int `json:"adherence_weekly"`
	CurrentStreak   int `json:"current_streak"`
	UpcomingToday   int `json:"upcoming_today"`
}

// Summary is the full dashboard aggregation for one user
type Summary struct {
	KPIs           KPIs                   `json:"kpis"`
	UpcomingDoses  []model.DoseOccurrence `json:"upcoming_doses"`
	MissedDoses    []model.DoseOccurrence `json:"missed_doses"`
	RecentActivity []model.DoseLog        `json:"recent_activity"`
	Achievements   []model.Achievement    `json:"achievements"`
}

// Aggregator derives dashboard metrics from schedules and dose logs.
// It never reads the system clock and holds no mutable state, so a single
// instance can be shared by concurrent requests.
type Aggregator struct {
	cfg    Config
	logger *zap.Logger
}

// NewAggregator creates a new Aggregator
func NewAggregator(cfg Config, logger *zap.Logger) *Aggregator {
	defaults := DefaultConfig()
	if cfg.StreakCap <= 0 {
		cfg.StreakCap = defaults.StreakCap
	}
	if cfg.AdherenceWindow <= 0 {
		cfg.AdherenceWindow = defaults.AdherenceWindow
	}
	if cfg.RecentActivityLimit <= 0 {
		cfg.RecentActivityLimit = defaults.RecentActivityLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Aggregator{
		cfg:    cfg,
		logger: logger,
	}
}

// plan is an active schedule with its parsed dose times
type plan struct {
	schedule model.Schedule
	times    []doseTime
}

type doseTime struct {
	raw string
	tod timeutil.TimeOfDay
}

// Summarize computes the dashboard summary relative to now
func (a *Aggregator) Summarize(now time.Time, schedules []model.Schedule, doseLogs []model.DoseLog) Summary {
	plans := a.plans(schedules)
	logs := dedupeLogs(doseLogs, now.Location())

	upcoming, missed := partitionToday(now, plans)
	recent := recentActivity(logs, a.cfg.RecentActivityLimit)
	adherence := weeklyAdherence(now, logs, a.cfg.AdherenceWindow)
	streak := currentStreak(now, plans, logs, a.cfg.StreakCap)

	return Summary{
		KPIs: KPIs{
			AdherenceWeekly: adherence,
			CurrentStreak:   streak,
			UpcomingToday:   len(upcoming),
		},
		UpcomingDoses:  upcoming,
		MissedDoses:    missed,
		RecentActivity: recent,
		Achievements:   Evaluate(Metrics{CurrentStreak: streak, AdherenceWeekly: adherence, RecentActivity: len(recent)}),
	}
}

// plans keeps active schedules and parses their times, reporting each
// malformed time once and skipping it
func (a *Aggregator) plans(schedules []model.Schedule) []plan {
	out := make([]plan, 0, len(schedules))
	for _, s := range schedules {
		if !s.Active {
			continue
		}

		p := plan{schedule: s}
		seen := make(map[string]bool, len(s.Times))
		for _, raw := range s.Times {
			if seen[raw] {
				continue
			}
			seen[raw] = true

			tod, err := timeutil.ParseTimeOfDay(raw)
			if err != nil {
				a.logger.Warn("skipping malformed dose time",
					zap.String("schedule_id", s.ID),
					zap.String("time", raw),
					zap.Error(err),
				)
				continue
			}
			p.times = append(p.times, doseTime{raw: raw, tod: tod})
		}
		out = append(out, p)
	}
	return out
}

// partitionToday expands eligible schedules into today's occurrences and
// splits them into upcoming (due after now) and missed (due at or before now)
func partitionToday(now time.Time, plans []plan) (upcoming, missed []model.DoseOccurrence) {
	upcoming = make([]model.DoseOccurrence, 0)
	missed = make([]model.DoseOccurrence, 0)

	for _, p := range plans {
		if p.schedule.StartDate.After(now) {
			continue
		}
		for _, dt := range p.times {
			occ := model.DoseOccurrence{
				ScheduleID:     p.schedule.ID,
				MedicationName: p.schedule.DisplayName(),
				Time:           dt.raw,
			}
			if timeutil.On(now, dt.tod).After(now) {
				upcoming = append(upcoming, occ)
			} else {
				missed = append(missed, occ)
			}
		}
	}

	sortByTime(upcoming)
	sortByTime(missed)
	return upcoming, missed
}

// "HH:mm" is zero padded, so lexicographic order is chronological
func sortByTime(doses []model.DoseOccurrence) {
	sort.SliceStable(doses, func(i, j int) bool {
		return doses[i].Time < doses[j].Time
	})
}

// dedupeLogs drops non-settling logs and keeps only the latest settling log
// per (schedule, time, calendar day)
func dedupeLogs(logs []model.DoseLog, loc *time.Location) []model.DoseLog {
	type key struct {
		scheduleID string
		time       string
		day        string
	}

	out := make([]model.DoseLog, 0, len(logs))
	index := make(map[key]int, len(logs))
	for _, l := range logs {
		if !l.Status.Settles() {
			continue
		}
		if l.ScheduleID == "" {
			out = append(out, l)
			continue
		}

		k := key{scheduleID: l.ScheduleID, time: l.Time, day: l.ActionTime.In(loc).Format(time.DateOnly)}
		if i, ok := index[k]; ok {
			if l.ActionTime.After(out[i].ActionTime) {
				out[i] = l
			}
			continue
		}
		index[k] = len(out)
		out = append(out, l)
	}
	return out
}

// recentActivity returns the newest logs by action time
func recentActivity(logs []model.DoseLog, limit int) []model.DoseLog {
	recent := make([]model.DoseLog, len(logs))
	copy(recent, logs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].ActionTime.After(recent[j].ActionTime)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// weeklyAdherence is the rounded share of Taken logs in the trailing window,
// or 0 when the window is empty
func weeklyAdherence(now time.Time, logs []model.DoseLog, window time.Duration) int {
	from := now.Add(-window)

	total, taken := 0, 0
	for _, l := range logs {
		if !l.ActionTime.After(from) || l.ActionTime.After(now) {
			continue
		}
		total++
		if l.Status == model.DoseStatusTaken {
			taken++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(taken) / float64(total)))
}

// currentStreak walks backward from yesterday counting fully compliant days.
// Days without any eligible schedule are neutral; the first non-compliant
// scheduled day ends the walk.
func currentStreak(now time.Time, plans []plan, logs []model.DoseLog, limit int) int {
	byDay := make(map[string][]model.DoseLog)
	loc := now.Location()
	for _, l := range logs {
		day := l.ActionTime.In(loc).Format(time.DateOnly)
		byDay[day] = append(byDay[day], l)
	}

	streak := 0
	for offset := 1; offset <= limit; offset++ {
		dayStart := timeutil.StartOfDay(timeutil.DaysAgo(now, offset))

		eligible, scheduled := 0, 0
		for _, p := range plans {
			if p.schedule.StartDate.After(dayStart) {
				continue
			}
			eligible++
			scheduled += len(p.times)
		}
		if eligible == 0 || scheduled == 0 {
			continue
		}

		taken, broken := 0, false
		for _, l := range byDay[dayStart.Format(time.DateOnly)] {
			switch l.Status {
			case model.DoseStatusTaken:
				taken++
			case model.DoseStatusMissed, model.DoseStatusSkipped:
				broken = true
			}
		}

		if broken || taken < scheduled {
			break
		}
		streak++
	}
	return streak
}
