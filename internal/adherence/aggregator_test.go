package adherence

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/dosewise/internal/timeutil"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestSchedule(id string, start time.Time, times ...string) model.Schedule {
	return model.Schedule{
		ID:        id,
		UserID:    "user-1",
		Name:      "Metformin",
		Dosage:    "500mg",
		Times:     times,
		StartDate: start,
		Active:    true,
		Frequency: model.FrequencyDaily,
	}
}

func newTestLog(scheduleID, tod string, day time.Time, status model.DoseStatus) model.DoseLog {
	parsed, err := timeutil.ParseTimeOfDay(tod)
	if err != nil {
		panic(err)
	}
	at := timeutil.On(day, parsed)
	return model.DoseLog{
		ID:            fmt.Sprintf("%s-%s-%s-%s", scheduleID, tod, day.Format(time.DateOnly), status),
		UserID:        "user-1",
		ScheduleID:    scheduleID,
		Time:          tod,
		ScheduledTime: at,
		ActionTime:    at,
		Status:        status,
	}
}

// compliantDays logs every time of the schedule as Taken on days now-1 .. now-n
func compliantDays(now time.Time, s model.Schedule, n int) []model.DoseLog {
	var logs []model.DoseLog
	for offset := 1; offset <= n; offset++ {
		day := timeutil.DaysAgo(now, offset)
		for _, tod := range s.Times {
			logs = append(logs, newTestLog(s.ID, tod, day, model.DoseStatusTaken))
		}
	}
	return logs
}

func TestAggregator_Summarize_TodayPartition(t *testing.T) {
	// Arrange
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	schedule := newTestSchedule("sched-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "08:00", "20:00")

	// Act
	summary := aggregator.Summarize(now, []model.Schedule{schedule}, nil)

	// Assert
	require.Len(t, summary.UpcomingDoses, 1)
	assert.Equal(t, model.DoseOccurrence{ScheduleID: "sched-1", MedicationName: "Metformin 500mg", Time: "20:00"}, summary.UpcomingDoses[0])
	require.Len(t, summary.MissedDoses, 1)
	assert.Equal(t, "08:00", summary.MissedDoses[0].Time)
	assert.Equal(t, 1, summary.KPIs.UpcomingToday)
	assert.Equal(t, 0, summary.KPIs.AdherenceWeekly)
	assert.Equal(t, 0, summary.KPIs.CurrentStreak)
	assert.Empty(t, summary.RecentActivity)
	assert.Empty(t, summary.Achievements)
}

func TestAggregator_Summarize_EmptyInputs(t *testing.T) {
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())

	summary := aggregator.Summarize(time.Now(), nil, nil)

	assert.Equal(t, KPIs{}, summary.KPIs)
	assert.NotNil(t, summary.UpcomingDoses)
	assert.NotNil(t, summary.MissedDoses)
	assert.NotNil(t, summary.RecentActivity)
	assert.NotNil(t, summary.Achievements)
	assert.Empty(t, summary.UpcomingDoses)
	assert.Empty(t, summary.MissedDoses)
}

func TestAggregator_Summarize_Eligibility(t *testing.T) {
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	now := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	inactive := newTestSchedule("inactive", now.AddDate(0, 0, -3), "10:00")
	inactive.Active = false
	future := newTestSchedule("future", now.Add(time.Hour), "11:00")
	current := newTestSchedule("current", now.AddDate(0, 0, -1), "12:00", "07:00")

	summary := aggregator.Summarize(now, []model.Schedule{inactive, future, current}, nil)

	require.Len(t, summary.UpcomingDoses, 1)
	assert.Equal(t, "current", summary.UpcomingDoses[0].ScheduleID)
	require.Len(t, summary.MissedDoses, 1)
	assert.Equal(t, "07:00", summary.MissedDoses[0].Time)
}

func TestAggregator_Summarize_DoseDueNowIsMissed(t *testing.T) {
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	schedule := newTestSchedule("sched-1", now.AddDate(0, 0, -1), "08:00")

	summary := aggregator.Summarize(now, []model.Schedule{schedule}, nil)

	assert.Empty(t, summary.UpcomingDoses)
	require.Len(t, summary.MissedDoses, 1)
	assert.Equal(t, "08:00", summary.MissedDoses[0].Time)
}

func TestAggregator_Summarize_SortsAcrossSchedules(t *testing.T) {
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	now := time.Date(2024, 5, 10, 0, 30, 0, 0, time.UTC)
	a := newTestSchedule("a", now.AddDate(0, 0, -1), "21:00", "09:00")
	b := newTestSchedule("b", now.AddDate(0, 0, -1), "13:15", "06:45")

	summary := aggregator.Summarize(now, []model.Schedule{a, b}, nil)

	var times []string
	for _, d := range summary.UpcomingDoses {
		times = append(times, d.Time)
	}
	assert.Equal(t, []string{"06:45", "09:00", "13:15", "21:00"}, times)
}

func TestAggregator_Summarize_MalformedTimeReportedOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	aggregator := NewAggregator(DefaultConfig(), zap.New(core))
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	schedule := newTestSchedule("sched-1", now.AddDate(0, 0, -30), "08:00", "8pm", "20:00")

	summary := aggregator.Summarize(now, []model.Schedule{schedule}, nil)

	assert.Len(t, summary.UpcomingDoses, 1)
	assert.Len(t, summary.MissedDoses, 1)
	require.Equal(t, 1, logs.FilterMessage("skipping malformed dose time").Len())
	assert.Equal(t, "8pm", logs.All()[0].ContextMap()["time"])
}

func TestAggregator_Summarize_SignedTimesAreMalformed(t *testing.T) {
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	schedule := newTestSchedule("sched-1", now.AddDate(0, 0, -1), "08:00", "+9:00", "-0:30")

	summary := aggregator.Summarize(now, []model.Schedule{schedule}, nil)

	require.Len(t, summary.MissedDoses, 1)
	assert.Equal(t, "08:00", summary.MissedDoses[0].Time)
	assert.Empty(t, summary.UpcomingDoses)
}

func TestAggregator_Summarize_RecentActivity(t *testing.T) {
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	now := time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC)

	var logs []model.DoseLog
	for i := 0; i < 7; i++ {
		logs = append(logs, newTestLog(fmt.Sprintf("sched-%d", i), "08:00", timeutil.DaysAgo(now, i), model.DoseStatusTaken))
	}

	summary := aggregator.Summarize(now, nil, logs)

	require.Len(t, summary.RecentActivity, 5)
	for i := 1; i < len(summary.RecentActivity); i++ {
		assert.True(t, summary.RecentActivity[i-1].ActionTime.After(summary.RecentActivity[i].ActionTime))
	}
	assert.Equal(t, "sched-0", summary.RecentActivity[0].ScheduleID)
}

func TestAggregator_Summarize_WeeklyAdherence(t *testing.T) {
	now := time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		logs []model.DoseLog
		want int
	}{
		{
			name: "no logs",
			want: 0,
		},
		{
			name: "three of four taken",
			logs: []model.DoseLog{
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 1), model.DoseStatusTaken),
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 2), model.DoseStatusTaken),
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 3), model.DoseStatusTaken),
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 4), model.DoseStatusSkipped),
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 9), model.DoseStatusTaken),
			},
			want: 75,
		},
		{
			name: "rounds two of three",
			logs: []model.DoseLog{
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 1), model.DoseStatusTaken),
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 2), model.DoseStatusTaken),
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 3), model.DoseStatusMissed),
			},
			want: 67,
		},
		{
			name: "only logs outside window",
			logs: []model.DoseLog{
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 8), model.DoseStatusTaken),
			},
			want: 0,
		},
		{
			name: "duplicate settling logs count once",
			logs: []model.DoseLog{
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 1), model.DoseStatusTaken),
				newTestLog("a", "08:00", timeutil.DaysAgo(now, 1), model.DoseStatusTaken),
				newTestLog("a", "20:00", timeutil.DaysAgo(now, 1), model.DoseStatusSkipped),
			},
			want: 50,
		},
	}

	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := aggregator.Summarize(now, nil, tt.logs)
			assert.Equal(t, tt.want, summary.KPIs.AdherenceWeekly)
		})
	}
}

func TestAggregator_Summarize_Streak(t *testing.T) {
	now := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())

	t.Run("counts consecutive compliant days", func(t *testing.T) {
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 30)), "08:00", "20:00")
		logs := compliantDays(now, schedule, 4)
		logs = append(logs, newTestLog("sched-1", "08:00", timeutil.DaysAgo(now, 5), model.DoseStatusTaken))

		summary := aggregator.Summarize(now, []model.Schedule{schedule}, logs)

		assert.Equal(t, 4, summary.KPIs.CurrentStreak)
	})

	t.Run("skipped dose breaks the day", func(t *testing.T) {
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 30)), "08:00", "20:00")
		logs := compliantDays(now, schedule, 3)
		logs = append(logs, newTestLog("sched-1", "14:00", timeutil.DaysAgo(now, 1), model.DoseStatusSkipped))

		summary := aggregator.Summarize(now, []model.Schedule{schedule}, logs)

		assert.Equal(t, 0, summary.KPIs.CurrentStreak)
	})

	t.Run("today does not count", func(t *testing.T) {
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 30)), "08:00")
		logs := []model.DoseLog{newTestLog("sched-1", "08:00", now, model.DoseStatusTaken)}

		summary := aggregator.Summarize(now, []model.Schedule{schedule}, logs)

		assert.Equal(t, 0, summary.KPIs.CurrentStreak)
	})

	t.Run("days before any schedule are neutral", func(t *testing.T) {
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 3)), "08:00")
		logs := compliantDays(now, schedule, 3)

		summary := aggregator.Summarize(now, []model.Schedule{schedule}, logs)

		assert.Equal(t, 3, summary.KPIs.CurrentStreak)
	})

	t.Run("inactive schedules are ignored", func(t *testing.T) {
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 10)), "08:00")
		stopped := newTestSchedule("sched-2", timeutil.StartOfDay(timeutil.DaysAgo(now, 10)), "09:00")
		stopped.Active = false
		logs := compliantDays(now, schedule, 2)

		summary := aggregator.Summarize(now, []model.Schedule{schedule, stopped}, logs)

		assert.Equal(t, 2, summary.KPIs.CurrentStreak)
	})

	t.Run("late taken log settles a swept missed dose", func(t *testing.T) {
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 10)), "08:00")
		logs := compliantDays(now, schedule, 3)
		yesterday := timeutil.DaysAgo(now, 1)
		swept := newTestLog("sched-1", "08:00", yesterday, model.DoseStatusMissed)
		swept.ActionTime = swept.ScheduledTime.Add(2 * time.Hour)
		logs[0].ActionTime = logs[0].ScheduledTime.Add(3 * time.Hour)
		logs = append(logs, swept)

		summary := aggregator.Summarize(now, []model.Schedule{schedule}, logs)

		assert.Equal(t, 3, summary.KPIs.CurrentStreak)
		assert.Equal(t, 100, summary.KPIs.AdherenceWeekly)
		assert.Len(t, summary.RecentActivity, 3)
	})

	t.Run("later skip overrides an earlier take", func(t *testing.T) {
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 10)), "08:00")
		logs := compliantDays(now, schedule, 3)
		skipped := newTestLog("sched-1", "08:00", timeutil.DaysAgo(now, 1), model.DoseStatusSkipped)
		skipped.ActionTime = skipped.ScheduledTime.Add(time.Hour)
		logs = append(logs, skipped)

		summary := aggregator.Summarize(now, []model.Schedule{schedule}, logs)

		assert.Equal(t, 0, summary.KPIs.CurrentStreak)
		assert.Equal(t, 67, summary.KPIs.AdherenceWeekly)
	})

	t.Run("cap bounds the walk", func(t *testing.T) {
		capped := NewAggregator(Config{StreakCap: 2}, zap.NewNop())
		schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 10)), "08:00")
		logs := compliantDays(now, schedule, 5)

		summary := capped.Summarize(now, []model.Schedule{schedule}, logs)

		assert.Equal(t, 2, summary.KPIs.CurrentStreak)
	})
}

func TestAggregator_Summarize_Achievements(t *testing.T) {
	now := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	aggregator := NewAggregator(DefaultConfig(), zap.NewNop())
	schedule := newTestSchedule("sched-1", timeutil.StartOfDay(timeutil.DaysAgo(now, 60)), "08:00")
	logs := compliantDays(now, schedule, 8)

	first := aggregator.Summarize(now, []model.Schedule{schedule}, logs)
	second := aggregator.Summarize(now, []model.Schedule{schedule}, logs)

	var keys []string
	for _, a := range first.Achievements {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"streak-7", "consistency-star", "active-week"}, keys)
	assert.Equal(t, first.Achievements, second.Achievements)
}
