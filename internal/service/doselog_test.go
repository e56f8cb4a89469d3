package service

import (
	"context"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

func newDoseLogService(logs *MockDoseLogRepository, schedules *MockScheduleRepository, now time.Time) *DoseLogService {
	s := NewDoseLogService(logs, schedules, nil, zap.NewNop())
	s.now = fixedClock(now)
	return s
}

func TestDoseLogService_LogDose_Creates(t *testing.T) {
	// Arrange
	logs := new(MockDoseLogRepository)
	schedules := new(MockScheduleRepository)
	now := date(2024, 3, 6, 8, 12)
	service := newDoseLogService(logs, schedules, now)

	ctx := context.Background()
	s := activeSchedule("s1", "user-1", "08:00", "20:00")
	schedules.On("FindByID", ctx, "s1").Return(&s, nil)
	logs.On("FindForDose", ctx, "s1", "08:00", date(2024, 3, 6, 0, 0), date(2024, 3, 7, 0, 0)).Return([]model.DoseLog{}, nil)
	logs.On("Create", ctx, mock.AnythingOfType("*model.DoseLog")).Return(nil)

	// Act
	log, created, err := service.LogDose(ctx, "user-1", LogDoseInput{ScheduleID: "s1", Time: "08:00", Status: model.DoseStatusTaken})

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Metformin 500mg", log.MedicationName)
	assert.Equal(t, date(2024, 3, 6, 8, 0), log.ScheduledTime)
	assert.Equal(t, now, log.ActionTime)
	assert.Equal(t, model.DoseStatusTaken, log.Status)
	logs.AssertExpectations(t)
}

func TestDoseLogService_LogDose_Idempotent(t *testing.T) {
	logs := new(MockDoseLogRepository)
	schedules := new(MockScheduleRepository)
	service := newDoseLogService(logs, schedules, date(2024, 3, 6, 8, 30))

	ctx := context.Background()
	s := activeSchedule("s1", "user-1", "08:00")
	existing := model.DoseLog{ID: "log-1", ScheduleID: "s1", Time: "08:00", Status: model.DoseStatusTaken}
	schedules.On("FindByID", ctx, "s1").Return(&s, nil)
	logs.On("FindForDose", ctx, "s1", "08:00", mock.Anything, mock.Anything).Return([]model.DoseLog{existing}, nil)

	log, created, err := service.LogDose(ctx, "user-1", LogDoseInput{ScheduleID: "s1", Time: "08:00", Status: model.DoseStatusTaken})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "log-1", log.ID)
	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDoseLogService_LogDose_Rejections(t *testing.T) {
	ctx := context.Background()
	s := activeSchedule("s1", "user-1", "08:00")

	tests := []struct {
		name    string
		userID  string
		input   LogDoseInput
		wantErr error
	}{
		{name: "missing user", userID: "", input: LogDoseInput{ScheduleID: "s1", Time: "08:00", Status: model.DoseStatusTaken}, wantErr: ErrValidation},
		{name: "unknown status", userID: "user-1", input: LogDoseInput{ScheduleID: "s1", Time: "08:00", Status: "Pending"}, wantErr: ErrValidation},
		{name: "malformed time", userID: "user-1", input: LogDoseInput{ScheduleID: "s1", Time: "8am", Status: model.DoseStatusTaken}, wantErr: ErrValidation},
		{name: "time not in schedule", userID: "user-1", input: LogDoseInput{ScheduleID: "s1", Time: "09:00", Status: model.DoseStatusTaken}, wantErr: ErrValidation},
		{name: "schedule of another user", userID: "user-2", input: LogDoseInput{ScheduleID: "s1", Time: "08:00", Status: model.DoseStatusTaken}, wantErr: ErrNotFound},
		{name: "unknown schedule", userID: "user-1", input: LogDoseInput{ScheduleID: "missing", Time: "08:00", Status: model.DoseStatusTaken}, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := new(MockDoseLogRepository)
			schedules := new(MockScheduleRepository)
			schedules.On("FindByID", ctx, "s1").Return(&s, nil)
			schedules.On("FindByID", ctx, "missing").Return(nil, ErrNotFound)
			service := newDoseLogService(logs, schedules, date(2024, 3, 6, 8, 0))

			_, _, err := service.LogDose(ctx, tt.userID, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDoseLogService_SweepMissed(t *testing.T) {
	// Arrange
	logs := new(MockDoseLogRepository)
	schedules := new(MockScheduleRepository)
	now := date(2024, 3, 6, 21, 0) // Wednesday
	service := newDoseLogService(logs, schedules, now)
	ctx := context.Background()

	daily := activeSchedule("daily", "user-1", "08:00", "12:00", "20:00")
	offDay := activeSchedule("weekly", "user-1", "08:00")
	offDay.Frequency = model.FrequencyWeekly
	offDay.DaysOfWeek = []int{1}

	schedules.On("FindAllActive", ctx).Return([]model.Schedule{daily, offDay}, nil)
	dayStart, dayEnd := date(2024, 3, 6, 0, 0), date(2024, 3, 7, 0, 0)
	logs.On("FindForDose", ctx, "daily", "08:00", dayStart, dayEnd).Return([]model.DoseLog{{Status: model.DoseStatusTaken}}, nil)
	logs.On("FindForDose", ctx, "daily", "12:00", dayStart, dayEnd).Return([]model.DoseLog{}, nil)

	var written []*model.DoseLog
	logs.On("Create", ctx, mock.AnythingOfType("*model.DoseLog")).Run(func(args mock.Arguments) {
		written = append(written, args.Get(1).(*model.DoseLog))
	}).Return(nil)

	// Act
	n, err := service.SweepMissed(ctx, now, 2*time.Hour)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, written, 1)
	assert.Equal(t, "12:00", written[0].Time)
	assert.Equal(t, model.DoseStatusMissed, written[0].Status)
	assert.Equal(t, date(2024, 3, 6, 12, 0), written[0].ScheduledTime)
	logs.AssertNotCalled(t, "FindForDose", ctx, "daily", "20:00", dayStart, dayEnd)
	logs.AssertNotCalled(t, "FindForDose", ctx, "weekly", mock.Anything, mock.Anything, mock.Anything)
}

// A second sweep over the same state never adds logs for doses the first sweep settled
func TestProperty_SweepMissedIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("sweep twice writes each missed dose once", prop.ForAll(
		func(hour int, graceHours int) bool {
			ctx := context.Background()
			now := date(2024, 3, 6, hour, 30)
			logs := &memoryDoseLogs{}
			schedules := new(MockScheduleRepository)
			schedules.On("FindAllActive", ctx).Return([]model.Schedule{activeSchedule("s", "u", "06:00", "12:00", "18:00")}, nil)

			service := NewDoseLogService(logs, schedules, nil, zap.NewNop())
			service.now = fixedClock(now)
			grace := time.Duration(graceHours) * time.Hour
			first, err := service.SweepMissed(ctx, now, grace)
			if err != nil {
				return false
			}
			second, err := service.SweepMissed(ctx, now, grace)
			if err != nil || second != 0 {
				return false
			}

			want := 0
			for _, h := range []int{6, 12, 18} {
				if now.Sub(date(2024, 3, 6, h, 0)) >= grace {
					want++
				}
			}
			return first == want
		},
		gen.IntRange(0, 23),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}

// memoryDoseLogs is an in-memory DoseLogRepository
type memoryDoseLogs struct {
	logs []model.DoseLog
}

func (m *memoryDoseLogs) Create(_ context.Context, l *model.DoseLog) error {
	m.logs = append(m.logs, *l)
	return nil
}

func (m *memoryDoseLogs) FindByUserID(_ context.Context, userID string) ([]model.DoseLog, error) {
	out := []model.DoseLog{}
	for _, l := range m.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memoryDoseLogs) FindRecent(ctx context.Context, userID string, limit int) ([]model.DoseLog, error) {
	all, _ := m.FindByUserID(ctx, userID)
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (m *memoryDoseLogs) FindInRange(_ context.Context, userID string, from, to time.Time) ([]model.DoseLog, error) {
	out := []model.DoseLog{}
	for _, l := range m.logs {
		if l.UserID == userID && !l.ActionTime.Before(from) && !l.ActionTime.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memoryDoseLogs) FindForDose(_ context.Context, scheduleID, tod string, from, to time.Time) ([]model.DoseLog, error) {
	out := []model.DoseLog{}
	for _, l := range m.logs {
		if l.ScheduleID == scheduleID && l.Time == tod && !l.ScheduledTime.Before(from) && l.ScheduledTime.Before(to) {
			out = append(out, l)
		}
	}
	return out, nil
}
