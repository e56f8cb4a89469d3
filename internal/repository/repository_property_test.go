package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vcscsvcscs/dosewise/internal/database"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// setupTestDB creates a PostgreSQL testcontainer, migrates it and returns the connection pool
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("dosewise_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connString, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, connString, zap.NewNop()))

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return pool, cleanup
}

func createTestUser(t *testing.T, repo *UserRepository) string {
	userID := uuid.New().String()
	require.NoError(t, repo.Ensure(context.Background(), userID))
	return userID
}

func newSchedule(userID string, start time.Time) *model.Schedule {
	end := start.AddDate(0, 0, 7)
	return &model.Schedule{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       "Metformin",
		Dosage:     "500mg",
		Times:      []string{"08:00", "20:00"},
		StartDate:  start,
		Duration:   "1 week",
		EndDate:    &end,
		Active:     true,
		Frequency:  model.FrequencyWeekly,
		DaysOfWeek: []int{1, 3, 5},
	}
}

func TestRepositories_ScheduleLifecycle(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	logger := zap.NewNop()
	users := NewUserRepository(pool, logger)
	schedules := NewScheduleRepository(pool, logger)
	userID := createTestUser(t, users)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newSchedule(userID, start)
	require.NoError(t, schedules.Create(ctx, s))

	found, err := schedules.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Times, found.Times)
	assert.Equal(t, []int{1, 3, 5}, found.DaysOfWeek)
	assert.True(t, found.StartDate.Equal(start))

	found.Times = []string{"09:00"}
	require.NoError(t, schedules.Update(ctx, found))
	require.NoError(t, schedules.SetActive(ctx, s.ID, false))

	active, err := schedules.FindByUserID(ctx, userID, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := schedules.FindByUserID(ctx, userID, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"09:00"}, all[0].Times)

	require.NoError(t, schedules.Delete(ctx, s.ID))
	_, err = schedules.FindByID(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, schedules.Delete(ctx, s.ID), ErrNotFound)
}

func TestRepositories_UserPreferencesAndAchievements(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	users := NewUserRepository(pool, zap.NewNop())
	userID := createTestUser(t, users)

	u, err := users.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultNotificationPreferences(), u.Preferences)

	prefs := u.Preferences
	prefs.Location = &model.Location{Lat: 47.49, Lng: 19.04}
	prefs.LocationRadiusMeters = 250
	require.NoError(t, users.UpdatePreferences(ctx, userID, prefs))

	require.NoError(t, users.MarkAchievementsSeen(ctx, userID, []string{"streak-7"}))
	require.NoError(t, users.MarkAchievementsSeen(ctx, userID, []string{"streak-7", "active-week"}))

	require.NoError(t, users.UpdateDeviceToken(ctx, userID, "device-abc"))
	token, err := users.DeviceToken(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "device-abc", token)

	u, err = users.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, prefs, u.Preferences)
	assert.ElementsMatch(t, []string{"streak-7", "active-week"}, u.AchievementsSeen)

	_, err = users.FindByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

// Recent dose logs are bounded by the limit and ordered newest first
func TestProperty_RecentDoseLogsOrdered(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	logger := zap.NewNop()
	users := NewUserRepository(pool, logger)
	schedules := NewScheduleRepository(pool, logger)
	logs := NewDoseLogRepository(pool, logger)

	userID := createTestUser(t, users)
	s := newSchedule(userID, time.Now().AddDate(0, 0, -30))
	require.NoError(t, schedules.Create(ctx, s))

	for i := 0; i < 12; i++ {
		at := time.Now().Add(-time.Duration(i) * time.Hour)
		require.NoError(t, logs.Create(ctx, &model.DoseLog{
			ID:             uuid.New().String(),
			UserID:         userID,
			ScheduleID:     s.ID,
			MedicationName: s.DisplayName(),
			Time:           "08:00",
			ScheduledTime:  at,
			ActionTime:     at,
			Status:         model.DoseStatusTaken,
		}))
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("FindRecent honours the limit and ordering", prop.ForAll(
		func(limit int) bool {
			recent, err := logs.FindRecent(ctx, userID, limit)
			if err != nil {
				return false
			}
			want := limit
			if want > 12 {
				want = 12
			}
			if len(recent) != want {
				return false
			}
			for i := 1; i < len(recent); i++ {
				if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

func TestRepositories_DoseLogQueries(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	logger := zap.NewNop()
	users := NewUserRepository(pool, logger)
	schedules := NewScheduleRepository(pool, logger)
	logs := NewDoseLogRepository(pool, logger)

	userID := createTestUser(t, users)
	s := newSchedule(userID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, schedules.Create(ctx, s))

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	taken := &model.DoseLog{
		ID:            uuid.New().String(),
		UserID:        userID,
		ScheduleID:    s.ID,
		Time:          "08:00",
		ScheduledTime: day.Add(8 * time.Hour),
		ActionTime:    day.Add(8*time.Hour + 5*time.Minute),
		Status:        model.DoseStatusTaken,
	}
	legacy := &model.DoseLog{
		ID:            uuid.New().String(),
		UserID:        userID,
		Time:          "20:00",
		ScheduledTime: day.Add(20 * time.Hour),
		ActionTime:    day.Add(21 * time.Hour),
		Status:        model.DoseStatusMissed,
	}
	require.NoError(t, logs.Create(ctx, taken))
	require.NoError(t, logs.Create(ctx, legacy))

	forDose, err := logs.FindForDose(ctx, s.ID, "08:00", day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, forDose, 1)
	assert.Equal(t, taken.ID, forDose[0].ID)

	inRange, err := logs.FindInRange(ctx, userID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	assert.Equal(t, "", inRange[1].ScheduleID)

	all, err := logs.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, legacy.ID, all[0].ID)
}
