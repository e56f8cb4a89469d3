package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/internal/pdf"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/pkg/model"
)

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, s *model.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockScheduleRepository) SetActive(ctx context.Context, scheduleID string, active bool) error {
	return m.Called(ctx, scheduleID, active).Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	return m.Called(ctx, scheduleID).Error(0)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, scheduleID string) (*model.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindByUserID(ctx context.Context, userID string, activeOnly bool) ([]model.Schedule, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindAllActive(ctx context.Context) ([]model.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Schedule), args.Error(1)
}

// MockDoseLogRepository is a mock implementation of DoseLogRepository
type MockDoseLogRepository struct {
	mock.Mock
}

func (m *MockDoseLogRepository) Create(ctx context.Context, l *model.DoseLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockDoseLogRepository) FindByUserID(ctx context.Context, userID string) ([]model.DoseLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DoseLog), args.Error(1)
}

func (m *MockDoseLogRepository) FindRecent(ctx context.Context, userID string, limit int) ([]model.DoseLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DoseLog), args.Error(1)
}

func (m *MockDoseLogRepository) FindInRange(ctx context.Context, userID string, from, to time.Time) ([]model.DoseLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DoseLog), args.Error(1)
}

func (m *MockDoseLogRepository) FindForDose(ctx context.Context, scheduleID, tod string, from, to time.Time) ([]model.DoseLog, error) {
	args := m.Called(ctx, scheduleID, tod, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DoseLog), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Ensure(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePreferences(ctx context.Context, userID string, prefs model.NotificationPreferences) error {
	return m.Called(ctx, userID, prefs).Error(0)
}

func (m *MockUserRepository) UpdateDeviceToken(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *MockUserRepository) MarkAchievementsSeen(ctx context.Context, userID string, keys []string) error {
	return m.Called(ctx, userID, keys).Error(0)
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *model.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockReportRepository) FindByID(ctx context.Context, reportID string) (*model.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

// MockNotifier records delivered notifications
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n reminder.Notification) error {
	return m.Called(ctx, n).Error(0)
}

// MockChatCompleter is a mock language model
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Chat(ctx context.Context, systemPrompt string, history []azure.ChatMessage) (string, error) {
	args := m.Called(ctx, systemPrompt, history)
	return args.String(0), args.Error(1)
}

// MockReminderScheduler is a mock implementation of ReminderScheduler
type MockReminderScheduler struct {
	mock.Mock
}

func (m *MockReminderScheduler) SetReminder(req reminder.Request, prefs model.NotificationPreferences) ([]string, error) {
	args := m.Called(req, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReminderScheduler) Cancel(key string) bool {
	return m.Called(key).Bool(0)
}

func (m *MockReminderScheduler) CancelSchedule(scheduleID string) int {
	return m.Called(scheduleID).Int(0)
}

func (m *MockReminderScheduler) Pending() []reminder.Pending {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]reminder.Pending)
}

// MockReportRenderer is a mock implementation of ReportRenderer
type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Generate(data *pdf.ReportData) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockScheduleObserver records schedule change callbacks
type MockScheduleObserver struct {
	mock.Mock
}

func (m *MockScheduleObserver) ScheduleSaved(ctx context.Context, s model.Schedule) {
	m.Called(ctx, s)
}

func (m *MockScheduleObserver) ScheduleRemoved(ctx context.Context, s model.Schedule) {
	m.Called(ctx, s)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func activeSchedule(id, userID string, times ...string) model.Schedule {
	end := date(2024, 12, 31, 0, 0)
	return model.Schedule{
		ID:        id,
		UserID:    userID,
		Name:      "Metformin",
		Dosage:    "500mg",
		Times:     times,
		StartDate: date(2024, 1, 1, 0, 0),
		Duration:  "1 year",
		EndDate:   &end,
		Active:    true,
		Frequency: model.FrequencyDaily,
	}
}
