package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/mock"
	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/internal/risk"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/model"
)

var (
	testUser   = uuid.MustParse("6f1c2f43-51f6-4a6c-9d0c-3c4b5e0f7a11")
	testUserID = types.UUID(testUser)
)

// MockScheduleManager is a mock implementation of ScheduleManager
type MockScheduleManager struct {
	mock.Mock
}

func (m *MockScheduleManager) CreateSchedule(ctx context.Context, userID string, schedule *model.Schedule) error {
	args := m.Called(ctx, userID, schedule)
	return args.Error(0)
}

func (m *MockScheduleManager) ListSchedules(ctx context.Context, userID string, activeOnly bool) ([]model.Schedule, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Schedule), args.Error(1)
}

func (m *MockScheduleManager) GetSchedule(ctx context.Context, userID, scheduleID string) (*model.Schedule, error) {
	args := m.Called(ctx, userID, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Schedule), args.Error(1)
}

func (m *MockScheduleManager) UpdateSchedule(ctx context.Context, userID, scheduleID string, updates *model.Schedule) (*model.Schedule, error) {
	args := m.Called(ctx, userID, scheduleID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Schedule), args.Error(1)
}

func (m *MockScheduleManager) DeactivateSchedule(ctx context.Context, userID, scheduleID string) error {
	args := m.Called(ctx, userID, scheduleID)
	return args.Error(0)
}

func (m *MockScheduleManager) DeleteSchedule(ctx context.Context, userID, scheduleID string) error {
	args := m.Called(ctx, userID, scheduleID)
	return args.Error(0)
}

// MockDoseLogger is a mock implementation of DoseLogger
type MockDoseLogger struct {
	mock.Mock
}

func (m *MockDoseLogger) LogDose(ctx context.Context, userID string, in service.LogDoseInput) (*model.DoseLog, bool, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.DoseLog), args.Bool(1), args.Error(2)
}

func (m *MockDoseLogger) ListLogs(ctx context.Context, userID string) ([]model.DoseLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DoseLog), args.Error(1)
}

func (m *MockDoseLogger) RecentLogs(ctx context.Context, userID string, n int) ([]model.DoseLog, error) {
	args := m.Called(ctx, userID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DoseLog), args.Error(1)
}

// MockDashboardProvider is a mock implementation of DashboardProvider
type MockDashboardProvider struct {
	mock.Mock
}

func (m *MockDashboardProvider) GetSummary(ctx context.Context, userID string) (*service.DashboardSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardSummary), args.Error(1)
}

// MockPredictor is a mock implementation of Predictor
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(ctx context.Context, userID string) (risk.Prediction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(risk.Prediction), args.Error(1)
}

func (m *MockPredictor) TodaysSchedule(ctx context.Context, userID string) ([]service.TodaysMedication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TodaysMedication), args.Error(1)
}

// MockAssistant is a mock implementation of Assistant
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Context(ctx context.Context, userID string) (*service.ChatContext, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatContext), args.Error(1)
}

func (m *MockAssistant) Reply(ctx context.Context, userID string, history []azure.ChatMessage, input, systemPrompt string) (string, error) {
	args := m.Called(ctx, userID, history, input, systemPrompt)
	return args.String(0), args.Error(1)
}

// MockPreferenceManager is a mock implementation of PreferenceManager
type MockPreferenceManager struct {
	mock.Mock
}

func (m *MockPreferenceManager) GetPreferences(ctx context.Context, userID string) (model.NotificationPreferences, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.NotificationPreferences), args.Error(1)
}

func (m *MockPreferenceManager) UpdatePreferences(ctx context.Context, userID string, prefs model.NotificationPreferences) error {
	args := m.Called(ctx, userID, prefs)
	return args.Error(0)
}

func (m *MockPreferenceManager) UpdateDeviceToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockPreferenceManager) ReportLocation(userID string, loc model.Location) error {
	args := m.Called(userID, loc)
	return args.Error(0)
}

// MockReminderManager is a mock implementation of ReminderManager
type MockReminderManager struct {
	mock.Mock
}

func (m *MockReminderManager) Arm(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReminderManager) Pending(userID string) []reminder.Pending {
	args := m.Called(userID)
	return args.Get(0).([]reminder.Pending)
}

func (m *MockReminderManager) Cancel(userID, key string) error {
	args := m.Called(userID, key)
	return args.Error(0)
}

// MockReportGenerator is a mock implementation of ReportGenerator
type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateAdherenceReport(ctx context.Context, userID string, from, to time.Time) (*model.Report, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportGenerator) GetReport(ctx context.Context, userID, reportID string) ([]byte, error) {
	args := m.Called(ctx, userID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// performRequest serves a single request through a fresh gin engine
func performRequest(method, path string, body string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
