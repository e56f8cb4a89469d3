package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/gomail.v2"
)

type MockMessagingClient struct {
	mock.Mock
}

func (m *MockMessagingClient) Send(ctx context.Context, message *messaging.Message) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

type MockTokenLookup struct {
	mock.Mock
}

func (m *MockTokenLookup) DeviceToken(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func sampleNotification() reminder.Notification {
	return reminder.Notification{
		Kind:       reminder.KindReminder,
		UserID:     "user-1",
		Key:        "sched-1-09:00",
		ScheduleID: "sched-1",
		Title:      "Medication Reminder",
		Body:       "It's time to take your Metformin (500mg).",
		Sound:      true,
		SentAt:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestFirebasePusher_Notify(t *testing.T) {
	// Arrange
	client := new(MockMessagingClient)
	tokens := new(MockTokenLookup)
	pusher := NewFirebasePusher(client, tokens, zap.NewNop())

	tokens.On("DeviceToken", mock.Anything, "user-1").Return("device-abc", nil)
	client.On("Send", mock.Anything, mock.MatchedBy(func(m *messaging.Message) bool {
		return m.Token == "device-abc" &&
			m.Notification.Title == "Medication Reminder" &&
			m.Data["key"] == "sched-1-09:00" &&
			m.Android.Notification.DefaultSound
	})).Return("msg-1", nil)

	// Act
	err := pusher.Notify(context.Background(), sampleNotification())

	// Assert
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestFirebasePusher_SkipsUsersWithoutToken(t *testing.T) {
	client := new(MockMessagingClient)
	tokens := new(MockTokenLookup)
	pusher := NewFirebasePusher(client, tokens, zap.NewNop())
	tokens.On("DeviceToken", mock.Anything, "user-1").Return("", nil)

	err := pusher.Notify(context.Background(), sampleNotification())

	require.NoError(t, err)
	client.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestFirebasePusher_SendError(t *testing.T) {
	client := new(MockMessagingClient)
	tokens := new(MockTokenLookup)
	pusher := NewFirebasePusher(client, tokens, zap.NewNop())
	tokens.On("DeviceToken", mock.Anything, "user-1").Return("device-abc", nil)
	client.On("Send", mock.Anything, mock.Anything).Return("", errors.New("unavailable"))

	err := pusher.Notify(context.Background(), sampleNotification())

	assert.ErrorContains(t, err, "failed to send push")
}

func TestMailer_Send(t *testing.T) {
	dialer := &fakeDialer{}
	mailer := NewMailerWithDialer(dialer, "DoseWise <noreply@dosewise.app>")

	err := mailer.Send("ana@example.com", "Your week", "<p>85%</p>")

	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)
	assert.Equal(t, []string{"ana@example.com"}, dialer.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Your week"}, dialer.sent[0].GetHeader("Subject"))
}

func TestMailer_SendError(t *testing.T) {
	mailer := NewMailerWithDialer(&fakeDialer{err: errors.New("connection refused")}, "noreply@dosewise.app")

	err := mailer.Send("ana@example.com", "Your week", "<p>85%</p>")

	assert.ErrorContains(t, err, "failed to send email")
}

func TestNewMailer_RequiresHost(t *testing.T) {
	_, err := NewMailer(SMTPConfig{From: "noreply@dosewise.app"})
	assert.Error(t, err)
}

func TestMulti_Notify(t *testing.T) {
	var calls []string
	ok := reminder.NotifierFunc(func(context.Context, reminder.Notification) error {
		calls = append(calls, "ok")
		return nil
	})
	failing := reminder.NotifierFunc(func(context.Context, reminder.Notification) error {
		calls = append(calls, "failing")
		return errors.New("boom")
	})

	err := Multi{failing, ok}.Notify(context.Background(), sampleNotification())

	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []string{"failing", "ok"}, calls)
	assert.NoError(t, Multi{ok}.Notify(context.Background(), sampleNotification()))
}

func TestLogNotifier_Notify(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	notifier := NewLogNotifier(zap.New(core))

	require.NoError(t, notifier.Notify(context.Background(), sampleNotification()))

	entries := logs.FilterMessage("notification").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "user-1", entries[0].ContextMap()["user_id"])
}

func TestPositionStore(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	store := NewPositionStore(10 * time.Minute)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.CurrentPosition(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNoPosition)

	store.Report("user-1", model.Location{Lat: 1, Lng: 2}, now.Add(-time.Minute))
	store.Report("user-1", model.Location{Lat: 9, Lng: 9}, now.Add(-5*time.Minute))
	pos, err := store.CurrentPosition(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, model.Location{Lat: 1, Lng: 2}, pos)

	store.Report("user-2", model.Location{Lat: 3, Lng: 4}, now.Add(-time.Hour))
	_, err = store.CurrentPosition(ctx, "user-2")
	assert.ErrorIs(t, err, ErrStalePosition)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.CurrentPosition(cancelled, "user-1")
	assert.ErrorIs(t, err, context.Canceled)
}
