package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/audit"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// PositionReporter accepts device positions
type PositionReporter interface {
	Report(userID string, loc model.Location, at time.Time)
}

// PreferencesListener is told when a user's notification preferences change
type PreferencesListener interface {
	PreferencesChanged(ctx context.Context, userID string, prefs model.NotificationPreferences)
}

// PreferenceService manages notification preferences and device registration
type PreferenceService struct {
	users     UserRepository
	positions PositionReporter
	listener  PreferencesListener
	audit     audit.Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(users UserRepository, positions PositionReporter, listener PreferencesListener, recorder audit.Recorder, logger *zap.Logger) *PreferenceService {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &PreferenceService{
		users:     users,
		positions: positions,
		listener:  listener,
		audit:     recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// GetPreferences returns the stored preferences, or the defaults for an unknown user
func (s *PreferenceService) GetPreferences(ctx context.Context, userID string) (model.NotificationPreferences, error) {
	if userID == "" {
		return model.NotificationPreferences{}, validationErrorf("user ID is required")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.DefaultNotificationPreferences(), nil
		}
		return model.NotificationPreferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return user.Preferences, nil
}

// UpdatePreferences validates and stores preferences, then re-arms reminders
func (s *PreferenceService) UpdatePreferences(ctx context.Context, userID string, prefs model.NotificationPreferences) error {
	if userID == "" {
		return validationErrorf("user ID is required")
	}
	if prefs.SnoozeMinutes < 0 {
		return validationErrorf("snooze minutes must not be negative")
	}
	if prefs.ReminderLeadMinutes < 0 {
		return validationErrorf("reminder lead minutes must not be negative")
	}
	if prefs.LocationRadiusMeters < 0 {
		return validationErrorf("location radius must not be negative")
	}
	if loc := prefs.Location; loc != nil {
		if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
			return validationErrorf("location out of range")
		}
	}

	if err := s.users.Ensure(ctx, userID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	if err := s.users.UpdatePreferences(ctx, userID, prefs); err != nil {
		s.logger.Error("failed to update preferences", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	s.record(ctx, userID, audit.ResourcePreferences)
	if s.listener != nil {
		s.listener.PreferencesChanged(ctx, userID, prefs)
	}
	return nil
}

// UpdateDeviceToken registers the push token of the user's device. An empty
// token unregisters it.
func (s *PreferenceService) UpdateDeviceToken(ctx context.Context, userID, token string) error {
	if userID == "" {
		return validationErrorf("user ID is required")
	}
	if err := s.users.Ensure(ctx, userID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	if err := s.users.UpdateDeviceToken(ctx, userID, token); err != nil {
		return fmt.Errorf("failed to update device token: %w", err)
	}
	s.record(ctx, userID, audit.ResourceDevice)
	return nil
}

// ReportLocation stores the current position of the user's device
func (s *PreferenceService) ReportLocation(userID string, loc model.Location) error {
	if userID == "" {
		return validationErrorf("user ID is required")
	}
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return validationErrorf("location out of range")
	}
	s.positions.Report(userID, loc, s.now())
	return nil
}

func (s *PreferenceService) record(ctx context.Context, userID string, resource audit.ResourceType) {
	err := s.audit.Record(ctx, audit.Entry{
		UserID:        userID,
		OperationType: audit.OperationUpdate,
		ResourceType:  resource,
		ResourceID:    userID,
	})
	if err != nil {
		s.logger.Warn("failed to record audit entry", zap.Error(err), zap.String("user_id", userID))
	}
}
