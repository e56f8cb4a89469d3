package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// UserRepository manages user profiles, preferences and device registrations
type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Ensure creates the user row with default preferences if it does not exist
func (r *UserRepository) Ensure(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, preferences, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING
	`, userID, model.DefaultNotificationPreferences())
	if err != nil {
		r.logger.Error("failed to ensure user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	query := `
		SELECT id, name, email, device_token, preferences, achievements_seen, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	u, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		r.logger.Error("failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}

// FindAll retrieves every user
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, device_token, preferences, achievements_seen, created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		r.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.logger.Error("failed to scan user", zap.Error(err))
			continue
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// UpdatePreferences replaces the notification preferences of a user
func (r *UserRepository) UpdatePreferences(ctx context.Context, userID string, prefs model.NotificationPreferences) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET preferences = $2, updated_at = NOW() WHERE id = $1`,
		userID, prefs,
	)
	if err != nil {
		r.logger.Error("failed to update preferences", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return nil
}

// UpdateDeviceToken stores the push token of a user's device
func (r *UserRepository) UpdateDeviceToken(ctx context.Context, userID, token string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET device_token = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`,
		userID, token,
	)
	if err != nil {
		r.logger.Error("failed to update device token", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to update device token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return nil
}

// DeviceToken returns the push token of a user, or "" when none is registered
func (r *UserRepository) DeviceToken(ctx context.Context, userID string) (string, error) {
	var token *string
	err := r.db.QueryRow(ctx, `SELECT device_token FROM users WHERE id = $1`, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read device token: %w", err)
	}
	if token == nil {
		return "", nil
	}
	return *token, nil
}

// MarkAchievementsSeen adds keys to the user's seen achievement set
func (r *UserRepository) MarkAchievementsSeen(ctx context.Context, userID string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET achievements_seen = ARRAY(SELECT DISTINCT unnest(achievements_seen || $2::text[])),
		    updated_at = NOW()
		WHERE id = $1
	`, userID, keys)
	if err != nil {
		r.logger.Error("failed to mark achievements seen", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to mark achievements seen: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.DeviceToken,
		&u.Preferences,
		&u.AchievementsSeen,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
