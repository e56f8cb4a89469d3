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

const scheduleColumns = `
	id, user_id, name, dosage, times, start_date, duration, end_date,
	active, frequency, days_of_week, created_at, updated_at
`

// ScheduleRepository manages medication schedules
type ScheduleRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool, logger *zap.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new schedule
func (r *ScheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	query := `
		INSERT INTO schedules (
			id, user_id, name, dosage, times, start_date, duration, end_date,
			active, frequency, days_of_week, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		s.ID,
		s.UserID,
		s.Name,
		s.Dosage,
		s.Times,
		s.StartDate,
		s.Duration,
		s.EndDate,
		s.Active,
		s.Frequency,
		daysOrEmpty(s.DaysOfWeek),
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		r.logger.Error("failed to create schedule",
			zap.Error(err),
			zap.String("schedule_id", s.ID),
			zap.String("user_id", s.UserID),
		)
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of a schedule
func (r *ScheduleRepository) Update(ctx context.Context, s *model.Schedule) error {
	query := `
		UPDATE schedules
		SET name = $2, dosage = $3, times = $4, start_date = $5, duration = $6,
		    end_date = $7, active = $8, frequency = $9, days_of_week = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.Dosage,
		s.Times,
		s.StartDate,
		s.Duration,
		s.EndDate,
		s.Active,
		s.Frequency,
		daysOrEmpty(s.DaysOfWeek),
	).Scan(&s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("schedule %s: %w", s.ID, ErrNotFound)
		}
		r.logger.Error("failed to update schedule", zap.Error(err), zap.String("schedule_id", s.ID))
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	return nil
}

// SetActive flips the active flag of a schedule
func (r *ScheduleRepository) SetActive(ctx context.Context, scheduleID string, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE schedules SET active = $2, updated_at = NOW() WHERE id = $1`,
		scheduleID, active,
	)
	if err != nil {
		r.logger.Error("failed to update schedule state", zap.Error(err), zap.String("schedule_id", scheduleID))
		return fmt.Errorf("failed to update schedule state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s: %w", scheduleID, ErrNotFound)
	}
	return nil
}

// Delete removes a schedule; its dose logs keep their history with a null schedule
func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, scheduleID)
	if err != nil {
		r.logger.Error("failed to delete schedule", zap.Error(err), zap.String("schedule_id", scheduleID))
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s: %w", scheduleID, ErrNotFound)
	}
	return nil
}

// FindByID retrieves a schedule by ID
func (r *ScheduleRepository) FindByID(ctx context.Context, scheduleID string) (*model.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	s, err := scanSchedule(r.db.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("schedule %s: %w", scheduleID, ErrNotFound)
		}
		r.logger.Error("failed to find schedule", zap.Error(err), zap.String("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}

	return s, nil
}

// FindByUserID retrieves the schedules of a user, newest first
func (r *ScheduleRepository) FindByUserID(ctx context.Context, userID string, activeOnly bool) ([]model.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE user_id = $1 AND (NOT $2::boolean OR active)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID, activeOnly)
	if err != nil {
		r.logger.Error("failed to find schedules", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find schedules: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// FindAllActive retrieves the active schedules of every user
func (r *ScheduleRepository) FindAllActive(ctx context.Context) ([]model.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE active
		ORDER BY user_id, created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to find active schedules", zap.Error(err))
		return nil, fmt.Errorf("failed to find active schedules: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *ScheduleRepository) collect(rows pgx.Rows) ([]model.Schedule, error) {
	schedules := make([]model.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			r.logger.Error("failed to scan schedule", zap.Error(err))
			continue
		}
		schedules = append(schedules, *s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating schedules", zap.Error(err))
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}

	return schedules, nil
}

func scanSchedule(row pgx.Row) (*model.Schedule, error) {
	var s model.Schedule
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Dosage,
		&s.Times,
		&s.StartDate,
		&s.Duration,
		&s.EndDate,
		&s.Active,
		&s.Frequency,
		&s.DaysOfWeek,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func daysOrEmpty(days []int) []int {
	if days == nil {
		return []int{}
	}
	return days
}
