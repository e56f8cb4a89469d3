package model

import "time"

// User represents a user in the system
type User struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	DeviceToken      *string                 `json:"device_token,omitempty"`
	Preferences      NotificationPreferences `json:"notifications"`
	AchievementsSeen []string                `json:"achievements_seen,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// Frequency is the recurrence mode of a schedule
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Schedule represents a user's prescribed medication plan
type Schedule struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Dosage     string     `json:"dosage"`
	Times      []string   `json:"times"` // "HH:mm"
	StartDate  time.Time  `json:"start_date"`
	Duration   string     `json:"duration"` // e.g. "1 week", "fortnight"
	EndDate    *time.Time `json:"end_date,omitempty"`
	Active     bool       `json:"active"`
	Frequency  Frequency  `json:"frequency"`
	DaysOfWeek []int      `json:"days_of_week,omitempty"` // 0 = Sunday
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// DisplayName is the medication label shown next to a dose
func (s Schedule) DisplayName() string {
	if s.Dosage == "" {
		return s.Name
	}
	return s.Name + " " + s.Dosage
}

// DoseStatus is the action recorded against a dose
type DoseStatus string

const (
	DoseStatusTaken   DoseStatus = "Taken"
	DoseStatusSkipped DoseStatus = "Skipped"
	DoseStatusMissed  DoseStatus = "Missed"
)

// Settles reports whether the status settles a dose occurrence
func (s DoseStatus) Settles() bool {
	switch s {
	case DoseStatusTaken, DoseStatusSkipped, DoseStatusMissed:
		return true
	}
	return false
}

// DoseLog is an immutable record that a dose of a schedule was acted upon
type DoseLog struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	ScheduleID     string     `json:"schedule_id"`
	MedicationName string     `json:"medication_name"`
	Time           string     `json:"time"`
	ScheduledTime  time.Time  `json:"scheduled_time"`
	ActionTime     time.Time  `json:"action_time"`
	Status         DoseStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DoseOccurrence is one expected dose of a schedule on the current day
type DoseOccurrence struct {
	ScheduleID     string `json:"schedule_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage,omitempty"`
	Time           string `json:"time"`
}

// Achievement is a rule-derived badge
type Achievement struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// Location is a geographic point in degrees
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NotificationPreferences holds a user's reminder configuration
type NotificationPreferences struct {
	RemindersEnabled     bool      `json:"reminders_enabled"`
	ReminderLeadMinutes  int       `json:"reminder_lead_minutes"`
	SnoozeMinutes        int       `json:"snooze_minutes"`
	Sound                bool      `json:"sound"`
	Vibration            bool      `json:"vibration"`
	Location             *Location `json:"location,omitempty"`
	LocationRadiusMeters float64   `json:"location_radius_meters"`
}

// DefaultNotificationPreferences mirrors the settings a new account starts with
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		RemindersEnabled:    true,
		ReminderLeadMinutes: 10,
		SnoozeMinutes:       5,
		Sound:               true,
	}
}

// Report represents a generated adherence report
type Report struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	DateRangeStart time.Time `json:"date_range_start"`
	DateRangeEnd   time.Time `json:"date_range_end"`
	FilePath       string    `json:"file_path"`
	GeneratedAt    time.Time `json:"generated_at"`
	CreatedAt      time.Time `json:"created_at"`
}
