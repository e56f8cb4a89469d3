package reminder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/timeutil"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

var (
	// ErrNoTimes is returned when a request carries no usable dose time
	ErrNoTimes = errors.New("reminder has no valid dose times")
	// ErrClosed is returned after the scheduler has been shut down
	ErrClosed = errors.New("scheduler is closed")
)

const (
	// DefaultGeofenceTimeout bounds the position lookup done when a reminder fires
	DefaultGeofenceTimeout = 5 * time.Second
	// DefaultRadiusMeters applies when preferences carry a location but no radius
	DefaultRadiusMeters = 100.0
)

// Request is the canonical input of the scheduler. Both schedules and single
// dose occurrences are normalized into it.
type Request struct {
	UserID         string
	ScheduleID     string
	MedicationName string
	Dosage         string
	Times          []string
}

// FromSchedule builds a request covering every time of the schedule
func FromSchedule(s model.Schedule) Request {
	return Request{
		UserID:         s.UserID,
		ScheduleID:     s.ID,
		MedicationName: s.Name,
		Dosage:         s.Dosage,
		Times:          s.Times,
	}
}

// FromOccurrence builds a single-time request for one dose occurrence
func FromOccurrence(userID string, occ model.DoseOccurrence) Request {
	var times []string
	if occ.Time != "" {
		times = []string{occ.Time}
	}
	return Request{
		UserID:         userID,
		ScheduleID:     occ.ScheduleID,
		MedicationName: occ.MedicationName,
		Dosage:         occ.Dosage,
		Times:          times,
	}
}

// Key identifies a pending reminder
func Key(scheduleID, tod string) string {
	return scheduleID + "-" + tod
}

// Pending describes an armed reminder
type Pending struct {
	Key            string    `json:"key"`
	UserID         string    `json:"user_id"`
	ScheduleID     string    `json:"schedule_id"`
	MedicationName string    `json:"medication_name"`
	Time           string    `json:"time"`
	Due            time.Time `json:"due"`
}

type entry struct {
	key    string
	tod    string
	due    time.Time
	req    Request
	prefs  model.NotificationPreferences
	timer  Timer
	cancel context.CancelFunc
}

// Options tunes a Scheduler. Zero values select the defaults.
type Options struct {
	Clock           Clock
	Positions       PositionSource
	GeofenceTimeout time.Duration
	DefaultRadius   float64
}

// Scheduler owns the set of pending one-shot reminders of the process
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*entry
	closed  bool

	clock           Clock
	notifier        Notifier
	positions       PositionSource
	geofenceTimeout time.Duration
	defaultRadius   float64
	logger          *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a new Scheduler delivering through notifier
func NewScheduler(notifier Notifier, opts Options, logger *zap.Logger) *Scheduler {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.GeofenceTimeout <= 0 {
		opts.GeofenceTimeout = DefaultGeofenceTimeout
	}
	if opts.DefaultRadius <= 0 {
		opts.DefaultRadius = DefaultRadiusMeters
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		pending:         make(map[string]*entry),
		clock:           opts.Clock,
		notifier:        notifier,
		positions:       opts.Positions,
		geofenceTimeout: opts.GeofenceTimeout,
		defaultRadius:   opts.DefaultRadius,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// SetReminder arms a one-shot timer for every time of req that is still ahead
// today. Keys already pending are left untouched. It returns the newly armed keys.
func (s *Scheduler) SetReminder(req Request, prefs model.NotificationPreferences) ([]string, error) {
	times := s.validTimes(req)
	if len(times) == 0 {
		s.logger.Warn("reminder request has no valid times",
			zap.String("user_id", req.UserID),
			zap.String("schedule_id", req.ScheduleID),
		)
		return nil, fmt.Errorf("schedule %s: %w", req.ScheduleID, ErrNoTimes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	now := s.clock.Now()
	armed := make([]string, 0, len(times))
	for _, tod := range times {
		key := Key(req.ScheduleID, tod.String())
		if _, exists := s.pending[key]; exists {
			continue
		}

		due := timeutil.On(now, tod)
		delay := due.Sub(now)
		if delay <= 0 {
			s.logger.Debug("dose time already passed today",
				zap.String("key", key),
				zap.Time("due", due),
			)
			continue
		}

		ctx, cancel := context.WithCancel(s.ctx)
		e := &entry{
			key:    key,
			tod:    tod.String(),
			due:    due,
			req:    req,
			prefs:  prefs,
			timer:  s.clock.NewTimer(delay),
			cancel: cancel,
		}
		s.pending[key] = e
		armed = append(armed, key)

		s.wg.Add(1)
		go s.run(ctx, e)
	}

	if len(armed) > 0 {
		s.logger.Info("reminders armed",
			zap.String("user_id", req.UserID),
			zap.String("schedule_id", req.ScheduleID),
			zap.Strings("keys", armed),
		)
	}
	return armed, nil
}

// ScheduleNotification arms a reminder for a single dose occurrence
func (s *Scheduler) ScheduleNotification(userID string, occ model.DoseOccurrence, prefs model.NotificationPreferences) ([]string, error) {
	return s.SetReminder(FromOccurrence(userID, occ), prefs)
}

// Cancel stops the pending reminder under key. It reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	e, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	e.timer.Stop()
	e.cancel()
	s.logger.Debug("reminder cancelled", zap.String("key", key))
	return true
}

// CancelSchedule stops every pending reminder of a schedule and returns how
// many were cancelled
func (s *Scheduler) CancelSchedule(scheduleID string) int {
	prefix := scheduleID + "-"

	s.mu.Lock()
	var keys []string
	for key, e := range s.pending {
		if e.req.ScheduleID == scheduleID && strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	s.mu.Unlock()

	n := 0
	for _, key := range keys {
		if s.Cancel(key) {
			n++
		}
	}
	return n
}

// Pending lists the armed reminders ordered by due time
func (s *Scheduler) Pending() []Pending {
	s.mu.Lock()
	out := make([]Pending, 0, len(s.pending))
	for _, e := range s.pending {
		out = append(out, Pending{
			Key:            e.key,
			UserID:         e.req.UserID,
			ScheduleID:     e.req.ScheduleID,
			MedicationName: e.req.MedicationName,
			Time:           e.tod,
			Due:            e.due,
		})
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Due.Equal(out[j].Due) {
			return out[i].Key < out[j].Key
		}
		return out[i].Due.Before(out[j].Due)
	})
	return out
}

// Close cancels every pending and snoozed reminder and waits for in-flight
// deliveries to return. Further SetReminder calls fail with ErrClosed.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	entries := make([]*entry, 0, len(s.pending))
	for _, e := range s.pending {
		entries = append(entries, e)
	}
	s.pending = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range entries {
		e.timer.Stop()
	}
	s.cancel()
	s.wg.Wait()
	s.logger.Info("reminder scheduler stopped", zap.Int("cancelled", len(entries)))
}

func (s *Scheduler) validTimes(req Request) []timeutil.TimeOfDay {
	out := make([]timeutil.TimeOfDay, 0, len(req.Times))
	seen := make(map[timeutil.TimeOfDay]bool, len(req.Times))
	for _, raw := range req.Times {
		tod, err := timeutil.ParseTimeOfDay(raw)
		if err != nil {
			s.logger.Warn("skipping malformed reminder time",
				zap.String("schedule_id", req.ScheduleID),
				zap.String("time", raw),
				zap.Error(err),
			)
			continue
		}
		if seen[tod] {
			continue
		}
		seen[tod] = true
		out = append(out, tod)
	}
	return out
}

func (s *Scheduler) run(ctx context.Context, e *entry) {
	defer s.wg.Done()
	defer e.cancel()

	select {
	case <-ctx.Done():
		return
	case <-e.timer.C():
	}

	if !s.release(e) {
		return
	}

	if !s.withinGeofence(ctx, e) {
		s.logger.Info("reminder suppressed outside geofence",
			zap.String("user_id", e.req.UserID),
			zap.String("key", e.key),
		)
		return
	}

	s.deliver(ctx, e, KindReminder, "Medication Reminder")

	if e.prefs.SnoozeMinutes <= 0 {
		return
	}

	snooze := s.clock.NewTimer(time.Duration(e.prefs.SnoozeMinutes) * time.Minute)
	defer snooze.Stop()
	select {
	case <-s.ctx.Done():
		return
	case <-snooze.C():
	}
	s.deliver(s.ctx, e, KindSnooze, "Snoozed Reminder")
}

// release removes e from the pending map if it is still the current entry for
// its key. A false result means the reminder was cancelled concurrently.
func (s *Scheduler) release(e *entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[e.key] != e {
		return false
	}
	delete(s.pending, e.key)
	return true
}

// withinGeofence reports whether the reminder may be delivered. Only a
// successful position lookup outside the radius suppresses it.
func (s *Scheduler) withinGeofence(ctx context.Context, e *entry) bool {
	if e.prefs.Location == nil || s.positions == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, s.geofenceTimeout)
	defer cancel()

	type result struct {
		pos model.Location
		err error
	}
	ch := make(chan result, 1)
	go func() {
		pos, err := s.positions.CurrentPosition(ctx, e.req.UserID)
		ch <- result{pos: pos, err: err}
	}()

	var res result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	if res.err != nil {
		s.logger.Warn("position unavailable, delivering reminder",
			zap.String("user_id", e.req.UserID),
			zap.String("key", e.key),
			zap.Error(res.err),
		)
		return true
	}

	radius := e.prefs.LocationRadiusMeters
	if radius <= 0 {
		radius = s.defaultRadius
	}
	return Distance(*e.prefs.Location, res.pos) <= radius
}

func (s *Scheduler) deliver(ctx context.Context, e *entry, kind Kind, title string) {
	n := Notification{
		Kind:       kind,
		UserID:     e.req.UserID,
		Key:        e.key,
		ScheduleID: e.req.ScheduleID,
		Title:      title,
		Body:       reminderBody(e.req),
		Sound:      e.prefs.Sound,
		Vibration:  e.prefs.Vibration,
		SentAt:     s.clock.Now(),
	}

	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Error("failed to deliver reminder",
			zap.String("user_id", e.req.UserID),
			zap.String("key", e.key),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

func reminderBody(req Request) string {
	if req.Dosage == "" {
		return fmt.Sprintf("It's time to take your %s.", req.MedicationName)
	}
	return fmt.Sprintf("It's time to take your %s (%s).", req.MedicationName, req.Dosage)
}
