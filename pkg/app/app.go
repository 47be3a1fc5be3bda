package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"tableflip.dev/tripcraft/pkg/conflict"
	"tableflip.dev/tripcraft/pkg/itinerary"
	"tableflip.dev/tripcraft/pkg/notify"
	"tableflip.dev/tripcraft/pkg/store"
)

// ErrValidation marks input rejected before any state change.
var ErrValidation = errors.New("app: validation failed")

var errNoPersistence = errors.New("app: no persistence configured")

// Observer is called after every committed transition with the previous and
// the new itinerary. Observers run on the mutating goroutine and must not call
// back into the service's mutators. Cancelling a subscription from inside an
// observer is allowed.
type Observer func(prev, next *itinerary.Itinerary)

// Service owns the itinerary for a session. Every mutator is one
// copy-on-write transition followed by a save, observer fan-out and
// notifications. Mutators are serialised; Snapshot never blocks on them.
type Service struct {
	Persistence store.Persistence

	notifier      notify.Notifier
	logger        *zap.Logger
	newDayID      func() string
	newActivityID func() string

	mu       sync.Mutex
	state    atomic.Pointer[itinerary.Itinerary]
	deferred notify.Queue

	obsMu     sync.Mutex
	observers []subscription
	nextObs   int
}

type subscription struct {
	id int
	fn Observer
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier sets where notifications go. The default discards them.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the service logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the day and activity id generators.
func WithIDGenerator(day, activity func() string) Option {
	return func(s *Service) {
		if day != nil {
			s.newDayID = day
		}
		if activity != nil {
			s.newActivityID = activity
		}
	}
}

// New returns a service holding the default itinerary. Call Load to read
// persisted state.
func New(p store.Persistence, opts ...Option) *Service {
	s := &Service{
		Persistence:   p,
		notifier:      notify.Discard,
		logger:        zap.NewNop(),
		newDayID:      itinerary.NewDayID,
		newActivityID: itinerary.NewActivityID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(itinerary.New())
	return s
}

// Snapshot returns the current itinerary. Callers must treat it as read-only.
func (s *Service) Snapshot() *itinerary.Itinerary {
	return s.state.Load()
}

// Subscribe registers fn for every committed transition. The returned func
// removes it.
func (s *Service) Subscribe(fn Observer) (cancel func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Load replaces the in-memory itinerary with the persisted one. Missing data
// yields the defaults silently; corrupt data yields the defaults and an error
// notification. Other read errors are returned and leave state untouched.
func (s *Service) Load(ctx context.Context) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.Persistence.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		it = itinerary.New()
	case errors.Is(err, store.ErrCorrupt):
		s.logger.Error("failed to load itinerary", zap.Error(err))
		it = itinerary.New()
		s.notify(notify.Errorf("Error Loading Data", "Could not load your saved itinerary. Starting fresh."))
	default:
		return fmt.Errorf("app: load itinerary: %w", err)
	}

	prev := s.state.Swap(it)
	s.fanout(prev, it)
	return nil
}

// UpdateTitle renames the itinerary.
func (s *Service) UpdateTitle(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return s.invalid("Itinerary title cannot be empty.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.Snapshot().WithTitle(title)
	s.commit(ctx, next, notify.Successf("Itinerary Title Updated!", fmt.Sprintf("Title changed to %q.", title)))
	return nil
}

// AddDay appends a new, empty day.
func (s *Service) AddDay(ctx context.Context, name string) (itinerary.Day, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return itinerary.Day{}, s.invalid("Day name cannot be empty.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d := itinerary.Day{ID: s.newDayID(), Name: name, Activities: []itinerary.Activity{}}
	s.logger.Debug("add day", zap.String("day", d.ID), zap.String("name", name))
	s.commit(ctx, s.Snapshot().AppendDay(d), notify.Successf("Day Added!", fmt.Sprintf("Successfully added %q.", name)))
	return d, nil
}

// UpdateDayName renames a day. Unknown ids are ignored.
func (s *Service) UpdateDayName(ctx context.Context, dayID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.invalid("Day name cannot be empty.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.Snapshot().MapDay(dayID, func(d itinerary.Day) itinerary.Day { return d.WithName(name) })
	if !ok {
		s.miss("rename day", zap.String("day", dayID))
		return nil
	}
	s.commit(ctx, next, notify.Successf("Day Updated!", "Day name changed successfully."))
	return nil
}

// DeleteDay removes a day and every activity in it.
func (s *Service) DeleteDay(ctx context.Context, dayID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.Snapshot().RemoveDay(dayID)
	if !ok {
		s.miss("delete day", zap.String("day", dayID))
		return nil
	}
	s.commit(ctx, next, notify.Notification{
		Kind:        notify.Warning,
		Title:       "Day Deleted!",
		Description: "The day has been removed from your itinerary.",
	})
	return nil
}

// AddActivity appends an activity to a day. An unknown day is ignored and the
// zero Activity is returned.
func (s *Service) AddActivity(ctx context.Context, dayID string, in itinerary.ActivityInput) (itinerary.Activity, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return itinerary.Activity{}, s.invalid("Activity name cannot be empty.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a := itinerary.Activity{
		ID:    s.newActivityID(),
		Name:  name,
		Time:  strings.TrimSpace(in.Time),
		Notes: in.Notes,
	}
	next, ok := s.Snapshot().MapDay(dayID, func(d itinerary.Day) itinerary.Day { return d.AppendActivity(a) })
	if !ok {
		s.miss("add activity", zap.String("day", dayID))
		return itinerary.Activity{}, nil
	}
	s.logger.Debug("add activity", zap.String("day", dayID), zap.String("activity", a.ID))
	s.commit(ctx, next, notify.Successf("Activity Added!", fmt.Sprintf("Successfully added %q.", name)))
	return a, nil
}

// UpdateActivity merges patch into an activity. The id is preserved.
func (s *Service) UpdateActivity(ctx context.Context, dayID, activityID string, patch itinerary.ActivityPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return s.invalid("Activity name cannot be empty.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated itinerary.Activity
	found := false
	next, ok := s.Snapshot().MapDay(dayID, func(d itinerary.Day) itinerary.Day {
		d, found = d.MapActivity(activityID, func(a itinerary.Activity) itinerary.Activity {
			updated = patch.Apply(a)
			return updated
		})
		return d
	})
	if !ok || !found {
		s.miss("update activity", zap.String("day", dayID), zap.String("activity", activityID))
		return nil
	}
	s.commit(ctx, next, notify.Successf("Activity Updated!", fmt.Sprintf("Successfully updated %q.", updated.Name)))
	return nil
}

// DeleteActivity removes an activity from a day.
func (s *Service) DeleteActivity(ctx context.Context, dayID, activityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next, ok := s.Snapshot().MapDay(dayID, func(d itinerary.Day) itinerary.Day {
		d, found = d.RemoveActivity(activityID)
		return d
	})
	if !ok || !found {
		s.miss("delete activity", zap.String("day", dayID), zap.String("activity", activityID))
		return nil
	}
	s.commit(ctx, next, notify.Notification{
		Kind:        notify.Warning,
		Title:       "Activity Deleted!",
		Description: "The activity has been removed.",
	})
	return nil
}

// ReorderDays moves the day at from to position to. Equal or out-of-range
// indexes do nothing.
func (s *Service) ReorderDays(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.Snapshot().ReorderDays(from, to)
	if !ok {
		s.miss("reorder days", zap.Int("from", from), zap.Int("to", to))
		return nil
	}
	s.commit(ctx, next, notify.Successf("Days Reordered!", "Your days have been successfully reordered."))
	return nil
}

// ReorderActivities moves an activity within its day. Times are untouched.
func (s *Service) ReorderActivities(ctx context.Context, dayID string, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := false
	next, ok := s.Snapshot().MapDay(dayID, func(d itinerary.Day) itinerary.Day {
		d, moved = d.ReorderActivities(from, to)
		return d
	})
	if !ok || !moved {
		s.miss("reorder activities", zap.String("day", dayID), zap.Int("from", from), zap.Int("to", to))
		return nil
	}
	s.commit(ctx, next, notify.Successf("Activities Reordered!", "Your activities have been successfully reordered."))
	return nil
}

// MoveActivity transfers an activity to the end of another day, shifting its
// time forward when the destination already uses it. The conflict notice is
// delivered after the move notice.
func (s *Service) MoveActivity(ctx context.Context, sourceDayID, destDayID, activityID string) (itinerary.MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, out := itinerary.MoveActivity(s.Snapshot(), sourceDayID, destDayID, activityID, conflict.ResolveFunc)
	if !out.Moved {
		s.miss("move activity",
			zap.String("source", sourceDayID),
			zap.String("destination", destDayID),
			zap.String("activity", activityID))
		return out, nil
	}

	switch {
	case out.FullyBooked:
		s.logger.Warn("destination day fully booked",
			zap.String("destination", destDayID),
			zap.String("time", out.OriginalTime))
		s.deferred.Defer(notify.Errorf("Day Fully Booked",
			fmt.Sprintf("No free slot found; %s keeps %s.", out.Activity.Name, out.OriginalTime)))
	case out.Adjusted:
		s.deferred.Defer(notify.Notification{
			Kind:        notify.Warning,
			Title:       "Time Conflict Resolved",
			Description: fmt.Sprintf("Activity moved to %s to avoid scheduling conflicts.", out.ResolvedTime),
		})
	}
	s.commit(ctx, next, notify.Successf("Activity Moved!", "Successfully moved activity to another day."))
	return out, nil
}

// commit installs next, persists it, fans out to observers, then delivers the
// primary notification followed by any deferred ones. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next *itinerary.Itinerary, primary notify.Notification) {
	prev := s.state.Swap(next)
	saveErr := s.save(ctx, next)
	s.fanout(prev, next)
	s.notify(primary)
	if saveErr != nil {
		s.notify(notify.Errorf("Error Saving Data", "Could not save your itinerary. Changes might be lost."))
	}
	s.deferred.Flush(s.notifier)
}

func (s *Service) save(ctx context.Context, it *itinerary.Itinerary) error {
	if s.Persistence == nil {
		return nil
	}
	if err := s.Persistence.Save(ctx, it); err != nil {
		s.logger.Error("failed to save itinerary", zap.Error(err))
		return err
	}
	return nil
}

// fanout calls a copy of the observer list so observers may cancel
// themselves.
func (s *Service) fanout(prev, next *itinerary.Itinerary) {
	s.obsMu.Lock()
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	s.obsMu.Unlock()

	for _, sub := range subs {
		sub.fn(prev, next)
	}
}

func (s *Service) notify(n notify.Notification) {
	s.notifier.Notify(n)
}

func (s *Service) invalid(msg string) error {
	s.notify(notify.Errorf("Oops!", msg))
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func (s *Service) miss(op string, fields ...zap.Field) {
	s.logger.Debug(op+": nothing to do", fields...)
}
