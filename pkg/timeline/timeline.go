// Package timeline models direct manipulation of one day's activities on a
// vertical time axis. Gestures edit a private copy of the day; nothing reaches
// the itinerary until Release commits every block.
package timeline

import (
	"context"
	"errors"
	"fmt"
	"math"

	"tableflip.dev/tripcraft/pkg/itinerary"
	"tableflip.dev/tripcraft/pkg/timeutil"
)

var (
	// ErrBusy is returned when a gesture starts while another is active.
	ErrBusy = errors.New("timeline: gesture already in progress")
	// ErrIndex is returned for a block index outside the session.
	ErrIndex = errors.New("timeline: block index out of range")
)

// Committer writes a block back into the itinerary.
type Committer interface {
	UpdateActivity(ctx context.Context, dayID, activityID string, patch itinerary.ActivityPatch) error
}

// State is the gesture state of a Scheduler.
type State int

const (
	Idle State = iota
	Dragging
	Resizing
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Block is the transient position of one activity.
type Block struct {
	ActivityID   string
	Name         string
	Notes        string
	StartMinutes int
	Duration     int
}

// Start is the block start as HH:MM.
func (b Block) Start() string { return timeutil.MinutesToTime(b.StartMinutes) }

// End is the block end as HH:MM, capped at 23:59.
func (b Block) End() string {
	return timeutil.MinutesToTime(timeutil.Clamp(b.StartMinutes+b.Duration, 0, timeutil.MinutesPerDay-1))
}

// Scheduler holds one editing session over a day. It is not safe for
// concurrent use.
type Scheduler struct {
	cfg       Config
	dayID     string
	committer Committer
	blocks    []Block

	state   State
	index   int
	originY float64
	origin  int
}

// New starts a session over day. Unscheduled activities start at 09:00 and
// every block starts with the default duration.
func New(day itinerary.Day, committer Committer, cfg Config) *Scheduler {
	cfg = cfg.normalize()
	blocks := make([]Block, len(day.Activities))
	for i, a := range day.Activities {
		t := a.Time
		if !a.Scheduled() {
			t = timeutil.DefaultStart
		}
		blocks[i] = Block{
			ActivityID:   a.ID,
			Name:         a.Name,
			Notes:        a.Notes,
			StartMinutes: timeutil.TimeToMinutes(t),
			Duration:     cfg.DefaultDuration,
		}
	}
	return &Scheduler{cfg: cfg, dayID: day.ID, committer: committer, blocks: blocks}
}

// Config returns the grid the session uses.
func (s *Scheduler) Config() Config { return s.cfg }

// DayID is the day being edited.
func (s *Scheduler) DayID() string { return s.dayID }

// State reports the current gesture.
func (s *Scheduler) State() State { return s.state }

// Blocks returns a copy of the transient blocks.
func (s *Scheduler) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// BeginDrag starts moving block i from pointer position y.
func (s *Scheduler) BeginDrag(i int, y float64) error {
	if err := s.begin(i); err != nil {
		return err
	}
	s.state, s.index, s.originY, s.origin = Dragging, i, y, s.blocks[i].StartMinutes
	return nil
}

// BeginResize starts changing the duration of block i from pointer position y.
func (s *Scheduler) BeginResize(i int, y float64) error {
	if err := s.begin(i); err != nil {
		return err
	}
	s.state, s.index, s.originY, s.origin = Resizing, i, y, s.blocks[i].Duration
	return nil
}

func (s *Scheduler) begin(i int) error {
	if s.state != Idle {
		return ErrBusy
	}
	if i < 0 || i >= len(s.blocks) {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	return nil
}

// PointerMove updates the active block for pointer position y. Starts snap
// to the grid and stay inside the day; durations snap and stay between the
// configured bounds. It does nothing while idle.
func (s *Scheduler) PointerMove(y float64) {
	if s.state == Idle {
		return
	}
	delta := int(roundHalfUp((y - s.originY) / s.cfg.PixelsPerMinute()))
	b := &s.blocks[s.index]
	switch s.state {
	case Dragging:
		b.StartMinutes = timeutil.Clamp(s.snap(s.origin+delta), 0, timeutil.MinutesPerDay-b.Duration)
	case Resizing:
		b.Duration = timeutil.Clamp(s.snap(s.origin+delta), s.cfg.MinDuration, s.cfg.MaxDuration)
	}
}

func (s *Scheduler) snap(m int) int {
	step := float64(s.cfg.Snap)
	return int(roundHalfUp(float64(m)/step) * step)
}

// roundHalfUp rounds halves toward positive infinity, so -7.5 becomes -7.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Release ends the gesture and commits every block, not only the one that
// moved. Each commit writes the notes the session opened with plus one
// rounded duration annotation, so repeated gestures in a session never stack
// annotations. It returns false when no gesture was active. Commit errors are
// joined; the session returns to idle either way.
func (s *Scheduler) Release(ctx context.Context) (bool, error) {
	if s.state == Idle {
		return false, nil
	}
	s.state = Idle

	if s.committer == nil {
		return true, nil
	}
	var errs []error
	for _, b := range s.blocks {
		patch := itinerary.ActivityPatch{
			Name:  itinerary.String(b.Name),
			Time:  itinerary.String(b.Start()),
			Notes: itinerary.String(annotate(b.Notes, b.Duration)),
		}
		if err := s.committer.UpdateActivity(ctx, s.dayID, b.ActivityID, patch); err != nil {
			errs = append(errs, fmt.Errorf("timeline: commit %s: %w", b.ActivityID, err))
		}
	}
	return true, errors.Join(errs...)
}

func annotate(notes string, duration int) string {
	note := timeutil.DurationNote(duration)
	if notes == "" {
		return note
	}
	return notes + " | " + note
}
