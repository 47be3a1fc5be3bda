package store

import (
	"context"
	"sync"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

// Memory is an in-process Persistence. Saved values are deep-copied so later
// changes by the caller cannot leak in.
type Memory struct {
	mu      sync.Mutex
	current *itinerary.Itinerary
	saves   int
	subs    []chan Event
}

// NewMemory returns a store seeded with it, or an empty store when it is nil.
func NewMemory(it *itinerary.Itinerary) *Memory {
	return &Memory{current: it.Clone()}
}

func (m *Memory) Load(ctx context.Context) (*itinerary.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNotFound
	}
	return m.current.Clone(), nil
}

func (m *Memory) Save(ctx context.Context, it *itinerary.Itinerary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = it.Clone()
	m.saves++
	for _, ch := range m.subs {
		select {
		case ch <- Event{Type: EventItineraryChanged}:
		default:
		}
	}
	m.mu.Unlock()
	return nil
}

// Saves is the number of successful Save calls.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Watch delivers an event after each Save until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		for i, c := range m.subs {
			if c == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}
