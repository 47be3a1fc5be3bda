// Package notify carries user-facing notices out of the itinerary service.
// Delivery is fire-and-forget: a notifier never reports failure back to the
// caller and never changes control flow.
package notify

import "sync"

// Kind classifies a notification.
type Kind string

const (
	Success Kind = "success"
	Warning Kind = "warning"
	Error   Kind = "error"
)

// Notification is a single toast-style notice.
type Notification struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Notifier receives notifications.
type Notifier interface {
	Notify(Notification)
}

// Func adapts a plain function to Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

// Multi fans a notification out to each notifier in order.
func Multi(ns ...Notifier) Notifier {
	list := make([]Notifier, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			list = append(list, n)
		}
	}
	return multi(list)
}

type multi []Notifier

func (m multi) Notify(n Notification) {
	for _, to := range m {
		to.Notify(n)
	}
}

// Recorder keeps every notification it receives. It is safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.all = append(r.all, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.all))
	copy(out, r.all)
	return out
}

// Titles returns the titles of the recorded notifications in order.
func (r *Recorder) Titles() []string {
	all := r.All()
	out := make([]string, len(all))
	for i, n := range all {
		out[i] = n.Title
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.all = nil
	r.mu.Unlock()
}

// Successf builds a success notification.
func Successf(title, description string) Notification {
	return Notification{Kind: Success, Title: title, Description: description}
}

// Errorf builds an error notification.
func Errorf(title, description string) Notification {
	return Notification{Kind: Error, Title: title, Description: description}
}
