// Package notification is the boundary to the notification surface.
// The core only signals which case occurred; presentation is the
// rendering layer's problem.
package notification

import (
	"sync"

	"github.com/alexca-social/alexca/internal/logger"
)

type Kind string

const (
	KindSuccess         Kind = "success"
	KindSoftRejection   Kind = "soft_rejection"
	KindSevereRejection Kind = "severe_rejection"
)

type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives moderation and mutation outcomes. Implementations
// must not fail: outcomes are reported, never thrown, and the caller's
// control flow continues either way.
type Notifier interface {
	Success(message string)
	SoftRejection(message string)
	SevereRejection(message string)
}

// Recorder keeps notifications in memory, oldest first, for the
// session's rendering layer to poll.
type Recorder struct {
	mu      sync.Mutex
	entries []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(message string) {
	r.record(Notification{Kind: KindSuccess, Message: message})
}

func (r *Recorder) SoftRejection(message string) {
	r.record(Notification{Kind: KindSoftRejection, Message: message})
}

func (r *Recorder) SevereRejection(message string) {
	r.record(Notification{Kind: KindSevereRejection, Message: message})
}

func (r *Recorder) record(n Notification) {
	r.mu.Lock()
	r.entries = append(r.entries, n)
	r.mu.Unlock()

	logger.Log.Info("notification",
		"component", "notification_recorder",
		"kind", string(n.Kind),
		"message", n.Message)
}

// All returns a copy of the recorded notifications, oldest first.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.entries))
	copy(out, r.entries)
	return out
}
