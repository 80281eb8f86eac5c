package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// DefaultDuration is applied when Add is called with a non-positive duration.
const DefaultDuration = 3 * time.Second

type Toast struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	Duration time.Duration `json:"-"`
}

// Notifier is a process-wide ordered queue of ephemeral messages. Every toast
// removes itself after its duration on an independent timer; Remove dismisses
// one early and cancels its timer. Identical messages queue separately.
type Notifier struct {
	mu     sync.Mutex
	queue  []Toast
	timers map[string]*time.Timer
}

func NewNotifier() *Notifier {
	return &Notifier{
		timers: make(map[string]*time.Timer),
	}
}

// Add appends a toast and returns its id.
func (n *Notifier) Add(message string, severity Severity, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}

	id := uuid.NewString()

	n.mu.Lock()
	defer n.mu.Unlock()

	n.queue = append(n.queue, Toast{
		ID:       id,
		Message:  message,
		Severity: severity,
		Duration: duration,
	})
	n.timers[id] = time.AfterFunc(duration, func() {
		n.Remove(id)
	})

	return id
}

// Remove dismisses the toast with the given id. Removing an id that already
// expired is a no-op.
func (n *Notifier) Remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}
	for i, t := range n.queue {
		if t.ID == id {
			n.queue = append(n.queue[:i], n.queue[i+1:]...)
			break
		}
	}
}

// Active returns the visible toasts in insertion order.
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Toast, len(n.queue))
	copy(out, n.queue)
	return out
}
