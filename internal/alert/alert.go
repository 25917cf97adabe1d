package alert

import (
	"sync"
	"time"
)

// DismissAfter is how long an alert stays visible before auto-dismissing.
const DismissAfter = 3 * time.Second

type Type string

const (
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Alert is one transient toast notification.
type Alert struct {
	Type     Type     `json:"type"`
	Title    string   `json:"title"`
	Messages []string `json:"messages,omitempty"`
}

// Notifier holds at most one visible alert. Showing a new alert replaces
// the current one and restarts the single pending dismiss timer
// (last-alert-wins, never a queue).
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Alert
	timer   *time.Timer
}

func NewNotifier() *Notifier {
	return &Notifier{ttl: DismissAfter}
}

// NewNotifierWithTTL exists for tests that cannot wait the full delay.
func NewNotifierWithTTL(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

// Show replaces the visible alert and restarts the dismiss timer.
func (n *Notifier) Show(t Type, title string, messages ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = &Alert{Type: t, Title: title, Messages: messages}

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, n.dismiss)
}

func (n *Notifier) dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = nil
	n.timer = nil
}

// Current returns the visible alert, or nil if none is showing.
func (n *Notifier) Current() *Alert {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	cp := *n.current
	return &cp
}

// Dismiss hides the alert immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
