package notice

import (
	"sync"
	"time"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 2 * time.Second

// Notifier receives user-facing status messages.
type Notifier interface {
	Show(message string)
}

// Notice is the visible toast state.
type Notice struct {
	Message string `json:"message"`
	Show    bool   `json:"show"`
}

// Toast holds at most one message and hides it after its ttl. A newer
// message replaces the current one and restarts the countdown.
type Toast struct {
	mu       sync.Mutex
	clock    Clock
	ttl      time.Duration
	current  Notice
	seq      uint64
	timer    Timer
	onChange func(Notice)
	closed   bool
}

func NewToast(clock Clock, ttl time.Duration) *Toast {
	if clock == nil {
		clock = RealClock
	}
	if ttl <= 0 {
		ttl = ToastDuration
	}
	return &Toast{clock: clock, ttl: ttl}
}

// OnChange registers fn to be called after every show or hide.
func (t *Toast) OnChange(fn func(Notice)) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

func (t *Toast) Show(message string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	seq := t.seq
	t.current = Notice{Message: message, Show: true}
	t.timer = t.clock.AfterFunc(t.ttl, func() { t.hide(seq) })
	n, fn := t.current, t.onChange
	t.mu.Unlock()

	if fn != nil {
		fn(n)
	}
}

func (t *Toast) hide(seq uint64) {
	t.mu.Lock()
	if seq != t.seq || t.closed {
		t.mu.Unlock()
		return
	}
	t.current = Notice{}
	t.timer = nil
	fn := t.onChange
	t.mu.Unlock()

	if fn != nil {
		fn(Notice{})
	}
}

func (t *Toast) Current() Notice {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Close stops the pending timer. Later Show calls are ignored.
func (t *Toast) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.closed = true
}

type discard struct{}

func (discard) Show(string) {}

// Discard drops every message.
var Discard Notifier = discard{}
