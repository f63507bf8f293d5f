package notice

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and fires due timers in deadline order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].at < c.timers[j].at })
		var due *fakeTimer
		for i, t := range c.timers {
			if !t.stopped && t.at <= c.now {
				due = t
				c.timers = append(c.timers[:i], c.timers[i+1:]...)
				break
			}
		}
		c.mu.Unlock()
		if due == nil {
			return
		}
		due.stopped = true
		due.fn()
	}
}

func TestToast_AutoHides(t *testing.T) {
	clock := &fakeClock{}
	toast := NewToast(clock, ToastDuration)

	toast.Show("Produk ditambahkan ke keranjang!")
	assert.Equal(t, Notice{Message: "Produk ditambahkan ke keranjang!", Show: true}, toast.Current())

	clock.Advance(1999 * time.Millisecond)
	assert.True(t, toast.Current().Show)

	clock.Advance(time.Millisecond)
	assert.Equal(t, Notice{}, toast.Current())
}

func TestToast_NewerMessageRestartsTimer(t *testing.T) {
	clock := &fakeClock{}
	toast := NewToast(clock, ToastDuration)

	toast.Show("first")
	clock.Advance(1500 * time.Millisecond)
	toast.Show("second")

	// the first timer would have fired here
	clock.Advance(600 * time.Millisecond)
	assert.Equal(t, "second", toast.Current().Message)

	clock.Advance(1400 * time.Millisecond)
	assert.False(t, toast.Current().Show)
}

func TestToast_OnChangeAndClose(t *testing.T) {
	clock := &fakeClock{}
	toast := NewToast(clock, ToastDuration)
	var seen []Notice
	toast.OnChange(func(n Notice) { seen = append(seen, n) })

	toast.Show("hi")
	clock.Advance(ToastDuration)
	assert.Equal(t, []Notice{{Message: "hi", Show: true}, {}}, seen)

	toast.Close()
	toast.Show("ignored")
	assert.False(t, toast.Current().Show)
}

func TestCarousel_AutoAdvanceWraps(t *testing.T) {
	clock := &fakeClock{}
	c := NewCarousel(clock, CarouselInterval, 3)
	c.Start()

	clock.Advance(CarouselInterval)
	assert.Equal(t, 1, c.Index())
	clock.Advance(CarouselInterval)
	assert.Equal(t, 2, c.Index())
	clock.Advance(CarouselInterval)
	assert.Equal(t, 0, c.Index())
}

func TestCarousel_ManualChangeResetsTimer(t *testing.T) {
	clock := &fakeClock{}
	c := NewCarousel(clock, CarouselInterval, 3)
	c.Start()

	clock.Advance(3 * time.Second)
	c.GoTo(2)
	clock.Advance(3 * time.Second)
	assert.Equal(t, 2, c.Index(), "manual pick gets a full interval")
	clock.Advance(time.Second)
	assert.Equal(t, 0, c.Index())

	c.Prev()
	assert.Equal(t, 2, c.Index())
}

func TestCarousel_EmptyNeverArms(t *testing.T) {
	clock := &fakeClock{}
	c := NewCarousel(clock, CarouselInterval, 0)
	c.Start()
	c.GoTo(4)
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Index())
	assert.Empty(t, clock.timers)
}

func TestCarousel_CloseStops(t *testing.T) {
	clock := &fakeClock{}
	c := NewCarousel(clock, CarouselInterval, 2)
	c.Start()
	c.Close()
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Index())
}
