package notice

import (
	"sync"
	"time"
)

// CarouselInterval is the auto-advance period of the promo slider.
const CarouselInterval = 4 * time.Second

// Carousel cycles an index over n slides. Every slide change, automatic or
// manual, re-arms the timer so a manual pick always gets a full interval.
type Carousel struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	n        int
	index    int
	seq      uint64
	timer    Timer
	running  bool
	onChange func(int)
}

func NewCarousel(clock Clock, interval time.Duration, n int) *Carousel {
	if clock == nil {
		clock = RealClock
	}
	if interval <= 0 {
		interval = CarouselInterval
	}
	return &Carousel{clock: clock, interval: interval, n: n}
}

func (c *Carousel) OnChange(fn func(int)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Start begins auto-advancing. It does nothing when there are no slides.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == 0 || c.running {
		return
	}
	c.running = true
	c.arm()
}

// arm must be called with c.mu held.
func (c *Carousel) arm() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	c.timer = c.clock.AfterFunc(c.interval, func() { c.advance(seq) })
}

func (c *Carousel) advance(seq uint64) {
	c.mu.Lock()
	if seq != c.seq || !c.running {
		c.mu.Unlock()
		return
	}
	c.index = (c.index + 1) % c.n
	c.arm()
	idx, fn := c.index, c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(idx)
	}
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Len() int { return c.n }

// GoTo jumps to slide i (wrapped into range).
func (c *Carousel) GoTo(i int) {
	c.mu.Lock()
	if c.n == 0 {
		c.mu.Unlock()
		return
	}
	c.index = ((i % c.n) + c.n) % c.n
	if c.running {
		c.arm()
	}
	idx, fn := c.index, c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(idx)
	}
}

func (c *Carousel) Next() { c.GoTo(c.Index() + 1) }
func (c *Carousel) Prev() { c.GoTo(c.Index() - 1) }

func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
