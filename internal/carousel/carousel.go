// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package carousel models the autoplaying slide carousels of the hero and
// testimonials sections. The browser script in web/static/js/site.js
// implements the same machine; this package is the reference for its
// behavior and is what the server uses to decide whether controls render.
//
// A carousel is Playing, Paused or Destroyed. While Playing, every interval
// advances the index by one, wrapping at the end. Pointer or touch contact
// pauses it; releasing resumes it with a full interval. Destroy stops the
// timer goroutine and turns every later call into a no-op.
package carousel

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle state of a carousel.
type State int

const (
	Playing State = iota
	Paused
	Destroyed
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

const (
	// DefaultInterval is the autoplay period.
	DefaultInterval = 6 * time.Second
	// DefaultSwipeThreshold is the horizontal distance, in pixels, a swipe
	// must exceed to change slides.
	DefaultSwipeThreshold = 50.0
)

// Ticker is the subset of *time.Ticker the carousel needs.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time   { return r.t.C }
func (r realTicker) Reset(d time.Duration) { r.t.Reset(d) }
func (r realTicker) Stop()                 { r.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Options configures a carousel. Zero values take the defaults.
type Options struct {
	Interval       time.Duration
	SwipeThreshold float64
	// NewTicker builds the autoplay ticker. Tests inject a manual one.
	NewTicker func(time.Duration) Ticker
	// OnChange is called with the new index after every index change. It
	// runs without the carousel lock held.
	OnChange func(index int)
}

// Carousel is a slide index with autoplay. It is safe for concurrent use.
type Carousel struct {
	opts Options

	mu         sync.Mutex
	count      int
	index      int
	state      State
	touchStart *float64

	ticker Ticker
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a Playing carousel over count slides. A timer runs only when
// there is more than one slide.
func New(count int, opts Options) *Carousel {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = DefaultSwipeThreshold
	}
	if opts.NewTicker == nil {
		opts.NewTicker = NewTimeTicker
	}
	if count < 0 {
		count = 0
	}

	c := &Carousel{opts: opts, count: count, state: Playing}
	c.mu.Lock()
	c.syncLoopLocked()
	c.mu.Unlock()
	return c
}

// Index returns the current slide index.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Count returns the number of slides.
func (c *Carousel) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// State returns the lifecycle state.
func (c *Carousel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HasControls reports whether indicators and navigation should render.
func (c *Carousel) HasControls() bool {
	return HasControls(c.Count())
}

// HasControls reports whether a carousel of count slides needs controls.
func HasControls(count int) bool {
	return count > 1
}

// Tick advances one slide if the carousel is Playing. The autoplay loop
// calls it on every timer fire.
func (c *Carousel) Tick() {
	c.move(func() bool {
		if c.state != Playing {
			return false
		}
		return c.stepLocked(1)
	})
}

// Next moves forward one slide, wrapping to the first.
func (c *Carousel) Next() {
	c.move(func() bool { return c.stepLocked(1) })
}

// Prev moves back one slide, wrapping to the last.
func (c *Carousel) Prev() {
	c.move(func() bool { return c.stepLocked(-1) })
}

// GoTo jumps to slide i, as an indicator click does. Out of range indexes
// are ignored.
func (c *Carousel) GoTo(i int) {
	c.move(func() bool {
		if c.state == Destroyed || c.count <= 1 || i < 0 || i >= c.count || i == c.index {
			return false
		}
		c.index = i
		return true
	})
}

// Swipe applies a horizontal gesture. delta is start minus end: a leftward
// swipe is positive and moves forward. Movement within the threshold is a
// dead zone.
func (c *Carousel) Swipe(delta float64) {
	c.move(func() bool {
		switch {
		case delta > c.opts.SwipeThreshold:
			return c.stepLocked(1)
		case delta < -c.opts.SwipeThreshold:
			return c.stepLocked(-1)
		}
		return false
	})
}

// TouchStart pauses and remembers where the touch began.
func (c *Carousel) TouchStart(x float64) {
	c.mu.Lock()
	if c.state != Destroyed {
		c.touchStart = &x
	}
	c.mu.Unlock()
	c.Pause()
}

// TouchEnd resumes and applies the swipe from the matching TouchStart.
func (c *Carousel) TouchEnd(x float64) {
	c.mu.Lock()
	start := c.touchStart
	c.touchStart = nil
	c.mu.Unlock()

	c.Resume()
	if start != nil {
		c.Swipe(*start - x)
	}
}

// Pause stops autoplay until Resume. Pointer enter and touch start pause.
func (c *Carousel) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Playing {
		c.state = Paused
	}
}

// Resume restarts autoplay with a full interval before the next advance.
func (c *Carousel) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Paused {
		return
	}
	c.state = Playing
	if c.ticker != nil {
		c.ticker.Reset(c.opts.Interval)
	}
}

// SetCount changes the number of slides, clamping the index into range.
// The timer starts or stops as the count crosses one.
func (c *Carousel) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	var changed bool
	var index int
	var wait chan struct{}

	c.mu.Lock()
	if c.state == Destroyed {
		c.mu.Unlock()
		return
	}
	c.count = n
	if last := max(n-1, 0); c.index > last {
		c.index = last
		changed = true
	}
	index = c.index
	wait = c.syncLoopLocked()
	c.mu.Unlock()

	if wait != nil {
		<-wait
	}
	if changed && c.opts.OnChange != nil {
		c.opts.OnChange(index)
	}
}

// Destroy stops the timer and waits for its goroutine to exit. Later calls
// on the carousel do nothing.
func (c *Carousel) Destroy() {
	c.mu.Lock()
	if c.state == Destroyed {
		c.mu.Unlock()
		return
	}
	c.state = Destroyed
	wait := c.stopLoopLocked()
	c.mu.Unlock()

	if wait != nil {
		<-wait
	}
}

// move runs fn under the lock and fires OnChange when it reports a change.
func (c *Carousel) move(fn func() bool) {
	c.mu.Lock()
	changed := fn()
	index := c.index
	c.mu.Unlock()

	if changed && c.opts.OnChange != nil {
		c.opts.OnChange(index)
	}
}

func (c *Carousel) stepLocked(delta int) bool {
	if c.state == Destroyed || c.count <= 1 {
		return false
	}
	c.index = ((c.index+delta)%c.count + c.count) % c.count
	return true
}

// syncLoopLocked starts the autoplay loop when it should run and stops it
// when it should not. It returns a channel to wait on after unlocking when
// a loop was stopped.
func (c *Carousel) syncLoopLocked() chan struct{} {
	want := c.state != Destroyed && c.count > 1
	switch {
	case want && c.cancel == nil:
		c.startLoopLocked()
	case !want && c.cancel != nil:
		return c.stopLoopLocked()
	}
	return nil
}

func (c *Carousel) startLoopLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	t := c.opts.NewTicker(c.opts.Interval)
	done := make(chan struct{})

	c.ticker = t
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C():
				c.Tick()
			}
		}
	}()
}

func (c *Carousel) stopLoopLocked() chan struct{} {
	if c.cancel == nil {
		return nil
	}
	c.cancel()
	done := c.done
	c.cancel = nil
	c.done = nil
	c.ticker = nil
	return done
}
