package ui

import (
	"sync"
	"time"
)

// Clock creates tickers. SystemClock is backed by time.Ticker; ManualClock
// fires only when told to.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// ManualClock is a Clock whose tickers fire on Tick.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock returns a ManualClock starting at the Unix epoch.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(0, 0)}
}

// NewTicker implements Clock.
func (c *ManualClock) NewTicker(time.Duration) Ticker {
	t := &manualTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

// Tick delivers one tick to every live ticker and blocks until each
// receiver has taken it.
func (c *ManualClock) Tick() {
	c.mu.Lock()
	live := make([]*manualTicker, 0, len(c.tickers))
	for _, t := range c.tickers {
		if !t.isStopped() {
			live = append(live, t)
		}
	}
	c.tickers = live
	c.now = c.now.Add(time.Millisecond)
	now := c.now
	c.mu.Unlock()

	for _, t := range live {
		select {
		case t.ch <- now:
		case <-t.stopped:
		}
	}
}

// Active returns the number of tickers that have not been stopped.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

type manualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

func (t *manualTicker) isStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}
