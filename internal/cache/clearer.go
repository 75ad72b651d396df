package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Ticker delivers ticks until stopped. *time.Ticker satisfies it through
// NewTimeTicker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker is the production TickerFunc backed by time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Clearer empties a ResponseCache on a fixed interval.
type Clearer struct {
	cache     *ResponseCache
	interval  time.Duration
	newTicker TickerFunc
	logger    *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	runID   uint64
	wg      sync.WaitGroup
	onClear func(removed int)
}

// ClearerOption customizes a Clearer.
type ClearerOption func(*Clearer)

// WithTicker replaces the ticker source, typically with a manual ticker in tests.
func WithTicker(fn TickerFunc) ClearerOption {
	return func(c *Clearer) {
		c.newTicker = fn
	}
}

// WithClearHook registers fn to run after every scheduled clear.
func WithClearHook(fn func(removed int)) ClearerOption {
	return func(c *Clearer) {
		c.onClear = fn
	}
}

// NewClearer creates a Clearer for cache. It does nothing until Start.
func NewClearer(cache *ResponseCache, interval time.Duration, logger *slog.Logger, opts ...ClearerOption) *Clearer {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Clearer{
		cache:     cache,
		interval:  interval,
		newTicker: NewTimeTicker,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start launches the clearing loop. It returns immediately; the loop runs
// until ctx is cancelled or Stop is called. Calling Start on a running
// Clearer is a no-op. Once the loop has ended, Start launches a new one.
func (c *Clearer) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.runID++
	ticker := c.newTicker(c.interval)

	c.wg.Add(1)
	go c.run(loopCtx, ticker, c.runID)

	c.logger.Info("cache clearer started", "interval", c.interval.String())
}

// Stop ends the clearing loop and waits for it to exit.
func (c *Clearer) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	c.wg.Wait()
	c.logger.Info("cache clearer stopped")
}

func (c *Clearer) run(ctx context.Context, ticker Ticker, id uint64) {
	defer c.wg.Done()
	defer c.finish(id)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			removed := c.cache.Clear()
			c.logger.Debug("response cache cleared", "removed_entries", removed)
			if c.onClear != nil {
				c.onClear(removed)
			}
		}
	}
}

// finish marks the loop started as run id as no longer running, unless
// Stop or a newer Start already replaced it.
func (c *Clearer) finish(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.runID == id && c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
