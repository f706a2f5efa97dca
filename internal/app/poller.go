package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/prayerclock/internal/provider"
	"github.com/five82/prayerclock/internal/state"
)

const (
	defaultPollInterval = time.Hour
	retryBase           = 30 * time.Second
	maxBackoff          = 30 * time.Minute
	dayCheckEvery       = time.Minute
	minRequestGap       = 30 * time.Second
)

// Fetcher is the part of provider.Provider the poller needs.
type Fetcher interface {
	Fetch(ctx context.Context) provider.Result
}

// Poller refreshes the store on an interval, when the calendar day changes,
// and when the UI asks for it.
type Poller struct {
	fetcher  Fetcher
	store    *state.Store
	interval time.Duration
	now      func() time.Time
	logger   zerolog.Logger

	requests chan struct{}

	mu          sync.Mutex
	lastRefresh time.Time
}

// NewPoller builds a Poller. A non-positive interval uses the default.
func NewPoller(fetcher Fetcher, store *state.Store, interval time.Duration, logger zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		fetcher:  fetcher,
		store:    store,
		interval: interval,
		now:      time.Now,
		logger:   logger.With().Str("component", "poller").Logger(),
		requests: make(chan struct{}, 1),
	}
}

// Request asks for a refresh as soon as possible. It never blocks; requests
// made while one is pending are merged.
func (p *Poller) Request() {
	select {
	case p.requests <- struct{}{}:
	default:
	}
}

// Start launches the polling goroutine and returns immediately.
func (p *Poller) Start(ctx context.Context) {
	go p.loop(ctx)
}

func (p *Poller) loop(ctx context.Context) {
	dayCheck := time.NewTicker(dayCheckEvery)
	defer dayCheck.Stop()

	timer := time.NewTimer(p.nextWait())
	defer timer.Stop()

	for {
		refreshed := false
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.Refresh(ctx)
			refreshed = true
		case <-dayCheck.C:
			if p.dayChanged() {
				p.logger.Info().Msg("calendar day changed, refreshing timings")
				p.Refresh(ctx)
				refreshed = true
			}
		case <-p.requests:
			if p.sinceLastRefresh() >= minRequestGap {
				p.Refresh(ctx)
				refreshed = true
			}
		}
		if refreshed {
			timer.Reset(p.nextWait())
		}
	}
}

// nextWait is the regular interval, shortened to a backoff while fetches
// are falling back.
func (p *Poller) nextWait() time.Duration {
	if failures := p.store.Snapshot().ConsecutiveFailures; failures > 0 {
		return min(calculateBackoff(failures-1, retryBase), p.interval)
	}
	return p.interval
}

// Refresh fetches once and records the result.
func (p *Poller) Refresh(ctx context.Context) {
	res := p.fetcher.Fetch(ctx)
	p.store.Update(res)

	p.mu.Lock()
	p.lastRefresh = p.now()
	p.mu.Unlock()

	if res.Err != nil {
		p.logger.Warn().Err(res.Err).Str("source", res.Source.String()).Msg("refresh degraded")
		return
	}
	p.logger.Debug().Str("source", res.Source.String()).Msg("refresh complete")
}

func (p *Poller) sinceLastRefresh() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastRefresh.IsZero() {
		return minRequestGap
	}
	return p.now().Sub(p.lastRefresh)
}

func (p *Poller) dayChanged() bool {
	snap := p.store.Snapshot()
	if !snap.HasSchedule {
		return true
	}
	return !snap.Schedule.Table.IsFor(snap.Schedule.Now(p.now()))
}

// calculateBackoff doubles base per prior failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
