package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/prayerclock/internal/aladhan"
	"github.com/five82/prayerclock/internal/prayer"
)

// Source tells where a schedule came from.
type Source int

const (
	SourceLive Source = iota
	SourceCache
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceLive:
		return "live"
	case SourceCache:
		return "cache"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Schedule is a parsed day ready for resolution and display.
type Schedule struct {
	Table       prayer.TimeTable
	Location    *time.Location
	City        string
	Country     string
	Gregorian   string // "14 Mar 2025"
	Hijri       string // "14 Ramaḍān 1446 AH"
	HijriArabic string
	Method      string
	ParseErr    error // slots dropped while parsing, if any
}

// Now returns now in the schedule's timezone.
func (s Schedule) Now(now time.Time) time.Time {
	if s.Location == nil {
		return now
	}
	return now.In(s.Location)
}

// Result is the outcome of one Fetch. It always carries a usable Schedule;
// Err explains why live data was not used.
type Result struct {
	Schedule  Schedule
	Source    Source
	Err       error
	FetchedAt time.Time
}

// DayCache stores fetched days. *cache.Cache implements it.
type DayCache interface {
	Get(ctx context.Context, q aladhan.Query) (*aladhan.Day, bool)
	Set(ctx context.Context, q aladhan.Query, day *aladhan.Day) error
}

// Options configure a Provider.
type Options struct {
	City     string
	Country  string
	Method   int
	Location *time.Location // nil: use the API's zone, then time.Local
	Cache    DayCache       // optional
	Now      func() time.Time
	Logger   zerolog.Logger
}

// Provider supplies the day's timings. Fetch never fails: when the API is
// unreachable it returns the fixed fallback schedule.
type Provider struct {
	fetcher  aladhan.DayFetcher
	cache    DayCache
	city     string
	country  string
	method   int
	location *time.Location
	now      func() time.Time
	logger   zerolog.Logger

	mu      sync.Mutex
	apiZone *time.Location // last meta.timezone seen, used when location is nil
}

// New builds a Provider around fetcher.
func New(fetcher aladhan.DayFetcher, opts Options) *Provider {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Provider{
		fetcher:  fetcher,
		cache:    opts.Cache,
		city:     strings.TrimSpace(opts.City),
		country:  strings.TrimSpace(opts.Country),
		method:   opts.Method,
		location: opts.Location,
		now:      now,
		logger:   opts.Logger.With().Str("component", "provider").Logger(),
	}
}

// Fetch returns today's schedule from cache, the API, or the fallback, in
// that order of preference. "Today" is the calendar day at the schedule's
// location: the configured timezone, else the zone the API reported last.
// A live day that turns out to be for another day in its own zone is
// fetched once more with the corrected date.
func (p *Provider) Fetch(ctx context.Context) Result {
	now := p.now()
	today := p.localize(now)
	q := p.query(today)

	if p.cache != nil {
		if day, ok := p.cache.Get(ctx, q); ok && p.isToday(day, now) {
			p.rememberZone(day)
			p.logger.Debug().Str("date", q.Date.Format("2006-01-02")).Msg("timings served from cache")
			return Result{Schedule: p.build(day, today), Source: SourceCache, FetchedAt: now}
		}
	}

	if p.fetcher == nil {
		return p.fallback(today, now, fmt.Errorf("no timings source configured"))
	}
	day, err := p.fetcher.FetchDay(ctx, q)
	if err != nil {
		return p.fallback(today, now, fmt.Errorf("fetch timings: %w", err))
	}

	p.rememberZone(day)
	if !p.isToday(day, now) {
		today = p.localize(now)
		q = p.query(today)
		p.logger.Info().
			Str("date", q.Date.Format("2006-01-02")).
			Str("timezone", day.Meta.Timezone).
			Msg("api day differs from local day, refetching")
		day, err = p.fetcher.FetchDay(ctx, q)
		if err != nil {
			return p.fallback(today, now, fmt.Errorf("fetch timings: %w", err))
		}
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, q, day); err != nil {
			p.logger.Warn().Err(err).Msg("cache store failed")
		}
	}
	p.logger.Info().
		Str("city", p.city).
		Str("country", p.country).
		Str("date", day.Date.Readable).
		Msg("timings refreshed")
	return Result{Schedule: p.build(day, today), Source: SourceLive, FetchedAt: now}
}

func (p *Provider) query(today time.Time) aladhan.Query {
	return aladhan.Query{Date: today, City: p.city, Country: p.country, Method: p.method}
}

// zone is the configured location, else the last zone the API reported.
// It is nil until the first successful fetch when nothing is configured.
func (p *Provider) zone() *time.Location {
	if p.location != nil {
		return p.location
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.apiZone
}

// localize moves now into the schedule's zone when one is known.
func (p *Provider) localize(now time.Time) time.Time {
	if loc := p.zone(); loc != nil {
		return now.In(loc)
	}
	return now
}

func (p *Provider) rememberZone(day *aladhan.Day) {
	if p.location != nil {
		return
	}
	if loc := day.Location(); loc != nil {
		p.mu.Lock()
		p.apiZone = loc
		p.mu.Unlock()
	}
}

// isToday reports whether day is now's calendar day in the zone the day's
// schedule will use. A day without a parseable date is accepted.
func (p *Provider) isToday(day *aladhan.Day, now time.Time) bool {
	loc := p.location
	if loc == nil {
		loc = day.Location()
	}
	if loc == nil {
		loc = now.Location()
	}
	date := day.ParsedDate(loc)
	if date.IsZero() {
		return true
	}
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (p *Provider) fallback(today, now time.Time, cause error) Result {
	p.logger.Warn().Err(cause).Msg("using fallback timings")
	return Result{
		Schedule:  p.build(Fallback(today), today),
		Source:    SourceFallback,
		Err:       cause,
		FetchedAt: now,
	}
}

func (p *Provider) build(day *aladhan.Day, today time.Time) Schedule {
	loc := p.location
	if loc == nil {
		loc = day.Location()
	}
	if loc == nil {
		loc = today.Location()
	}

	date := day.ParsedDate(loc)
	if date.IsZero() {
		date = today.In(loc)
	}

	table, err := prayer.Parse(date, day.Timings)
	if err != nil {
		p.logger.Warn().Err(err).Msg("dropped malformed timings")
	}

	return Schedule{
		Table:       table,
		Location:    loc,
		City:        p.city,
		Country:     p.country,
		Gregorian:   day.Date.Readable,
		Hijri:       day.Date.Hijri.Format(),
		HijriArabic: day.Date.Hijri.FormatArabic(),
		Method:      day.Meta.Method.Name,
		ParseErr:    err,
	}
}
