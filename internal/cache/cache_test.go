package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	"github.com/five82/prayerclock/internal/aladhan"
)

func TestKey_NormalizesLocation(t *testing.T) {
	q := aladhan.Query{
		Date:    time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC),
		City:    " Bani Suwayf ",
		Country: "Egypt",
		Method:  5,
	}
	if got, want := Key(q), "prayerclock:day:2025-03-14:egypt:bani_suwayf:5"; got != want {
		t.Fatalf("Key = %q, want %q", got, want)
	}
}

func TestNew_EmptyAddrIsDisabled(t *testing.T) {
	c := New(context.Background(), Config{}, zerolog.Nop())
	if c.IsAvailable() {
		t.Fatalf("IsAvailable = true, want false without address")
	}
	if c.config.TTL != DefaultTTL {
		t.Fatalf("TTL = %v, want %v", c.config.TTL, DefaultTTL)
	}
	if _, ok := c.Get(context.Background(), aladhan.Query{}); ok {
		t.Fatalf("Get on disabled cache reported a hit")
	}
	if err := c.Set(context.Background(), aladhan.Query{}, &aladhan.Day{}); err != nil {
		t.Fatalf("Set on disabled cache returned error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestNew_UnreachableRedisIsDisabled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c := New(ctx, Config{Addr: "127.0.0.1:1"}, zerolog.Nop())
	if c.IsAvailable() {
		t.Fatalf("IsAvailable = true, want false for unreachable redis")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	if c.IsAvailable() {
		t.Fatalf("nil cache reported available")
	}
	if _, ok := c.Get(context.Background(), aladhan.Query{}); ok {
		t.Fatalf("nil cache reported a hit")
	}
	if err := c.Set(context.Background(), aladhan.Query{}, &aladhan.Day{}); err != nil {
		t.Fatalf("nil cache Set returned error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("nil cache Close returned error: %v", err)
	}
}

func testQuery() aladhan.Query {
	return aladhan.Query{
		Date:    time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		City:    "Cairo",
		Country: "Egypt",
		Method:  5,
	}
}

func newTestCache(t *testing.T, cfg Config) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg.Addr = mr.Addr()
	c := New(context.Background(), cfg, zerolog.Nop())
	t.Cleanup(func() { _ = c.Close() })
	if !c.IsAvailable() {
		t.Fatalf("cache against %s is not available", mr.Addr())
	}
	return c, mr
}

func TestCache_SetThenGet(t *testing.T) {
	c, _ := newTestCache(t, Config{})
	ctx := context.Background()
	q := testQuery()

	if _, ok := c.Get(ctx, q); ok {
		t.Fatalf("Get before Set reported a hit")
	}

	day := &aladhan.Day{
		Timings: map[string]string{"Fajr": "04:31", "Isha": "19:02"},
		Meta:    aladhan.Meta{Timezone: "Africa/Cairo"},
	}
	if err := c.Set(ctx, q, day); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := c.Get(ctx, q)
	if !ok {
		t.Fatalf("Get after Set reported a miss")
	}
	if got.Timings["Fajr"] != "04:31" || got.Timings["Isha"] != "19:02" {
		t.Fatalf("Timings = %v, want Fajr 04:31 and Isha 19:02", got.Timings)
	}
	if got.Meta.Timezone != "Africa/Cairo" {
		t.Fatalf("Timezone = %q, want Africa/Cairo", got.Meta.Timezone)
	}

	other := q
	other.City = "Alexandria"
	if _, ok := c.Get(ctx, other); ok {
		t.Fatalf("Get for another city reported a hit")
	}
}

func TestCache_SetAppliesTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{name: "configured", ttl: 2 * time.Hour, want: 2 * time.Hour},
		{name: "default", ttl: 0, want: DefaultTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mr := newTestCache(t, Config{TTL: tt.ttl})
			ctx := context.Background()
			q := testQuery()

			if err := c.Set(ctx, q, &aladhan.Day{Timings: map[string]string{"Fajr": "04:31"}}); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if got := mr.TTL(Key(q)); got != tt.want {
				t.Fatalf("TTL = %v, want %v", got, tt.want)
			}

			mr.FastForward(tt.want + time.Second)
			if _, ok := c.Get(ctx, q); ok {
				t.Fatalf("Get after TTL reported a hit")
			}
		})
	}
}

func TestCache_CorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t, Config{DisableOnError: true})
	q := testQuery()

	if err := mr.Set(Key(q), "{not json"); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}
	if _, ok := c.Get(context.Background(), q); ok {
		t.Fatalf("Get on corrupt entry reported a hit")
	}
	if !c.IsAvailable() {
		t.Fatalf("corrupt entry disabled the cache")
	}
}

func TestCache_RedisErrors(t *testing.T) {
	tests := []struct {
		name           string
		disableOnError bool
		wantAvailable  bool
	}{
		{name: "disable on error", disableOnError: true, wantAvailable: false},
		{name: "keep going", disableOnError: false, wantAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mr := newTestCache(t, Config{DisableOnError: tt.disableOnError})
			ctx := context.Background()
			q := testQuery()
			day := &aladhan.Day{Timings: map[string]string{"Fajr": "04:31"}}

			mr.SetError("ERR server failure")
			if err := c.Set(ctx, q, day); err == nil {
				t.Fatalf("Set against failing redis returned nil error")
			}
			if got := c.IsAvailable(); got != tt.wantAvailable {
				t.Fatalf("IsAvailable after error = %v, want %v", got, tt.wantAvailable)
			}

			mr.SetError("")
			if err := c.Set(ctx, q, day); err != nil {
				t.Fatalf("Set after recovery: %v", err)
			}
			_, ok := c.Get(ctx, q)
			if ok != tt.wantAvailable {
				t.Fatalf("Get after recovery hit = %v, want %v", ok, tt.wantAvailable)
			}
			if !tt.wantAvailable && mr.Exists(Key(q)) {
				t.Fatalf("disabled cache still wrote to redis")
			}
		})
	}
}
