// Package app provides the orchestration layer for prayerclock.
//
// # Overview
//
// Setup is the composition root: it loads .env and the TOML config, opens
// the log file, builds the Al Adhan client, the optional Redis cache and the
// provider. Run adds the state store and poller on top and hands control to
// the Bubble Tea UI. The one-shot CLI commands use Setup alone.
//
// # Data Flow
//
//	Setup()
//	  ├─> config.LoadDotEnv(), config.Load()
//	  ├─> logging.Setup()          log file, zerolog
//	  ├─> aladhan.NewClient()
//	  ├─> cache.New()              disabled when redis_addr is empty or down
//	  └─> provider.New()
//	Run()
//	  ├─> state.Store{}
//	  ├─> Poller.Refresh()         first fill before the UI draws
//	  ├─> Poller.Start()
//	  └─> ui.Run()                 blocks
//
// # Polling Behavior
//
// The poller refreshes when any of these happens:
//
//   - the refresh interval elapses (default one hour)
//   - the schedule's calendar day no longer matches today (checked every minute)
//   - the UI calls Request, e.g. on a stale countdown; requests closer than
//     30s to the previous refresh are ignored
//
// While fetches keep falling back, the interval shrinks to an exponential
// backoff starting at 30s and capped at 30 minutes.
//
// # Error Handling
//
// Configuration, logging and client construction errors are fatal and
// returned from Setup. Fetch failures never are: the provider substitutes
// the fallback schedule and the store counts the failure.
package app
